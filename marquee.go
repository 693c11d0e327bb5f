package dmd

// maxMarqueeLen caps the marquee text, in bytes.
const maxMarqueeLen = 255

type marquee struct {
	text          string
	width, height int
	x, y          int
}

// MarqueeState is a snapshot of the scrolling text.
type MarqueeState struct {
	Text   string
	Width  int // Total width, one gap column per glyph included
	Height int
	X, Y   int // Current top left corner
}

// DrawMarquee starts scrolling text with its top left corner at (left, top)
// and draws it once. Text longer than 255 bytes is truncated.
func (d *Dev) DrawMarquee(text string, left, top int) {
	if len(text) > maxMarqueeLen {
		text = text[:maxMarqueeLen]
	}
	m := &d.marquee
	m.text = text
	m.width = 0
	for i := 0; i < len(text); i++ {
		m.width += d.CharWidth(text[i]) + 1
	}
	m.height = 0
	if d.font != nil {
		m.height = d.font.Height()
	}
	m.x, m.y = left, top
	d.DrawString(m.x, m.y, m.text, Normal)
}

// StepMarquee moves the marquee by (dx, dy) and redraws it. It reports
// whether the text left the canvas and re-entered from the opposite edge;
// the canvas is cleared when that happens.
//
// A one pixel horizontal step shifts the framebuffer in place and only draws
// the glyph entering at the edge. Any other step redraws the whole text.
func (d *Dev) StepMarquee(dx, dy int) bool {
	m := &d.marquee
	w, h := d.rect.Dx(), d.rect.Dy()
	wrapped := false

	m.x += dx
	m.y += dy
	if m.x < -m.width {
		m.x = w
		d.fb.Clear(true)
		wrapped = true
	} else if m.x > w {
		m.x = -m.width
		d.fb.Clear(true)
		wrapped = true
	}
	if m.y < -m.height {
		m.y = h
		d.fb.Clear(true)
		wrapped = true
	} else if m.y > h {
		m.y = -m.height
		d.fb.Clear(true)
		wrapped = true
	}
	if wrapped {
		logger().Debug("dmd: marquee wrapped", "x", m.x, "y", m.y)
	}

	switch {
	case dx == -1 && dy == 0:
		d.fb.ShiftLeft()
		adv := m.x
		for i := 0; i < len(m.text); i++ {
			cw := d.CharWidth(m.text[i])
			if adv+cw >= w {
				d.DrawChar(adv, m.y, m.text[i], Normal)
				break
			}
			adv += cw + 1
		}
	case dx == 1 && dy == 0:
		d.fb.ShiftRight()
		adv := m.x
		for i := 0; i < len(m.text); i++ {
			cw := d.CharWidth(m.text[i])
			if adv+cw >= 0 {
				d.DrawChar(adv, m.y, m.text[i], Normal)
				break
			}
			adv += cw + 1
		}
	default:
		d.DrawString(m.x, m.y, m.text, Normal)
	}
	return wrapped
}

// Marquee returns the current marquee state.
func (d *Dev) Marquee() MarqueeState {
	m := d.marquee
	return MarqueeState{Text: m.text, Width: m.width, Height: m.height, X: m.x, Y: m.y}
}
