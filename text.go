package dmd

import "periph.io/x/devices/v3/dmd/fonts"

// spaceWidthGlyph is the glyph whose width a space takes.
const spaceWidthGlyph = 'n'

// SelectFont makes f the font used by the text operations. The framebuffer
// is left untouched.
func (d *Dev) SelectFont(f *fonts.Font) {
	d.font = f
	if f != nil {
		logger().Debug("dmd: font selected", "height", f.Height(), "first", f.FirstChar(), "count", f.Count())
	}
}

// Font returns the selected font, or nil.
func (d *Dev) Font() *fonts.Font {
	return d.font
}

// CharWidth returns the advance of c in the selected font, without the one
// column gap DrawString adds. A space is as wide as 'n'. Characters the font
// does not cover are 0 wide.
func (d *Dev) CharWidth(c byte) int {
	if d.font == nil {
		return 0
	}
	if c == ' ' {
		c = spaceWidthGlyph
	}
	return d.font.Width(c)
}

// DrawChar draws c with its top left corner at (x, y) and returns its width.
//
// It returns 0 if the font has no glyph for c, and -1 if (x, y) is past the
// right or bottom edge of the canvas, which tells a layout loop to stop.
// Every pixel of the glyph cell is written, background included, so a glyph
// fully replaces whatever was under it. A space erases a cell one pixel
// larger than the glyph in both directions.
func (d *Dev) DrawChar(x, y int, c byte, mode Mode) int {
	if x > d.rect.Dx() || y > d.rect.Dy() {
		return -1
	}
	if d.font == nil {
		return 0
	}
	height := d.font.Height()
	if c == ' ' {
		w := d.CharWidth(' ')
		d.FilledBox(x, y, x+w, y+height, Inverse)
		return w
	}

	g, ok := d.font.Glyph(c)
	if !ok {
		return 0
	}
	if x < -g.Width || y < -height {
		return g.Width
	}

	for j := 0; j < g.Width; j++ {
		// The last byte row goes first: it overlaps the one above it when
		// the height is not a multiple of 8.
		for i := g.ByteRows - 1; i >= 0; i-- {
			data := g.Byte(j, i)
			offset := g.RowOffset(i)
			for k := 0; k < 8; k++ {
				row := offset + k
				if row >= i*8 && row <= height {
					d.fb.SetBit(x+j, y+row, mode, data&(1<<uint(k)) != 0)
				}
			}
		}
	}
	return g.Width
}

// DrawString draws s left to right from (x, y), one byte per glyph.
//
// A dark column is drawn before the first glyph and after every glyph, so
// redrawing text in place leaves no trace of the previous string. Drawing
// stops at the right edge of the canvas.
func (d *Dev) DrawString(x, y int, s string, mode Mode) {
	if x >= d.rect.Dx() || y >= d.rect.Dy() || d.font == nil {
		return
	}
	height := d.font.Height()
	if y+height < 0 {
		return
	}

	d.Line(x-1, y, x-1, y+height, Inverse)
	adv := 0
	for i := 0; i < len(s); i++ {
		w := d.DrawChar(x+adv, y, s[i], mode)
		if w < 0 {
			return
		}
		if w > 0 {
			adv += w
			d.Line(x+adv, y, x+adv, y+height, Inverse)
			adv++
		}
		if x+adv >= d.rect.Dx() {
			return
		}
	}
}
