package dmd

import "periph.io/x/devices/v3/dmd/image1bit"

// Mode selects how a drawing operation composes with existing pixels.
type Mode = image1bit.Mode

// Compositing modes.
const (
	Normal  = image1bit.Normal
	Inverse = image1bit.Inverse
	Toggle  = image1bit.Toggle
	Or      = image1bit.Or
	Nor     = image1bit.Nor
)

// Pattern selects a diagnostic test pattern.
type Pattern uint8

const (
	// PatternAlt0 is a checkerboard with the top left pixel dark.
	PatternAlt0 Pattern = iota
	// PatternAlt1 is a checkerboard with the top left pixel lit.
	PatternAlt1
	// PatternStripe0 lights every odd column.
	PatternStripe0
	// PatternStripe1 lights every even column.
	PatternStripe1
)

// SetPixel composes the pixel at (x, y). Off-canvas coordinates are ignored.
func (d *Dev) SetPixel(x, y int, mode Mode, on bool) {
	d.fb.SetBit(x, y, mode, on)
}

// Clear fills the framebuffer, dark when blank is true and lit otherwise.
func (d *Dev) Clear(blank bool) {
	d.fb.Clear(blank)
}

// Line draws a line from (x1, y1) to (x2, y2), both ends included.
func (d *Dev) Line(x1, y1, x2, y2 int, mode Mode) {
	dy := y2 - y1
	dx := x2 - x1
	stepx, stepy := 1, 1
	if dy < 0 {
		dy = -dy
		stepy = -1
	}
	if dx < 0 {
		dx = -dx
		stepx = -1
	}
	dy <<= 1
	dx <<= 1

	d.fb.SetBit(x1, y1, mode, true)
	if dx > dy {
		fraction := dy - dx>>1
		for x1 != x2 {
			if fraction >= 0 {
				y1 += stepy
				fraction -= dx
			}
			x1 += stepx
			fraction += dy
			d.fb.SetBit(x1, y1, mode, true)
		}
		return
	}
	fraction := dx - dy>>1
	for y1 != y2 {
		if fraction >= 0 {
			x1 += stepx
			fraction -= dy
		}
		y1 += stepy
		fraction += dx
		d.fb.SetBit(x1, y1, mode, true)
	}
}

// Circle draws the outline of a circle using the midpoint algorithm.
func (d *Dev) Circle(xc, yc, radius int, mode Mode) {
	x, y := 0, radius
	p := (5 - radius*4) / 4
	d.circlePoints(xc, yc, x, y, mode)
	for x < y {
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
		d.circlePoints(xc, yc, x, y, mode)
	}
}

// circlePoints plots the symmetric images of octant point (x, y). Points on
// an axis or on the diagonal have only four distinct images.
func (d *Dev) circlePoints(cx, cy, x, y int, mode Mode) {
	switch {
	case x == 0:
		d.fb.SetBit(cx, cy+y, mode, true)
		d.fb.SetBit(cx, cy-y, mode, true)
		d.fb.SetBit(cx+y, cy, mode, true)
		d.fb.SetBit(cx-y, cy, mode, true)
	case x == y:
		d.fb.SetBit(cx+x, cy+y, mode, true)
		d.fb.SetBit(cx-x, cy+y, mode, true)
		d.fb.SetBit(cx+x, cy-y, mode, true)
		d.fb.SetBit(cx-x, cy-y, mode, true)
	case x < y:
		d.fb.SetBit(cx+x, cy+y, mode, true)
		d.fb.SetBit(cx-x, cy+y, mode, true)
		d.fb.SetBit(cx+x, cy-y, mode, true)
		d.fb.SetBit(cx-x, cy-y, mode, true)
		d.fb.SetBit(cx+y, cy+x, mode, true)
		d.fb.SetBit(cx-y, cy+x, mode, true)
		d.fb.SetBit(cx+y, cy-x, mode, true)
		d.fb.SetBit(cx-y, cy-x, mode, true)
	}
}

// Box draws the outline of the rectangle with corners (x1, y1) and (x2, y2).
func (d *Dev) Box(x1, y1, x2, y2 int, mode Mode) {
	d.Line(x1, y1, x2, y1, mode)
	d.Line(x2, y1, x2, y2, mode)
	d.Line(x2, y2, x1, y2, mode)
	d.Line(x1, y2, x1, y1, mode)
}

// FilledBox fills the rectangle with corners (x1, y1) and (x2, y2), edges
// included. The corners may be given in any order.
func (d *Dev) FilledBox(x1, y1, x2, y2 int, mode Mode) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.Line(x, y1, x, y2, mode)
	}
}

// TestPattern overwrites the whole canvas with pattern p.
func (d *Dev) TestPattern(p Pattern) {
	w := d.rect.Dx()
	n := w * d.rect.Dy()
	for i := 0; i < n; i++ {
		x, y := i%w, i/w
		odd := i&1 == 1
		oddRow := y&1 == 1
		var on bool
		switch p {
		case PatternAlt0:
			on = odd != oddRow
		case PatternAlt1:
			on = odd == oddRow
		case PatternStripe0:
			on = odd
		case PatternStripe1:
			on = !odd
		default:
			return
		}
		d.fb.SetBit(x, y, Normal, on)
	}
}
