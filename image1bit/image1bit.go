package image1bit

import (
	"image"
	"image/color"
)

// Panel geometry of a single tile.
const (
	PanelW = 32
	PanelH = 16

	// PanelBytes is the number of bytes one tile occupies in Pix.
	PanelBytes = PanelW / 8 * PanelH
)

// Bit is a 1-bit color. true is a lit LED.
type Bit bool

// Named bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA returns white for a lit pixel and black otherwise.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit. Colors at or above half luminance are lit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Mode selects how SetBit composes a pixel with the existing buffer content.
type Mode uint8

const (
	// Normal lights the pixel when on is true and darkens it otherwise.
	Normal Mode = iota
	// Inverse is Normal with the polarity reversed.
	Inverse
	// Toggle flips the pixel when on is true.
	Toggle
	// Or lights the pixel when on is true. It never darkens.
	Or
	// Nor darkens a lit pixel when on is true.
	Nor
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Inverse:
		return "Inverse"
	case Toggle:
		return "Toggle"
	case Or:
		return "Or"
	case Nor:
		return "Nor"
	default:
		return "Mode(?)"
	}
}

// Tiled is a framebuffer for Wide×High identical 32×16 panels.
//
// Every buffer row holds the same row of all panels back to back, so the panel
// at column px and row py of the tiling contributes bytes [4*(px+Wide*py),
// 4*(px+Wide*py)+4) of each buffer row.
type Tiled struct {
	Pix  []byte          // Packed pixels, 0 is lit.
	Wide int             // Panels across.
	High int             // Panels down.
	Rect image.Rectangle // Canvas bounds, always anchored at (0, 0).
}

// NewTiled returns a blank framebuffer for wide×high panels.
func NewTiled(wide, high int) *Tiled {
	if wide <= 0 || high <= 0 {
		return &Tiled{Wide: wide, High: high}
	}
	t := &Tiled{
		Pix:  make([]byte, wide*high*PanelBytes),
		Wide: wide,
		High: high,
		Rect: image.Rect(0, 0, wide*PanelW, high*PanelH),
	}
	t.Clear(true)
	return t
}

// Panels returns the total panel count.
func (p *Tiled) Panels() int {
	return p.Wide * p.High
}

// Stride returns the number of bytes in one buffer row.
func (p *Tiled) Stride() int {
	return p.Panels() * (PanelW / 8)
}

// ColorModel returns BitModel.
func (p *Tiled) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the canvas bounds.
func (p *Tiled) Bounds() image.Rectangle {
	return p.Rect
}

// In reports whether (x, y) is on the canvas.
func (p *Tiled) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.Rect.Max.X && y < p.Rect.Max.Y
}

// PixOffset returns the byte index and bit mask of pixel (x, y).
// The coordinates must be on the canvas.
func (p *Tiled) PixOffset(x, y int) (int, byte) {
	panel := x/PanelW + p.Wide*(y/PanelH)
	x = x%PanelW + panel*PanelW
	y %= PanelH
	return x/8 + y*p.Stride(), 0x80 >> uint(x%8)
}

// At implements image.Image.
func (p *Tiled) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns whether the pixel at (x, y) is lit. Off-canvas pixels are Off.
func (p *Tiled) BitAt(x, y int) Bit {
	if !p.In(x, y) {
		return Off
	}
	i, mask := p.PixOffset(x, y)
	return p.Pix[i]&mask == 0
}

// Set implements draw.Image.
func (p *Tiled) Set(x, y int, c color.Color) {
	p.SetBit(x, y, Normal, bool(BitModel.Convert(c).(Bit)))
}

// SetBit composes the pixel at (x, y) according to mode. Off-canvas
// coordinates are ignored.
func (p *Tiled) SetBit(x, y int, mode Mode, on bool) {
	if !p.In(x, y) {
		return
	}
	i, mask := p.PixOffset(x, y)
	switch mode {
	case Normal:
		if on {
			p.Pix[i] &^= mask
		} else {
			p.Pix[i] |= mask
		}
	case Inverse:
		if on {
			p.Pix[i] |= mask
		} else {
			p.Pix[i] &^= mask
		}
	case Toggle:
		if on {
			p.Pix[i] ^= mask
		}
	case Or:
		if on {
			p.Pix[i] &^= mask
		}
	case Nor:
		if on && p.Pix[i]&mask == 0 {
			p.Pix[i] |= mask
		}
	}
}

// Clear fills the buffer: all dark when blank is true, all lit otherwise.
func (p *Tiled) Clear(blank bool) {
	v := byte(0x00)
	if blank {
		v = 0xFF
	}
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// ShiftLeft moves every pixel one column to the left. The rightmost column of
// each panel row is filled dark.
func (p *Tiled) ShiftLeft() {
	edge := p.Wide * (PanelW / 8)
	for i := range p.Pix {
		if i%edge == edge-1 {
			p.Pix[i] = p.Pix[i]<<1 | 1
		} else {
			p.Pix[i] = p.Pix[i]<<1 | p.Pix[i+1]>>7
		}
	}
}

// ShiftRight moves every pixel one column to the right. The leftmost column of
// each panel row is filled dark.
func (p *Tiled) ShiftRight() {
	edge := p.Wide * (PanelW / 8)
	for i := len(p.Pix) - 1; i >= 0; i-- {
		if i%edge == 0 {
			p.Pix[i] = p.Pix[i]>>1 | 0x80
		} else {
			p.Pix[i] = p.Pix[i]>>1 | p.Pix[i-1]<<7
		}
	}
}
