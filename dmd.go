// Package dmd drives tiled monochrome 32×16 dot-matrix LED panels.
//
// The panels have no frame memory. The host keeps a packed framebuffer and
// must call ScanStep every few milliseconds to re-drive one of the four
// multiplexed row groups.
//
// See the examples for how to use this package.
package dmd

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/dmd/fonts"
	"periph.io/x/devices/v3/dmd/image1bit"
)

// Opts is the configuration for a panel array.
type Opts struct {
	// Topology in 32×16 panels
	PanelsWide int // Panels across (default: 1)
	PanelsHigh int // Panels down (default: 1)

	// SPI clock used by NewSPI (default: 4MHz)
	SPIFrequency physic.Frequency
}

// Dev is the device handle for a panel array.
//
// Dev does no locking. When drawing and ScanStep run on different goroutines
// the caller must serialize them.
type Dev struct {
	lines Lines

	// Display geometry
	rect image.Rectangle
	fb   *image1bit.Tiled

	// Text
	font    *fonts.Font
	marquee marquee

	// Scan state
	phase            int
	row1, row2, row3 int     // byte offsets of rows 4, 8 and 12 below the phase row
	unit             [4]byte // one transfer unit, reused every column

	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// New creates a device driven through lines.
//
// opts can be nil to use defaults (a single panel).
func New(lines Lines, opts *Opts) (*Dev, error) {
	if lines == nil {
		return nil, errors.New("dmd: lines must not be nil")
	}
	o, err := opts.validate()
	if err != nil {
		return nil, err
	}

	total := o.PanelsWide * o.PanelsHigh
	fb := image1bit.NewTiled(o.PanelsWide, o.PanelsHigh)
	d := &Dev{
		lines: lines,
		rect:  fb.Rect,
		fb:    fb,
		row1:  total << 4,
		row2:  total << 5,
		row3:  total * 48,
	}
	logger().Debug("dmd: panel ready", "wide", o.PanelsWide, "high", o.PanelsHigh, "bounds", d.rect)
	return d, nil
}

// NewSPI creates a device whose row data is shifted out over SPI and whose
// control lines are GPIO pins.
//
// The SPI port is configured for opts.SPIFrequency, Mode0, 8-bit transfers.
// The address, latch and output enable pins are driven low, which leaves the
// panel blanked until the first ScanStep.
func NewSPI(p spi.Port, pins *Pins, opts *Opts) (*Dev, error) {
	if pins == nil || pins.A == nil || pins.B == nil || pins.OE == nil || pins.Latch == nil {
		return nil, errors.New("dmd: A, B, OE and Latch pins are required")
	}
	o, err := opts.validate()
	if err != nil {
		return nil, err
	}

	c, err := p.Connect(o.SPIFrequency, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("dmd: failed to connect SPI: %w", err)
	}

	l := &pinLines{c: c, a: pins.A, b: pins.B, oe: pins.OE, lat: pins.Latch, ready: pins.Ready}
	for _, pin := range []gpio.PinOut{l.a, l.b, l.lat, l.oe} {
		if err := pin.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("dmd: failed to drive %s low: %w", pin, err)
		}
	}
	return New(l, &o)
}

// validate applies defaults and checks the topology.
func (o *Opts) validate() (Opts, error) {
	var v Opts
	if o != nil {
		v = *o
	}
	if v.PanelsWide == 0 {
		v.PanelsWide = 1
	}
	if v.PanelsHigh == 0 {
		v.PanelsHigh = 1
	}
	if v.SPIFrequency == 0 {
		v.SPIFrequency = 4 * physic.MegaHertz
	}
	if v.PanelsWide < 0 || v.PanelsHigh < 0 || v.PanelsWide > 255 || v.PanelsHigh > 255 ||
		v.PanelsWide*v.PanelsHigh > 255 {
		return v, errors.New("dmd: panel count must be between 1 and 255")
	}
	if v.SPIFrequency < 0 {
		return v, errors.New("dmd: SPI frequency must be positive")
	}
	return v, nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the canvas bounds.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Framebuffer returns the backing buffer. Writes to it show up on the next
// scan cycle.
func (d *Dev) Framebuffer() *image1bit.Tiled {
	return d.fb
}

// Draw composes src into the framebuffer. Colors at or above half luminance
// light a pixel. The panel itself is updated by ScanStep.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("dmd: halted")
	}
	if dst.Intersect(d.rect).Empty() {
		return nil
	}
	draw.Draw(d.fb, dst, src, sp, draw.Src)
	return nil
}

// Halt blanks the panel and stops scanning.
// After Halt, ScanStep and Draw return an error.
func (d *Dev) Halt() error {
	d.halted = true
	if err := d.lines.Blank(); err != nil {
		logger().Warn("dmd: failed to blank on halt", "err", err)
		return fmt.Errorf("dmd: failed to blank: %w", err)
	}
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("dmd.Dev{%dx%d panels, %dx%d}", d.fb.Wide, d.fb.High, d.rect.Dx(), d.rect.Dy())
}
