package dmd

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Lines is the hardware a scan step drives. Implementations exist per
// platform; NewSPI provides one on top of periph.io gpio and spi.
type Lines interface {
	// Ready reports whether the serial link can accept a new row group.
	Ready() bool
	// Transfer shifts b out to the panel shift registers.
	Transfer(b []byte) error
	// Blank turns the LED drivers off.
	Blank() error
	// Unblank turns the LED drivers back on.
	Unblank() error
	// Latch moves the shifted data into the output drivers.
	Latch() error
	// SetRowAddress selects the row group (0-3) the latched data is shown on.
	SetRowAddress(phase int) error
}

// Pins are the GPIO lines of the panel connector.
type Pins struct {
	A     gpio.PinOut // Row address, low bit
	B     gpio.PinOut // Row address, high bit
	OE    gpio.PinOut // Output enable, low blanks the panel
	Latch gpio.PinOut // Latch strobe (SCLK on the connector)

	// Optional: reads High while the SPI peripheral is idle, e.g. the chip
	// select of another device sharing the bus. nil means always ready.
	Ready gpio.PinIn
}

// pinLines implements Lines with periph.io pins and an SPI connection.
type pinLines struct {
	c     conn.Conn
	a, b  gpio.PinOut
	oe    gpio.PinOut
	lat   gpio.PinOut
	ready gpio.PinIn
}

func (l *pinLines) Ready() bool {
	return l.ready == nil || l.ready.Read() == gpio.High
}

func (l *pinLines) Transfer(b []byte) error {
	return l.c.Tx(b, nil)
}

func (l *pinLines) Blank() error {
	return l.oe.Out(gpio.Low)
}

func (l *pinLines) Unblank() error {
	return l.oe.Out(gpio.High)
}

func (l *pinLines) Latch() error {
	if err := l.lat.Out(gpio.High); err != nil {
		return err
	}
	return l.lat.Out(gpio.Low)
}

func (l *pinLines) SetRowAddress(phase int) error {
	if err := l.b.Out(gpio.Level(phase&2 != 0)); err != nil {
		return err
	}
	return l.a.Out(gpio.Level(phase&1 != 0))
}
