// Package dmd drives tiled monochrome 32×16 dot-matrix LED panels.
//
// These panels (often sold as "DMD" or P10 modules) have no frame memory.
// Each one is four interleaved groups of four rows behind a chain of shift
// registers. The host keeps the image and re-drives one row group at a time,
// so the display only stays lit while ScanStep is called on a steady cadence.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 1 bit per pixel, lit or dark
// - 32×16 pixels per panel, panels tiled left to right then top to bottom
// - Up to 255 panels in one chain
// - 1/4 scan: rows p, p+4, p+8 and p+12 share a row address
//
// # Hardware Connection
//
// Panels are chained through their HUB12 connectors. The first panel connects
// to the host:
//
//	Panel Pin → System Pin
//	GND       → GND
//	R/DATA    → SPI Data (MOSI)
//	CLK       → SPI Clock (SCLK)
//	SCLK/LAT  → GPIO (latch strobe)
//	A         → GPIO (row address, low bit)
//	B         → GPIO (row address, high bit)
//	nOE       → GPIO (output enable, low blanks the panel)
//
// LED power comes from a separate 5V supply. Do not draw it from the host.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"time"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/dmd"
//		"periph.io/x/devices/v3/dmd/fonts"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		port, _ := spireg.Open("")
//		defer port.Close()
//
//		dev, _ := dmd.NewSPI(port, &dmd.Pins{
//			A:     gpioreg.ByName("GPIO6"),
//			B:     gpioreg.ByName("GPIO13"),
//			OE:    gpioreg.ByName("GPIO5"),
//			Latch: gpioreg.ByName("GPIO19"),
//		}, &dmd.Opts{PanelsWide: 2, PanelsHigh: 1})
//		defer dev.Halt()
//
//		dev.SelectFont(fonts.MustParse(fonts.System5x7))
//		dev.DrawString(1, 4, "Hello", dmd.Normal)
//
//		for range time.Tick(2 * time.Millisecond) {
//			dev.ScanStep()
//		}
//	}
//
// # Refresh
//
// ScanStep shifts out one row group, latches it, and moves on. Four calls
// make a full frame. At one call every 2ms the panel refreshes at 125Hz.
//
// Dev does no locking. When ScanStep runs on its own goroutine, guard it and
// the drawing calls with the same mutex. See examples/dmd_demo.
//
// If another device shares the SPI bus, pass its chip select as Pins.Ready.
// ScanStep skips a step while that line is low.
//
// # Drawing
//
// Drawing only touches the framebuffer. Every operation takes a Mode:
//
//	dmd.Normal  // lit where on, dark otherwise
//	dmd.Inverse // dark where on, lit otherwise
//	dmd.Toggle  // flip where on
//	dmd.Or      // lit where on, unchanged otherwise
//	dmd.Nor     // dark where on and lit, unchanged otherwise
//
// Primitives: SetPixel, Line, Circle, Box, FilledBox and TestPattern.
// Coordinates off the canvas are clipped.
//
// Any image.Image can also be drawn with Draw. Colors at or above half
// luminance light a pixel.
//
// # Text
//
// Fonts are the bitmap blobs decoded by package fonts. SelectFont picks one,
// then DrawChar and DrawString render ASCII text. fonts.Encode converts any
// golang.org/x/image/font.Face, such as basicfont.Face7x13, into a blob.
//
// # Marquee
//
// DrawMarquee places a string and StepMarquee moves it. One pixel horizontal
// steps shift the framebuffer in place and redraw only the glyph at the
// leading edge, which keeps long banners cheap to animate:
//
//	dev.DrawMarquee("Departures 10:42", dev.Bounds().Dx(), 4)
//	for {
//		dev.StepMarquee(-1, 0)
//		time.Sleep(30 * time.Millisecond)
//	}
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package dmd
