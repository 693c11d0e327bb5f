// Package image1bit provides the 1-bit packed framebuffer for tiled 32×16 DMD panels.
//
// Each byte holds 8 horizontally adjacent pixels, most significant bit leftmost.
// A 0 bit is a lit LED and a 1 bit is dark, so a blank buffer is all 0xFF.
//
// Memory layout for two panels side by side (Wide=2, High=1):
//
//	Canvas x:   0..7  8..15 16..23 24..31 | 32..39 40..47 48..55 56..63
//	Row 0:      Pix[0] Pix[1] Pix[2] Pix[3] | Pix[4] Pix[5] Pix[6] Pix[7]
//	Row 1:      Pix[8] ...
//
// A second row of panels (High=2) continues each buffer row instead of adding
// rows, so canvas row 16 lives in the same buffer row as canvas row 0:
//
//	panel   = x/32 + Wide*(y/16)
//	byteIdx = (x%32 + panel*32)/8 + (y%16)*Stride()
//	mask    = 0x80 >> ((x%32 + panel*32) % 8)
//
// This package provides:
//
// - Bit: a 1-bit color type, and BitModel to convert standard colors to it
// - Mode: the compositing modes understood by SetBit
// - Tiled: a draw.Image over the packed buffer
//
// Example usage:
//
//	fb := image1bit.NewTiled(2, 1) // 64×16, blank
//	fb.SetBit(3, 4, image1bit.Normal, true)
//	lit := fb.BitAt(3, 4) // On
//	draw.Draw(fb, fb.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
