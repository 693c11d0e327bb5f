package image1bit

import (
	"image"
	"image/color"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	tests := []struct {
		name string
		bit  Bit
		want uint32
	}{
		{"on", On, 0xFFFF},
		{"off", Off, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.bit.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)",
					r, g, b, a, tt.want, tt.want, tt.want)
			}
		})
	}
}

func TestBitModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Bit
	}{
		{"bit passthrough", On, On},
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"dark gray", color.Gray{Y: 0x40}, Off},
		{"light gray", color.Gray{Y: 0xC0}, On},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitModel.Convert(tt.input).(Bit); got != tt.want {
				t.Errorf("BitModel.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewTiled(t *testing.T) {
	tests := []struct {
		name       string
		wide, high int
		wantRect   image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"1x1", 1, 1, image.Rect(0, 0, 32, 16), 4, 64},
		{"2x1", 2, 1, image.Rect(0, 0, 64, 16), 8, 128},
		{"1x2", 1, 2, image.Rect(0, 0, 32, 32), 8, 128},
		{"3x2", 3, 2, image.Rect(0, 0, 96, 32), 24, 384},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewTiled(tt.wide, tt.high)
			if fb.Rect != tt.wantRect {
				t.Errorf("Rect = %v, want %v", fb.Rect, tt.wantRect)
			}
			if got := fb.Stride(); got != tt.wantStride {
				t.Errorf("Stride() = %d, want %d", got, tt.wantStride)
			}
			if len(fb.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(fb.Pix), tt.wantPixLen)
			}
			for i, b := range fb.Pix {
				if b != 0xFF {
					t.Fatalf("Pix[%d] = 0x%02X, want blank 0xFF", i, b)
				}
			}
		})
	}
}

func TestPixOffset(t *testing.T) {
	tests := []struct {
		name       string
		wide, high int
		x, y       int
		wantIdx    int
		wantMask   byte
	}{
		{"origin", 1, 1, 0, 0, 0, 0x80},
		{"bit 7", 1, 1, 7, 0, 0, 0x01},
		{"next byte", 1, 1, 8, 0, 1, 0x80},
		{"row 1", 1, 1, 0, 1, 4, 0x80},
		{"last pixel", 1, 1, 31, 15, 63, 0x01},
		{"second panel", 2, 1, 32, 0, 4, 0x80},
		{"second panel row 1", 2, 1, 33, 1, 12, 0x40},
		{"lower panel", 1, 2, 0, 16, 4, 0x80},
		{"lower right panel", 2, 2, 63, 31, 15*16 + 15, 0x01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewTiled(tt.wide, tt.high)
			idx, mask := fb.PixOffset(tt.x, tt.y)
			if idx != tt.wantIdx || mask != tt.wantMask {
				t.Errorf("PixOffset(%d, %d) = (%d, 0x%02X), want (%d, 0x%02X)",
					tt.x, tt.y, idx, mask, tt.wantIdx, tt.wantMask)
			}
		})
	}
}

func TestPixOffsetBijection(t *testing.T) {
	topologies := [][2]int{{1, 1}, {2, 1}, {1, 2}, {3, 2}, {2, 3}}
	for _, topo := range topologies {
		fb := NewTiled(topo[0], topo[1])
		seen := make(map[[2]int]image.Point)
		for y := 0; y < fb.Rect.Dy(); y++ {
			for x := 0; x < fb.Rect.Dx(); x++ {
				idx, mask := fb.PixOffset(x, y)
				if idx < 0 || idx >= len(fb.Pix) {
					t.Fatalf("%v: PixOffset(%d, %d) index %d out of buffer", topo, x, y, idx)
				}
				key := [2]int{idx, int(mask)}
				if prev, ok := seen[key]; ok {
					t.Fatalf("%v: (%d, %d) and %v share byte %d mask 0x%02X", topo, x, y, prev, idx, mask)
				}
				seen[key] = image.Pt(x, y)
			}
		}
		if want := len(fb.Pix) * 8; len(seen) != want {
			t.Errorf("%v: %d distinct addresses, want %d", topo, len(seen), want)
		}
	}
}

func TestSetBitModes(t *testing.T) {
	tests := []struct {
		name    string
		initial Bit
		mode    Mode
		on      bool
		want    Bit
	}{
		{"normal on", Off, Normal, true, On},
		{"normal off", On, Normal, false, Off},
		{"inverse on", On, Inverse, true, Off},
		{"inverse off", Off, Inverse, false, On},
		{"toggle lit", On, Toggle, true, Off},
		{"toggle dark", Off, Toggle, true, On},
		{"toggle false is noop", On, Toggle, false, On},
		{"or lights", Off, Or, true, On},
		{"or false never darkens", On, Or, false, On},
		{"nor darkens lit", On, Nor, true, Off},
		{"nor leaves dark", Off, Nor, true, Off},
		{"nor false is noop", On, Nor, false, On},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewTiled(1, 1)
			fb.SetBit(5, 5, Normal, bool(tt.initial))
			fb.SetBit(5, 5, tt.mode, tt.on)
			if got := fb.BitAt(5, 5); got != tt.want {
				t.Errorf("after %v(%v) on %v: got %v, want %v", tt.mode, tt.on, tt.initial, got, tt.want)
			}
		})
	}
}

func TestSetBitRoundTrip(t *testing.T) {
	fb := NewTiled(2, 2)
	fb.SetBit(40, 20, Normal, true)
	fb.SetBit(40, 20, Normal, false)
	for i, b := range fb.Pix {
		if b != 0xFF {
			t.Fatalf("Pix[%d] = 0x%02X, want 0xFF after on/off round trip", i, b)
		}
	}
}

func TestSetBitOutOfBounds(t *testing.T) {
	fb := NewTiled(1, 1)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {32, 0}, {0, 16}, {1000, 1000}} {
		fb.SetBit(p.X, p.Y, Normal, true)
		if fb.BitAt(p.X, p.Y) != Off {
			t.Errorf("BitAt(%v) = On for off-canvas pixel", p)
		}
	}
	for i, b := range fb.Pix {
		if b != 0xFF {
			t.Fatalf("Pix[%d] = 0x%02X, off-canvas write leaked into buffer", i, b)
		}
	}
}

func TestClear(t *testing.T) {
	fb := NewTiled(2, 1)
	fb.Clear(false)
	for i, b := range fb.Pix {
		if b != 0x00 {
			t.Fatalf("Clear(false): Pix[%d] = 0x%02X, want 0x00", i, b)
		}
	}
	fb.Clear(true)
	for i, b := range fb.Pix {
		if b != 0xFF {
			t.Fatalf("Clear(true): Pix[%d] = 0x%02X, want 0xFF", i, b)
		}
	}
}

func TestSetAndAt(t *testing.T) {
	fb := NewTiled(1, 1)
	fb.Set(3, 3, color.White)
	if c, ok := fb.At(3, 3).(Bit); !ok || c != On {
		t.Errorf("At(3, 3) = %v, want On", fb.At(3, 3))
	}
	fb.Set(3, 3, color.Black)
	if fb.BitAt(3, 3) != Off {
		t.Error("Set(black) did not darken pixel")
	}
	if fb.ColorModel() != BitModel {
		t.Error("ColorModel() did not return BitModel")
	}
}

func TestShiftLeft(t *testing.T) {
	fb := NewTiled(2, 1)
	fb.SetBit(0, 1, Normal, true)  // falls off the left edge
	fb.SetBit(8, 0, Normal, true)  // crosses a byte boundary
	fb.SetBit(32, 3, Normal, true) // crosses from panel 1 into panel 0
	fb.SetBit(63, 5, Normal, true)

	fb.ShiftLeft()

	want := map[image.Point]bool{{7, 0}: true, {31, 3}: true, {62, 5}: true}
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			if got := bool(fb.BitAt(x, y)); got != want[image.Pt(x, y)] {
				t.Errorf("after ShiftLeft, BitAt(%d, %d) = %v", x, y, got)
			}
		}
	}
}

func TestShiftLeftBoundaryIsBlank(t *testing.T) {
	// A lit column at the start of panel row 1 must not bleed into the right
	// edge of panel row 0.
	fb := NewTiled(1, 2)
	fb.Clear(false)
	fb.ShiftLeft()
	for y := 0; y < 32; y++ {
		if fb.BitAt(31, y) != Off {
			t.Errorf("BitAt(31, %d) lit after ShiftLeft, want dark edge", y)
		}
		if fb.BitAt(30, y) != On {
			t.Errorf("BitAt(30, %d) dark after ShiftLeft, want lit", y)
		}
	}
}

func TestShiftRight(t *testing.T) {
	fb := NewTiled(2, 1)
	fb.SetBit(7, 0, Normal, true)
	fb.SetBit(31, 3, Normal, true)
	fb.SetBit(63, 5, Normal, true) // falls off the right edge

	fb.ShiftRight()

	want := map[image.Point]bool{{8, 0}: true, {32, 3}: true}
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			if got := bool(fb.BitAt(x, y)); got != want[image.Pt(x, y)] {
				t.Errorf("after ShiftRight, BitAt(%d, %d) = %v", x, y, got)
			}
		}
	}
}

func TestShiftRightBoundaryIsBlank(t *testing.T) {
	fb := NewTiled(2, 2)
	fb.Clear(false)
	fb.ShiftRight()
	for y := 0; y < 32; y++ {
		if fb.BitAt(0, y) != Off {
			t.Errorf("BitAt(0, %d) lit after ShiftRight, want dark edge", y)
		}
		if fb.BitAt(32, y) != On {
			t.Errorf("BitAt(32, %d) dark after ShiftRight, want lit", y)
		}
	}
}
