package fonts

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Encode rasterizes count glyphs of face, starting at character code first,
// into a variable-width font blob. Glyph widths come from the face advance
// and the height from its line height. A pixel is lit when its coverage is
// at least half.
func Encode(face font.Face, first byte, count int) ([]byte, error) {
	if count <= 0 || count > 255 {
		return nil, fmt.Errorf("fonts: invalid glyph count %d", count)
	}
	if int(first)+count > 256 {
		return nil, fmt.Errorf("fonts: %d glyphs from 0x%02X overflow the byte range", count, first)
	}
	m := face.Metrics()
	height := m.Height.Ceil()
	if height <= 0 || height > 255 {
		return nil, fmt.Errorf("fonts: unsupported line height %d", height)
	}
	ascent := m.Ascent.Ceil()

	widths := make([]byte, count)
	var bitmaps []byte
	for i := range widths {
		r := rune(int(first) + i)
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		w := adv.Ceil()
		if w > 255 {
			return nil, fmt.Errorf("fonts: glyph %q is %d pixels wide", r, w)
		}
		widths[i] = byte(w)
		if w == 0 {
			continue
		}
		bitmaps = append(bitmaps, pack(rasterize(face, r, w, height, ascent))...)
	}

	total := HeaderSize + count + len(bitmaps)
	if total > 0xFFFF {
		return nil, errors.New("fonts: encoded font exceeds 65535 bytes")
	}
	blob := make([]byte, 0, total)
	blob = append(blob, byte(total>>8), byte(total), 0, byte(height), first, byte(count))
	blob = append(blob, widths...)
	return append(blob, bitmaps...), nil
}

// rasterize renders r into a w×h coverage mask with the baseline at ascent.
func rasterize(face font.Face, r rune, w, h, ascent int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, ascent), r)
	if ok {
		draw.DrawMask(dst, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
	}
	return dst
}

// pack lays out a coverage mask in the column byte order Glyph.Byte reads.
func pack(src *image.Alpha) []byte {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	rows := (h + 7) / 8
	out := make([]byte, w*rows)
	for y := 0; y < h; y++ {
		i, k := y/8, y%8
		if rows > 1 && y >= (rows-1)*8 {
			i, k = rows-1, y-(h-8)
		}
		for x := 0; x < w; x++ {
			if src.AlphaAt(x, y).A >= 0x80 {
				out[x+i*w] |= 1 << uint(k)
			}
		}
	}
	return out
}
