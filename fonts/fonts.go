// Package fonts decodes the bitmap font blobs used by DMD panels.
//
// A font blob starts with a 6 byte header:
//
//	[0:2] total length, all zero for a fixed-width font
//	[2]   fixed glyph width
//	[3]   glyph height
//	[4]   first character code
//	[5]   character count
//
// A variable-width font follows the header with one width byte per glyph.
// Glyph bitmaps come next. A glyph of width w and height h stores
// ceil(h/8) rows of w bytes; bit k of byte row i is pixel row 8*i+k, except
// that the last byte row of a glyph taller than 8 pixels is aligned to the
// bottom of the glyph.
package fonts

import (
	"errors"
	"fmt"
)

// Header field offsets.
const (
	offLength     = 0
	offFixedWidth = 2
	offHeight     = 3
	offFirstChar  = 4
	offCharCount  = 5
	offWidthTable = 6
)

// HeaderSize is the size of the fixed font header.
const HeaderSize = offWidthTable

// Font is a parsed font blob. It references the blob without copying it.
type Font struct {
	data   []byte
	fixed  bool
	width  int
	height int
	first  byte
	count  int
	bytes  int   // byte rows per glyph
	start  []int // start of each glyph bitmap in data
}

// Parse validates blob and returns its descriptor. The blob must not be
// modified afterwards.
func Parse(blob []byte) (*Font, error) {
	if len(blob) < HeaderSize {
		return nil, errors.New("fonts: blob shorter than header")
	}
	f := &Font{
		data:   blob,
		fixed:  blob[offLength] == 0 && blob[offLength+1] == 0,
		width:  int(blob[offFixedWidth]),
		height: int(blob[offHeight]),
		first:  blob[offFirstChar],
		count:  int(blob[offCharCount]),
	}
	if f.height == 0 {
		return nil, errors.New("fonts: glyph height is zero")
	}
	if int(f.first)+f.count > 256 {
		return nil, fmt.Errorf("fonts: %d glyphs from 0x%02X overflow the byte range", f.count, f.first)
	}
	f.bytes = (f.height + 7) / 8
	f.start = make([]int, f.count)

	end := HeaderSize
	if f.fixed {
		for i := range f.start {
			f.start[i] = HeaderSize + i*f.bytes*f.width
		}
		end += f.count * f.bytes * f.width
	} else {
		if len(blob) < HeaderSize+f.count {
			return nil, errors.New("fonts: blob shorter than width table")
		}
		pos := HeaderSize + f.count
		for i := range f.start {
			f.start[i] = pos
			pos += int(blob[offWidthTable+i]) * f.bytes
		}
		end = pos
	}
	if len(blob) < end {
		return nil, fmt.Errorf("fonts: blob is %d bytes, glyph data needs %d", len(blob), end)
	}
	return f, nil
}

// MustParse is like Parse but panics on error. It is meant for built-in fonts.
func MustParse(blob []byte) *Font {
	f, err := Parse(blob)
	if err != nil {
		panic(err)
	}
	return f
}

// Height returns the glyph height in pixels.
func (f *Font) Height() int { return f.height }

// FirstChar returns the first character code the font covers.
func (f *Font) FirstChar() byte { return f.first }

// Count returns the number of glyphs.
func (f *Font) Count() int { return f.count }

// Fixed reports whether all glyphs share one width.
func (f *Font) Fixed() bool { return f.fixed }

// Has reports whether c has a glyph.
func (f *Font) Has(c byte) bool {
	return c >= f.first && int(c) < int(f.first)+f.count
}

// Width returns the width of the glyph for c, or 0 if the font has none.
func (f *Font) Width(c byte) int {
	if !f.Has(c) {
		return 0
	}
	if f.fixed {
		return f.width
	}
	return int(f.data[offWidthTable+int(c-f.first)])
}

// Glyph returns the bitmap for c.
func (f *Font) Glyph(c byte) (Glyph, bool) {
	if !f.Has(c) {
		return Glyph{}, false
	}
	w := f.Width(c)
	s := f.start[c-f.first]
	return Glyph{
		Width:    w,
		Height:   f.height,
		ByteRows: f.bytes,
		data:     f.data[s : s+w*f.bytes],
	}, true
}

// Glyph is one character bitmap.
type Glyph struct {
	Width    int
	Height   int
	ByteRows int
	data     []byte
}

// Byte returns byte row i of column col.
func (g Glyph) Byte(col, i int) byte {
	return g.data[col+i*g.Width]
}

// Lit reports whether the pixel at (col, row) is set.
func (g Glyph) Lit(col, row int) bool {
	if col < 0 || col >= g.Width || row < 0 || row >= g.Height {
		return false
	}
	i := row / 8
	return g.Byte(col, i)&(1<<uint(row-g.RowOffset(i))) != 0
}

// RowOffset returns the pixel row that bit 0 of byte row i lands on.
func (g Glyph) RowOffset(i int) int {
	if i == g.ByteRows-1 && g.ByteRows > 1 {
		return g.Height - 8
	}
	return i * 8
}
