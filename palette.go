package retro

import "image/color"

// maxPaletteSize is the largest number of entries an indexed palette can
// hold, fixed by the engine's 8-bit pixel format.
const maxPaletteSize = 256

// Palette is a color table for indexed bitmaps. Index 0 is the transparent
// color key and is never drawn by the sprite blitters.
//
// Palettes are referenced, not owned, by sprites: one palette may back any
// number of sprites, and swapping it mid-frame is the classic palette
// raster effect.
type Palette struct {
	colors []color.RGBA
}

// NewPalette creates a palette with n entries, all initialized to opaque
// black. n must be in [1, 256].
func NewPalette(n int) (*Palette, error) {
	if n < 1 || n > maxPaletteSize {
		return nil, ErrInvalidPalette
	}
	p := &Palette{colors: make([]color.RGBA, n)}
	for i := range p.colors {
		p.colors[i].A = 0xff
	}
	return p, nil
}

// NewPaletteFromColors creates a palette from a standard color.Palette,
// which may hold at most 256 entries.
func NewPaletteFromColors(src color.Palette) (*Palette, error) {
	if len(src) < 1 || len(src) > maxPaletteSize {
		return nil, ErrInvalidPalette
	}
	p := &Palette{colors: make([]color.RGBA, len(src))}
	for i, c := range src {
		r, g, b, _ := c.RGBA()
		p.colors[i] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
	}
	return p, nil
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}

// SetColor sets a palette entry. The alpha component is forced opaque;
// transparency comes only from the index-0 color key.
func (p *Palette) SetColor(i int, c color.RGBA) error {
	if i < 0 || i >= len(p.colors) {
		return ErrInvalidPalette
	}
	c.A = 0xff
	p.colors[i] = c
	return nil
}

// Color returns a palette entry. Out-of-range indices return the zero
// color.
func (p *Palette) Color(i int) color.RGBA {
	if i < 0 || i >= len(p.colors) {
		return color.RGBA{}
	}
	return p.colors[i]
}

// Clone returns an independent copy of the palette.
func (p *Palette) Clone() *Palette {
	colors := make([]color.RGBA, len(p.colors))
	copy(colors, p.colors)
	return &Palette{colors: colors}
}
