package retro

import "image"

// Bitmap is an 8-bit palette-indexed pixel buffer. It is the storage
// behind spritesets and the rotation resampler's output. Pixel value 0 is
// the transparent color key.
type Bitmap struct {
	width  int
	height int
	pitch  int
	data   []uint8
	pal    *Palette
}

// NewBitmap creates a bitmap with the given dimensions, with all pixels
// set to the transparent color key.
func NewBitmap(width, height int) (*Bitmap, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidBitmap
	}
	return &Bitmap{
		width:  width,
		height: height,
		pitch:  width,
		data:   make([]uint8, width*height),
	}, nil
}

// NewBitmapFromPaletted creates a bitmap from a standard paletted image,
// copying its pixels and adopting its palette.
func NewBitmapFromPaletted(img *image.Paletted) (*Bitmap, error) {
	if img == nil {
		return nil, ErrInvalidBitmap
	}
	bm, err := NewBitmap(img.Bounds().Dx(), img.Bounds().Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < bm.height; y++ {
		copy(bm.row(y), img.Pix[y*img.Stride:y*img.Stride+bm.width])
	}
	if len(img.Palette) > 0 {
		pal, err := NewPaletteFromColors(img.Palette)
		if err != nil {
			return nil, err
		}
		bm.pal = pal
	}
	return bm, nil
}

// Width returns the width of the bitmap in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Pitch returns the number of bytes per scanline.
func (b *Bitmap) Pitch() int {
	return b.pitch
}

// Data returns the raw indexed pixel data.
func (b *Bitmap) Data() []uint8 {
	return b.data
}

// row returns the raw pixel data of a single scanline.
func (b *Bitmap) row(y int) []uint8 {
	i := y * b.pitch
	return b.data[i : i+b.width]
}

// Pixel returns the palette index at (x, y). Out-of-bounds coordinates
// return the transparent color key.
func (b *Bitmap) Pixel(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.data[y*b.pitch+x]
}

// SetPixel sets the palette index at (x, y). Out-of-bounds coordinates
// are silently ignored.
func (b *Bitmap) SetPixel(x, y int, v uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.data[y*b.pitch+x] = v
}

// Palette returns the palette attached to the bitmap, or nil.
func (b *Bitmap) Palette() *Palette {
	return b.pal
}

// SetPalette attaches a palette to the bitmap.
func (b *Bitmap) SetPalette(p *Palette) {
	b.pal = p
}
