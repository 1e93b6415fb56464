package retro

import (
	"image"

	"github.com/cespare/xxhash/v2"
)

// SpriteEntry describes one frame of a spriteset: a named sub-rectangle of
// the spriteset's bitmap.
type SpriteEntry struct {
	Name   string
	Bounds image.Rectangle
}

// frame is the resolved form of a SpriteEntry: picture dimensions plus the
// byte offset of its top-left pixel inside the bitmap data.
type frame struct {
	name   string
	w, h   int
	offset int
}

// Spriteset is a bitmap plus a table of frames. A spriteset typically
// packs every animation frame of a character; sprites reference it and
// select frames by index or name. Spritesets are externally owned and may
// back any number of sprites.
type Spriteset struct {
	bitmap *Bitmap
	frames []frame
	names  map[uint64]int
}

// NewSpriteset creates a spriteset over an existing bitmap. At least one
// entry is required and every entry must lie inside the bitmap.
func NewSpriteset(bitmap *Bitmap, entries []SpriteEntry) (*Spriteset, error) {
	if bitmap == nil || len(entries) == 0 {
		return nil, ErrInvalidSpriteSet
	}
	ss := &Spriteset{
		bitmap: bitmap,
		frames: make([]frame, len(entries)),
		names:  make(map[uint64]int, len(entries)),
	}
	bounds := image.Rect(0, 0, bitmap.width, bitmap.height)
	for i, e := range entries {
		if e.Bounds.Empty() || !e.Bounds.In(bounds) {
			return nil, ErrInvalidSpriteSet
		}
		ss.frames[i] = frame{
			name:   e.Name,
			w:      e.Bounds.Dx(),
			h:      e.Bounds.Dy(),
			offset: e.Bounds.Min.Y*bitmap.pitch + e.Bounds.Min.X,
		}
		if e.Name != "" {
			ss.names[xxhash.Sum64String(e.Name)] = i
		}
	}
	return ss, nil
}

// NumFrames returns the number of frames in the spriteset.
func (ss *Spriteset) NumFrames() int {
	return len(ss.frames)
}

// FindFrame returns the index of the frame with the given name.
func (ss *Spriteset) FindFrame(name string) (int, bool) {
	i, ok := ss.names[xxhash.Sum64String(name)]
	return i, ok
}

// FrameBounds returns the dimensions of a frame.
func (ss *Spriteset) FrameBounds(index int) (w, h int, err error) {
	if index < 0 || index >= len(ss.frames) {
		return 0, 0, ErrInvalidPicture
	}
	return ss.frames[index].w, ss.frames[index].h, nil
}

// Bitmap returns the bitmap holding the spriteset's pixel data.
func (ss *Spriteset) Bitmap() *Bitmap {
	return ss.bitmap
}

// Palette returns the palette attached to the spriteset's bitmap, or nil.
func (ss *Spriteset) Palette() *Palette {
	return ss.bitmap.pal
}

// frameInfo returns the frame descriptor for a picture index.
func (ss *Spriteset) frameInfo(index int) (frame, error) {
	if index < 0 || index >= len(ss.frames) {
		return frame{}, ErrInvalidPicture
	}
	return ss.frames[index], nil
}
