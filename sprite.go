package retro

import (
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/retro/internal/fix"
)

// Flags modify how a sprite's picture is sampled when drawn.
type Flags uint32

const (
	// FlagFlipX mirrors the picture horizontally.
	FlagFlipX Flags = 1 << 15
	// FlagFlipY mirrors the picture vertically.
	FlagFlipY Flags = 1 << 14
)

// Mode identifies the active transform of a sprite. Exactly one mode is
// active at any time.
type Mode int

const (
	// ModeNormal draws the picture 1:1 at the sprite position.
	ModeNormal Mode = iota
	// ModeScaling draws the picture resized by the scale factors.
	ModeScaling
	// ModeTransform draws the sprite's rotated, resampled bitmap.
	ModeTransform
)

// fixRect is a rectangle in 52.12 fixed point, used for the scaling-mode
// source rectangle so clipping can trim fractional source amounts.
type fixRect struct {
	x1, y1, x2, y2 fixed.Int52_12
}

// sprite is one slot of the engine's sprite array. A slot is render-ready
// after every mutation: rectangles, pixel data and dispatch entries are
// always consistent with the rest of the record.
type sprite struct {
	num int

	// borrowed references
	spriteset *Spriteset
	palette   *Palette
	blend     []uint8

	// palOverride is set once SetSpritePalette assigns an explicit
	// palette, so later spriteset changes stop adopting theirs.
	palOverride bool

	x, y      int
	sx, sy    float64
	picture   int
	flags     Flags
	blendMode BlendMode

	mode    Mode
	srcRect image.Rectangle
	dstRect image.Rectangle
	srcFix  fixRect
	dx, dy  fixed.Int52_12

	frameW, frameH int
	pitch          int
	pixels         []uint8 // into the spriteset bitmap, at the picture offset

	// rotation is owned by the sprite, present only in ModeTransform,
	// and replaced wholesale on every rotation change. rotOff is the
	// rotated bounding box origin relative to the sprite position, so
	// moving the sprite slides the box without resampling.
	rotation *Bitmap
	rotOff   image.Point

	ok          bool
	doCollision bool
	collision   bool

	draw    drawFn
	blitter blitFn
}

// SpriteState is a read-only snapshot of one sprite slot, the per-frame
// view a compositor consumes.
type SpriteState struct {
	Enabled          bool
	X, Y             int
	W, H             int
	Picture          int
	Flags            Flags
	Mode             Mode
	ScaleX, ScaleY   float64
	BlendMode        BlendMode
	Pitch            int
	SrcRect          image.Rectangle
	DstRect          image.Rectangle
	CollisionEnabled bool
}

// ConfigSprite configures a sprite, setting spriteset and flags at once.
// It fails if either sub-operation fails.
func (e *Engine) ConfigSprite(n int, ss *Spriteset, flags Flags) error {
	if err := e.SetSpriteSet(n, ss); err != nil {
		return err
	}
	return e.SetSpriteFlags(n, flags)
}

// SetSpriteSet assigns a spriteset to a sprite and selects its picture 0.
// The spriteset's palette is adopted unless the sprite already carries an
// explicit palette set through SetSpritePalette.
func (e *Engine) SetSpriteSet(n int, ss *Spriteset) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	if ss == nil || ss.bitmap == nil {
		return e.fail(ErrInvalidSpriteSet)
	}

	s.spriteset = ss
	s.pitch = ss.bitmap.pitch
	if p := ss.Palette(); p != nil && (s.palette == nil || !s.palOverride) {
		s.palette = p
	}
	s.ok = s.spriteset != nil && s.palette != nil

	// cannot fail: NewSpriteset guarantees at least one frame
	return e.SetSpritePicture(n, 0)
}

// SetSpriteFlags sets the flip flags of a sprite.
func (e *Engine) SetSpriteFlags(n int, flags Flags) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	s.flags = flags
	return e.done()
}

// SetSpritePosition sets the sprite position in framebuffer space.
//
// Call this from a mid-frame raster hook for vertical distortion effects
// or sprite multiplexing: reusing one slot at several screen heights, as
// long as the instances don't overlap vertically.
func (e *Engine) SetSpritePosition(n, x, y int) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	s.x = x
	s.y = y
	e.updateSprite(s)
	return e.done()
}

// SetSpritePicture selects the picture of the assigned spriteset to draw.
func (e *Engine) SetSpritePicture(n, entry int) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	if s.spriteset == nil {
		return e.fail(ErrInvalidSpriteSet)
	}
	f, err := s.spriteset.frameInfo(entry)
	if err != nil {
		return e.fail(err)
	}

	s.picture = entry
	s.frameW = f.w
	s.frameH = f.h
	s.pitch = s.spriteset.bitmap.pitch
	s.pixels = s.spriteset.bitmap.data[f.offset:]
	e.updateSprite(s)
	return e.done()
}

// SetSpritePalette overrides the sprite's palette independently of its
// spriteset.
func (e *Engine) SetSpritePalette(n int, pal *Palette) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	if pal == nil {
		return e.fail(ErrInvalidPalette)
	}
	s.palette = pal
	s.palOverride = true
	s.ok = s.spriteset != nil && s.palette != nil
	e.updateSprite(s)
	return e.done()
}

// GetSpritePalette returns the palette currently assigned to a sprite.
func (e *Engine) GetSpritePalette(n int) (*Palette, error) {
	s, err := e.sprite(n)
	if err != nil {
		return nil, err
	}
	e.done()
	return s.palette, nil
}

// SetSpriteBlendMode sets the blending mode (transparency effect) of a
// sprite and re-selects its blit routine.
func (e *Engine) SetSpriteBlendMode(n int, mode BlendMode) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	s.blendMode = mode
	s.blend = e.selectBlendTable(mode)
	s.selectBlitter()
	return e.done()
}

// SetSpriteScaling sets the scaling factors of a sprite and switches it to
// scaling mode. Factors below 1.0 shrink, above 1.0 enlarge; scaling
// pivots on the picture's visual center. Factors that collapse the scaled
// destination to zero width or height are rejected with ErrInvalidScaling
// and leave the sprite unchanged.
func (e *Engine) SetSpriteScaling(n int, sx, sy float64) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	if sx <= 0 || sy <= 0 {
		return e.fail(ErrInvalidScaling)
	}
	if s.ok && (int(float64(s.frameW)*sx) < 1 || int(float64(s.frameH)*sy) < 1) {
		return e.fail(ErrInvalidScaling)
	}

	s.sx = sx
	s.sy = sy
	s.mode = ModeScaling
	s.rotation = nil
	s.draw = getSpriteDraw(s.mode)
	e.updateSprite(s)
	s.selectBlitter()
	return e.done()
}

// ResetSpriteScaling restores 1:1 scale and normal mode.
func (e *Engine) ResetSpriteScaling(n int) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	s.sx, s.sy = 1, 1
	s.mode = ModeNormal
	s.rotation = nil
	s.draw = getSpriteDraw(s.mode)
	e.updateSprite(s)
	s.selectBlitter()
	return e.done()
}

// GetSpritePicture returns the index of the picture assigned to a sprite.
func (e *Engine) GetSpritePicture(n int) (int, error) {
	s, err := e.sprite(n)
	if err != nil {
		return 0, err
	}
	e.done()
	return s.picture, nil
}

// GetAvailableSprite returns the lowest-indexed unused sprite slot, or -1
// if every slot is in use.
func (e *Engine) GetAvailableSprite() int {
	e.done()
	for i := range e.sprites {
		if !e.sprites[i].ok {
			return i
		}
	}
	return -1
}

// EnableSpriteCollision enables pixel-level collision detection for a
// sprite. Only sprites with collision enabled are checked against each
// other: to detect a collision between two sprites, both must have it
// enabled.
func (e *Engine) EnableSpriteCollision(n int, enable bool) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	s.doCollision = enable
	return e.done()
}

// GetSpriteCollision reports whether a sprite was involved in a collision
// with another collision-enabled sprite since the last BeginFrame.
func (e *Engine) GetSpriteCollision(n int) (bool, error) {
	s, err := e.sprite(n)
	if err != nil {
		return false, err
	}
	e.done()
	return s.collision, nil
}

// DisableSprite disables a sprite so it is not drawn. Its resources are
// kept; disabled slots are reported by GetAvailableSprite as available.
func (e *Engine) DisableSprite(n int) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	s.ok = false
	return e.done()
}

// SpriteState returns a read-only snapshot of a sprite slot.
func (e *Engine) SpriteState(n int) (SpriteState, error) {
	s, err := e.sprite(n)
	if err != nil {
		return SpriteState{}, err
	}
	e.done()
	return SpriteState{
		Enabled:          s.ok,
		X:                s.x,
		Y:                s.y,
		W:                s.frameW,
		H:                s.frameH,
		Picture:          s.picture,
		Flags:            s.flags,
		Mode:             s.mode,
		ScaleX:           s.sx,
		ScaleY:           s.sy,
		BlendMode:        s.blendMode,
		Pitch:            s.pitch,
		SrcRect:          s.srcRect,
		DstRect:          s.dstRect,
		CollisionEnabled: s.doCollision,
	}, nil
}

// updateSprite recomputes the source and destination rectangles of a
// sprite, clipped to the framebuffer. Whenever a destination edge moves
// inward, the matching source edge moves by the corresponding source
// amount, so pixel correspondence holds across clipping.
func (e *Engine) updateSprite(s *sprite) {
	if !s.ok {
		return
	}

	s.srcRect = image.Rect(0, 0, s.frameW, s.frameH)

	switch s.mode {
	case ModeNormal:
		dst := image.Rect(s.x, s.y, s.x+s.frameW, s.y+s.frameH)

		if dst.Min.Y < 0 {
			s.srcRect.Min.Y -= dst.Min.Y
			dst.Min.Y = 0
		}
		if dst.Max.Y > e.height {
			s.srcRect.Max.Y -= dst.Max.Y - e.height
			dst.Max.Y = e.height
		}
		if dst.Min.X < 0 {
			s.srcRect.Min.X -= dst.Min.X
			dst.Min.X = 0
		}
		if dst.Max.X > e.width {
			s.srcRect.Max.X -= dst.Max.X - e.width
			dst.Max.X = e.width
		}
		s.dstRect = collapseEmpty(dst)

	case ModeScaling:
		w := int(float64(s.frameW) * s.sx)
		h := int(float64(s.frameH) * s.sy)
		if w < 1 || h < 1 {
			// rejected configuration, nothing drawable
			s.dstRect = image.Rect(s.x, s.y, s.x, s.y)
			s.dx, s.dy = 0, 0
			return
		}

		// scale around the picture's visual center
		x1 := s.x + ((s.frameW - w) >> 1)
		y1 := s.y + ((s.frameH - h) >> 1)
		dst := image.Rect(x1, y1, x1+w, y1+h)

		src := fixRect{
			x1: 0,
			y1: 0,
			x2: fix.FromInt(s.frameW),
			y2: fix.FromInt(s.frameH),
		}
		s.dx = fix.Step(src.x2-src.x1, w)
		s.dy = fix.Step(src.y2-src.y1, h)

		// clipped destination amounts trim proportional source spans
		if dst.Min.Y < 0 {
			src.y1 -= s.dy.Mul(fix.FromInt(dst.Min.Y))
			dst.Min.Y = 0
		}
		if dst.Max.Y > e.height {
			src.y2 -= s.dy.Mul(fix.FromInt(dst.Max.Y - e.height))
			dst.Max.Y = e.height
		}
		if dst.Min.X < 0 {
			src.x1 -= s.dx.Mul(fix.FromInt(dst.Min.X))
			dst.Min.X = 0
		}
		if dst.Max.X > e.width {
			src.x2 -= s.dx.Mul(fix.FromInt(dst.Max.X - e.width))
			dst.Max.X = e.width
		}
		s.srcFix = src
		s.srcRect = image.Rect(
			fix.Floor(src.x1), fix.Floor(src.y1),
			fix.Floor(src.x2), fix.Floor(src.y2))
		s.dstRect = collapseEmpty(dst)

	case ModeTransform:
		if s.rotation == nil {
			return
		}
		x1 := s.x + s.rotOff.X
		y1 := s.y + s.rotOff.Y
		s.dstRect = image.Rect(x1, y1, x1+s.rotation.width, y1+s.rotation.height)
	}
}

// selectBlitter re-resolves the sprite's blit routine from its scaling and
// blending state.
func (s *sprite) selectBlitter() {
	s.blitter = getBlitter(s.mode == ModeScaling, s.blend != nil)
}

// collapseEmpty normalizes a fully clipped-away rectangle to zero extent
// on the collapsed axis.
func collapseEmpty(r image.Rectangle) image.Rectangle {
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}
