package retro

import (
	"image"
	"math"

	"github.com/gogpu/retro/internal/fix"
	"github.com/gogpu/retro/internal/math2d"
)

// SetSpriteRotation rotates a sprite by angle degrees around its visual
// center and switches it to transform mode.
//
// The sprite's picture is resampled into a freshly allocated bitmap
// covering the rotated bounding box; any prior rotated bitmap is replaced
// in the same operation. The resampling is forward-mapped: every source
// pixel is scattered to its rotated position, and destination pixels no
// source pixel lands on keep the transparent color key. For pixel-art
// sized pictures this is the intended look, not an artifact to correct.
//
// The cost is proportional to the picture area, so rotating every frame
// is feasible for sprite-sized pictures but not for full screens.
func (e *Engine) SetSpriteRotation(n int, angle float64) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	if s.spriteset == nil {
		return e.fail(ErrInvalidSpriteSet)
	}

	w, h := s.frameW, s.frameH
	angle = math.Mod(angle, 360)

	// unrotated corners in framebuffer space, clockwise from top-left
	corners := [4]math2d.Point{
		math2d.Pt(float64(s.x), float64(s.y)),
		math2d.Pt(float64(s.x+w-1), float64(s.y)),
		math2d.Pt(float64(s.x+w-1), float64(s.y+h-1)),
		math2d.Pt(float64(s.x), float64(s.y+h-1)),
	}

	// rotate around the picture's visual center
	center := math2d.Pt(
		float64(s.x)+float64(w-1)/2,
		float64(s.y)+float64(h-1)/2)
	m := math2d.RotateAbout(angle*math.Pi/180, center)
	for i := range corners {
		corners[i] = m.TransformPoint(corners[i]).Round()
	}

	// axis-aligned bounding rectangle of the rotated corners
	minX, minY := int(corners[0].X), int(corners[0].Y)
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = min(minX, int(c.X))
		minY = min(minY, int(c.Y))
		maxX = max(maxX, int(c.X))
		maxY = max(maxY, int(c.Y))
	}
	bw := maxX - minX + 1
	bh := maxY - minY + 1

	rotated, err := NewBitmap(bw, bh)
	if err != nil {
		// failed allocation aborts the rotation only; the sprite keeps
		// its prior mode and bitmap
		return e.fail(err)
	}
	Logger().Debug("retro: rotation bitmap allocated",
		"sprite", n, "angle", angle, "width", bw, "height", bh)

	// re-express corners in local bitmap space
	for i := range corners {
		corners[i].X -= float64(minX)
		corners[i].Y -= float64(minY)
	}

	// stepping vectors along the rotated top and left edges
	xvect := fix.NewVec(corners[0].X, corners[0].Y, corners[1].X, corners[1].Y, w)
	yvect := fix.NewVec(corners[0].X, corners[0].Y, corners[3].X, corners[3].Y, h)

	// scatter every source pixel to its rotated destination
	for y := 0; y < h; y++ {
		xvect.X = yvect.X
		xvect.Y = yvect.Y
		srcRow := s.pixels[y*s.pitch : y*s.pitch+w]
		for x := 0; x < w; x++ {
			rotated.SetPixel(fix.Floor(xvect.X), fix.Floor(xvect.Y), srcRow[x])
			xvect.Advance()
		}
		yvect.Advance()
	}

	// atomic replace: the old bitmap is released only after the new one
	// is fully built
	s.rotation = rotated
	s.rotOff = image.Pt(minX-s.x, minY-s.y)
	s.dstRect = image.Rect(minX, minY, minX+bw, minY+bh)
	s.mode = ModeTransform
	s.draw = getSpriteDraw(s.mode)
	s.selectBlitter()
	return e.done()
}

// ResetSpriteRotation releases the sprite's rotated bitmap and restores
// normal mode.
func (e *Engine) ResetSpriteRotation(n int) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	s.rotation = nil
	s.mode = ModeNormal
	s.draw = getSpriteDraw(s.mode)
	e.updateSprite(s)
	s.selectBlitter()
	return e.done()
}
