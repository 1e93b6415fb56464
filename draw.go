package retro

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/retro/internal/fix"
)

// drawFn renders one scanline of a sprite into the engine's target.
type drawFn func(e *Engine, s *sprite, line int)

// getSpriteDraw resolves the draw routine for a sprite mode. Like the
// blitter catalog it is a total function over a closed set.
func getSpriteDraw(mode Mode) drawFn {
	switch mode {
	case ModeScaling:
		return drawSpriteScaling
	case ModeTransform:
		return drawSpriteTransform
	default:
		return drawSpriteNormal
	}
}

// DrawSprite renders a sprite into the engine's target surface by walking
// its destination scanlines with the selected draw routine. Sprites that
// are not ok, or whose destination rectangle is fully clipped away, draw
// nothing.
func (e *Engine) DrawSprite(n int) error {
	s, err := e.sprite(n)
	if err != nil {
		return err
	}
	if !s.ok || s.dstRect.Empty() {
		return e.done()
	}
	top := max(s.dstRect.Min.Y, 0)
	bottom := min(s.dstRect.Max.Y, e.height)
	for line := top; line < bottom; line++ {
		s.draw(e, s, line)
	}
	return e.done()
}

// drawSpriteNormal draws one scanline of an unscaled sprite. The
// rectangles are pre-clipped, so the blit covers exactly dstRect's span.
func drawSpriteNormal(e *Engine, s *sprite, line int) {
	dst := s.dstRect
	if line < dst.Min.Y || line >= dst.Max.Y || dst.Dx() < 1 {
		return
	}
	row := line - dst.Min.Y

	srcy := s.srcRect.Min.Y + row
	if s.flags&FlagFlipY != 0 {
		srcy = s.frameH - 1 - s.srcRect.Min.Y - row
	}
	srcRow := s.pixels[srcy*s.pitch : srcy*s.pitch+s.frameW]

	srcx := fix.FromInt(s.srcRect.Min.X)
	dx := fix.One
	if s.flags&FlagFlipX != 0 {
		srcx = fix.FromInt(s.frameW - 1 - s.srcRect.Min.X)
		dx = -fix.One
	}

	n := dst.Dx()
	dstRow := e.target.row(line)[dst.Min.X*4:]
	s.blitter(srcRow, srcx, dx, n, s.palette, s.blend, dstRow)
	if s.doCollision {
		e.markCollision(s, srcRow, srcx, dx, line, dst.Min.X, n)
	}
}

// drawSpriteScaling draws one scanline of a scaled sprite, sampling the
// source with the per-axis fixed-point steps.
func drawSpriteScaling(e *Engine, s *sprite, line int) {
	dst := s.dstRect
	if line < dst.Min.Y || line >= dst.Max.Y || dst.Dx() < 1 {
		return
	}
	row := line - dst.Min.Y

	iy := fix.Floor(s.srcFix.y1 + s.dy.Mul(fix.FromInt(row)))
	if s.flags&FlagFlipY != 0 {
		iy = s.frameH - 1 - iy
	}
	if iy < 0 {
		iy = 0
	} else if iy >= s.frameH {
		iy = s.frameH - 1
	}
	srcRow := s.pixels[iy*s.pitch : iy*s.pitch+s.frameW]

	// for a horizontal flip, walk the source backward from the picture's
	// far edge, mirroring any leading clip trim held in srcFix.x1; the
	// sampled positions stay inside [0, frameW)
	srcx := s.srcFix.x1
	dx := s.dx
	if s.flags&FlagFlipX != 0 {
		srcx = fix.FromInt(s.frameW) - s.dx - s.srcFix.x1
		dx = -s.dx
	}

	n := dst.Dx()
	dstRow := e.target.row(line)[dst.Min.X*4:]
	s.blitter(srcRow, srcx, dx, n, s.palette, s.blend, dstRow)
	if s.doCollision {
		e.markCollision(s, srcRow, srcx, dx, line, dst.Min.X, n)
	}
}

// drawSpriteTransform draws one scanline of the sprite's rotated bitmap.
// Transform destination rectangles are not pre-clipped, so the overlap
// with the framebuffer is computed here. Flip flags do not apply; the
// rotation already fixed the orientation.
func drawSpriteTransform(e *Engine, s *sprite, line int) {
	bm := s.rotation
	if bm == nil {
		return
	}
	dst := s.dstRect
	clipped := dst.Intersect(e.bounds())
	if clipped.Empty() || line < clipped.Min.Y || line >= clipped.Max.Y {
		return
	}

	srcy := line - dst.Min.Y
	srcRow := bm.data[srcy*bm.pitch : srcy*bm.pitch+bm.width]
	srcx := fix.FromInt(clipped.Min.X - dst.Min.X)

	n := clipped.Dx()
	dstRow := e.target.row(line)[clipped.Min.X*4:]
	s.blitter(srcRow, srcx, fix.One, n, s.palette, s.blend, dstRow)
	if s.doCollision {
		e.markCollision(s, srcRow, srcx, fix.One, line, clipped.Min.X, n)
	}
}

// markCollision walks the same source samples a scanline blit produced
// and records pixel ownership. Overlap with pixels of another
// collision-enabled sprite sets both sprites' collision flags.
func (e *Engine) markCollision(s *sprite, srcRow []uint8, srcx, dx fixed.Int52_12, line, dstx, n int) {
	base := line * e.width
	x := srcx
	for i := 0; i < n; i++ {
		c := srcRow[fix.Floor(x)]
		x += dx
		if c == 0 {
			continue
		}
		cell := &e.collision[base+dstx+i]
		if owner := *cell; owner != noOwner && int(owner) != s.num {
			e.sprites[owner].collision = true
			s.collision = true
		}
		*cell = uint16(s.num)
	}
}
