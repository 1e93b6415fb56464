package retro

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/retro/internal/fix"
)

// blitFn copies n pixels of an indexed source scanline into an RGBA
// destination scanline. src is the source row, sampled starting at the
// fixed-point position srcx and advancing by dx per destination pixel
// (dx may be negative for horizontal flips). dst starts at the first
// destination pixel. Source value 0 is the transparent color key and
// leaves the destination untouched. table, when non-nil, is a 256x256
// per-channel blend lookup indexed src<<8 | dst.
//
// The engine's single output depth is 32-bit RGBA; the catalog below is
// the full blitter domain {scaling} x {blend} over that depth.
type blitFn func(src []uint8, srcx, dx fixed.Int52_12, n int, pal *Palette, table []uint8, dst []uint8)

// blitters is the fixed blit routine catalog, indexed
// [scaling][blending].
var blitters = [2][2]blitFn{
	{blitNormal, blitNormalBlend},
	{blitScaling, blitScalingBlend},
}

// getBlitter resolves the blit routine for a sprite's current state. It is
// a total function: every combination maps to a routine.
func getBlitter(scaling, blend bool) blitFn {
	return blitters[b2i(scaling)][b2i(blend)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// blitNormal copies pixels 1:1, stepping one source pixel per destination
// pixel in the direction of dx.
func blitNormal(src []uint8, srcx, dx fixed.Int52_12, n int, pal *Palette, _ []uint8, dst []uint8) {
	ix := fix.Floor(srcx)
	step := 1
	if dx < 0 {
		step = -1
	}
	for i := 0; i < n; i++ {
		c := src[ix]
		ix += step
		if c == 0 {
			continue
		}
		col := pal.colors[c]
		o := i * 4
		dst[o+0] = col.R
		dst[o+1] = col.G
		dst[o+2] = col.B
		dst[o+3] = 0xff
	}
}

// blitNormalBlend is blitNormal with a per-channel blend table applied
// against the existing destination pixel.
func blitNormalBlend(src []uint8, srcx, dx fixed.Int52_12, n int, pal *Palette, table []uint8, dst []uint8) {
	ix := fix.Floor(srcx)
	step := 1
	if dx < 0 {
		step = -1
	}
	for i := 0; i < n; i++ {
		c := src[ix]
		ix += step
		if c == 0 {
			continue
		}
		col := pal.colors[c]
		o := i * 4
		dst[o+0] = table[int(col.R)<<8|int(dst[o+0])]
		dst[o+1] = table[int(col.G)<<8|int(dst[o+1])]
		dst[o+2] = table[int(col.B)<<8|int(dst[o+2])]
		dst[o+3] = 0xff
	}
}

// blitScaling samples the source with a fixed-point step, nearest
// neighbor.
func blitScaling(src []uint8, srcx, dx fixed.Int52_12, n int, pal *Palette, _ []uint8, dst []uint8) {
	x := srcx
	for i := 0; i < n; i++ {
		c := src[fix.Floor(x)]
		x += dx
		if c == 0 {
			continue
		}
		col := pal.colors[c]
		o := i * 4
		dst[o+0] = col.R
		dst[o+1] = col.G
		dst[o+2] = col.B
		dst[o+3] = 0xff
	}
}

// blitScalingBlend is blitScaling with a per-channel blend table applied.
func blitScalingBlend(src []uint8, srcx, dx fixed.Int52_12, n int, pal *Palette, table []uint8, dst []uint8) {
	x := srcx
	for i := 0; i < n; i++ {
		c := src[fix.Floor(x)]
		x += dx
		if c == 0 {
			continue
		}
		col := pal.colors[c]
		o := i * 4
		dst[o+0] = table[int(col.R)<<8|int(dst[o+0])]
		dst[o+1] = table[int(col.G)<<8|int(dst[o+1])]
		dst[o+2] = table[int(col.B)<<8|int(dst[o+2])]
		dst[o+3] = 0xff
	}
}
