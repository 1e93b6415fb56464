package retro

// BlendMode selects the per-channel blending operation applied when a
// sprite's pixels are composited over the framebuffer.
type BlendMode int

const (
	// BlendNone disables blending: sprite pixels overwrite the target.
	BlendNone BlendMode = iota
	// BlendMix25 mixes 25% sprite color with 75% target color.
	BlendMix25
	// BlendMix50 mixes sprite and target color in equal parts.
	BlendMix50
	// BlendMix75 mixes 75% sprite color with 25% target color.
	BlendMix75
	// BlendAdd adds sprite color to target color, saturating at white.
	BlendAdd
	// BlendSub subtracts sprite color from target color, flooring at black.
	BlendSub
	// BlendMod modulates target color by sprite color.
	BlendMod

	numBlendModes
)

// blendTableSize covers every (source, destination) channel value pair.
const blendTableSize = 256 * 256

// buildBlendTable precomputes the blend operation for every possible pair
// of 8-bit channel values. The table is indexed src<<8 | dst.
func buildBlendTable(mode BlendMode) []uint8 {
	t := make([]uint8, blendTableSize)
	for s := 0; s < 256; s++ {
		for d := 0; d < 256; d++ {
			t[s<<8|d] = blendChannel(mode, uint8(s), uint8(d))
		}
	}
	return t
}

// blendChannel applies a blend mode to one channel pair.
func blendChannel(mode BlendMode, src, dst uint8) uint8 {
	switch mode {
	case BlendMix25:
		return mix(src, dst, 64)
	case BlendMix50:
		return mix(src, dst, 128)
	case BlendMix75:
		return mix(src, dst, 192)
	case BlendAdd:
		v := int(src) + int(dst)
		if v > 255 {
			v = 255
		}
		return uint8(v)
	case BlendSub:
		v := int(dst) - int(src)
		if v < 0 {
			v = 0
		}
		return uint8(v)
	case BlendMod:
		return uint8(int(src) * int(dst) / 255)
	default:
		return src
	}
}

// mix returns the weighted average of src and dst with src weight
// factor/255.
func mix(src, dst uint8, factor int) uint8 {
	return uint8((int(src)*factor + int(dst)*(255-factor)) / 255)
}

// selectBlendTable resolves a blend mode to its lookup table, building and
// caching it on first use. BlendNone resolves to nil, which the blitter
// selector reads as "blending disabled".
func (e *Engine) selectBlendTable(mode BlendMode) []uint8 {
	if mode <= BlendNone || mode >= numBlendModes {
		return nil
	}
	if e.blendTables[mode] == nil {
		e.blendTables[mode] = buildBlendTable(mode)
	}
	return e.blendTables[mode]
}
