package retro

import "errors"

// Sentinel errors returned by Engine operations. Every fallible operation
// validates its inputs before mutating any state: on error the target
// sprite's prior state is completely unchanged, and the error is also
// recorded in the engine's last-error slot (see Engine.LastError).
var (
	// ErrSpriteIndex reports a sprite index outside [0, NumSprites).
	ErrSpriteIndex = errors.New("retro: sprite index out of range")

	// ErrInvalidSpriteSet reports a nil or unassigned spriteset reference.
	ErrInvalidSpriteSet = errors.New("retro: invalid spriteset reference")

	// ErrInvalidPalette reports a nil palette reference.
	ErrInvalidPalette = errors.New("retro: invalid palette reference")

	// ErrInvalidBitmap reports a bitmap with non-positive dimensions.
	ErrInvalidBitmap = errors.New("retro: invalid bitmap dimensions")

	// ErrInvalidPicture reports a picture index outside the spriteset's
	// frame table.
	ErrInvalidPicture = errors.New("retro: picture index out of range")

	// ErrInvalidScaling reports scale factors that collapse the scaled
	// destination rectangle to zero width or height.
	ErrInvalidScaling = errors.New("retro: scaled destination has zero extent")

	// ErrInvalidEngine reports invalid engine construction parameters.
	ErrInvalidEngine = errors.New("retro: invalid engine parameters")
)
