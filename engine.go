package retro

import (
	"image"
	"image/color"
)

// noOwner marks a collision buffer cell not covered by any sprite.
const noOwner uint16 = 0xffff

// maxSprites bounds the slot count so sprite indices fit the collision
// buffer's uint16 cells.
const maxSprites = int(noOwner)

// Engine is the render context: it owns the sprite slot array, the
// framebuffer target surface, the blend table cache and the collision
// buffer. Engines are independent of each other; create as many as
// needed.
//
// Engine is not safe for concurrent use. The intended model is a single
// logical thread driving both state mutation and per-frame consumption,
// possibly from mid-frame raster hooks.
type Engine struct {
	width   int
	height  int
	sprites []sprite

	target  *Pixmap
	bgColor color.RGBA

	blendTables [numBlendModes][]uint8

	// collision holds, per framebuffer pixel, the index of the last
	// collision-enabled sprite drawn there, or noOwner.
	collision []uint16

	lastErr error
}

// NewEngine creates an engine with a framebuffer of the given dimensions
// and numSprites sprite slots.
func NewEngine(width, height, numSprites int) (*Engine, error) {
	if width < 1 || height < 1 || numSprites < 1 || numSprites > maxSprites {
		return nil, ErrInvalidEngine
	}
	e := &Engine{
		width:     width,
		height:    height,
		sprites:   make([]sprite, numSprites),
		target:    NewPixmap(width, height),
		bgColor:   color.RGBA{A: 0xff},
		collision: make([]uint16, width*height),
	}
	for i := range e.sprites {
		s := &e.sprites[i]
		s.num = i
		s.sx, s.sy = 1, 1
		s.draw = getSpriteDraw(s.mode)
		s.blitter = getBlitter(false, false)
	}
	e.clearCollision()
	Logger().Info("retro: engine created",
		"width", width, "height", height, "sprites", numSprites)
	return e, nil
}

// Width returns the framebuffer width.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the framebuffer height.
func (e *Engine) Height() int {
	return e.height
}

// NumSprites returns the number of sprite slots.
func (e *Engine) NumSprites() int {
	return len(e.sprites)
}

// Target returns the engine's framebuffer surface.
func (e *Engine) Target() *Pixmap {
	return e.target
}

// SetBackgroundColor sets the color BeginFrame clears the target to.
func (e *Engine) SetBackgroundColor(c color.RGBA) {
	c.A = 0xff
	e.bgColor = c
}

// BeginFrame prepares the target for a new frame: it clears the surface
// to the background color and resets all collision state.
func (e *Engine) BeginFrame() {
	e.target.Clear(e.bgColor)
	e.clearCollision()
	for i := range e.sprites {
		e.sprites[i].collision = false
	}
}

// LastError returns the error recorded by the most recent fallible
// operation, or nil if it succeeded.
func (e *Engine) LastError() error {
	return e.lastErr
}

// bounds returns the framebuffer rectangle.
func (e *Engine) bounds() image.Rectangle {
	return image.Rect(0, 0, e.width, e.height)
}

// sprite resolves a sprite index, recording ErrSpriteIndex on violation.
// Out-of-range indices are rejected, never clamped.
func (e *Engine) sprite(n int) (*sprite, error) {
	if n < 0 || n >= len(e.sprites) {
		return nil, e.fail(ErrSpriteIndex)
	}
	return &e.sprites[n], nil
}

// fail records err in the last-error slot and returns it.
func (e *Engine) fail(err error) error {
	e.lastErr = err
	return err
}

// done clears the last-error slot after a successful operation.
func (e *Engine) done() error {
	e.lastErr = nil
	return nil
}

func (e *Engine) clearCollision() {
	for i := range e.collision {
		e.collision[i] = noOwner
	}
}
