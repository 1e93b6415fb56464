// Package retro is a software 2D sprite rasterizer that reproduces retro
// hardware raster effects: mid-frame palette, scroll and sprite position
// changes of the kind 8 and 16 bit consoles relied on.
//
// # Overview
//
// An Engine owns a fixed-capacity array of sprite slots and an RGBA
// framebuffer surface. Sprites reference externally owned spritesets
// (an indexed bitmap plus a table of frames) and palettes. Every mutation
// of a sprite leaves its slot render-ready: clipped source and destination
// rectangles, pixel data and the selected blit routine are recomputed
// eagerly, so a frame compositor can read them once per frame with no
// further work.
//
// # Quick Start
//
//	import "github.com/gogpu/retro"
//
//	// Create an engine with a 256x224 framebuffer and 64 sprite slots.
//	e, _ := retro.NewEngine(256, 224, 64)
//
//	// Configure a sprite and place it.
//	e.ConfigSprite(0, spriteset, 0)
//	e.SetSpritePosition(0, 100, 80)
//
//	// Render it into the engine's target surface.
//	e.BeginFrame()
//	e.DrawSprite(0)
//	e.Target().SavePNG("frame.png")
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Sprite rotation angles in degrees, clockwise
//
// # Execution Model
//
// The engine is single threaded and synchronous: every operation runs to
// completion before returning, and the sprite setters may be invoked from
// a mid-frame raster hook between scanline draws. Concurrent access must
// be serialized by the caller; the engine performs no internal locking.
package retro

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
