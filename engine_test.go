package retro

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewEngine(t *testing.T) {
	e, err := NewEngine(320, 240, 64)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if e.Width() != 320 || e.Height() != 240 {
		t.Errorf("dimensions: got %dx%d, want 320x240", e.Width(), e.Height())
	}
	if e.NumSprites() != 64 {
		t.Errorf("NumSprites: got %d, want 64", e.NumSprites())
	}
	if e.Target() == nil {
		t.Fatal("Target is nil")
	}
	if w, h := e.Target().Width(), e.Target().Height(); w != 320 || h != 240 {
		t.Errorf("target dimensions: got %dx%d, want 320x240", w, h)
	}
}

func TestNewEngineValidation(t *testing.T) {
	tests := []struct {
		name                      string
		width, height, numSprites int
	}{
		{"zero width", 0, 240, 64},
		{"zero height", 320, 0, 64},
		{"negative width", -1, 240, 64},
		{"zero sprites", 320, 240, 0},
		{"too many sprites", 320, 240, maxSprites + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.width, tt.height, tt.numSprites); !errors.Is(err, ErrInvalidEngine) {
				t.Errorf("got %v, want ErrInvalidEngine", err)
			}
		})
	}
}

func TestBeginFrameClearsTarget(t *testing.T) {
	e := drawEngine(t)
	e.SetBackgroundColor(color.RGBA{R: 0x11, G: 0x22, B: 0x33})
	e.BeginFrame()

	want := color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}
	checkPixel(t, e, 0, 0, want)
	checkPixel(t, e, e.Width()-1, e.Height()-1, want)
}

func TestSetBackgroundColorForcesOpaque(t *testing.T) {
	e := drawEngine(t)
	e.SetBackgroundColor(color.RGBA{R: 0x80, A: 0x00})
	e.BeginFrame()
	if got := e.Target().GetPixel(0, 0).A; got != 0xff {
		t.Errorf("background alpha: got %#02x, want 0xff", got)
	}
}
