package retro

import (
	"image"
	"testing"
)

func benchEngine(b *testing.B, configure func(e *Engine)) *Engine {
	b.Helper()
	e, err := NewEngine(320, 240, 8)
	if err != nil {
		b.Fatalf("NewEngine failed: %v", err)
	}
	bm, err := NewBitmap(32, 32)
	if err != nil {
		b.Fatalf("NewBitmap failed: %v", err)
	}
	data := bm.Data()
	for i := range data {
		data[i] = uint8(1 + i%15)
	}
	pal, err := NewPalette(16)
	if err != nil {
		b.Fatalf("NewPalette failed: %v", err)
	}
	bm.SetPalette(pal)
	ss, err := NewSpriteset(bm, []SpriteEntry{{Bounds: image.Rect(0, 0, 32, 32)}})
	if err != nil {
		b.Fatalf("NewSpriteset failed: %v", err)
	}
	if err := e.ConfigSprite(0, ss, 0); err != nil {
		b.Fatalf("ConfigSprite failed: %v", err)
	}
	if err := e.SetSpritePosition(0, 100, 100); err != nil {
		b.Fatalf("SetSpritePosition failed: %v", err)
	}
	if configure != nil {
		configure(e)
	}
	e.BeginFrame()
	return e
}

func BenchmarkDrawSpriteNormal(b *testing.B) {
	e := benchEngine(b, nil)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := e.DrawSprite(0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDrawSpriteScaling(b *testing.B) {
	e := benchEngine(b, func(e *Engine) {
		if err := e.SetSpriteScaling(0, 2.5, 2.5); err != nil {
			b.Fatal(err)
		}
	})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := e.DrawSprite(0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDrawSpriteBlend(b *testing.B) {
	e := benchEngine(b, func(e *Engine) {
		if err := e.SetSpriteBlendMode(0, BlendMix50); err != nil {
			b.Fatal(err)
		}
	})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := e.DrawSprite(0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSetSpriteRotation(b *testing.B) {
	e := benchEngine(b, nil)
	b.ReportAllocs()
	angle := 0.0
	for i := 0; i < b.N; i++ {
		if err := e.SetSpriteRotation(0, angle); err != nil {
			b.Fatal(err)
		}
		angle += 1.0
	}
}

func BenchmarkPixmapClear(b *testing.B) {
	sizes := []struct {
		name          string
		width, height int
	}{
		{"256x224", 256, 224},
		{"320x240", 320, 240},
		{"640x480", 640, 480},
	}
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			pm := NewPixmap(size.width, size.height)
			c := pm.GetPixel(0, 0)
			b.ReportAllocs()
			b.SetBytes(int64(size.width*size.height) * 4)
			for i := 0; i < b.N; i++ {
				pm.Clear(c)
			}
		})
	}
}
