package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"spheretrace/pkg/renderer"
	"spheretrace/pkg/scene"
)

func TestRenderAndSave(t *testing.T) {
	config := renderer.Config{TileSize: 16, NumWorkers: 2}
	r, err := renderer.NewRenderer(scene.NewDefaultScene(), 64, 64, config, nil)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	fb, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalPixels != 64*64 {
		t.Errorf("Expected %d pixels, got %d", 64*64, stats.TotalPixels)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := savePNG(fb.ToRGBA(), path); err != nil {
		t.Fatalf("savePNG failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Opening saved image failed: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decoding saved image failed: %v", err)
	}
	if bounds := img.Bounds(); bounds.Dx() != 64 || bounds.Dy() != 64 {
		t.Errorf("Expected 64x64 image, got %v", bounds)
	}
}

func TestSavePNG_BadPath(t *testing.T) {
	config := renderer.Config{TileSize: 16, NumWorkers: 1}
	r, err := renderer.NewRenderer(scene.NewDefaultScene(), 8, 8, config, nil)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	fb, _, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if err := savePNG(fb.ToRGBA(), filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("Expected error for unwritable path, got none")
	}
}
