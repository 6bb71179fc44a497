package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"spheretrace/pkg/renderer"
	"spheretrace/pkg/scene"
)

func main() {
	// Parse command line flags
	width := flag.Int("width", 1024, "Output image width in pixels")
	height := flag.Int("height", 1024, "Output image height in pixels")
	tileSize := flag.Int("tile", 16, "Edge length of the square scheduling tiles")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	output := flag.String("output", "out.png", "Output PNG file")
	flag.Parse()

	config := renderer.Config{TileSize: *tileSize, NumWorkers: *workers}
	r, err := renderer.NewRenderer(scene.NewDefaultScene(), *width, *height, config, nil)
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	fb, stats, err := r.Render(context.Background())
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %d pixels in %d tiles in %v\n",
		stats.TotalPixels, stats.TotalTiles, time.Since(startTime))

	if err := savePNG(fb.ToRGBA(), *output); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Image saved as: %s\n", *output)
}

// savePNG writes an image to disk as a PNG file
func savePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
