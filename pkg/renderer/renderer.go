package renderer

import (
	"context"
	"fmt"

	"spheretrace/pkg/scene"
)

// Config contains dispatch configuration
type Config struct {
	TileSize   int // Edge length of the square scheduling tiles
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   16,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// RenderStats summarizes a completed frame
type RenderStats struct {
	TotalPixels int // Pixels actually written (equals width*height)
	TotalTiles  int // Tiles dispatched, including edge tiles
	NumWorkers  int // Workers used for the frame
}

// Renderer drives the per-pixel kernel: for every pixel it generates a
// camera ray, intersects it with the scene, shades the result and writes
// it into a framebuffer. Pixels are independent, so tiles are purely a
// scheduling batch with no effect on the output.
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	width  int
	height int
	config Config
	logger Logger
}

// NewRenderer validates the configuration and creates a renderer.
// All degenerate inputs are rejected here, once, before any dispatch;
// the per-pixel computation itself has no failure branch.
func NewRenderer(sc *scene.Scene, width, height int, config Config, logger Logger) (*Renderer, error) {
	if width <= 1 || height <= 1 {
		return nil, fmt.Errorf("image dimensions must exceed 1x1, got %dx%d", width, height)
	}
	if config.TileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %d", config.TileSize)
	}
	if config.NumWorkers < 0 {
		return nil, fmt.Errorf("worker count must not be negative, got %d", config.NumWorkers)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Renderer{
		scene:  sc,
		camera: NewCamera(width, height),
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}, nil
}

// Render computes one frame and returns the finished framebuffer.
// It blocks until every tile has completed, so the returned framebuffer
// is always a whole frame. Cancelling the context abandons the frame:
// Render returns the context error and no framebuffer, and any partially
// written pixels are discarded with it.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	// Check for cancellation before dispatching any work
	select {
	case <-ctx.Done():
		return nil, RenderStats{}, ctx.Err()
	default:
	}

	fb := NewFramebuffer(r.width, r.height)
	tiles := NewTileGrid(r.width, r.height, r.config.TileSize)

	pool := newWorkerPool(r.config.NumWorkers, len(tiles))
	pool.start(ctx, r.renderTile)
	defer pool.wait()

	r.logger.Printf("Rendering %dx%d image in %d tiles using %d workers...\n",
		r.width, r.height, len(tiles), pool.numWorkers)

	for _, tile := range tiles {
		pool.submit(tileTask{tile: tile, fb: fb})
	}

	// Frame fence: every tile must report back before the framebuffer is
	// handed to the caller.
	stats := RenderStats{TotalTiles: len(tiles), NumWorkers: pool.numWorkers}
	for completed := 0; completed < len(tiles); completed++ {
		select {
		case <-ctx.Done():
			return nil, RenderStats{}, ctx.Err()
		case result := <-pool.resultQueue:
			stats.TotalPixels += result.pixelsDrawn
		}
	}

	return fb, stats, nil
}

// renderTile runs the kernel for every pixel of one tile. Edge tiles may
// overhang the image; coordinates outside [0,width)x[0,height) are
// skipped so an oversized grid can never write out of bounds.
func (r *Renderer) renderTile(task tileTask) tileResult {
	drawn := 0
	for y := task.tile.Bounds.Min.Y; y < task.tile.Bounds.Max.Y; y++ {
		for x := task.tile.Bounds.Min.X; x < task.tile.Bounds.Max.X; x++ {
			if x < 0 || y < 0 || x >= r.width || y >= r.height {
				continue
			}

			ray := r.camera.RayAt(x, y)
			task.fb.Set(x, y, ShadePixel(r.scene, ray))
			drawn++
		}
	}

	return tileResult{pixelsDrawn: drawn}
}
