package renderer

import (
	"image"
	"image/color"

	"spheretrace/pkg/core"
)

// Framebuffer is a flat row-major color surface with one RGB value per
// pixel and an implicit constant alpha of 1. Pixel (0,0) is the top-left
// corner; the cell for (x, y) sits at index x + y*width. Each pixel is
// written by exactly one invocation during a render.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// Set stores the color for pixel (x, y). Callers must stay in bounds.
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[x+y*fb.width] = c
}

// At returns the color stored for pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[x+y*fb.width]
}

// ToRGBA converts the framebuffer to an 8-bit-per-channel RGBA image.
// Colors are clamped to [0,1] and scaled; no gamma is applied since the
// shader output is already a display-space visualization.
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.At(x, y).Clamp(0.0, 1.0)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}

// Equal reports whether two framebuffers have identical dimensions and
// bit-identical pixel values
func (fb *Framebuffer) Equal(other *Framebuffer) bool {
	if fb.width != other.width || fb.height != other.height {
		return false
	}
	for i := range fb.pixels {
		if fb.pixels[i] != other.pixels[i] {
			return false
		}
	}
	return true
}
