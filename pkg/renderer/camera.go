package renderer

import "spheretrace/pkg/core"

// Camera generates rays for rendering using a pinhole model.
// Pixel (0,0) is the top-left corner of the image; the vertical axis is
// flipped when sampling so +y remains up in world space.
type Camera struct {
	width           int
	height          int
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera for the given image dimensions.
// Both dimensions must exceed 1: pixel coordinates are normalized by
// dimension-1, so 1-pixel-wide images have no valid mapping. The renderer
// validates this before construction.
func NewCamera(width, height int) *Camera {
	aspectRatio := float64(width) / float64(height)
	viewportHeight := 2.0
	viewportWidth := aspectRatio * viewportHeight
	focalLength := 1.0

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		width:           width,
		height:          height,
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// RayAt generates the ray through pixel (i, j). Deterministic: the same
// pixel always produces the same ray.
func (c *Camera) RayAt(i, j int) core.Ray {
	u := float64(i) / float64(c.width-1)
	v := float64(c.height-1-j) / float64(c.height-1)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
