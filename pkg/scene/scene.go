package scene

import (
	"fmt"

	"spheretrace/pkg/core"
	"spheretrace/pkg/geometry"
)

// Scene holds the sphere and background colors for a render
type Scene struct {
	Sphere      *geometry.Sphere
	TopColor    core.Vec3 // Background color where rays point straight up
	BottomColor core.Vec3 // Background color where rays point straight down
}

// NewDefaultScene creates the fixed scene: a half-unit sphere directly in
// front of the camera, against a white-to-sky-blue gradient
func NewDefaultScene() *Scene {
	return &Scene{
		Sphere:      geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Validate checks the scene configuration before rendering starts.
// Degenerate scenes are rejected here once, never per pixel.
func (s *Scene) Validate() error {
	if s.Sphere == nil {
		return fmt.Errorf("scene has no sphere")
	}
	if s.Sphere.Radius <= 0 {
		return fmt.Errorf("sphere radius must be positive, got %g", s.Sphere.Radius)
	}
	return nil
}
