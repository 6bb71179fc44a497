package renderer

import (
	"spheretrace/pkg/core"
	"spheretrace/pkg/scene"
)

// Intersection interval for camera rays. The far value is a sentinel;
// nothing in the scene sits anywhere near that distance.
const (
	hitTMin = 0.0
	hitTMax = 100.0
)

// ShadePixel computes the color for a single camera ray. A hit shows the
// surface normal remapped from [-1,1] to [0,1] per channel; a miss falls
// through to the background gradient. No secondary rays.
func ShadePixel(s *scene.Scene, ray core.Ray) core.Vec3 {
	if hit, isHit := s.Sphere.Hit(ray, hitTMin, hitTMax); isHit {
		return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
	}
	return BackgroundGradient(s, ray)
}

// BackgroundGradient returns a vertical gradient based on ray direction
func BackgroundGradient(s *scene.Scene, r core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	return s.BottomColor.Lerp(s.TopColor, t)
}
