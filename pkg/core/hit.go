package core

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	Point     Vec3    // Point of intersection
	Normal    Vec3    // Unit surface normal, always opposing the incoming ray
	T         float64 // Ray parameter at the intersection
	FrontFace bool    // True if the ray hit the surface from outside
}

// SetFaceNormal sets the normal and front-face flag based on ray and outward normal.
// If the ray hits the front face, the stored normal is the outward normal;
// otherwise it is flipped so it always points against the incoming ray.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
