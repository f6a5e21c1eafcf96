package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"raycast-renderer/internal/colorutil"
)

// Rays closer to parallel than this miss the plane.
const planeEpsilon = 1e-6

// Plane is an infinite planar primitive with a diffuse material.
type Plane struct {
	Point  mgl64.Vec3 // any point on the plane
	Normal mgl64.Vec3 // unit length
	Albedo float64
	Color  colorutil.RGB
}

// Intersect tests the ray against the front half-space of the plane.
// The test is one-sided: rays approaching the back face (denom <= 0)
// miss, as do intersections behind the ray origin.
func (p Plane) Intersect(ray Ray) (float64, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if denom > planeEpsilon {
		distance := p.Point.Sub(ray.Origin).Dot(p.Normal) / denom
		if distance >= 0 {
			return distance, true
		}
	}
	return 0, false
}

// NormalAt returns the camera-facing normal. It is constant across the
// plane, so the hit point is ignored.
func (p Plane) NormalAt(mgl64.Vec3) mgl64.Vec3 {
	return p.Normal.Mul(-1)
}
