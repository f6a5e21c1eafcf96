package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"raycast-renderer/internal/colorutil"
)

// Sphere is a spherical primitive with a diffuse material.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64 // strictly positive
	Albedo float64
	Color  colorutil.RGB
}

// Intersect tests the ray against the sphere using the geometric method:
// project the origin-to-center vector onto the ray, compare the squared
// perpendicular distance against the squared radius.
//
// Only the near root is returned. Rays starting inside the sphere, or
// pointing away from it, report a hit with a negative distance.
func (s Sphere) Intersect(ray Ray) (float64, bool) {
	toCenter := s.Center.Sub(ray.Origin)
	adj := toCenter.Dot(ray.Direction)
	rSquared := s.Radius * s.Radius
	dSquared := toCenter.Dot(toCenter) - adj*adj
	if rSquared > dSquared {
		return adj - math.Sqrt(rSquared-dSquared), true
	}
	return 0, false
}

// NormalAt returns the outward unit normal for a point on the surface.
func (s Sphere) NormalAt(p mgl64.Vec3) mgl64.Vec3 {
	return p.Sub(s.Center).Normalize()
}
