package geometry

import "github.com/go-gl/mathgl/mgl64"

// Ray is a half-line used for intersection testing: an origin plus a
// unit direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay builds a ray, normalizing the direction.
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance d along the ray.
func (r Ray) At(d float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(d))
}
