package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"raycast-renderer/internal/colorutil"
)

// Kind tags the active variant of an Object.
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
)

// Object is a closed union over the shape variants. Exactly one payload,
// selected by Kind, is active; the rest stay zero. All queries dispatch
// to the active variant and add no logic of their own.
type Object struct {
	Kind   Kind
	Sphere Sphere
	Plane  Plane
}

// NewSphereObject wraps a sphere as a scene object.
func NewSphereObject(s Sphere) Object {
	return Object{Kind: KindSphere, Sphere: s}
}

// NewPlaneObject wraps a plane as a scene object.
func NewPlaneObject(p Plane) Object {
	return Object{Kind: KindPlane, Plane: p}
}

// Intersect forwards to the active variant.
func (o Object) Intersect(ray Ray) (float64, bool) {
	switch o.Kind {
	case KindPlane:
		return o.Plane.Intersect(ray)
	default:
		return o.Sphere.Intersect(ray)
	}
}

// NormalAt forwards to the active variant.
func (o Object) NormalAt(p mgl64.Vec3) mgl64.Vec3 {
	switch o.Kind {
	case KindPlane:
		return o.Plane.NormalAt(p)
	default:
		return o.Sphere.NormalAt(p)
	}
}

// Color returns the variant's material color.
func (o Object) Color() colorutil.RGB {
	switch o.Kind {
	case KindPlane:
		return o.Plane.Color
	default:
		return o.Sphere.Color
	}
}

// Albedo returns the variant's diffuse reflectance fraction.
func (o Object) Albedo() float64 {
	switch o.Kind {
	case KindPlane:
		return o.Plane.Albedo
	default:
		return o.Sphere.Albedo
	}
}
