package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"raycast-renderer/internal/colorutil"
)

// LightKind tags the active variant of a Light.
type LightKind int

// LightDirectional is the only light kind the shader has a model for.
const LightDirectional LightKind = iota

// DirectionalLight illuminates from a direction with no position, like a
// distant sun. The direction does not have to be pre-normalized; shading
// normalizes it.
type DirectionalLight struct {
	Direction mgl64.Vec3
	Intensity float64 // non-negative
	Color     colorutil.RGB
}

// Light is a closed union over light variants, dispatched by Kind.
type Light struct {
	Kind        LightKind
	Directional DirectionalLight
}

// NewDirectionalLight wraps a directional light as a scene light.
func NewDirectionalLight(l DirectionalLight) Light {
	return Light{Kind: LightDirectional, Directional: l}
}
