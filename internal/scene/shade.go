package scene

import (
	"errors"
	"fmt"
	"math"

	"raycast-renderer/internal/colorutil"
	"raycast-renderer/internal/geometry"
)

// ErrUnsupportedLight reports a light kind the shader has no model for.
// It is a programming error, not bad input; callers normally abort.
var ErrUnsupportedLight = errors.New("scene: unsupported light kind")

// shade computes the pixel color for a confirmed hit at distance dist
// along ray: object color modulated by the light color, scaled by the
// Lambertian term albedo/pi * intensity * max(0, n dot -lightDir).
func (s *Scene) shade(obj geometry.Object, ray geometry.Ray, dist float64) (colorutil.RGB, error) {
	switch s.Light.Kind {
	case LightDirectional:
		light := s.Light.Directional
		normal := obj.NormalAt(ray.At(dist))
		toLight := light.Direction.Normalize().Mul(-1)
		lambert := obj.Albedo() / math.Pi * light.Intensity * math.Max(0, normal.Dot(toLight))
		return obj.Color().MulColor(light.Color).MulScalar(lambert), nil
	default:
		return colorutil.RGB{}, fmt.Errorf("%w: %d", ErrUnsupportedLight, s.Light.Kind)
	}
}
