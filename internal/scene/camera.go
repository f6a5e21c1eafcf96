package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"raycast-renderer/internal/geometry"
)

// Rays are cast through pixel centers.
const halfPixel = 0.5

// primeRay maps pixel (x, y) to a camera ray. The camera sits at the
// world origin looking down -z; the pixel grid maps onto a unit square
// at z = -1, stretched horizontally by the aspect ratio. Fov does not
// enter the mapping.
func (s *Scene) primeRay(x, y int) geometry.Ray {
	aspectRatio := float64(s.Width) / float64(s.Height)
	canvasX := ((float64(x)+halfPixel)/(float64(s.Width)/2) - 1) * aspectRatio
	canvasY := 1 - (float64(y)+halfPixel)/(float64(s.Height)/2)

	return geometry.NewRay(mgl64.Vec3{}, mgl64.Vec3{canvasX, canvasY, -1})
}
