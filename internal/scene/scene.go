// Package scene holds the renderable world and the ray-casting render
// loop: one primary ray per pixel, tested against every object, shaded
// with a Lambertian model under a single directional light.
package scene

import "raycast-renderer/internal/geometry"

// Scene is the renderable world. It is fully built up front and read
// only during rendering; Render never mutates it.
type Scene struct {
	Width  int
	Height int
	Fov    float64 // degrees; stored with the viewport but not yet part of the camera mapping

	Objects []geometry.Object
	Light   Light
}
