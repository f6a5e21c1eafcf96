// Package sceneio builds scenes from JSON scene descriptions. The render
// core only ever sees a fully constructed scene value; validation of the
// description happens here, before rendering starts.
package sceneio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"raycast-renderer/internal/colorutil"
	"raycast-renderer/internal/geometry"
	"raycast-renderer/internal/scene"
)

// Objects with no albedo set reflect almost everything.
const defaultAlbedo = 0.99

// document is the on-disk scene description.
type document struct {
	Light   lightDef    `json:"light"`
	Objects []objectDef `json:"objects"`
}

type lightDef struct {
	Type      string     `json:"type"`
	Direction [3]float64 `json:"direction"`
	Intensity float64    `json:"intensity"`
	Color     [3]float64 `json:"color"`
}

// objectDef is the union of all shape fields; Type selects which apply.
type objectDef struct {
	Type   string     `json:"type"`
	Center [3]float64 `json:"center"` // sphere
	Radius float64    `json:"radius"` // sphere
	Point  [3]float64 `json:"point"`  // plane
	Normal [3]float64 `json:"normal"` // plane
	Albedo float64    `json:"albedo"`
	Color  [3]float64 `json:"color"`
}

// Load parses a JSON scene description and builds a scene with the given
// viewport settings.
func Load(path string, width, height int, fov float64) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: read %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sceneio: parse %s: %w", path, err)
	}

	return build(doc, width, height, fov)
}

func build(doc document, width, height int, fov float64) (*scene.Scene, error) {
	light, err := buildLight(doc.Light)
	if err != nil {
		return nil, err
	}

	objects := make([]geometry.Object, 0, len(doc.Objects))
	for i, def := range doc.Objects {
		obj, err := buildObject(def)
		if err != nil {
			return nil, fmt.Errorf("sceneio: object %d: %w", i, err)
		}
		objects = append(objects, obj)
	}

	return &scene.Scene{
		Width:   width,
		Height:  height,
		Fov:     fov,
		Objects: objects,
		Light:   light,
	}, nil
}

func buildLight(def lightDef) (scene.Light, error) {
	if def.Type != "directional" {
		return scene.Light{}, fmt.Errorf("sceneio: unsupported light type %q", def.Type)
	}
	if def.Intensity < 0 {
		return scene.Light{}, fmt.Errorf("sceneio: light intensity %g is negative", def.Intensity)
	}
	return scene.NewDirectionalLight(scene.DirectionalLight{
		Direction: vec(def.Direction),
		Intensity: def.Intensity,
		Color:     rgb(def.Color),
	}), nil
}

func buildObject(def objectDef) (geometry.Object, error) {
	albedo := def.Albedo
	if albedo == 0 {
		albedo = defaultAlbedo
	}
	if albedo < 0 || albedo > 1 {
		return geometry.Object{}, fmt.Errorf("albedo %g outside (0, 1]", def.Albedo)
	}

	switch def.Type {
	case "sphere":
		if def.Radius <= 0 {
			return geometry.Object{}, fmt.Errorf("radius %g must be positive", def.Radius)
		}
		return geometry.NewSphereObject(geometry.Sphere{
			Center: vec(def.Center),
			Radius: def.Radius,
			Albedo: albedo,
			Color:  rgb(def.Color),
		}), nil

	case "plane":
		normal := vec(def.Normal)
		if normal.Len() < 1e-12 {
			return geometry.Object{}, fmt.Errorf("plane normal is zero")
		}
		return geometry.NewPlaneObject(geometry.Plane{
			Point:  vec(def.Point),
			Normal: normal.Normalize(),
			Albedo: albedo,
			Color:  rgb(def.Color),
		}), nil

	default:
		return geometry.Object{}, fmt.Errorf("unsupported type %q", def.Type)
	}
}

func vec(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

func rgb(c [3]float64) colorutil.RGB {
	return colorutil.RGB{c[0], c[1], c[2]}
}
