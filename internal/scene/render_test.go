package scene

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycast-renderer/internal/colorutil"
	"raycast-renderer/internal/geometry"
)

// testScene is a yellow sphere straight ahead of the camera under a
// bright directional light.
func testScene() *Scene {
	return &Scene{
		Width:  800,
		Height: 600,
		Fov:    90,
		Objects: []geometry.Object{
			geometry.NewSphereObject(geometry.Sphere{
				Center: mgl64.Vec3{0, 0, -7},
				Radius: 2,
				Albedo: 0.99,
				Color:  colorutil.RGB{255, 255, 0},
			}),
		},
		Light: NewDirectionalLight(DirectionalLight{
			Direction: mgl64.Vec3{-8, -10, -9},
			Intensity: 1000,
			Color:     colorutil.RGB{230, 230, 230},
		}),
	}
}

func TestRenderCenterPixelHitsSphere(t *testing.T) {
	img, err := testScene().Render(1)
	require.NoError(t, err)

	px := img.NRGBAAt(400, 300)
	assert.NotEqual(t, Background, px)
	assert.EqualValues(t, 255, px.A)
	// Yellow sphere under a gray-ish light: red and green match, no blue.
	assert.Equal(t, px.R, px.G)
	assert.EqualValues(t, 0, px.B)
	assert.Greater(t, px.R, uint8(0))
}

func TestRenderCornerPixelMisses(t *testing.T) {
	img, err := testScene().Render(1)
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{R: 70, G: 70, B: 70, A: 1}, img.NRGBAAt(0, 0))
}

func TestRenderImageDimensions(t *testing.T) {
	s := testScene()
	s.Width, s.Height = 64, 48

	img, err := s.Render(1)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 64, bounds.Dx())
	assert.Equal(t, 48, bounds.Dy())

	// Every pixel is populated: either shaded or background, never zero.
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			px := img.NRGBAAt(x, y)
			if px.A == 0 {
				t.Fatalf("pixel (%d,%d) left unpopulated", x, y)
			}
		}
	}
}

// A later object that misses the ray overwrites an earlier hit with the
// background: the last object in the list decides the pixel, not the
// nearest intersection.
func TestRenderLastObjectWins(t *testing.T) {
	s := testScene()
	s.Objects = append(s.Objects, geometry.NewSphereObject(geometry.Sphere{
		Center: mgl64.Vec3{100, 100, -7},
		Radius: 1,
		Albedo: 0.99,
		Color:  colorutil.RGB{255, 0, 0},
	}))

	img, err := s.Render(1)
	require.NoError(t, err)

	assert.Equal(t, Background, img.NRGBAAt(400, 300))
}

func TestRenderEmptySceneIsAllBackground(t *testing.T) {
	s := testScene()
	s.Objects = nil
	s.Width, s.Height = 32, 32

	img, err := s.Render(1)
	require.NoError(t, err)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			require.Equal(t, Background, img.NRGBAAt(x, y))
		}
	}
}

func TestRenderUnsupportedLightKind(t *testing.T) {
	s := testScene()
	s.Light = Light{Kind: LightKind(7)}

	for _, workers := range []int{1, 4} {
		img, err := s.Render(workers)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedLight)
		assert.Nil(t, img)
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	s := testScene()
	s.Width, s.Height = 160, 120

	sequential, err := s.Render(1)
	require.NoError(t, err)

	parallel, err := s.Render(8)
	require.NoError(t, err)

	assert.Equal(t, sequential.Pix, parallel.Pix)
}

func TestShadeLambertianTerm(t *testing.T) {
	s := testScene()
	ray := geometry.NewRay(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1})

	dist, hit := s.Objects[0].Intersect(ray)
	require.True(t, hit)
	require.InDelta(t, 5, dist, 1e-9)

	shaded, err := s.shade(s.Objects[0], ray, dist)
	require.NoError(t, err)

	// Yellow modulated by the light color keeps red == green and kills
	// blue; the head-on normal faces the light enough to be lit.
	assert.InDelta(t, shaded[0], shaded[1], 1e-9)
	assert.Equal(t, 0.0, shaded[2])
	assert.Greater(t, shaded[0], 0.0)
	assert.LessOrEqual(t, shaded[0], 255.0)
}

func TestShadeFacingAwayFromLightIsBlack(t *testing.T) {
	s := testScene()
	// Light traveling toward +z lights the far side of the sphere; the
	// normal at the front pole faces directly away from it.
	s.Light = NewDirectionalLight(DirectionalLight{
		Direction: mgl64.Vec3{0, 0, 1},
		Intensity: 1000,
		Color:     colorutil.RGB{230, 230, 230},
	})

	ray := geometry.NewRay(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1})
	shaded, err := s.shade(s.Objects[0], ray, 5)
	require.NoError(t, err)

	assert.Equal(t, colorutil.RGB{0, 0, 0}, shaded)
}
