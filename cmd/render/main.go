package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"raycast-renderer/internal/colorutil"
	"raycast-renderer/internal/config"
	"raycast-renderer/internal/encode"
	"raycast-renderer/internal/geometry"
	"raycast-renderer/internal/scene"
	"raycast-renderer/internal/sceneio"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to JSON config file")
	scenePath := flag.String("scene", "", "Path to JSON scene description (default: built-in demo scene)")
	output := flag.String("output", "", "Output image path; format from extension: .webp .tga .bmp .png (default: render.webp)")
	width := flag.Int("width", 0, "Image width in pixels (default: 800)")
	height := flag.Int("height", 0, "Image height in pixels (default: 600)")
	workers := flag.Int("workers", 0, "Number of scanline worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		ScenePath: *scenePath,
		Output:    *output,
		Width:     *width,
		Height:    *height,
		Workers:   *workers,
	})

	// Build the scene
	var sc *scene.Scene
	if cfg.ScenePath != "" {
		var err error
		sc, err = sceneio.Load(cfg.ScenePath, cfg.Width, cfg.Height, cfg.Fov)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	} else {
		sc = demoScene(cfg.Width, cfg.Height, cfg.Fov)
	}

	fmt.Printf("Ray casting %dx%d, %d objects, %d workers\n",
		sc.Width, sc.Height, len(sc.Objects), cfg.Workers)

	start := time.Now()

	img, err := sc.Render(cfg.Workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered in %.1fs\n", time.Since(start).Seconds())

	if err := encode.WriteFile(cfg.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Output: %s\n", cfg.Output)
}

// demoScene is a single yellow sphere lit from the upper right, rendered
// when no scene description is given.
func demoScene(width, height int, fov float64) *scene.Scene {
	return &scene.Scene{
		Width:  width,
		Height: height,
		Fov:    fov,
		Objects: []geometry.Object{
			geometry.NewSphereObject(geometry.Sphere{
				Center: mgl64.Vec3{0, 0, -7},
				Radius: 2,
				Albedo: 0.99,
				Color:  colorutil.RGB{255, 255, 0},
			}),
		},
		Light: scene.NewDirectionalLight(scene.DirectionalLight{
			Direction: mgl64.Vec3{-8, -10, -9},
			Intensity: 1000,
			Color:     colorutil.RGB{230, 230, 230},
		}),
	}
}
