package scene

import (
	"image"
	"image/color"
	"sync"

	"raycast-renderer/internal/raster"
)

// Background is the miss color. Alpha is 1, not 255.
var Background = color.NRGBA{R: 70, G: 70, B: 70, A: 1}

// Render casts one primary ray per pixel and produces the full raster.
// workers > 1 splits scanlines across a worker pool; per-pixel behavior
// is identical either way since pixels are independent.
//
// Compositing is last-object-wins: every object in list order writes the
// pixel on its own — a hit writes its shaded color, a miss writes the
// background — so the final color comes from the last object in the
// list, not the nearest hit. An empty object list renders background
// everywhere.
func (s *Scene) Render(workers int) (*image.NRGBA, error) {
	fb := raster.NewFrameBuffer(s.Width, s.Height, Background)

	if workers <= 1 {
		for y := 0; y < s.Height; y++ {
			if err := s.renderRow(fb, y); err != nil {
				return nil, err
			}
		}
		return fb.Image(), nil
	}

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				if err := s.renderRow(fb, y); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}()
	}

	for y := 0; y < s.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return fb.Image(), nil
}

// renderRow fills one scanline. Rows are disjoint in the framebuffer, so
// workers never write the same pixel.
func (s *Scene) renderRow(fb *raster.FrameBuffer, y int) error {
	for x := 0; x < s.Width; x++ {
		ray := s.primeRay(x, y)

		for _, obj := range s.Objects {
			dist, hit := obj.Intersect(ray)
			if !hit {
				fb.Set(x, y, Background)
				continue
			}

			shaded, err := s.shade(obj, ray, dist)
			if err != nil {
				return err
			}
			fb.Set(x, y, shaded.ToNRGBA(255))
		}
	}
	return nil
}
