package raster

import (
	"image"
	"image/color"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a buffer with every pixel set to fill.
func NewFrameBuffer(w, h int, fill color.NRGBA) *FrameBuffer {
	pix := make([]uint8, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = fill.R
		pix[i+1] = fill.G
		pix[i+2] = fill.B
		pix[i+3] = fill.A
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    pix,
	}
}

// Set writes one pixel. Coordinates are row-major, (0,0) top-left.
func (fb *FrameBuffer) Set(x, y int, c color.NRGBA) {
	i := (y*fb.Width + x) * 4
	fb.Pix[i] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
	fb.Pix[i+3] = c.A
}

// At reads one pixel back.
func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	i := (y*fb.Width + x) * 4
	return color.NRGBA{R: fb.Pix[i], G: fb.Pix[i+1], B: fb.Pix[i+2], A: fb.Pix[i+3]}
}

// Image copies the buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	return img
}
