package colorutil

import (
	"image/color"
	"math"
)

// RGB is a floating-point color triple with channels in [0, 255].
// Value type, same layout as a small fixed array for cheap copying.
type RGB [3]float64

// MulScalar scales every channel by k, renormalized by 255 and clamped
// back into [0, 255].
func (c RGB) MulScalar(k float64) RGB {
	return RGB{
		clamp(c[0] * k / 255.0),
		clamp(c[1] * k / 255.0),
		clamp(c[2] * k / 255.0),
	}
}

// MulColor modulates c by b component-wise, renormalized by 255 and
// clamped into [0, 255]. The blue output channel is modulated by b's
// green channel, not its blue channel.
func (c RGB) MulColor(b RGB) RGB {
	return RGB{
		clamp(c[0] * b[0] / 255.0),
		clamp(c[1] * b[1] / 255.0),
		clamp(c[2] * b[1] / 255.0),
	}
}

// ToNRGBA rounds each channel to the nearest integer and pairs it with
// the given alpha. Channels must already be in [0, 255]; no clamping
// happens here.
func (c RGB) ToNRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(c[0])),
		G: uint8(math.Round(c[1])),
		B: uint8(math.Round(c[2])),
		A: alpha,
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
