package chart

import (
	"image/color"
	"math"
)

// Fixed saturation and brightness so slice colors stay readable against
// the white percentage labels drawn on top of them.
const (
	sliceSaturation = 0.7
	sliceValue      = 0.9
)

// AssignColors derives count visually distinct colors by rotating evenly
// around the hue circle. The caller must pass count >= 1. The sequence is
// deterministic, and color i is positionally aligned with the i-th ranked
// employee summary.
func AssignColors(count int) []color.RGBA {
	hueStep := 360.0 / float64(count)

	colors := make([]color.RGBA, count)
	for i := range colors {
		hue := math.Mod(float64(i)*hueStep, 360)
		colors[i] = hsvToRGB(hue, sliceSaturation, sliceValue)
	}
	return colors
}

// hsvToRGB converts an HSV color to RGB using the standard six-sector
// piecewise formula. Channel values are truncated, not rounded, when
// narrowed to 8 bits.
func hsvToRGB(h, s, v float64) color.RGBA {
	sector := int(math.Floor(h/60)) % 6
	f := h/60 - math.Floor(h/60)

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}
