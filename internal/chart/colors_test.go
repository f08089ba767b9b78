package chart

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignColorsDeterministic(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		assert.Equal(t, AssignColors(n), AssignColors(n), "count %d", n)
	}
}

func TestAssignColorsDistinctForSmallCounts(t *testing.T) {
	// One full hue rotation with no repeats up to six slices.
	for n := 1; n <= 6; n++ {
		colors := AssignColors(n)
		seen := make(map[color.RGBA]bool)
		for _, c := range colors {
			assert.False(t, seen[c], "duplicate color %v for count %d", c, n)
			seen[c] = true
		}
	}
}

func TestAssignColorsCount(t *testing.T) {
	for _, n := range []int{1, 3, 7, 20} {
		assert.Len(t, AssignColors(n), n)
	}
}

func TestHSVToRGBTruncates(t *testing.T) {
	// S=0.7, V=0.9: value channel is 229.5 and must truncate to 229,
	// the low channel is 68.85 and must truncate to 68.
	assert.Equal(t, color.RGBA{R: 229, G: 68, B: 68, A: 255}, hsvToRGB(0, 0.7, 0.9))
	assert.Equal(t, color.RGBA{R: 68, G: 229, B: 229, A: 255}, hsvToRGB(180, 0.7, 0.9))
}

func TestAssignColorsKnownSequence(t *testing.T) {
	colors := AssignColors(2)

	assert.Equal(t, []color.RGBA{
		{R: 229, G: 68, B: 68, A: 255},
		{R: 68, G: 229, B: 229, A: 255},
	}, colors)
}
