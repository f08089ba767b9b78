// Package chart lays out and renders the employee time-distribution pie
// chart as a PNG raster image.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/avgoustis/worklens/internal/artifact"
	"github.com/avgoustis/worklens/internal/timesheet"
)

// ErrZeroTotal is returned when the summed hours are zero, which would
// make every percentage and sweep angle divide by zero. The caller skips
// chart generation instead of rendering garbage.
var ErrZeroTotal = errors.New("total hours across all employees is zero")

// Canvas and layout constants for the rendered chart.
const (
	CanvasWidth  = 800
	CanvasHeight = 600

	// Slices below this share of the total get no on-slice label,
	// to avoid illegible overlapping text. Strictly greater-than.
	labelThresholdPct = 3.0

	// Percentage labels sit at this fraction of the radius from center
	// along the slice's mid-angle.
	labelRadiusRatio = 0.7

	legendSwatchSize = 15.0
	legendRowSpacing = 25.0
	legendGap        = 30.0

	titleOffsetY = 30.0
	chartTitle   = "Employee Time Distribution"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Slice represents one laid-out pie sector.
type Slice struct {
	Name       string
	Hours      float64
	Percent    float64
	StartAngle float64 // degrees, 0 at the positive x axis
	SweepAngle float64 // degrees, clockwise
	Labeled    bool
}

// MidAngle returns the angle of the slice's center line in degrees.
func (s Slice) MidAngle() float64 {
	return s.StartAngle + s.SweepAngle/2
}

// Label returns the on-slice percentage text.
func (s Slice) Label() string {
	return fmt.Sprintf("%.1f%%", s.Percent)
}

// LegendText returns the legend row text for the slice.
func (s Slice) LegendText() string {
	return fmt.Sprintf("%s (%.1fh, %.1f%%)", s.Name, s.Hours, s.Percent)
}

// PieLayout holds the full geometry of a chart before any drawing happens.
type PieLayout struct {
	Width   int
	Height  int
	CenterX float64
	CenterY float64
	Radius  float64
	Title   string
	Slices  []Slice
}

// Layout computes slice angles, percentages and label visibility from the
// ranked summaries. Summaries must be non-empty; a zero grand total yields
// ErrZeroTotal. Angles accumulate in input order starting at 0 degrees,
// and floating-point drift across slices is accepted without a
// re-normalization pass.
func Layout(summaries []timesheet.EmployeeSummary) (*PieLayout, error) {
	total := timesheet.TotalHours(summaries)
	if total == 0 {
		return nil, ErrZeroTotal
	}

	layout := &PieLayout{
		Width:   CanvasWidth,
		Height:  CanvasHeight,
		CenterX: CanvasWidth / 2.0,
		CenterY: CanvasHeight / 2.0,
		Radius:  math.Min(CanvasWidth, CanvasHeight) / 3.0,
		Title:   chartTitle,
		Slices:  make([]Slice, 0, len(summaries)),
	}

	startAngle := 0.0
	for _, s := range summaries {
		percent := s.TotalHours / total * 100
		sweep := s.TotalHours / total * 360

		layout.Slices = append(layout.Slices, Slice{
			Name:       s.Name,
			Hours:      s.TotalHours,
			Percent:    percent,
			StartAngle: startAngle,
			SweepAngle: sweep,
			Labeled:    percent > labelThresholdPct,
		})
		startAngle += sweep
	}

	return layout, nil
}

// Render draws the laid-out chart onto the surface: filled sectors with
// black outlines, white percentage labels, a centered title and a legend
// to the right of the circle. Colors are positional, one per slice.
func Render(layout *PieLayout, colors []color.RGBA, surface Surface) {
	surface.Clear(white)

	for i, slice := range layout.Slices {
		surface.FillSector(layout.CenterX, layout.CenterY, layout.Radius,
			slice.StartAngle, slice.SweepAngle, colors[i])
		surface.StrokeSector(layout.CenterX, layout.CenterY, layout.Radius,
			slice.StartAngle, slice.SweepAngle, black, 1)
	}

	// Labels go on top of every sector so adjacent fills never cover them.
	for _, slice := range layout.Slices {
		if !slice.Labeled {
			continue
		}
		mid := radians(slice.MidAngle())
		x := layout.CenterX + labelRadiusRatio*layout.Radius*math.Cos(mid)
		y := layout.CenterY + labelRadiusRatio*layout.Radius*math.Sin(mid)
		surface.DrawText(slice.Label(), x, y, 0.5, 0.5, white)
	}

	surface.DrawText(layout.Title, float64(layout.Width)/2, titleOffsetY, 0.5, 0.5, black)

	renderLegend(layout, colors, surface)
}

func renderLegend(layout *PieLayout, colors []color.RGBA, surface Surface) {
	x := layout.CenterX + layout.Radius + legendGap
	y := titleOffsetY + legendRowSpacing

	for i, slice := range layout.Slices {
		surface.FillRect(x, y, legendSwatchSize, legendSwatchSize, colors[i])
		surface.StrokeRect(x, y, legendSwatchSize, legendSwatchSize, black, 1)
		surface.DrawText(slice.LegendText(), x+legendSwatchSize+7, y+legendSwatchSize/2, 0, 0.5, black)
		y += legendRowSpacing
	}
}

// Generate lays out and renders a pie chart for the summaries and writes
// it to outputPath as a PNG. The caller must pass a non-empty summary
// list; ErrZeroTotal is returned unwrapped so it can be matched and the
// chart skipped with a warning.
func Generate(summaries []timesheet.EmployeeSummary, outputPath string) error {
	layout, err := Layout(summaries)
	if err != nil {
		return err
	}

	surface, err := NewSurface(layout.Width, layout.Height)
	if err != nil {
		return fmt.Errorf("failed to create drawing surface: %w", err)
	}

	Render(layout, AssignColors(len(layout.Slices)), surface)

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}

	if err := artifact.WriteFile(outputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	return nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
