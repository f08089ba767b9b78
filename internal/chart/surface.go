package chart

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const fontSize = 13

// Surface is the drawing capability the pie renderer draws against.
// Any 2D raster or vector backend can implement it; the renderer itself
// stays free of library-specific calls so its geometry can be tested
// with a recording fake.
type Surface interface {
	// Clear fills the whole canvas with the given color.
	Clear(c color.Color)
	// FillSector fills a pie sector centered at (cx, cy) from startDeg
	// sweeping sweepDeg degrees clockwise.
	FillSector(cx, cy, r, startDeg, sweepDeg float64, c color.Color)
	// StrokeSector outlines the same sector.
	StrokeSector(cx, cy, r, startDeg, sweepDeg float64, c color.Color, width float64)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.Color)
	// StrokeRect outlines an axis-aligned rectangle.
	StrokeRect(x, y, w, h float64, c color.Color, width float64)
	// DrawText draws s anchored at (x, y); ax and ay position the anchor
	// within the text box, 0.5/0.5 meaning centered.
	DrawText(s string, x, y, ax, ay float64, c color.Color)
	// MeasureText returns the rendered width and height of s.
	MeasureText(s string) (w, h float64)
	// EncodePNG writes the canvas as PNG bytes.
	EncodePNG(w io.Writer) error
}

// ggSurface implements Surface on top of a fogleman/gg raster context
// with an embedded Go Regular font face for labels.
type ggSurface struct {
	dc *gg.Context
}

// NewSurface creates a raster drawing surface of the given pixel size.
func NewSurface(width, height int) (Surface, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}

	dc := gg.NewContext(width, height)
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: fontSize}))
	return &ggSurface{dc: dc}, nil
}

func (s *ggSurface) Clear(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *ggSurface) FillSector(cx, cy, r, startDeg, sweepDeg float64, c color.Color) {
	s.sectorPath(cx, cy, r, startDeg, sweepDeg)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *ggSurface) StrokeSector(cx, cy, r, startDeg, sweepDeg float64, c color.Color, width float64) {
	s.sectorPath(cx, cy, r, startDeg, sweepDeg)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

// sectorPath traces center -> arc start -> arc -> back to center.
func (s *ggSurface) sectorPath(cx, cy, r, startDeg, sweepDeg float64) {
	a0 := gg.Radians(startDeg)
	a1 := gg.Radians(startDeg + sweepDeg)
	s.dc.MoveTo(cx, cy)
	s.dc.DrawArc(cx, cy, r, a0, a1)
	s.dc.ClosePath()
}

func (s *ggSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *ggSurface) StrokeRect(x, y, w, h float64, c color.Color, width float64) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Stroke()
}

func (s *ggSurface) DrawText(text string, x, y, ax, ay float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(text, x, y, ax, ay)
}

func (s *ggSurface) MeasureText(text string) (float64, float64) {
	return s.dc.MeasureString(text)
}

func (s *ggSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}
