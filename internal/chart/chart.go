// Package chart maps a numeric series onto pixel (or cell) coordinates for
// the weight-trend line: even X spacing by index, linear Y normalization
// against a shared value range.
package chart

import (
	"fmt"
	"strings"
)

// MinPoints is how many valid points a series needs before a line is drawn.
// Below that the view shows a not-enough-data message instead of a
// degenerate chart.
const MinPoints = 2

type Point struct {
	X, Y float64
}

// Scale holds the viewport geometry and the shared value range. Both the
// raw line and its rolling average are projected through one Scale so they
// sit on the same axis.
type Scale struct {
	Width, Height float64
	PadX, PadY    float64
	Min, Max      float64
	Count         int
}

// NewScale derives the shared range from the raw series and its rolling
// average, expanded by 10% padding on each end. A flat series pads by a
// fixed 0.1 so the range never collapses to zero.
func NewScale(raw, rolling []float64, width, height, padX, padY float64) Scale {
	s := Scale{Width: width, Height: height, PadX: padX, PadY: padY, Count: len(raw)}

	first := true
	for _, set := range [][]float64{raw, rolling} {
		for _, v := range set {
			if first {
				s.Min, s.Max = v, v
				first = false
				continue
			}
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
		}
	}

	span := s.Max - s.Min
	if span == 0 {
		span = 1
	}
	pad := span * 0.1
	s.Min -= pad
	s.Max += pad
	return s
}

// X spaces points evenly across the usable width by index. A lone point
// sits in the middle.
func (s Scale) X(i int) float64 {
	if s.Count <= 1 {
		return s.Width / 2
	}
	step := (s.Width - s.PadX*2) / float64(s.Count-1)
	return s.PadX + step*float64(i)
}

// Y maps a value into [PadY, Height-PadY], larger values higher up.
func (s Scale) Y(v float64) float64 {
	if s.Max == s.Min {
		return s.Height / 2
	}
	ratio := (v - s.Min) / (s.Max - s.Min)
	return s.Height - s.PadY - ratio*(s.Height-s.PadY*2)
}

// Points projects a series through the scale.
func Points(values []float64, s Scale) []Point {
	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{X: s.X(i), Y: s.Y(v)}
	}
	return pts
}

// Polyline formats points as an SVG-style "x,y x,y" attribute string.
func Polyline(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

// Render draws the raw series ('*') and its rolling average ('+') into a
// character grid for terminal display. Returns the not-enough-data message
// when the series is too short to chart.
func Render(raw, rolling []float64, width, height int) string {
	if len(raw) < MinPoints {
		return "Not enough data yet. Save at least two days with a weight value to see the trend."
	}
	if width < 8 {
		width = 8
	}
	if height < 4 {
		height = 4
	}

	s := NewScale(raw, rolling, float64(width), float64(height), 1, 0.5)

	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	plot := func(values []float64, mark rune) {
		for _, p := range Points(values, s) {
			x := int(p.X)
			y := int(p.Y)
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			// Raw points win cells over the average line.
			if grid[y][x] == ' ' || mark == '*' {
				grid[y][x] = mark
			}
		}
	}
	plot(rolling, '+')
	plot(raw, '*')

	var b strings.Builder
	fmt.Fprintf(&b, "Max: %.1f\n", s.Max)
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Min: %.1f", s.Min)
	return b.String()
}
