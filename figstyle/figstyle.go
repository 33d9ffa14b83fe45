// Package figstyle holds the formatting shared across the report figures:
// sizes, axis labels, the fixed reciprocal-axis ticks and the common theme.
package figstyle

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// FigureDPI is the raster resolution shared by every exported figure.
const FigureDPI = 300

// Axis labels shared with the figure captions.
const (
	XLabel = "Environmental change frequency"
	YLabel = "Producer proportion"
)

var (
	// FigureWidth is the physical width of an exported figure.
	FigureWidth = 6 * vg.Inch

	// BaseFontSize sizes titles and axis labels; tick labels use 0.8 of it.
	BaseFontSize = vg.Points(17)
	TickFontSize = vg.Points(0.8 * 17)

	// PointSize is the marker radius for summary points.
	PointSize = vg.Points(3)
)

// TickFreqs lists the environmental change frequencies marked on the
// reciprocal axis, most frequent first, so their reciprocals give ascending
// axis positions.
var TickFreqs = []float64{5000, 1250, 312, 78, 20, 5, 1}

// Ticks returns the fixed reciprocal-axis ticks, labeled "1/<frequency>".
// The tick set does not depend on the data.
func Ticks() []plot.Tick {
	ticks := make([]plot.Tick, len(TickFreqs))
	for i, f := range TickFreqs {
		ticks[i] = plot.Tick{Value: 1 / f, Label: fmt.Sprintf("1/%.0f", f)}
	}
	return ticks
}

// Apply sets the shared theme on p: uniform font sizing from BaseFontSize.
func Apply(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = BaseFontSize
	p.X.Label.TextStyle.Font.Size = BaseFontSize
	p.Y.Label.TextStyle.Font.Size = BaseFontSize
	p.X.Tick.Label.Font.Size = TickFontSize
	p.Y.Tick.Label.Font.Size = TickFontSize
}

// GoldenHeight rescales a figure width to the golden-ratio height used across
// the figure set.
func GoldenHeight(width vg.Length) vg.Length {
	return width * 2 / vg.Length(1+math.Sqrt(5))
}
