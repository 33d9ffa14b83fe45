// Package figure renders the producer-proportion summary figure.
package figure

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"envfig/figstyle"
	"envfig/stats"
)

type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Build assembles the summary plot: one mean point with ±1 SEM error bars per
// condition, on the fixed reciprocal log axis with the y range pinned to
// [0,1]. Non-finite summaries (the unguarded single-timestamp case upstream)
// are dropped with a warning so the figure still renders, point missing.
func Build(summaries []stats.ConditionSummary) (*plot.Plot, error) {
	var pts errPoints
	for _, s := range summaries {
		if !finite(s.X) || !finite(s.Mean) || !finite(s.SEM) {
			log.Printf("figure: dropping non-finite summary at EnvChangeFreq=%g (mean=%g sem=%g)",
				s.EnvChangeFreq, s.Mean, s.SEM)
			continue
		}
		pts.XYs = append(pts.XYs, plotter.XY{X: s.X, Y: s.Mean})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{s.SEM, s.SEM})
	}

	p := plot.New()
	p.X.Label.Text = figstyle.XLabel
	p.Y.Label.Text = figstyle.YLabel

	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, fmt.Errorf("error bars: %w", err)
	}
	bars.LineStyle.Width = vg.Points(1)
	bars.LineStyle.Color = color.RGBA{A: 255}

	points, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		return nil, fmt.Errorf("summary points: %w", err)
	}
	points.GlyphStyle.Color = color.RGBA{A: 255}
	points.GlyphStyle.Radius = figstyle.PointSize
	points.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(bars, points)

	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.ConstantTicks(figstyle.Ticks())
	// Half a log step beyond the extreme ticks keeps edge glyphs unclipped.
	p.X.Min = 1 / (figstyle.TickFreqs[0] * math.Sqrt2)
	p.X.Max = math.Sqrt2 / figstyle.TickFreqs[len(figstyle.TickFreqs)-1]
	p.Y.Min = 0
	p.Y.Max = 1
	figstyle.Apply(p)

	return p, nil
}

// WritePNG rasterizes p at the given physical size and resolution,
// overwriting path.
func WritePNG(p *plot.Plot, path string, width, height vg.Length, dpi int) error {
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(img))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create figure file: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
