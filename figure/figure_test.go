package figure_test

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envfig/figstyle"
	"envfig/figure"
	"envfig/stats"
)

func sampleSummaries() []stats.ConditionSummary {
	return []stats.ConditionSummary{
		{EnvChangeFreq: 5, X: 0.2, Mean: 0.4, SD: 0.14, SEM: 0.1, N: 2},
		{EnvChangeFreq: 78, X: 1.0 / 78, Mean: 0.7, SD: 0.07, SEM: 0.05, N: 2},
		{EnvChangeFreq: 5000, X: 1.0 / 5000, Mean: 0.9, SD: 0.02, SEM: 0.01, N: 4},
	}
}

func TestBuildAxes(t *testing.T) {
	p, err := figure.Build(sampleSummaries())
	require.NoError(t, err)

	assert.Equal(t, figstyle.XLabel, p.X.Label.Text)
	assert.Equal(t, figstyle.YLabel, p.Y.Label.Text)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Equal(t, 1.0, p.Y.Max)

	// Log axis bounds enclose every fixed tick.
	assert.Greater(t, p.X.Min, 0.0)
	assert.Less(t, p.X.Min, 1.0/5000)
	assert.Greater(t, p.X.Max, 1.0)
}

func TestBuildDropsNonFiniteSummaries(t *testing.T) {
	summaries := append(sampleSummaries(), stats.ConditionSummary{
		EnvChangeFreq: 20, X: 0.05, Mean: math.Inf(1), SEM: math.NaN(), N: 1,
	})

	// A single-timestamp group upstream must cost one point, not the run.
	p, err := figure.Build(summaries)
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestWritePNGDimensions(t *testing.T) {
	p, err := figure.Build(sampleSummaries())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "FigureS3.png")
	width := figstyle.FigureWidth
	height := figstyle.GoldenHeight(width)
	require.NoError(t, figure.WritePNG(p, path, width, height, figstyle.FigureDPI))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 1800, cfg.Width) // 6 in at 300 dpi
	assert.InDelta(t, 6.0/math.Phi*float64(figstyle.FigureDPI), float64(cfg.Height), 1.0)
}

func TestWritePNGOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FigureS3.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	p, err := figure.Build(sampleSummaries())
	require.NoError(t, err)
	require.NoError(t, figure.WritePNG(p, path, figstyle.FigureWidth, figstyle.GoldenHeight(figstyle.FigureWidth), 96))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = png.DecodeConfig(f)
	require.NoError(t, err)
}

func TestWritePNGUnwritableDirectory(t *testing.T) {
	p, err := figure.Build(sampleSummaries())
	require.NoError(t, err)

	err = figure.WritePNG(p, filepath.Join(t.TempDir(), "missing", "FigureS3.png"),
		figstyle.FigureWidth, figstyle.GoldenHeight(figstyle.FigureWidth), 96)
	require.Error(t, err)
}
