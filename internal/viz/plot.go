// Package viz renders terminal output for the CLI: lipgloss styles
// for status lines and asciigraph plots for keystream diagnostics.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// HistogramBins is the number of buckets used for keystream byte
// histograms. 32 buckets of 8 values each fit an 80-column terminal.
const HistogramBins = 32

// KeyHistogram bins a keystream into HistogramBins buckets and
// renders the counts as an ASCII plot. A flat-ish profile suggests a
// diverse stream; heavy spikes mean the map was run outside its
// chaotic regime.
func KeyHistogram(keys []byte) string {
	bins := make([]float64, HistogramBins)
	per := 256 / HistogramBins
	for _, k := range keys {
		bins[int(k)/per]++
	}

	return asciigraph.Plot(bins,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("keystream byte histogram (bucketed)"),
	)
}

// LyapunovPlot renders a Lyapunov exponent sweep.
func LyapunovPlot(lambdas []float64, rMin, rMax float64) string {
	return asciigraph.Plot(lambdas,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("lyapunov exponent, r in [%.2f, %.2f]", rMin, rMax)),
	)
}
