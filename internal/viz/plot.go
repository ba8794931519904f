// Package viz renders run results for the terminal: the pair-count timeline
// as an ASCII graph and hash-table shape summaries.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/zeunio/reactphysics3d/internal/broadphase"
	"github.com/zeunio/reactphysics3d/internal/sim"
)

// PlotCounts renders the per-step pair-count series.
func PlotCounts(counts []float64, width, height int) string {
	if len(counts) == 0 {
		return "no data"
	}
	graph := asciigraph.Plot(counts,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("overlapping pairs per step"),
	)
	return graphStyle.Render(graph)
}

// RenderSummary renders a styled panel describing a completed run.
func RenderSummary(result *sim.Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("run summary"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("steps", fmt.Sprintf("%d", result.Steps))
	row("peak pairs", fmt.Sprintf("%d", result.PeakPairs))
	row("pairs added", fmt.Sprintf("%d", result.TotalAdded))
	row("pairs removed", fmt.Sprintf("%d", result.TotalRemoved))
	row("table size", fmt.Sprintf("%d", result.Final.TableSize))
	row("load factor", fmt.Sprintf("%.3f", result.Final.LoadFactor))
	row("longest chain", fmt.Sprintf("%d", result.Final.LongestChain))
	row("grows/shrinks", fmt.Sprintf("%d/%d", result.Final.Grows, result.Final.Shrinks))

	for name, value := range result.Metrics {
		row(name, fmt.Sprintf("%.3f", value))
	}

	return statsStyle.Render(b.String())
}

// RenderChains renders the bucket chain-length histogram as horizontal bars.
func RenderChains(stats broadphase.TableStats) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("chain lengths"))
	b.WriteString("\n")

	max := 0
	for _, c := range stats.ChainLengths {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return b.String() + "empty table\n"
	}

	const barWidth = 40
	for n, c := range stats.ChainLengths {
		if c == 0 {
			continue
		}
		w := c * barWidth / max
		if w == 0 {
			w = 1
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("len %d", n)))
		b.WriteString(barStyle.Render(strings.Repeat("█", w)))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" %d", c)))
		b.WriteString("\n")
	}
	return b.String()
}
