// Package export renders run data to formats other tools can consume.
package export

import (
	"fmt"
	"strings"
)

// CountsToSVG renders the per-step pair-count series as an SVG line chart.
func CountsToSVG(counts []float64, width, height int) string {
	if len(counts) < 2 {
		return ""
	}

	maxY := counts[0]
	for _, c := range counts {
		if c > maxY {
			maxY = c
		}
	}
	if maxY == 0 {
		maxY = 1
	}

	const margin = 10.0
	w, h := float64(width), float64(height)
	plotW := w - 2*margin
	plotH := h - 2*margin

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(`<polyline fill="none" stroke="#00ff88" stroke-width="1.5" points="`)
	for i, c := range counts {
		x := margin + plotW*float64(i)/float64(len(counts)-1)
		y := margin + plotH*(1-c/maxY)
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" fill="#888888" font-size="10" font-family="monospace">peak %.0f pairs</text>
`, margin, margin+10, maxY))

	sb.WriteString("</svg>")
	return sb.String()
}
