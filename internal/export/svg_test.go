package export

import (
	"strings"
	"testing"
)

func TestCountsToSVG(t *testing.T) {
	svg := CountsToSVG([]float64{0, 5, 3, 8, 2}, 400, 200)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("missing polyline")
	}
	if !strings.Contains(svg, "peak 8 pairs") {
		t.Errorf("missing peak label:\n%s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("missing closing tag")
	}
}

func TestCountsToSVG_TooFewPoints(t *testing.T) {
	if CountsToSVG(nil, 100, 100) != "" {
		t.Error("expected empty output for no data")
	}
	if CountsToSVG([]float64{1}, 100, 100) != "" {
		t.Error("expected empty output for a single point")
	}
}
