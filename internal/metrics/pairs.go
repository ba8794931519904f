package metrics

import "github.com/zeunio/reactphysics3d/internal/sim"

// AveragePairs tracks the mean overlapping-pair count over a run.
type AveragePairs struct {
	samples int
	total   float64
}

func NewAveragePairs() *AveragePairs {
	return &AveragePairs{}
}

func (a *AveragePairs) Name() string { return "avg_pairs" }

func (a *AveragePairs) Observe(st sim.StepStats) {
	a.total += float64(st.PairCount)
	a.samples++
}

func (a *AveragePairs) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.total / float64(a.samples)
}

func (a *AveragePairs) Reset() {
	a.total = 0
	a.samples = 0
}

// PeakPairs tracks the maximum overlapping-pair count seen.
type PeakPairs struct {
	peak int
}

func NewPeakPairs() *PeakPairs {
	return &PeakPairs{}
}

func (p *PeakPairs) Name() string { return "peak_pairs" }

func (p *PeakPairs) Observe(st sim.StepStats) {
	if st.PairCount > p.peak {
		p.peak = st.PairCount
	}
}

func (p *PeakPairs) Value() float64 {
	return float64(p.peak)
}

func (p *PeakPairs) Reset() {
	p.peak = 0
}
