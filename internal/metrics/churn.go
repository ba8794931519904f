package metrics

import "github.com/zeunio/reactphysics3d/internal/sim"

// Churn tracks the mean number of pair lifecycle events (adds plus removes)
// per step, the load the pair manager puts on downstream stages.
type Churn struct {
	samples int
	events  float64
}

func NewChurn() *Churn {
	return &Churn{}
}

func (c *Churn) Name() string { return "churn" }

func (c *Churn) Observe(st sim.StepStats) {
	c.events += float64(st.Added + st.Removed)
	c.samples++
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.events / float64(c.samples)
}

func (c *Churn) Reset() {
	c.events = 0
	c.samples = 0
}

// PeakChain tracks the longest bucket chain the hash table ever reached, a
// direct read on how well occupancy-driven growth is working.
type PeakChain struct {
	peak int
}

func NewPeakChain() *PeakChain {
	return &PeakChain{}
}

func (p *PeakChain) Name() string { return "peak_chain" }

func (p *PeakChain) Observe(st sim.StepStats) {
	if st.LongestChain > p.peak {
		p.peak = st.LongestChain
	}
}

func (p *PeakChain) Value() float64 {
	return float64(p.peak)
}

func (p *PeakChain) Reset() {
	p.peak = 0
}
