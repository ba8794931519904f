// Package sim runs a scene workload for a fixed number of steps and records
// how the overlapping-pair set evolves.
package sim

import (
	"context"

	"github.com/zeunio/reactphysics3d/internal/broadphase"
	"github.com/zeunio/reactphysics3d/internal/scene"
)

// StepStats summarizes the pair manager after one scene step.
type StepStats struct {
	Step         int
	PairCount    int
	Added        int // pairs that began overlapping this step
	Removed      int // pairs that stopped overlapping this step
	TableSize    int
	LongestChain int
}

// Metric aggregates step statistics over a run.
type Metric interface {
	Name() string
	Observe(st StepStats)
	Value() float64
	Reset()
}

// Observer is notified after every step.
type Observer interface {
	OnStep(st StepStats)
}

// PairEvent is one pair lifecycle change, as forwarded from the manager's
// listeners during a run.
type PairEvent struct {
	Step int
	Kind EventKind
	ID1  uint32
	ID2  uint32
}

type EventKind string

const (
	EventAdded   EventKind = "added"
	EventRemoved EventKind = "removed"
)

// EventSink consumes pair lifecycle events, e.g. a contact cache or a journal.
type EventSink interface {
	OnPairEvent(ev PairEvent)
}

// Result is the outcome of a completed run.
type Result struct {
	Steps        int
	Counts       []float64 // pair count per step
	TotalAdded   int
	TotalRemoved int
	PeakPairs    int
	Metrics      map[string]float64
	Final        broadphase.TableStats
}

// Runner steps a scene and observes its pair manager. It registers the
// manager's add/remove listeners for the duration of a run.
type Runner struct {
	scene     *scene.Scene
	metrics   []Metric
	observers []Observer
	sinks     []EventSink
}

func New(s *scene.Scene, metrics ...Metric) *Runner {
	return &Runner{scene: s, metrics: metrics}
}

// AddObserver attaches an observer called after every step.
func (r *Runner) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

// AddEventSink attaches a sink that receives every pair lifecycle event.
func (r *Runner) AddEventSink(s EventSink) {
	r.sinks = append(r.sinks, s)
}

// Run advances the scene by steps timesteps of dt, checking ctx between
// steps. On cancellation it returns ErrCanceled wrapped in a RunError.
func (r *Runner) Run(ctx context.Context, steps int, dt float64) (*Result, error) {
	if steps <= 0 || dt <= 0 {
		return nil, ErrInvalidConfig
	}

	// The runner owns the manager's single listener slots for the duration
	// of the run and fans events out to its sinks.
	pairs := r.scene.Pairs()
	step, added, removed := 0, 0, 0
	pairs.OnPairAdded(func(p broadphase.Pair) {
		added++
		r.emit(step, EventAdded, p)
	})
	pairs.OnPairRemoved(func(p broadphase.Pair) {
		removed++
		r.emit(step, EventRemoved, p)
	})
	defer pairs.OnPairAdded(nil)
	defer pairs.OnPairRemoved(nil)

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{
		Counts:  make([]float64, 0, steps),
		Metrics: make(map[string]float64),
	}

	for step = 0; step < steps; step++ {
		select {
		case <-ctx.Done():
			return nil, &RunError{Step: step, Wrapped: ErrCanceled}
		default:
		}

		added, removed = 0, 0
		r.scene.Step(dt)

		stats := pairs.Stats()
		st := StepStats{
			Step:         step,
			PairCount:    stats.PairCount,
			Added:        added,
			Removed:      removed,
			TableSize:    stats.TableSize,
			LongestChain: stats.LongestChain,
		}

		result.Steps++
		result.Counts = append(result.Counts, float64(st.PairCount))
		result.TotalAdded += st.Added
		result.TotalRemoved += st.Removed
		if st.PairCount > result.PeakPairs {
			result.PeakPairs = st.PairCount
		}

		for _, m := range r.metrics {
			m.Observe(st)
		}
		for _, o := range r.observers {
			o.OnStep(st)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Final = pairs.Stats()
	return result, nil
}

func (r *Runner) emit(step int, kind EventKind, p broadphase.Pair) {
	if len(r.sinks) == 0 {
		return
	}
	id1, id2 := p.IDs()
	ev := PairEvent{Step: step, Kind: kind, ID1: id1, ID2: id2}
	for _, s := range r.sinks {
		s.OnPairEvent(ev)
	}
}
