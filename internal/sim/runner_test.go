package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/zeunio/reactphysics3d/internal/scene"
)

func testScene() *scene.Scene {
	return scene.New(scene.Params{
		Bodies:    24,
		WorldSize: 4.0,
		MaxSpeed:  2.0,
		BodySize:  1.0,
		Seed:      11,
		TableSize: 8,
	})
}

type recordingObserver struct {
	stats []StepStats
}

func (r *recordingObserver) OnStep(st StepStats) {
	r.stats = append(r.stats, st)
}

type recordingSink struct {
	events []PairEvent
}

func (r *recordingSink) OnPairEvent(ev PairEvent) {
	r.events = append(r.events, ev)
}

func TestRunner_Run(t *testing.T) {
	s := testScene()
	runner := New(s)
	obs := &recordingObserver{}
	runner.AddObserver(obs)

	result, err := runner.Run(context.Background(), 30, 0.05)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if result.Steps != 30 {
		t.Errorf("Steps = %d, want 30", result.Steps)
	}
	if len(result.Counts) != 30 {
		t.Errorf("len(Counts) = %d, want 30", len(result.Counts))
	}
	if len(obs.stats) != 30 {
		t.Errorf("observer saw %d steps, want 30", len(obs.stats))
	}
	if result.PeakPairs < s.Pairs().PairCount() {
		t.Errorf("PeakPairs = %d below final count %d", result.PeakPairs, s.Pairs().PairCount())
	}
}

func TestRunner_InvalidConfig(t *testing.T) {
	runner := New(testScene())

	if _, err := runner.Run(context.Background(), 0, 0.01); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("steps=0: got %v, want ErrInvalidConfig", err)
	}
	if _, err := runner.Run(context.Background(), 10, 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("dt=0: got %v, want ErrInvalidConfig", err)
	}
}

func TestRunner_Canceled(t *testing.T) {
	runner := New(testScene())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, 100, 0.01)
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("got %v, want ErrCanceled", err)
	}

	var runErr *RunError
	if !errors.As(err, &runErr) {
		t.Fatal("error is not a *RunError")
	}
	if runErr.Step != 0 {
		t.Errorf("RunError.Step = %d, want 0", runErr.Step)
	}
}

func TestRunner_EventSinkConsistency(t *testing.T) {
	s := testScene()
	runner := New(s)
	sink := &recordingSink{}
	runner.AddEventSink(sink)

	result, err := runner.Run(context.Background(), 40, 0.05)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	added, removed := 0, 0
	for _, ev := range sink.events {
		switch ev.Kind {
		case EventAdded:
			added++
		case EventRemoved:
			removed++
		default:
			t.Fatalf("unexpected event kind %q", ev.Kind)
		}
		if ev.ID1 >= ev.ID2 {
			t.Errorf("event pair (%d,%d) not canonical", ev.ID1, ev.ID2)
		}
	}

	if added != result.TotalAdded {
		t.Errorf("sink saw %d adds, result says %d", added, result.TotalAdded)
	}
	if removed != result.TotalRemoved {
		t.Errorf("sink saw %d removes, result says %d", removed, result.TotalRemoved)
	}
}

func TestRunner_ReleasesListeners(t *testing.T) {
	s := testScene()
	runner := New(s)
	sink := &recordingSink{}
	runner.AddEventSink(sink)

	if _, err := runner.Run(context.Background(), 5, 0.05); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// The run is over; stepping the scene directly must not reach the
	// finished run's sinks.
	before := len(sink.events)
	s.Step(0.05)
	if len(sink.events) != before {
		t.Errorf("sink received %d events after the run ended", len(sink.events)-before)
	}
}
