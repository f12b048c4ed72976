package metrics

import (
	"testing"

	"github.com/san-kum/sandfall/internal/sandbox"
)

func TestPopulationPeak(t *testing.T) {
	m := NewPopulation()

	for _, live := range []int{3, 7, 5} {
		m.Observe(sandbox.Frame{Live: live})
	}
	if m.Value() != 7 {
		t.Errorf("expected peak 7, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestMeanPopulation(t *testing.T) {
	m := NewMeanPopulation()

	if m.Value() != 0 {
		t.Error("expected 0 with no samples")
	}

	m.Observe(sandbox.Frame{Live: 2})
	m.Observe(sandbox.Frame{Live: 4})
	if m.Value() != 3 {
		t.Errorf("expected mean 3, got %f", m.Value())
	}
}

func TestThroughputTotals(t *testing.T) {
	s := NewSpawned()
	e := NewEvicted()

	frames := []sandbox.Frame{
		{Spawned: 2, Evicted: 0},
		{Spawned: 1, Evicted: 3},
	}
	for _, f := range frames {
		s.Observe(f)
		e.Observe(f)
	}

	if s.Value() != 3 {
		t.Errorf("expected 3 spawned, got %f", s.Value())
	}
	if e.Value() != 3 {
		t.Errorf("expected 3 evicted, got %f", e.Value())
	}

	s.Reset()
	e.Reset()
	if s.Value() != 0 || e.Value() != 0 {
		t.Error("expected zero totals after reset")
	}
}
