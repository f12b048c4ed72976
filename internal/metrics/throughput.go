package metrics

import "github.com/san-kum/sandfall/internal/sandbox"

// Spawned counts particles created over a run.
type Spawned struct {
	name  string
	total int
}

func NewSpawned() *Spawned {
	return &Spawned{name: "total_spawned"}
}

func (s *Spawned) Name() string { return s.name }

func (s *Spawned) Observe(f sandbox.Frame) {
	s.total += f.Spawned
}

func (s *Spawned) Value() float64 {
	return float64(s.total)
}

func (s *Spawned) Reset() {
	s.total = 0
}

// Evicted counts particles removed at the region boundary over a run.
type Evicted struct {
	name  string
	total int
}

func NewEvicted() *Evicted {
	return &Evicted{name: "total_evicted"}
}

func (e *Evicted) Name() string { return e.name }

func (e *Evicted) Observe(f sandbox.Frame) {
	e.total += f.Evicted
}

func (e *Evicted) Value() float64 {
	return float64(e.total)
}

func (e *Evicted) Reset() {
	e.total = 0
}
