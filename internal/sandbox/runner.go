package sandbox

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/sandfall/internal/geom"
	"github.com/san-kum/sandfall/internal/particle"
)

// Frame is the per-step telemetry sample observed by metrics and
// observers during a headless run.
type Frame struct {
	T       float64
	Live    int
	Spawned int
	Evicted int
}

// Metric aggregates frame samples into a single value. Implementations
// live in internal/metrics.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Observer receives every frame of a headless run, e.g. a live terminal
// renderer.
type Observer interface {
	OnFrame(s *Sandbox, f Frame)
}

// Emitter is a point source that spawns particles of a fixed kind at a
// steady rate. It stands in for pointer input in headless runs.
type Emitter struct {
	Kind particle.Kind
	Pos  geom.Vec2
	Rate float64 // particles per second

	acc float64
}

func (e *Emitter) emit(s *Sandbox, dt float32) int {
	e.acc += e.Rate * float64(dt)
	n := 0
	for e.acc >= 1 {
		e.acc--
		// Spawning outside the region is a silent no-op.
		if !s.Contains(e.Pos) {
			continue
		}
		s.SpawnKind(e.Kind, e.Pos)
		n++
	}
	return n
}

type RunConfig struct {
	Dt       float32
	Duration float64
}

type Result struct {
	Frames  []Frame
	Metrics map[string]float64
}

// Runner drives a Sandbox through a fixed-timestep headless run.
type Runner struct {
	box       *Sandbox
	emitters  []*Emitter
	metrics   []Metric
	observers []Observer
}

func NewRunner(box *Sandbox) *Runner {
	return &Runner{box: box}
}

func (r *Runner) AddEmitter(e *Emitter)  { r.emitters = append(r.emitters, e) }
func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances the sandbox for the configured duration, keeping the
// same per-frame order the interactive loop uses: advance first, then
// spawns. It returns the partial result alongside ctx.Err() if the
// context is cancelled mid-run.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := validateRunConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(math.Round(cfg.Duration / float64(cfg.Dt)))
	result := &Result{
		Frames:  make([]Frame, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			r.finish(result)
			return result, ctx.Err()
		default:
		}

		evicted := r.box.Advance(cfg.Dt)
		spawned := 0
		for _, e := range r.emitters {
			spawned += e.emit(r.box, cfg.Dt)
		}
		t += float64(cfg.Dt)

		f := Frame{T: t, Live: r.box.Len(), Spawned: spawned, Evicted: evicted}
		result.Frames = append(result.Frames, f)

		for _, m := range r.metrics {
			m.Observe(f)
		}
		for _, o := range r.observers {
			o.OnFrame(r.box, f)
		}
	}

	r.finish(result)
	return result, nil
}

func (r *Runner) finish(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateRunConfig(cfg RunConfig) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
