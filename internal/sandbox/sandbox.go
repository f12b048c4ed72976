package sandbox

import (
	"github.com/san-kum/sandfall/internal/geom"
	"github.com/san-kum/sandfall/internal/particle"
)

// Sandbox owns the play area, the live particle collection and the
// currently selected particle kind. It is single-owner state: the frame
// loop holds exclusive access, and the required per-frame order is
// Advance, then spawns, then selection changes, then rendering.
type Sandbox struct {
	region    geom.Rect
	particles []particle.Particle
	selected  particle.Kind
}

func New(region geom.Rect) *Sandbox {
	return &Sandbox{region: region, selected: particle.Sand}
}

func (s *Sandbox) Region() geom.Rect { return s.region }

func (s *Sandbox) Selected() particle.Kind { return s.selected }

func (s *Sandbox) SetSelected(k particle.Kind) { s.selected = k }

// Contains reports whether pos is inside the play area.
func (s *Sandbox) Contains(pos geom.Vec2) bool {
	return s.region.Contains(pos)
}

func (s *Sandbox) Len() int { return len(s.particles) }

// Particles returns the live collection for rendering. Callers must not
// mutate it.
func (s *Sandbox) Particles() []particle.Particle {
	return s.particles
}

// Spawn appends a particle of the selected kind at pos. There is no
// count cap; rate limiting is the frame loop's job.
func (s *Sandbox) Spawn(pos geom.Vec2) {
	s.particles = append(s.particles, particle.New(s.selected, pos))
}

// SpawnKind appends a particle of an explicit kind, ignoring the
// current selection. Used by headless emitters.
func (s *Sandbox) SpawnKind(k particle.Kind, pos geom.Vec2) {
	s.particles = append(s.particles, particle.New(k, pos))
}

// Advance steps every particle by dt seconds and then drops the ones
// whose position left the region. This is the only place particles are
// destroyed. The retention pass is in-place and order-preserving.
// Returns the number of particles evicted.
func (s *Sandbox) Advance(dt float32) int {
	for i := range s.particles {
		s.particles[i].Step(dt)
	}

	kept := s.particles[:0]
	for _, p := range s.particles {
		if s.region.Contains(p.Pos) {
			kept = append(kept, p)
		}
	}
	evicted := len(s.particles) - len(kept)
	s.particles = kept
	return evicted
}
