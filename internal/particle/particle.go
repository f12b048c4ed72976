package particle

import (
	"fmt"
	"strings"

	"github.com/san-kum/sandfall/internal/geom"
)

// Gravity is the downward acceleration applied to falling kinds, in
// pixels per second squared.
const Gravity float32 = 50.0

// maxStepDelta bounds the velocity increment applied in a single step,
// not the velocity itself; speed still accumulates across frames.
const maxStepDelta float32 = 100.0

// Kind identifies a particle type. The set is closed: every per-kind
// property below is a total switch over it.
type Kind int

const (
	Sand Kind = iota
	Wall
)

// Kinds returns the catalog in selector display order.
func Kinds() []Kind {
	return []Kind{Sand, Wall}
}

// ParseKind resolves a kind from its display name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "sand":
		return Sand, nil
	case "wall":
		return Wall, nil
	default:
		return 0, fmt.Errorf("unknown particle kind: %q", s)
	}
}

// RGBA is a display color. Kept free of renderer types so only the gui
// package links against raylib.
type RGBA struct {
	R, G, B, A uint8
}

func (k Kind) String() string {
	switch k {
	case Wall:
		return "Wall"
	default:
		return "Sand"
	}
}

func (k Kind) Color() RGBA {
	switch k {
	case Wall:
		return RGBA{200, 200, 200, 255}
	default:
		return RGBA{244, 164, 96, 255}
	}
}

// RenderSize returns the fixed on-screen footprint of one particle of
// this kind, in pixels.
func (k Kind) RenderSize() (w, h int32) {
	switch k {
	case Wall:
		return 4, 4
	default:
		return 2, 2
	}
}

// InitialVelocity returns the velocity a freshly spawned particle of
// this kind starts with.
func (k Kind) InitialVelocity() geom.Vec2 {
	return geom.Vec2{}
}

// Particle is a single simulated entity. Position and velocity are
// continuous; the render size is fixed per kind at creation.
type Particle struct {
	Kind Kind
	Pos  geom.Vec2
	Vel  geom.Vec2
	W, H int32
}

// New creates a particle at pos with its kind's catalog velocity and size.
func New(kind Kind, pos geom.Vec2) Particle {
	w, h := kind.RenderSize()
	return Particle{Kind: kind, Pos: pos, Vel: kind.InitialVelocity(), W: w, H: h}
}

// Step advances the particle by dt seconds under its kind's rule.
// Sand accelerates straight down; Wall never moves. Particles do not
// interact with each other.
func (p *Particle) Step(dt float32) {
	switch p.Kind {
	case Wall:
		// static
	default:
		p.Vel.Y += clamp(Gravity*dt, -maxStepDelta, maxStepDelta)
		p.Pos.Y += p.Vel.Y * dt
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
