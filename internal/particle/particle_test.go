package particle

import (
	"testing"

	"github.com/san-kum/sandfall/internal/geom"
)

func TestNewAppliesCatalog(t *testing.T) {
	p := New(Sand, geom.Vec2{X: 10, Y: 20})

	if p.Kind != Sand {
		t.Errorf("expected kind Sand, got %v", p.Kind)
	}
	if p.Pos.X != 10 || p.Pos.Y != 20 {
		t.Errorf("unexpected position %v", p.Pos)
	}
	if p.Vel != (geom.Vec2{}) {
		t.Errorf("expected zero initial velocity, got %v", p.Vel)
	}
	if p.W != 2 || p.H != 2 {
		t.Errorf("expected 2x2 sand, got %dx%d", p.W, p.H)
	}

	w := New(Wall, geom.Vec2{})
	if w.W != 4 || w.H != 4 {
		t.Errorf("expected 4x4 wall, got %dx%d", w.W, w.H)
	}
}

func TestSandStep(t *testing.T) {
	p := New(Sand, geom.Vec2{X: 500, Y: 500})
	p.Step(1.0)

	if p.Vel.Y != 50.0 {
		t.Errorf("expected vy 50 after one step with dt=1, got %f", p.Vel.Y)
	}
	if p.Pos.Y != 550.0 {
		t.Errorf("expected y 550, got %f", p.Pos.Y)
	}
	if p.Pos.X != 500 || p.Vel.X != 0 {
		t.Error("sand must have no horizontal dynamics")
	}
}

func TestSandMonotonicFall(t *testing.T) {
	p := New(Sand, geom.Vec2{})

	prevVel, prevPos := p.Vel.Y, p.Pos.Y
	for i := 0; i < 20; i++ {
		p.Step(0.016)
		if p.Vel.Y < prevVel {
			t.Fatalf("step %d: vy decreased from %f to %f", i, prevVel, p.Vel.Y)
		}
		if p.Pos.Y < prevPos {
			t.Fatalf("step %d: y decreased from %f to %f", i, prevPos, p.Pos.Y)
		}
		prevVel, prevPos = p.Vel.Y, p.Pos.Y
	}
}

func TestStepClampsIncrement(t *testing.T) {
	p := New(Sand, geom.Vec2{})
	p.Step(10.0) // Gravity*dt = 500, increment capped at 100

	if p.Vel.Y != 100.0 {
		t.Errorf("expected increment clamped to 100, got vy %f", p.Vel.Y)
	}

	// The clamp bounds the per-step delta, not the velocity: a second
	// large step pushes past 100.
	p.Step(10.0)
	if p.Vel.Y != 200.0 {
		t.Errorf("expected vy 200 after second clamped step, got %f", p.Vel.Y)
	}
}

func TestWallStatic(t *testing.T) {
	p := New(Wall, geom.Vec2{X: 100, Y: 100})

	for _, dt := range []float32{0, 0.016, 1.0, 100.0} {
		p.Step(dt)
		if p.Pos != (geom.Vec2{X: 100, Y: 100}) {
			t.Fatalf("wall moved to %v with dt=%f", p.Pos, dt)
		}
		if p.Vel != (geom.Vec2{}) {
			t.Fatalf("wall gained velocity %v with dt=%f", p.Vel, dt)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"sand", Sand, false},
		{"Sand", Sand, false},
		{"WALL", Wall, false},
		{"lava", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range Kinds() {
		if k.String() == "" {
			t.Errorf("kind %d has empty display name", k)
		}
	}
}
