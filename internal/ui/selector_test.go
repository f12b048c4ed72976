package ui

import (
	"errors"
	"testing"

	"github.com/san-kum/sandfall/internal/geom"
	"github.com/san-kum/sandfall/internal/particle"
)

// fixedMeasurer reports the same size for every label.
type fixedMeasurer struct {
	w, h int32
}

func (m fixedMeasurer) MeasureLabel(text string, fontSize int32) (int32, int32) {
	return m.w, m.h
}

func TestNewPanelLayout(t *testing.T) {
	p, err := NewPanel(1040, 40, particle.Kinds(), 1000, fixedMeasurer{w: 120, h: 60})
	if err != nil {
		t.Fatalf("NewPanel: %v", err)
	}

	cs := p.Controls()
	if len(cs) != len(particle.Kinds()) {
		t.Fatalf("expected %d controls, got %d", len(particle.Kinds()), len(cs))
	}

	first := cs[0].Box
	if first.X != 1040+XPad || first.Y != 40 {
		t.Errorf("unexpected first box anchor (%d,%d)", first.X, first.Y)
	}
	if first.Width != ControlWidth || first.Height != BoxHeight {
		t.Errorf("unexpected first box size %dx%d", first.Width, first.Height)
	}

	region := p.Region()
	if region.X != 1040 || region.Y != 40 || region.Height != 1000 {
		t.Errorf("unexpected panel region %+v", region)
	}
	if region.Width < XPad+ControlWidth {
		t.Errorf("panel region too narrow: %d", region.Width)
	}

	second := cs[1].Box
	if second.X != first.X {
		t.Errorf("expected second control in same column, x=%d vs %d", second.X, first.X)
	}
	if second.Y != first.Y+BoxHeight+YPad {
		t.Errorf("unexpected second box y=%d", second.Y)
	}
}

func TestNewPanelColumnWrap(t *testing.T) {
	// Room for exactly one control per column forces every subsequent
	// control into a fresh column.
	p, err := NewPanel(0, 0, particle.Kinds(), BoxHeight+1, fixedMeasurer{w: 100, h: 60})
	if err != nil {
		t.Fatalf("NewPanel: %v", err)
	}

	cs := p.Controls()
	if cs[1].Box.Y != cs[0].Box.Y {
		t.Errorf("expected wrapped control back at the anchor row, got y=%d", cs[1].Box.Y)
	}
	if cs[1].Box.X != cs[0].Box.X+ControlWidth+XPad {
		t.Errorf("expected wrapped control one column over, got x=%d", cs[1].Box.X)
	}
}

func TestNewPanelLabelTooWide(t *testing.T) {
	_, err := NewPanel(0, 0, particle.Kinds(), 1000, fixedMeasurer{w: ControlWidth, h: 60})
	if err == nil {
		t.Fatal("expected ConfigError for oversized label")
	}
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T", err)
	}
	if cfgErr.Label == "" {
		t.Error("ConfigError should name the offending label")
	}
}

func TestHitTest(t *testing.T) {
	p, err := NewPanel(1040, 40, particle.Kinds(), 1000, fixedMeasurer{w: 120, h: 60})
	if err != nil {
		t.Fatalf("NewPanel: %v", err)
	}
	cs := p.Controls()

	center := func(b geom.Rect) geom.Vec2 {
		return geom.Vec2{X: float32(b.X + b.Width/2), Y: float32(b.Y + b.Height/2)}
	}

	for i, c := range cs {
		kind, ok := p.HitTest(center(c.Box))
		if !ok {
			t.Fatalf("control %d: expected hit", i)
		}
		if kind != c.Kind {
			t.Errorf("control %d: expected %v, got %v", i, c.Kind, kind)
		}
	}

	// Edge of a box is inside it.
	edge := geom.Vec2{X: float32(cs[0].Box.X), Y: float32(cs[0].Box.Y)}
	if kind, ok := p.HitTest(edge); !ok || kind != cs[0].Kind {
		t.Error("expected hit on box edge")
	}

	if _, ok := p.HitTest(geom.Vec2{X: 0, Y: 0}); ok {
		t.Error("expected miss far away from the panel")
	}
	// Gap between two stacked controls.
	gap := geom.Vec2{X: float32(cs[0].Box.X), Y: float32(cs[0].Box.Y+BoxHeight) + float32(YPad)/2}
	if _, ok := p.HitTest(gap); ok {
		t.Error("expected miss in the padding gap")
	}
}
