package ui

import (
	"fmt"

	"github.com/san-kum/sandfall/internal/geom"
	"github.com/san-kum/sandfall/internal/particle"
)

// Layout constants for the selector panel. ControlWidth is sized to fit
// the longest catalog label at FontSize with room to spare; NewPanel
// verifies that against the actual measured labels.
const (
	FontSize     int32 = 60
	BoxPad       int32 = 20
	LabelInset   int32 = 10
	ControlWidth int32 = 220
	XPad         int32 = 30
	YPad         int32 = 10
)

// BoxHeight is the fixed height of every selector control.
const BoxHeight = FontSize + BoxPad

// TextMeasurer reports the rendered size of a label. Supplied by the
// presentation layer so this package stays renderer-free.
type TextMeasurer interface {
	MeasureLabel(text string, fontSize int32) (w, h int32)
}

// Control is one clickable selector entry. Its box is computed once at
// construction and immutable afterwards.
type Control struct {
	Kind particle.Kind
	Box  geom.Rect
}

// Panel is a laid-out column of selector controls beside the play area.
type Panel struct {
	region   geom.Rect
	controls []Control
}

// ConfigError reports a selector box too small for its label. It is
// fatal at startup: a constant was sized wrong for the active catalog.
type ConfigError struct {
	Label  string
	Width  int32
	Height int32
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("selector box %dx%d too small for label %q (%dx%d measured)",
		ControlWidth, BoxHeight, e.Label, e.Width, e.Height)
}

// NewPanel lays out one control per kind in a column-first flow anchored
// at (x, y), wrapping to a new column when the next box would pass
// maxHeight. Controls keep creation order, which is also hit-test order.
func NewPanel(x, y int32, kinds []particle.Kind, maxHeight int32, m TextMeasurer) (*Panel, error) {
	cx := x + XPad
	cy := y
	maxX := cx

	controls := make([]Control, 0, len(kinds))
	for _, k := range kinds {
		label := k.String()
		lw, lh := m.MeasureLabel(label, FontSize)
		if lw > ControlWidth-2*LabelInset || lh > BoxHeight {
			return nil, ConfigError{Label: label, Width: lw, Height: lh}
		}

		controls = append(controls, Control{
			Kind: k,
			Box:  geom.Rect{X: cx, Y: cy, Width: ControlWidth, Height: BoxHeight},
		})
		if cx+ControlWidth > maxX {
			maxX = cx + ControlWidth
		}

		cy += BoxHeight + YPad
		if cy+BoxHeight > y+maxHeight {
			cy = y
			cx += ControlWidth + XPad
		}
	}

	return &Panel{
		region:   geom.Rect{X: x, Y: y, Width: maxX - x, Height: maxHeight},
		controls: controls,
	}, nil
}

func (p *Panel) Region() geom.Rect { return p.region }

// Controls returns the laid-out controls for rendering. Callers must
// not mutate them.
func (p *Panel) Controls() []Control { return p.controls }

// HitTest returns the kind of the first control whose box contains pos.
// Boxes do not overlap by construction, so order only matters as a
// defensive tie-break.
func (p *Panel) HitTest(pos geom.Vec2) (particle.Kind, bool) {
	for _, c := range p.controls {
		if c.Box.Contains(pos) {
			return c.Kind, true
		}
	}
	return 0, false
}
