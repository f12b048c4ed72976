package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"origin corner", Vec2{0, 0}, true},
		{"far corner", Vec2{10, 10}, true},
		{"bottom edge", Vec2{5, 10}, true},
		{"interior", Vec2{5, 5}, true},
		{"just past right", Vec2{10.1, 5}, false},
		{"just past bottom", Vec2{5, 10.1}, false},
		{"negative x", Vec2{-0.1, 5}, false},
		{"negative y", Vec2{5, -0.1}, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRectContainsOffset(t *testing.T) {
	r := Rect{X: 40, Y: 40, Width: 1000, Height: 1000}

	if !r.Contains(Vec2{40, 40}) {
		t.Error("anchor corner should be inside")
	}
	if !r.Contains(Vec2{1040, 1040}) {
		t.Error("opposite corner should be inside")
	}
	if r.Contains(Vec2{39.9, 500}) {
		t.Error("point left of region should be outside")
	}
}
