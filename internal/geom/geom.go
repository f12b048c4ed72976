package geom

// Vec2 is a point or velocity in screen space.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle in screen space. Width and Height
// must be non-negative.
type Rect struct {
	X, Y, Width, Height int32
}

// Contains reports whether p lies inside r. Bounds are inclusive on all
// four edges so a click exactly on a border still registers.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= float32(r.X) && p.X <= float32(r.X+r.Width) &&
		p.Y >= float32(r.Y) && p.Y <= float32(r.Y+r.Height)
}
