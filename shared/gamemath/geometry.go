// Package gamemath holds the small value types shared by the simulation:
// vectors, axis-aligned rectangles and the clamps used by physics.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

// Vector is a 2D float vector.
type Vector struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner in
// screen space (y grows downward).
type Rect struct {
	X, Y, W, H float64
}

// NewRect builds a rect at position pos with size w x h.
func NewRect(pos Vector, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

func (r Rect) Origin() Vector  { return Vector{X: r.X, Y: r.Y} }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports whether r and o overlap with positive area.
// Rects that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// OverlapsHorizontally reports whether the x ranges of r and o overlap.
func (r Rect) OverlapsHorizontally(o Rect) bool {
	return r.Right() > o.X && r.X < o.Right()
}

// Inflate grows r by pad on every side.
func (r Rect) Inflate(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// Penetration holds how far a body reaches into another from each side.
// Left is the depth when the body enters through the other's left face,
// Top through its top face, and so on.
type Penetration struct {
	Left, Right, Top, Bottom float64
}

// PenetrationOf computes the four directional overlaps of body into other.
func PenetrationOf(body, other Rect) Penetration {
	return Penetration{
		Left:   body.Right() - other.X,
		Right:  other.Right() - body.X,
		Top:    body.Bottom() - other.Y,
		Bottom: other.Bottom() - body.Y,
	}
}

// Min returns the smallest of the four depths.
func (p Penetration) Min() float64 {
	m := p.Top
	for _, v := range [...]float64{p.Bottom, p.Left, p.Right} {
		if v < m {
			m = v
		}
	}
	return m
}
