package beryl

import "github.com/veandco/go-sdl2/sdl"

// Point is an integer position.
type Point struct {
	X, Y int32
}

func (p Point) native() sdl.Point { return sdl.Point{X: p.X, Y: p.Y} }

// Rect is an axis-aligned integer rectangle. X and Y locate the top-left
// corner; a point is inside when x <= px < x+w and y <= py < y+h.
type Rect struct {
	X, Y int32
	W, H int32
}

func (r Rect) native() sdl.Rect { return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

func rectFromNative(r sdl.Rect) Rect { return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

// nativeRectPtr maps the nil pointer to nil, for calls where nil means
// "the whole surface".
func nativeRectPtr(r *Rect) *sdl.Rect {
	if r == nil {
		return nil
	}
	n := r.native()
	return &n
}

// IsEmpty reports whether the rectangle covers no pixels, i.e. either
// dimension is zero or negative.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// HasIntersection reports whether the two rectangles overlap by at least one
// pixel. Empty rectangles intersect nothing, including themselves.
func (r Rect) HasIntersection(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// Intersect returns the overlap of the two rectangles. ok is false, and the
// rectangle zero, when they do not overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	if !r.HasIntersection(other) {
		return Rect{}, false
	}
	x1 := max32(r.X, other.X)
	y1 := max32(r.Y, other.Y)
	x2 := min32(r.X+r.W, other.X+other.W)
	y2 := min32(r.Y+r.H, other.Y+other.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, true
}

// Union returns the smallest rectangle covering both inputs. An empty input
// contributes nothing; the union of two empty rectangles is empty.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		if other.IsEmpty() {
			return Rect{}
		}
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min32(r.X, other.X)
	y1 := min32(r.Y, other.Y)
	x2 := max32(r.X+r.W, other.X+other.W)
	y2 := max32(r.Y+r.H, other.Y+other.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// EnclosePoints returns the smallest rectangle containing every point, and
// false when points is empty.
func EnclosePoints(points []Point) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min32(minX, p.X)
		minY = min32(minY, p.Y)
		maxX = max32(maxX, p.X)
		maxY = max32(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}, true
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
