package beryl

import "testing"

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero value", Rect{}, true},
		{"positive size", Rect{X: 0, Y: 0, W: 10, H: 10}, false},
		{"one pixel", Rect{X: 5, Y: 5, W: 1, H: 1}, false},
		{"zero width", Rect{X: 0, Y: 0, W: 0, H: 10}, true},
		{"zero height", Rect{X: 0, Y: 0, W: 10, H: 0}, true},
		{"negative width", Rect{X: 0, Y: 0, W: -3, H: 10}, true},
		{"negative height", Rect{X: 0, Y: 0, W: 10, H: -3}, true},
		{"offset does not matter", Rect{X: -100, Y: -100, W: 10, H: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("Rect%+v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"top-left corner", Point{10, 10}, true},
		{"interior", Point{12, 13}, true},
		{"right edge exclusive", Point{15, 10}, false},
		{"bottom edge exclusive", Point{10, 15}, false},
		{"last contained pixel", Point{14, 14}, true},
		{"left of", Point{9, 12}, false},
		{"above", Point{12, 9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		want   Rect
		wantOk bool
	}{
		{
			"overlapping",
			Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10},
			Rect{5, 5, 5, 5}, true,
		},
		{
			"contained",
			Rect{0, 0, 10, 10}, Rect{2, 2, 3, 3},
			Rect{2, 2, 3, 3}, true,
		},
		{
			"identical",
			Rect{1, 1, 4, 4}, Rect{1, 1, 4, 4},
			Rect{1, 1, 4, 4}, true,
		},
		{
			"touching edges only",
			Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10},
			Rect{}, false,
		},
		{
			"disjoint",
			Rect{0, 0, 5, 5}, Rect{100, 100, 5, 5},
			Rect{}, false,
		},
		{
			"empty with anything",
			Rect{0, 0, 0, 0}, Rect{0, 0, 10, 10},
			Rect{}, false,
		},
		{
			"empty with itself",
			Rect{3, 3, 0, 0}, Rect{3, 3, 0, 0},
			Rect{}, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("%+v.Intersect(%+v) = %+v, %v, want %+v, %v",
					tt.a, tt.b, got, ok, tt.want, tt.wantOk)
			}
			// Intersection is symmetric.
			got2, ok2 := tt.b.Intersect(tt.a)
			if got2 != got || ok2 != ok {
				t.Errorf("intersection not symmetric: %+v vs %+v", got, got2)
			}
			if ok != tt.a.HasIntersection(tt.b) {
				t.Errorf("HasIntersection disagrees with Intersect for %+v, %+v", tt.a, tt.b)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", Rect{0, 0, 2, 2}, Rect{8, 8, 2, 2}, Rect{0, 0, 10, 10}},
		{"overlapping", Rect{0, 0, 6, 6}, Rect{4, 4, 6, 6}, Rect{0, 0, 10, 10}},
		{"contained", Rect{0, 0, 10, 10}, Rect{3, 3, 2, 2}, Rect{0, 0, 10, 10}},
		{"negative coordinates", Rect{-5, -5, 3, 3}, Rect{2, 2, 3, 3}, Rect{-5, -5, 10, 10}},
		{"empty contributes nothing", Rect{0, 0, 10, 10}, Rect{50, 50, 0, 0}, Rect{0, 0, 10, 10}},
		{"empty first operand", Rect{50, 50, 0, 5}, Rect{1, 1, 2, 2}, Rect{1, 1, 2, 2}},
		{"both empty", Rect{1, 1, 0, 0}, Rect{2, 2, -1, 3}, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("%+v.Union(%+v) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEnclosePoints(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   Rect
		wantOk bool
	}{
		{"no points", nil, Rect{}, false},
		{"single point", []Point{{3, 7}}, Rect{3, 7, 1, 1}, true},
		{"two corners", []Point{{0, 0}, {9, 9}}, Rect{0, 0, 10, 10}, true},
		{"unordered", []Point{{5, 1}, {-2, 8}, {3, 3}}, Rect{-2, 1, 8, 8}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EnclosePoints(tt.points)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("EnclosePoints(%v) = %+v, %v, want %+v, %v",
					tt.points, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}
