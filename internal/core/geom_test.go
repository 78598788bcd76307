package core

import "testing"

func TestRectIntersects(t *testing.T) {
	runner := NewRect(56, 244, 18, 32)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"cactus overlapping body", NewRect(70, 250, 16, 30), true},
		{"cactus touching right edge", NewRect(74, 250, 16, 30), false},
		{"cactus one unit inside", NewRect(73, 250, 16, 30), true},
		{"cactus past the runner", NewRect(20, 250, 16, 30), false},
		{"bird touching the top", NewRect(56, 230, 18, 14), false},
		{"bird a fraction lower", NewRect(56, 230.5, 18, 14), true},
		{"box inside body", NewRect(60, 250, 2, 2), true},
		{"zero-size box on the edge", NewRect(74, 250, 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := runner.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(runner); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(50, 240, 30, 40)

	if r.Right() != 80 {
		t.Errorf("Right() = %v, expected 80", r.Right())
	}
	if r.Bottom() != 280 {
		t.Errorf("Bottom() = %v, expected 280", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name           string
		r              Rect
		fx, fy, fw, fh float64
		want           Rect
	}{
		{"standing body", NewRect(50, 240, 30, 40), 0.2, 0.1, 0.6, 0.8, NewRect(56, 244, 18, 32)},
		{"identity", NewRect(10, 20, 30, 40), 0, 0, 1, 1, NewRect(10, 20, 30, 40)},
		{"wing above the sprite", NewRect(100, 200, 30, 20), 0.35, -0.3, 0.3, 0.4, NewRect(110.5, 194, 9, 8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.fx, tc.fy, tc.fw, tc.fh); got != tc.want {
				t.Errorf("Inset() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{0.5, 0.5},
		{-0.25, 0},
		{1.5, 1},
		{0, 0},
		{1, 1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, 0, 1); got != tc.expected {
			t.Errorf("ClampF(%v, 0, 1) = %v, expected %v", tc.val, got, tc.expected)
		}
	}
}
