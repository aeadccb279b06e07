package geom

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestAdjacent(t *testing.T) {
	tests := []struct {
		a, b gruid.Point
		want bool
	}{
		{gruid.Point{X: 0, Y: 0}, gruid.Point{X: 0, Y: 0}, false},
		{gruid.Point{X: 10, Y: 10}, gruid.Point{X: 11, Y: 11}, true},
		{gruid.Point{X: 5, Y: 5}, gruid.Point{X: 5, Y: 4}, true},
		{gruid.Point{X: 5, Y: 5}, gruid.Point{X: 7, Y: 5}, false},
	}
	for _, tt := range tests {
		if got := Adjacent(tt.a, tt.b); got != tt.want {
			t.Errorf("Adjacent(%v, %v): expected %v, got %v", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	rg := gruid.NewRange(0, 0, 20, 10)
	if got := Clamp(gruid.Point{X: -3, Y: 12}, rg); got != (gruid.Point{X: 0, Y: 9}) {
		t.Errorf("Expected (0,9), got %v", got)
	}
	in := gruid.Point{X: 4, Y: 4}
	if got := Clamp(in, rg); got != in {
		t.Errorf("Expected in-bounds point unchanged, got %v", got)
	}
}

func TestRingSizes(t *testing.T) {
	rg := gruid.NewRange(0, 0, 40, 40)
	c := gruid.Point{X: 20, Y: 20}
	for r, want := range []int{1, 8, 16, 24} {
		if got := len(Ring(c, r, rg)); got != want {
			t.Errorf("Radius %d: expected %d cells, got %d", r, want, got)
		}
	}
	if got := len(Ring(gruid.Point{}, 1, rg)); got != 3 {
		t.Errorf("Expected corner ring clipped to 3 cells, got %d", got)
	}
}
