package contour

import (
	"image"
	"testing"
)

func TestOrientation_Turned(t *testing.T) {
	tests := []struct {
		o     Orientation
		steps int
		want  Orientation
	}{
		{East, 2, South},
		{East, -2, North},
		{North, -2, West},
		{West, 2, North},
		{South, 4, North},
		{East, 8, East},
		{North, -8, North},
	}
	for _, tt := range tests {
		if got := tt.o.turned(tt.steps); got != tt.want {
			t.Errorf("%v.turned(%d) = %v, want %v", tt.o, tt.steps, got, tt.want)
		}
	}
}

func TestOrientation_Offsets(t *testing.T) {
	// Opposite headings must have opposite offsets.
	for o := North; o <= NorthWest; o++ {
		opp := o.turned(4)
		if got := o.offset().Add(opp.offset()); got != (image.Point{}) {
			t.Errorf("%v.offset() + %v.offset() = %v, want (0,0)", o, opp, got)
		}
	}
}

func TestOrientation_Horizontal(t *testing.T) {
	for o := North; o <= NorthWest; o++ {
		want := o == North || o == South
		if got := o.horizontal(); got != want {
			t.Errorf("%v.horizontal() = %v, want %v", o, got, want)
		}
	}
}

func TestOrientation_String(t *testing.T) {
	tests := []struct {
		o    Orientation
		want string
	}{
		{North, "N"},
		{East, "E"},
		{SouthWest, "SW"},
		{Orientation(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Orientation(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}
