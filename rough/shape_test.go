package rough

import (
	"reflect"
	"testing"
)

func TestRectangle_MultiStrokeCount(t *testing.T) {
	tests := []struct {
		name         string
		disableMulti bool
		want         int
	}{
		{"multi stroke", false, 8},
		{"single stroke", true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions().WithMultiStroke(!tt.disableMulti)
			g := NewSeededGenerator(1)
			lines := g.Rectangle(Pt(0, 0), Pt(50, 30), o)
			if len(lines) != tt.want {
				t.Errorf("polylines = %d, want %d", len(lines), tt.want)
			}
		})
	}
}

func TestRectangle_Scenario(t *testing.T) {
	o := DefaultOptions().WithMultiStroke(false)
	g := NewSeededGenerator(1)

	lines := g.Rectangle(Pt(0, 0), Pt(50, 30), o)
	if len(lines) != 4 {
		t.Fatalf("polylines = %d, want 4", len(lines))
	}

	corners := []Point{Pt(0, 0), Pt(50, 0), Pt(50, 30), Pt(0, 30)}
	for i, line := range lines {
		// Edge i runs corner i to corner (i+1)%4; endpoints jitter at most
		// the configured max offset per axis.
		if !pointsEqual(line[0], corners[i], o.MaxRandomnessOffset) {
			t.Errorf("edge %d starts at %v, want near %v", i, line[0], corners[i])
		}
		next := corners[(i+1)%4]
		if !pointsEqual(line[len(line)-1], next, o.MaxRandomnessOffset) {
			t.Errorf("edge %d ends at %v, want near %v", i, line[len(line)-1], next)
		}
	}
}

func TestRectangle_Deterministic(t *testing.T) {
	o := DefaultOptions()

	lines1 := NewSeededGenerator(5).Rectangle(Pt(10, 10), Pt(80, 40), o)
	lines2 := NewSeededGenerator(5).Rectangle(Pt(10, 10), Pt(80, 40), o)
	if !reflect.DeepEqual(lines1, lines2) {
		t.Error("same seed produced different rectangles")
	}
}

func TestRectangle_PreserveVertices(t *testing.T) {
	o := DefaultOptions().WithMultiStroke(false).WithPreserveVertices(true)
	g := NewSeededGenerator(1)

	lines := g.Rectangle(Pt(0, 0), Pt(50, 30), o)
	corners := []Point{Pt(0, 0), Pt(50, 0), Pt(50, 30), Pt(0, 30)}
	for i, line := range lines {
		if line[0] != corners[i] {
			t.Errorf("edge %d starts at %v, want exactly %v", i, line[0], corners[i])
		}
	}
}

func TestRectangle_Dotted(t *testing.T) {
	o := DefaultOptions().WithMultiStroke(false).WithDotted(true)
	g := NewSeededGenerator(1)

	lines := g.Rectangle(Pt(0, 0), Pt(100, 60), o)
	if len(lines) == 0 {
		t.Fatal("dotted rectangle produced no dot sequences")
	}
	for i, line := range lines {
		if len(line) == 0 {
			t.Errorf("dot sequence %d is empty", i)
		}
	}
}

func TestDiamond_Corners(t *testing.T) {
	o := DefaultOptions().WithMultiStroke(false)
	g := NewSeededGenerator(1)

	lines := g.Diamond(Pt(0, 0), Pt(40, 20), o)
	if len(lines) != 4 {
		t.Fatalf("polylines = %d, want 4", len(lines))
	}

	// Edge midpoints of the bounding rectangle, walked clockwise from the top.
	corners := []Point{Pt(20, 0), Pt(40, 10), Pt(20, 20), Pt(0, 10)}
	for i, line := range lines {
		if !pointsEqual(line[0], corners[i], o.MaxRandomnessOffset) {
			t.Errorf("edge %d starts at %v, want near %v", i, line[0], corners[i])
		}
	}
}

func TestDiamond_MultiStrokeCount(t *testing.T) {
	o := DefaultOptions()
	g := NewSeededGenerator(1)

	if lines := g.Diamond(Pt(0, 0), Pt(40, 40), o); len(lines) != 8 {
		t.Errorf("polylines = %d, want 8", len(lines))
	}
}
