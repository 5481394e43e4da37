package rough

import (
	"reflect"
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-4

func pointsEqual(p1, p2 Point, eps float32) bool {
	return math32.Abs(p1.X-p2.X) < eps && math32.Abs(p1.Y-p2.Y) < eps
}

func TestLine_PointCount(t *testing.T) {
	o := DefaultOptions()

	tests := []struct {
		name       string
		start, end Point
	}{
		{"short", Pt(0, 0), Pt(10, 0)},
		{"medium", Pt(0, 0), Pt(100, 50)},
		{"long", Pt(-200, -100), Pt(600, 300)},
		{"vertical", Pt(5, 5), Pt(5, 305)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSeededGenerator(1)
			line := g.Line(tt.start, tt.end, o)
			if len(line) != 11 {
				t.Errorf("len = %d, want 11 (start + 10 Bezier samples)", len(line))
			}
		})
	}
}

func TestLine_PreserveVertices(t *testing.T) {
	o := DefaultOptions().WithPreserveVertices(true)
	g := NewSeededGenerator(1)

	start, end := Pt(3, 7), Pt(120, 40)
	line := g.Line(start, end, o)

	if line[0] != start {
		t.Errorf("first point = %v, want exactly %v", line[0], start)
	}
	if line[len(line)-1] != end {
		t.Errorf("last point = %v, want exactly %v", line[len(line)-1], end)
	}
}

func TestLine_EndpointJitterBounded(t *testing.T) {
	o := DefaultOptions()
	start, end := Pt(0, 0), Pt(100, 0)

	// Length 100 < 200: roughness gain 1, offset stays at the configured max.
	for seed := uint64(1); seed <= 20; seed++ {
		g := NewSeededGenerator(seed)
		line := g.Line(start, end, o)

		first, last := line[0], line[len(line)-1]
		if math32.Abs(first.X-start.X) > o.MaxRandomnessOffset ||
			math32.Abs(first.Y-start.Y) > o.MaxRandomnessOffset {
			t.Errorf("seed %d: start jitter %v exceeds %v", seed, first, o.MaxRandomnessOffset)
		}
		if math32.Abs(last.X-end.X) > o.MaxRandomnessOffset ||
			math32.Abs(last.Y-end.Y) > o.MaxRandomnessOffset {
			t.Errorf("seed %d: end jitter %v exceeds %v", seed, last, o.MaxRandomnessOffset)
		}
	}
}

func TestLine_ShortSegmentOffsetClamp(t *testing.T) {
	o := DefaultOptions()
	start, end := Pt(0, 0), Pt(4, 0)

	// offset^2 * 100 > length^2, so jitter shrinks to length/10 = 0.4.
	for seed := uint64(1); seed <= 10; seed++ {
		g := NewSeededGenerator(seed)
		line := g.Line(start, end, o)
		first := line[0]
		if math32.Abs(first.X) > 0.4 || math32.Abs(first.Y) > 0.4 {
			t.Errorf("seed %d: jitter %v exceeds clamped offset 0.4", seed, first)
		}
	}
}

func TestLine_Scenario(t *testing.T) {
	o := DefaultOptions()
	start, end := Pt(0, 0), Pt(100, 0)

	line1 := NewSeededGenerator(1).Line(start, end, o)
	line2 := NewSeededGenerator(1).Line(start, end, o)
	line3 := NewSeededGenerator(2).Line(start, end, o)

	if len(line1) == 0 {
		t.Fatal("empty output")
	}
	if !pointsEqual(line1[0], start, o.MaxRandomnessOffset) {
		t.Errorf("start %v not near %v", line1[0], start)
	}
	if !pointsEqual(line1[len(line1)-1], end, o.MaxRandomnessOffset) {
		t.Errorf("end %v not near %v", line1[len(line1)-1], end)
	}
	if !reflect.DeepEqual(line1, line2) {
		t.Error("same seed produced different lines")
	}
	if reflect.DeepEqual(line1, line3) {
		t.Error("different seeds produced identical lines")
	}
}

func TestLine_DottedDelegates(t *testing.T) {
	o := DefaultOptions().WithDotted(true)
	g := NewSeededGenerator(1)

	// Length 50, spacing max(1*4, 8) = 8: floor(50/8) = 6 dots.
	line := g.Line(Pt(0, 0), Pt(50, 0), o)
	if len(line) != 6 {
		t.Errorf("dotted line dots = %d, want 6", len(line))
	}
}

func TestDottedLine_Spacing(t *testing.T) {
	tests := []struct {
		name     string
		length   float32
		width    float32
		wantDots int
	}{
		{"default spacing", 80, 1, 10},
		{"wide stroke", 80, 4, 5},
		{"minimum dot floor", 6, 1, 1},
		{"just above floor", 5.5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions().WithStrokeWidth(tt.width)
			g := NewSeededGenerator(1)
			dots := g.DottedLine(Pt(0, 0), Pt(tt.length, 0), o)
			if len(dots) != tt.wantDots {
				t.Errorf("dots = %d, want %d", len(dots), tt.wantDots)
			}
		})
	}
}

func TestDottedLine_TooShortForDots(t *testing.T) {
	o := DefaultOptions()
	g := NewSeededGenerator(1)

	// Above 1 unit but at or below the 5-unit floor: no dots.
	if dots := g.DottedLine(Pt(0, 0), Pt(4, 0), o); dots != nil {
		t.Errorf("length-4 segment produced %d dots, want none", len(dots))
	}
}

func TestDottedLine_Degenerate(t *testing.T) {
	o := DefaultOptions()
	g := NewSeededGenerator(1)

	start, end := Pt(10, 10), Pt(10.5, 10)
	dots := g.DottedLine(start, end, o)
	if len(dots) != 2 || dots[0] != start || dots[1] != end {
		t.Errorf("sub-unit segment = %v, want the raw endpoints", dots)
	}
}

func TestDottedLine_CentersOnSegment(t *testing.T) {
	o := DefaultOptions()
	g := NewSeededGenerator(1)

	start, end := Pt(0, 0), Pt(100, 0)
	dots := g.DottedLine(start, end, o)
	for i, d := range dots {
		if d.X < -1 || d.X > 101 {
			t.Errorf("dot %d at %v strays off the segment", i, d)
		}
		if math32.Abs(d.Y) > 1 {
			t.Errorf("dot %d at %v strays off the segment axis", i, d)
		}
	}
}

func TestDottedLines_ResegmentsPairs(t *testing.T) {
	o := DefaultOptions().WithDotted(true)
	g := NewSeededGenerator(1)

	lines := [][]Point{
		{Pt(0, 0), Pt(10, 0), Pt(20, 0)},
		{Pt(0, 0)}, // too short, skipped
	}
	dotted := g.DottedLines(lines, o)

	if len(dotted) != 2 {
		t.Fatalf("dotted segments = %d, want 2 (one per point pair)", len(dotted))
	}
	for i, seg := range dotted {
		if len(seg) == 0 {
			t.Errorf("segment %d is empty", i)
		}
	}
}

func TestDottedLines_PassthroughWhenSolid(t *testing.T) {
	o := DefaultOptions()
	g := NewSeededGenerator(1)

	lines := [][]Point{{Pt(0, 0), Pt(10, 0)}}
	got := g.DottedLines(lines, o)
	if !reflect.DeepEqual(got, lines) {
		t.Error("solid options should return input unchanged")
	}
}
