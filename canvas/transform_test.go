package canvas

import (
	"testing"
)

const epsilon = 1e-4

func vecEqual(a, b [2]float32, eps float32) bool {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= eps && dy <= eps
}

func TestTransform_Identity(t *testing.T) {
	tr := NewTransform()
	p := [2]float32{123, -45}

	if got := tr.ScreenToCanvas(p); got != p {
		t.Errorf("identity ScreenToCanvas(%v) = %v", p, got)
	}
	if got := tr.CanvasToScreen(p); got != p {
		t.Errorf("identity CanvasToScreen(%v) = %v", p, got)
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	tr := NewTransform().Pan(120, -40).ZoomAt(1.5, [2]float32{300, 200})
	points := [][2]float32{
		{0, 0},
		{640, 360},
		{-50, 900},
	}

	for _, p := range points {
		canvas := tr.ScreenToCanvas(p)
		back := tr.CanvasToScreen(canvas)
		if !vecEqual(back, p, epsilon) {
			t.Errorf("round trip of %v = %v", p, back)
		}
	}
}

func TestTransform_Pan(t *testing.T) {
	tr := NewTransform().Pan(10, 20)

	got := tr.ScreenToCanvas([2]float32{10, 20})
	if !vecEqual(got, [2]float32{0, 0}, epsilon) {
		t.Errorf("panned origin maps to %v, want (0, 0)", got)
	}
	// Pan is value semantics: the original is untouched.
	if orig := NewTransform(); orig.Offset != [2]float32{0, 0} {
		t.Error("Pan mutated its receiver")
	}
}

func TestTransform_ZoomAtKeepsAnchor(t *testing.T) {
	tr := NewTransform().Pan(50, 30)
	cursor := [2]float32{400, 250}
	before := tr.ScreenToCanvas(cursor)

	zoomed := tr.ZoomAt(2, cursor)
	after := zoomed.ScreenToCanvas(cursor)

	if !vecEqual(after, before, epsilon) {
		t.Errorf("canvas point under cursor moved from %v to %v", before, after)
	}
	if zoomed.Scale != 2 {
		t.Errorf("scale = %v, want 2", zoomed.Scale)
	}
}

func TestTransform_ZoomAccumulates(t *testing.T) {
	tr := NewTransform().
		ZoomAt(2, [2]float32{100, 100}).
		ZoomAt(0.5, [2]float32{100, 100})

	if tr.Scale != 1 {
		t.Errorf("scale after zoom in/out = %v, want 1", tr.Scale)
	}
	got := tr.ScreenToCanvas([2]float32{100, 100})
	if !vecEqual(got, [2]float32{100, 100}, epsilon) {
		t.Errorf("anchor drifted to %v", got)
	}
}
