package rough

import "github.com/chewxy/math32"

// Triangle is an exact (unjittered) triangle, used for solid arrowheads.
// The vertex order is left point, tip, right point.
type Triangle [3]Point

// Arrow synthesizes an arrow from start to end: the shaft as one or two
// bowed lines, then an outlined head whose two edges are themselves bowed
// lines, doubled when multi-stroke is enabled. A zero-length arrow yields
// only the (degenerate) shaft.
func (g *Generator) Arrow(start, end Point, o Options) [][]Point {
	lines := make([][]Point, 0, 6)

	lines = append(lines, g.Line(start, end, o))
	if !o.DisableMultiStroke {
		lines = append(lines, g.Line(start, end, o))
	}

	d := end.Sub(start)
	length := d.Length()

	if length > 0 {
		left, right := g.arrowheadEdges(start, end, d, length, o, 10)

		lines = append(lines, g.Line(left, end, o))
		lines = append(lines, g.Line(right, end, o))

		if !o.DisableMultiStroke {
			lines = append(lines, g.Line(left, end, o))
			lines = append(lines, g.Line(right, end, o))
		}
	}

	if o.Dotted {
		return g.DottedLines(lines, o)
	}
	return lines
}

// ArrowSolidHead synthesizes the shaft exactly like Arrow but returns the
// head as a single exact triangle for solid fill instead of bowed-line
// outlines. The triangle is never jittered or dotted; dotting applies to
// the shaft only. A zero-length arrow returns a nil head.
func (g *Generator) ArrowSolidHead(start, end Point, o Options) ([][]Point, *Triangle) {
	shaft := make([][]Point, 0, 2)

	shaft = append(shaft, g.Line(start, end, o))
	if !o.DisableMultiStroke {
		shaft = append(shaft, g.Line(start, end, o))
	}

	d := end.Sub(start)
	length := d.Length()

	var head *Triangle
	if length > 0 {
		left, right := g.arrowheadEdges(start, end, d, length, o, 10)
		head = &Triangle{left, end, right}
	}

	if o.Dotted {
		shaft = g.DottedLines(shaft, o)
	}
	return shaft, head
}

// DottedArrow synthesizes a fully dotted arrow: a dotted shaft plus dense
// evenly spaced dot rows along each head edge, so the head reads clearly
// at dot spacing. Arrows shorter than 1 unit get no head.
func (g *Generator) DottedArrow(start, end Point, o Options) [][]Point {
	lines := [][]Point{g.DottedLine(start, end, o)}

	d := end.Sub(start)
	length := d.Length()
	if length < 1 {
		return lines
	}

	left, right := g.arrowheadEdges(start, end, d, length, o, 12)

	spacing := math32.Max(o.StrokeWidth*2, 6)
	if pts := denseDots(end, left, spacing); len(pts) > 0 {
		lines = append(lines, pts)
	}
	if pts := denseDots(end, right, spacing); len(pts) > 0 {
		lines = append(lines, pts)
	}

	return lines
}

// arrowheadEdges computes the two head-edge endpoints by rotating the
// shaft direction by a jittered half-angle around the tip. Head length is
// 20 +/- 5 jitter with the given floor, half-angle 0.5 +/- 0.1 radians.
// It draws randomness for the length first, then the angle.
func (g *Generator) arrowheadEdges(start, end, d Point, length float32, o Options, minHeadLen float32) (left, right Point) {
	headLen := math32.Max(20+g.offsetOpt(5, o, 1), minHeadLen)
	headAngle := 0.5 + g.offsetOpt(0.1, o, 1)

	dir := d.Mul(1 / length)
	cos := math32.Cos(headAngle)
	sin := math32.Sin(headAngle)

	left = Point{
		X: end.X - headLen*(dir.X*cos-dir.Y*sin),
		Y: end.Y - headLen*(dir.Y*cos+dir.X*sin),
	}
	right = Point{
		X: end.X - headLen*(dir.X*cos+dir.Y*sin),
		Y: end.Y - headLen*(dir.Y*cos-dir.X*sin),
	}
	return left, right
}

// denseDots places evenly spaced dot centers from p1 to p2 inclusive,
// at least two for any segment of 0.5 units or longer.
func denseDots(p1, p2 Point, spacing float32) []Point {
	d := p2.Sub(p1)
	segLen := d.Length()
	if segLen < 0.5 {
		return nil
	}

	count := int(math32.Floor(segLen / spacing))
	if count < 1 {
		count = 1
	}

	pts := make([]Point, 0, count+1)
	for i := 0; i <= count; i++ {
		t := float32(i) / float32(count)
		pts = append(pts, Point{X: p1.X + d.X*t, Y: p1.Y + d.Y*t})
	}
	return pts
}
