package rough

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1) using the cubic
// Bernstein basis.
func (c CubicBez) Eval(t float32) Point {
	u := 1 - t
	tt := t * t
	uu := u * u
	uuu := uu * u
	ttt := tt * t

	return Point{
		X: uuu*c.P0.X + 3*uu*t*c.P1.X + 3*u*tt*c.P2.X + ttt*c.P3.X,
		Y: uuu*c.P0.Y + 3*uu*t*c.P1.Y + 3*u*tt*c.P2.Y + ttt*c.P3.Y,
	}
}

// Sample returns segments points along the curve at t = i/segments for
// i in 1..segments. The start point P0 is not included.
func (c CubicBez) Sample(segments int) []Point {
	points := make([]Point, 0, segments)
	for i := 1; i <= segments; i++ {
		t := float32(i) / float32(segments)
		points = append(points, c.Eval(t))
	}
	return points
}

// CurveThroughPoints fits a smooth curve through the given points using
// Catmull-Rom style interpolation converted to cubic Bezier spans, each
// sampled at 8 steps. The tightness parameter comes from
// Options.CurveTightness; 0 gives the classic Catmull-Rom shape. If close
// is set and there are more than two points, the first point is appended
// again to close the curve.
func CurveThroughPoints(points []Point, close bool, o Options) []Point {
	if len(points) < 2 {
		return points
	}

	extended := make([]Point, 0, len(points)+3)
	extended = append(extended, points[0], points[0])
	extended = append(extended, points...)
	extended = append(extended, points[len(points)-1])

	if len(extended) <= 3 {
		return points
	}

	s := 1 - o.CurveTightness
	curve := make([]Point, 0, 1+8*(len(extended)-3))
	curve = append(curve, extended[1])

	for i := 1; i < len(extended)-2; i++ {
		p0 := extended[i-1]
		p1 := extended[i]
		p2 := extended[i+1]
		p3 := extended[i+2]

		cp1 := Point{
			X: p1.X + (s*p2.X-s*p0.X)/6,
			Y: p1.Y + (s*p2.Y-s*p0.Y)/6,
		}
		cp2 := Point{
			X: p2.X + (s*p1.X-s*p3.X)/6,
			Y: p2.Y + (s*p1.Y-s*p3.Y)/6,
		}

		curve = append(curve, CubicBez{P0: p1, P1: cp1, P2: cp2, P3: p2}.Sample(8)...)
	}

	if close && len(points) > 2 {
		curve = append(curve, extended[1])
	}

	return curve
}
