package rough

// Rectangle synthesizes a hand-drawn rectangle as one polyline per edge
// in order top, right, bottom, left, each edge doubled when multi-stroke
// is enabled. Position is the top-left corner.
func (g *Generator) Rectangle(position, size Point, o Options) [][]Point {
	corners := [4]Point{
		position,
		{X: position.X + size.X, Y: position.Y},
		{X: position.X + size.X, Y: position.Y + size.Y},
		{X: position.X, Y: position.Y + size.Y},
	}
	return g.polygonEdges(corners, o)
}

// Diamond synthesizes a hand-drawn diamond inscribed in the rectangle at
// position/size: the rectangle's edge midpoints become the corners.
func (g *Generator) Diamond(position, size Point, o Options) [][]Point {
	centerX := position.X + size.X/2
	centerY := position.Y + size.Y/2

	corners := [4]Point{
		{X: centerX, Y: position.Y},
		{X: position.X + size.X, Y: centerY},
		{X: centerX, Y: position.Y + size.Y},
		{X: position.X, Y: centerY},
	}
	return g.polygonEdges(corners, o)
}

// polygonEdges strokes each edge of a closed 4-corner polygon in corner
// order, doubling edges unless multi-stroke is disabled, then applies
// the dotted conversion if requested.
func (g *Generator) polygonEdges(corners [4]Point, o Options) [][]Point {
	lines := make([][]Point, 0, 8)

	for i := 0; i < 4; i++ {
		start := corners[i]
		end := corners[(i+1)%4]

		lines = append(lines, g.Line(start, end, o))
		if !o.DisableMultiStroke {
			lines = append(lines, g.Line(start, end, o))
		}
	}

	if o.Dotted {
		return g.DottedLines(lines, o)
	}
	return lines
}
