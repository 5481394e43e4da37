package rough

import "github.com/chewxy/math32"

// Line synthesizes one perturbed polyline approximating a hand-drawn
// straight line between start and end. The result is the jittered start
// point followed by 10 cubic Bezier samples, 11 points total. In dotted
// mode it returns evenly spaced dot centers instead (see DottedLine).
//
// The sequence of random draws is part of the contract: reordering them
// changes every subsequent jitter value for the element.
func (g *Generator) Line(start, end Point, o Options) []Point {
	if o.Dotted {
		return g.DottedLine(start, end, o)
	}

	lengthSq := start.Sub(end).LengthSquared()
	length := math32.Sqrt(lengthSq)

	// Longer strokes get proportionally less visible wobble.
	roughnessGain := float32(1.0)
	switch {
	case length < 200:
		roughnessGain = 1.0
	case length > 500:
		roughnessGain = 0.4
	default:
		roughnessGain = -0.0016668*length + 1.233334
	}

	// Keep jitter from dwarfing very short segments.
	offset := o.MaxRandomnessOffset
	if offset*offset*100 > lengthSq {
		offset = length / 10
	}

	divergePoint := 0.2 + g.random()*0.2

	midDispX := o.Bowing * o.MaxRandomnessOffset * (end.Y - start.Y) / 200
	midDispY := o.Bowing * o.MaxRandomnessOffset * (start.X - end.X) / 200
	midDispX += g.offsetOpt(midDispX, o, roughnessGain)
	midDispY += g.offsetOpt(midDispY, o, roughnessGain)

	points := make([]Point, 0, 11)

	var startXOff, startYOff float32
	if !o.PreserveVertices {
		startXOff = g.offsetOpt(offset, o, roughnessGain)
		startYOff = g.offsetOpt(offset, o, roughnessGain)
	}
	points = append(points, Point{X: start.X + startXOff, Y: start.Y + startYOff})

	cp1 := Point{
		X: midDispX + start.X + (end.X-start.X)*divergePoint + g.offsetOpt(offset, o, roughnessGain),
		Y: midDispY + start.Y + (end.Y-start.Y)*divergePoint + g.offsetOpt(offset, o, roughnessGain),
	}
	cp2 := Point{
		X: midDispX + start.X + 2*(end.X-start.X)*divergePoint + g.offsetOpt(offset, o, roughnessGain),
		Y: midDispY + start.Y + 2*(end.Y-start.Y)*divergePoint + g.offsetOpt(offset, o, roughnessGain),
	}

	var endXOff, endYOff float32
	if !o.PreserveVertices {
		endXOff = g.offsetOpt(offset, o, roughnessGain)
		endYOff = g.offsetOpt(offset, o, roughnessGain)
	}

	bez := CubicBez{
		P0: points[0],
		P1: cp1,
		P2: cp2,
		P3: Point{X: end.X + endXOff, Y: end.Y + endYOff},
	}
	return append(points, bez.Sample(10)...)
}

// DottedLine divides the segment into evenly spaced dot centers with a
// slight jitter per dot. Dot spacing is max(StrokeWidth*4, 8); segments
// longer than 5 units always produce at least one dot so short arrowhead
// edges still render. Segments shorter than 1 unit return the two
// endpoints unchanged.
func (g *Generator) DottedLine(start, end Point, o Options) []Point {
	d := end.Sub(start)
	totalLength := d.Length()

	if totalLength < 1 {
		return []Point{start, end}
	}

	dotSpacing := math32.Max(o.StrokeWidth*4, 8)
	numDots := int(math32.Floor(totalLength / dotSpacing))
	if numDots == 0 && totalLength > 5 {
		numDots = 1
	}
	if numDots == 0 {
		return nil
	}

	dir := d.Mul(1 / totalLength)

	points := make([]Point, 0, numDots)
	for i := 0; i < numDots; i++ {
		// Center each dot in its segment.
		t := (float32(i) + 0.5) / float32(numDots)
		basePos := t * totalLength

		offset := g.offsetOpt(o.StrokeWidth*0.3, o, 0.3)
		actualPos := clamp32(basePos+offset, 0, totalLength)

		points = append(points, Point{
			X: start.X + dir.X*actualPos + g.offsetOpt(o.StrokeWidth*0.2, o, 0.2),
			Y: start.Y + dir.Y*actualPos + g.offsetOpt(o.StrokeWidth*0.2, o, 0.2),
		})
	}

	return points
}

// DottedLines converts already-synthesized solid polylines into dotted
// variants by re-segmenting each consecutive point pair through
// DottedLine. Shapes use this so their edge logic stays dotted-agnostic.
// When the options are not dotted the input is returned unchanged.
func (g *Generator) DottedLines(lines [][]Point, o Options) [][]Point {
	if !o.Dotted {
		return lines
	}

	dotOptions := o.Clone()
	dotOptions.Dotted = false

	dotted := make([][]Point, 0, len(lines))
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		for i := 0; i < len(line)-1; i++ {
			segment := g.DottedLine(line[i], line[i+1], dotOptions)
			if len(segment) > 0 {
				dotted = append(dotted, segment)
			}
		}
	}

	return dotted
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
