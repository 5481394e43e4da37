package rough

import "github.com/chewxy/math32"

// Ellipse synthesizes a hand-drawn ellipse centered at center with the
// given total width and height. The curve is walked point by point with
// jittered radii and angular increments, closing with a slight organic
// overshoot. Multi-stroke adds a second, slightly calmer pass at 0.8x
// roughness.
func (g *Generator) Ellipse(center Point, width, height float32, o Options) [][]Point {
	rx := width / 2
	ry := height / 2

	stepVariation := int(g.random() * 4)
	stepCount := o.CurveStepCount + stepVariation
	if stepCount < 16 {
		stepCount = 16
	}
	if stepCount > 48 {
		stepCount = 48
	}
	increment := 2 * math32.Pi / float32(stepCount)

	rxOffset := rx + g.offsetOpt(rx*0.02, o, 1)
	ryOffset := ry + g.offsetOpt(ry*0.02, o, 1)

	overlap := increment * g.offset(0.05, 0.1, o, 1)
	points := g.computeEllipsePoints(increment, center, rxOffset, ryOffset, 1, overlap, o, stepCount)

	result := [][]Point{points}

	if !o.DisableMultiStroke {
		stroke2 := o.Clone()
		stroke2.Roughness = o.Roughness * 0.8

		rxOffset2 := rx + g.offsetOpt(rx*0.01, stroke2, 1)
		ryOffset2 := ry + g.offsetOpt(ry*0.01, stroke2, 1)
		overlap2 := increment * g.offset(0.02, 0.05, stroke2, 1)
		points2 := g.computeEllipsePoints(increment, center, rxOffset2, ryOffset2, 0.5, overlap2, stroke2, stepCount)

		result = append(result, points2)
	}

	if o.Dotted {
		return g.DottedLines(result, o)
	}
	return result
}

// Circle synthesizes a hand-drawn circle of the given radius.
func (g *Generator) Circle(center Point, radius float32, o Options) [][]Point {
	return g.Ellipse(center, radius*2, radius*2, o)
}

// computeEllipsePoints walks the ellipse from a randomized starting angle
// to a full turn plus overlap, perturbing radius and angular increment per
// step, and appends start-radius, end-radius and closure boundary points so
// the curve closes with an overshoot. At roughness 0 it takes a clean fast
// path with small radius variation only.
func (g *Generator) computeEllipsePoints(increment float32, center Point, rx, ry, offset, overlap float32, o Options, stepCount int) []Point {
	var points []Point

	if o.Roughness == 0 {
		for angle := -increment; angle <= 2*math32.Pi; angle += increment {
			radiusVarX := rx + g.offsetOpt(0.2, o, 0.05)
			radiusVarY := ry + g.offsetOpt(0.2, o, 0.05)
			points = append(points, Point{
				X: center.X + radiusVarX*math32.Cos(angle),
				Y: center.Y + radiusVarY*math32.Sin(angle),
			})
		}
		return points
	}

	radOffset := g.offsetOpt(0.1, o, 1) - math32.Pi/2

	startRadiusVariation := 0.98 + g.random()*0.04
	points = append(points, Point{
		X: g.offsetOpt(offset*0.3, o, 1) + center.X + startRadiusVariation*rx*math32.Cos(radOffset-increment),
		Y: g.offsetOpt(offset*0.3, o, 1) + center.Y + startRadiusVariation*ry*math32.Sin(radOffset-increment),
	})

	endAngle := 2*math32.Pi + radOffset + overlap
	segmentIdx := 0

	for angle := radOffset; angle < endAngle; {
		segmentProgress := float32(segmentIdx) / float32(stepCount)

		// Low-frequency waves make the radius drift organically instead
		// of buzzing point to point.
		wave1 := math32.Sin(segmentProgress*math32.Pi*3) * 0.01
		wave2 := math32.Cos(segmentProgress*math32.Pi*5) * 0.005
		radiusModifier := 1 + wave1 + wave2 + g.offsetOpt(0.02, o, 1)
		radiusModifier = clamp32(radiusModifier, 0.95, 1.05)

		pointRx := rx*radiusModifier + g.offsetOpt(rx*0.01, o, 1)
		pointRy := ry*radiusModifier + g.offsetOpt(ry*0.01, o, 1)
		pointRx = clamp32(pointRx, rx*0.92, rx*1.08)
		pointRy = clamp32(pointRy, ry*0.92, ry*1.08)

		points = append(points, Point{
			X: g.offsetOpt(offset*0.2, o, 1) + center.X + pointRx*math32.Cos(angle),
			Y: g.offsetOpt(offset*0.2, o, 1) + center.Y + pointRy*math32.Sin(angle),
		})

		angle += increment * (0.95 + g.random()*0.1)
		segmentIdx++
	}

	endRadiusVariation := 0.96 + g.random()*0.08
	points = append(points, Point{
		X: g.offsetOpt(offset*0.5, o, 1) + center.X + endRadiusVariation*rx*math32.Cos(radOffset+2*math32.Pi+overlap*0.5),
		Y: g.offsetOpt(offset*0.5, o, 1) + center.Y + endRadiusVariation*ry*math32.Sin(radOffset+2*math32.Pi+overlap*0.5),
	})

	closureVariation := 0.95 + g.random()*0.1
	points = append(points, Point{
		X: g.offsetOpt(offset*0.3, o, 1) + center.X + closureVariation*rx*math32.Cos(radOffset+overlap),
		Y: g.offsetOpt(offset*0.3, o, 1) + center.Y + closureVariation*ry*math32.Sin(radOffset+overlap),
	})

	return points
}
