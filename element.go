package wcanvas

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"

	"github.com/tspython/wcanvas/rough"
)

// Tool identifies the palette tool that creates an element.
type Tool int

// Palette tools.
const (
	ToolPen Tool = iota
	ToolRectangle
	ToolDiamond
	ToolCircle
	ToolArrow
	ToolText
	ToolEraser
	ToolSelect
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolRectangle:
		return "rectangle"
	case ToolDiamond:
		return "diamond"
	case ToolCircle:
		return "circle"
	case ToolArrow:
		return "arrow"
	case ToolText:
		return "text"
	case ToolEraser:
		return "eraser"
	case ToolSelect:
		return "select"
	}
	return "unknown"
}

// Element is a finalized drawing element: one variant per shape kind, each
// carrying its own immutable geometric parameters, color and style. The
// style's seed is frozen when the element is finalized, so re-synthesis
// reproduces the same sketch look in any redraw order.
type Element interface {
	// Tool reports which palette tool the element belongs to.
	Tool() Tool
}

// StrokeElement is a freehand pen stroke with its recorded points.
type StrokeElement struct {
	Points []rough.Point
	Color  f32.Vec4
	Width  float32
}

// Tool returns ToolPen.
func (StrokeElement) Tool() Tool { return ToolPen }

// RectangleElement is an axis-aligned rectangle at Position (top-left)
// with the given Size.
type RectangleElement struct {
	Position rough.Point
	Size     rough.Point
	Color    f32.Vec4
	Fill     bool
	Style    rough.Options
}

// Tool returns ToolRectangle.
func (RectangleElement) Tool() Tool { return ToolRectangle }

// DiamondElement is a diamond inscribed in the rectangle at Position/Size.
type DiamondElement struct {
	Position rough.Point
	Size     rough.Point
	Color    f32.Vec4
	Style    rough.Options
}

// Tool returns ToolDiamond.
func (DiamondElement) Tool() Tool { return ToolDiamond }

// CircleElement is a circle around Center.
type CircleElement struct {
	Center rough.Point
	Radius float32
	Color  f32.Vec4
	Fill   bool
	Style  rough.Options
}

// Tool returns ToolCircle.
func (CircleElement) Tool() Tool { return ToolCircle }

// ArrowElement is an arrow from Start to End. With SolidHead the head is
// rendered as one exact filled triangle instead of sketched outlines.
type ArrowElement struct {
	Start     rough.Point
	End       rough.Point
	Color     f32.Vec4
	SolidHead bool
	Style     rough.Options
}

// Tool returns ToolArrow.
func (ArrowElement) Tool() Tool { return ToolArrow }

// Synthesize turns a finalized element into renderable mesh fragments.
// It constructs a fresh rough.Generator from the element's style seed, so
// calling it twice for the same element yields identical geometry.
// Elements without a geometric rendering (text, eraser, select) yield nil.
func Synthesize(el Element) []rough.Mesh {
	var meshes []rough.Mesh

	switch e := el.(type) {
	case StrokeElement:
		meshes = append(meshes, rough.StrokeMesh(e.Points, e.Color, e.Width))

	case RectangleElement:
		if e.Fill {
			meshes = append(meshes, fillQuadMesh(corners(e.Position, e.Size), e.Color))
			break
		}
		gen := rough.NewGenerator(e.Style)
		meshes = lineMeshes(gen.Rectangle(e.Position, e.Size, e.Style), e.Color, e.Style)

	case DiamondElement:
		gen := rough.NewGenerator(e.Style)
		meshes = lineMeshes(gen.Diamond(e.Position, e.Size, e.Style), e.Color, e.Style)

	case CircleElement:
		if e.Fill {
			meshes = append(meshes, fillCircleMesh(e.Center, e.Radius, e.Color))
			break
		}
		gen := rough.NewGenerator(e.Style)
		meshes = lineMeshes(gen.Circle(e.Center, e.Radius, e.Style), e.Color, e.Style)

	case ArrowElement:
		gen := rough.NewGenerator(e.Style)
		if e.SolidHead {
			shaft, head := gen.ArrowSolidHead(e.Start, e.End, e.Style)
			meshes = lineMeshes(shaft, e.Color, e.Style)
			if head != nil {
				meshes = append(meshes, rough.TriangleMesh(*head, e.Color))
			}
		} else {
			meshes = lineMeshes(gen.Arrow(e.Start, e.End, e.Style), e.Color, e.Style)
		}
	}

	Logger().Debug("synthesized element",
		"tool", el.Tool().String(),
		"fragments", len(meshes),
	)
	return meshes
}

// SynthesizeAll synthesizes every element and packs the fragments into a
// single mesh for one vertex/index buffer upload.
func SynthesizeAll(elements []Element) rough.Mesh {
	var combined rough.Mesh
	for _, el := range elements {
		for _, m := range Synthesize(el) {
			combined.Append(m)
		}
	}
	return combined
}

// lineMeshes triangulates synthesized polylines, as pill capsules in
// dotted mode and thick quad strips otherwise.
func lineMeshes(lines [][]rough.Point, color f32.Vec4, o rough.Options) []rough.Mesh {
	meshes := make([]rough.Mesh, 0, len(lines))
	for _, line := range lines {
		var m rough.Mesh
		if o.Dotted {
			m = rough.DottedMesh(line, color, o.StrokeWidth)
		} else {
			m = rough.StrokeMesh(line, color, o.StrokeWidth)
		}
		if len(m.Indices) > 0 {
			meshes = append(meshes, m)
		}
	}
	return meshes
}

func corners(position, size rough.Point) [4]rough.Point {
	return [4]rough.Point{
		position,
		{X: position.X + size.X, Y: position.Y},
		{X: position.X + size.X, Y: position.Y + size.Y},
		{X: position.X, Y: position.Y + size.Y},
	}
}

// fillQuadMesh fills a convex quad with two triangles.
func fillQuadMesh(c [4]rough.Point, color f32.Vec4) rough.Mesh {
	mesh := rough.Mesh{Indices: []uint16{0, 1, 2, 0, 2, 3}}
	for _, p := range c {
		mesh.Vertices = append(mesh.Vertices, rough.Vertex{
			Position: f32.Vec2{p.X, p.Y},
			Color:    color,
		})
	}
	return mesh
}

// circleFillSegments is the fan resolution for filled circles.
const circleFillSegments = 32

// fillCircleMesh fills a circle with a triangle fan around its center.
func fillCircleMesh(center rough.Point, radius float32, color f32.Vec4) rough.Mesh {
	mesh := rough.Mesh{
		Vertices: []rough.Vertex{{
			Position: f32.Vec2{center.X, center.Y},
			Color:    color,
		}},
	}

	for i := 0; i < circleFillSegments; i++ {
		angle := float32(i) * 2 * math32.Pi / circleFillSegments
		mesh.Vertices = append(mesh.Vertices, rough.Vertex{
			Position: f32.Vec2{
				center.X + math32.Cos(angle)*radius,
				center.Y + math32.Sin(angle)*radius,
			},
			Color: color,
		})
	}
	for i := uint16(0); i < circleFillSegments; i++ {
		mesh.Indices = append(mesh.Indices, 0, 1+i, 1+(i+1)%circleFillSegments)
	}
	return mesh
}
