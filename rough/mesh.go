package rough

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vertex is one renderable vertex: a 2D canvas-space position and an
// RGBA color, laid out the way the GPU pipeline consumes it.
type Vertex struct {
	Position f32.Vec2
	Color    f32.Vec4
}

// Mesh is a self-contained vertex+index pair representing one renderable
// triangle set. Indices always come in multiples of 3 and every index is
// less than the vertex count.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Append merges another mesh into m, rebasing the appended indices past
// the existing vertices.
func (m *Mesh) Append(other Mesh) {
	base := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// StrokeMesh triangulates a solid polyline into a thick quad strip: 4
// vertices and 2 triangles per consecutive point pair, offset by half the
// width along the segment's perpendicular. Zero-length segments are
// skipped so degenerate input never produces NaN geometry.
func StrokeMesh(points []Point, color f32.Vec4, width float32) Mesh {
	var mesh Mesh
	indexOffset := uint16(0)

	for i := 0; i+1 < len(points); i++ {
		p1 := points[i]
		p2 := points[i+1]

		d := p2.Sub(p1)
		length := d.Length()
		if length <= 0 {
			continue
		}

		nx := -d.Y / length * width * 0.5
		ny := d.X / length * width * 0.5

		mesh.Vertices = append(mesh.Vertices,
			Vertex{Position: f32.Vec2{p1.X - nx, p1.Y - ny}, Color: color},
			Vertex{Position: f32.Vec2{p1.X + nx, p1.Y + ny}, Color: color},
			Vertex{Position: f32.Vec2{p2.X + nx, p2.Y + ny}, Color: color},
			Vertex{Position: f32.Vec2{p2.X - nx, p2.Y - ny}, Color: color},
		)
		mesh.Indices = append(mesh.Indices,
			indexOffset, indexOffset+1, indexOffset+2,
			indexOffset, indexOffset+2, indexOffset+3,
		)
		indexOffset += 4
	}

	return mesh
}

// pill capsule tessellation constants for dotted strokes.
const (
	pillSegmentsPerCap = 6
	pillTotalSegments  = pillSegmentsPerCap * 2
)

// DottedMesh triangulates dot centers into pill capsules: each dot gets a
// center vertex plus two 6-vertex end caps, fan-triangulated in both
// windings so the pill fills correctly regardless of rotation sign. Each
// pill is rotated to follow the direction of its neighboring dots (end
// dots use their single neighbor, interior dots average both).
func DottedMesh(points []Point, color f32.Vec4, width float32) Mesh {
	var mesh Mesh
	indexOffset := uint16(0)

	pillLength := width * 2
	pillRadius := width * 0.5
	halfLength := pillLength * 0.5

	for i, dotCenter := range points {
		rotation := dotRotation(points, i)
		cosRot := math32.Cos(rotation)
		sinRot := math32.Sin(rotation)

		mesh.Vertices = append(mesh.Vertices, Vertex{
			Position: f32.Vec2{dotCenter.X, dotCenter.Y},
			Color:    color,
		})
		centerIdx := indexOffset
		indexOffset++

		// Right cap sweeps -pi/2..pi/2, left cap pi/2..3pi/2, each at the
		// pill's half-length offset, rotated into place around the center.
		for j := 0; j < pillSegmentsPerCap; j++ {
			angle := float32(j)/float32(pillSegmentsPerCap-1)*math32.Pi - math32.Pi*0.5
			localX := halfLength + pillRadius*math32.Cos(angle)
			localY := pillRadius * math32.Sin(angle)

			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: f32.Vec2{
					dotCenter.X + localX*cosRot - localY*sinRot,
					dotCenter.Y + localX*sinRot + localY*cosRot,
				},
				Color: color,
			})
		}
		for j := 0; j < pillSegmentsPerCap; j++ {
			angle := float32(j)/float32(pillSegmentsPerCap-1)*math32.Pi + math32.Pi*0.5
			localX := -halfLength + pillRadius*math32.Cos(angle)
			localY := pillRadius * math32.Sin(angle)

			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: f32.Vec2{
					dotCenter.X + localX*cosRot - localY*sinRot,
					dotCenter.Y + localX*sinRot + localY*cosRot,
				},
				Color: color,
			})
		}

		for j := uint16(0); j < pillTotalSegments; j++ {
			current := indexOffset + j
			next := indexOffset + (j+1)%pillTotalSegments

			mesh.Indices = append(mesh.Indices,
				centerIdx, current, next,
				centerIdx, next, current,
			)
		}

		indexOffset += pillTotalSegments
	}

	return mesh
}

// dotRotation derives a dot's pill orientation from its neighbors: end
// dots point toward/away from their single neighbor, interior dots use
// the average of the two adjacent directions.
func dotRotation(points []Point, i int) float32 {
	if len(points) <= 1 {
		return 0
	}
	switch {
	case i == 0:
		d := points[1].Sub(points[0])
		return math32.Atan2(d.Y, d.X)
	case i == len(points)-1:
		d := points[i].Sub(points[i-1])
		return math32.Atan2(d.Y, d.X)
	default:
		d1 := points[i].Sub(points[i-1])
		d2 := points[i+1].Sub(points[i])
		return (math32.Atan2(d1.Y, d1.X) + math32.Atan2(d2.Y, d2.X)) * 0.5
	}
}

// TriangleMesh builds a single solid triangle, used for filled arrowheads.
func TriangleMesh(tri Triangle, color f32.Vec4) Mesh {
	return Mesh{
		Vertices: []Vertex{
			{Position: f32.Vec2{tri[0].X, tri[0].Y}, Color: color},
			{Position: f32.Vec2{tri[1].X, tri[1].Y}, Color: color},
			{Position: f32.Vec2{tri[2].X, tri[2].Y}, Color: color},
		},
		Indices: []uint16{0, 1, 2},
	}
}
