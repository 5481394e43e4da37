// Package canvas provides the pan/zoom transform between screen space and
// canvas space, and the uniform matrix that uploads it to the renderer.
package canvas

// Transform is the canvas pan/zoom state. Offset is the screen-space
// position of the canvas origin, Scale the uniform zoom factor.
type Transform struct {
	Offset [2]float32
	Scale  float32
}

// NewTransform returns the identity transform (no pan, 1:1 zoom).
func NewTransform() Transform {
	return Transform{Offset: [2]float32{0, 0}, Scale: 1}
}

// ScreenToCanvas maps a screen position into canvas coordinates.
func (t Transform) ScreenToCanvas(screen [2]float32) [2]float32 {
	return [2]float32{
		(screen[0] - t.Offset[0]) / t.Scale,
		(screen[1] - t.Offset[1]) / t.Scale,
	}
}

// CanvasToScreen maps a canvas position into screen coordinates.
func (t Transform) CanvasToScreen(canvas [2]float32) [2]float32 {
	return [2]float32{
		canvas[0]*t.Scale + t.Offset[0],
		canvas[1]*t.Scale + t.Offset[1],
	}
}

// Pan moves the canvas by a screen-space delta.
func (t Transform) Pan(dx, dy float32) Transform {
	t.Offset[0] += dx
	t.Offset[1] += dy
	return t
}

// ZoomAt zooms by the given factor around a fixed screen point, so the
// canvas position under the cursor stays put.
func (t Transform) ZoomAt(factor float32, screen [2]float32) Transform {
	anchor := t.ScreenToCanvas(screen)
	t.Scale *= factor
	t.Offset[0] = screen[0] - anchor[0]*t.Scale
	t.Offset[1] = screen[1] - anchor[1]*t.Scale
	return t
}
