package canvas

// Mat4 is a 4x4 float32 matrix in column-major order, matching the
// uniform buffer layout the shader expects.
type Mat4 [4][4]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a matrix translating by (x, y, z).
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m[3] = [4]float32{x, y, z, 1}
	return m
}

// Scale returns a uniform scale matrix.
func Scale(s float32) Mat4 {
	return Mat4{
		{s, 0, 0, 0},
		{0, s, 0, 0},
		{0, 0, s, 0},
		{0, 0, 0, 1},
	}
}

// Ortho returns an orthographic projection mapping the box
// [left,right]x[bottom,top]x[near,far] to clip space.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	m := Identity()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)
	m[3][2] = -(far + near) / (far - near)
	return m
}

// Mul returns the matrix product a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k][row] * b[col][k]
			}
			out[col][row] = sum
		}
	}
	return out
}

// Uniforms is the per-frame uniform block: the combined
// projection * pan * zoom transform, ready for buffer upload.
type Uniforms struct {
	Transform Mat4
}

// NewUniforms returns identity uniforms.
func NewUniforms() Uniforms {
	return Uniforms{Transform: Identity()}
}

// Update recomputes the transform for the current canvas state and window
// size: an orthographic projection with y down (canvas convention), then
// the pan translation, then the zoom scale.
func (u *Uniforms) Update(t Transform, width, height float32) {
	proj := Ortho(0, width, height, 0, -1, 1)
	translate := Translation(t.Offset[0], t.Offset[1], 0)
	scale := Scale(t.Scale)
	u.Transform = proj.Mul(translate).Mul(scale)
}
