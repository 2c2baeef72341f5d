// Package xform builds the 4x4 transforms used to place sprites on screen.
//
// Matrices are row-major and act on column vectors, so a point p is mapped to
// M·p and the right-most factor of a product is applied first.
package xform

import (
	"fmt"
	"math"
	"strings"

	"twenty48/internal/core"
)

// Mat4 is a row-major 4x4 matrix.
type Mat4 [4][4]float64

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
func Translation(x, y, z float64) Mat4 {
	return Mat4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a counter-clockwise rotation by angle radians about Z.
// With Y pointing down on screen this turns sprites clockwise.
func RotationZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Scaling returns a matrix scaling by (x, y, z).
func Scaling(x, y, z float64) Mat4 {
	return Mat4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// Ortho returns an orthographic projection mapping the box
// [left,right]x[bottom,top]x[-near,-far] onto the unit cube.
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	return Mat4{
		{2 / (right - left), 0, 0, -(right + left) / (right - left)},
		{0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom)},
		{0, 0, -2 / (far - near), -(far + near) / (far - near)},
		{0, 0, 0, 1},
	}
}

// Mul returns a·b.
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for i := 0; i < 4; i++ {
				sum += a[r][i] * b[i][c]
			}
			out[r][c] = sum
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// Translate right-multiplies m by a 2D translation.
func (m *Mat4) Translate(v core.Vec2) { *m = Mul(*m, Translation(v.X, v.Y, 0)) }

// RotateZ right-multiplies m by a rotation about Z.
func (m *Mat4) RotateZ(angle float64) { *m = Mul(*m, RotationZ(angle)) }

// Scale right-multiplies m by a 2D scale.
func (m *Mat4) Scale(v core.Vec2) { *m = Mul(*m, Scaling(v.X, v.Y, 1)) }

// Model builds the transform that maps the unit quad onto a sprite placed at
// position with the given size, rotated by angle about its centre.
func Model(position, size core.Vec2, angle float64) Mat4 {
	half := size.Scale(0.5)
	m := Identity()
	m.Translate(position)
	m.Translate(half)
	m.RotateZ(angle)
	m.Translate(half.Scale(-1))
	m.Scale(size)
	return m
}

// Apply maps the point (p.X, p.Y, 0, 1) through m and returns its XY.
func (m Mat4) Apply(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][3],
	}
}

// Affine returns the 2D part of m as (a, b, c, d, tx, ty) where
// x' = a*x + b*y + tx and y' = c*x + d*y + ty.
func (m Mat4) Affine() [6]float64 {
	return [6]float64{m[0][0], m[0][1], m[1][0], m[1][1], m[0][3], m[1][3]}
}

// String pretty-prints the matrix one row per line.
func (m Mat4) String() string {
	var b strings.Builder
	b.WriteString("[\n")
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&b, "\t%9.4f, %9.4f, %9.4f, %9.4f\n", m[r][0], m[r][1], m[r][2], m[r][3])
	}
	b.WriteString("]")
	return b.String()
}
