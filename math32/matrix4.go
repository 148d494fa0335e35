// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 matrix of float32 values stored in row-major order:
// the element at row r, column c is at index r*4+c.
// Points are column vectors, so in a product A*B the rightmost
// factor B is applied to a point first.
//
// Every constructor in this package returns the identity by default.
// Note that the Go zero value Matrix4{} is the zero matrix, not the identity.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix4 returns the default [Matrix4], which is the identity.
func NewMatrix4() Matrix4 {
	return Identity4()
}

// Matrix4FromRows returns a new matrix from the given row-major values.
func Matrix4FromRows(v [16]float32) Matrix4 {
	return Matrix4(v)
}

// At returns the element at row r, column c.
func (m *Matrix4) At(r, c int) float32 {
	return m[r*4+c]
}

// SetAt sets the element at row r, column c.
func (m *Matrix4) SetAt(r, c int, v float32) {
	m[r*4+c] = v
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Identity4()
}

// Data returns the 16 row-major elements as a slice sharing the
// matrix storage, suitable for direct uniform upload
// (with transpose if the shader convention is column-major).
// It has a pointer receiver so that the slice aliases m, so only
// *Matrix4 provides Data; call it on an addressable matrix.
func (m *Matrix4) Data() []float32 {
	return m[:]
}

// Mul returns the row-major matrix product m * other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var res Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i*4+k] * other[k*4+j]
			}
			res[i*4+j] = sum
		}
	}
	return res
}

// SetMul sets this matrix to the product of itself with other (m = m * other).
func (m *Matrix4) SetMul(other Matrix4) {
	*m = m.Mul(other)
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// SetMulScalar multiplies every element of this matrix by s.
func (m *Matrix4) SetMulScalar(s float32) {
	*m = m.MulScalar(s)
}

// Add returns the element-wise sum of m and other.
func (m Matrix4) Add(other Matrix4) Matrix4 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// SetAdd adds other to this matrix element-wise.
func (m *Matrix4) SetAdd(other Matrix4) {
	*m = m.Add(other)
}

// Sub returns the element-wise difference m - other.
func (m Matrix4) Sub(other Matrix4) Matrix4 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// SetSub subtracts other from this matrix element-wise.
func (m *Matrix4) SetSub(other Matrix4) {
	*m = m.Sub(other)
}

// Transpose returns the transpose of this matrix, which is the
// column-major layout of the same matrix.
func (m Matrix4) Transpose() Matrix4 {
	var t Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c*4+r] = m[r*4+c]
		}
	}
	return t
}

// MulVector4 returns the column vector product m * v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// MulVector3AsPoint returns m * (v, 1), dropping the resulting W.
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 1)).Vector3()
}

// IsEqualTol returns whether every element of m is within tol of other.
func (m Matrix4) IsEqualTol(other Matrix4, tol float32) bool {
	for i := range m {
		if Abs(m[i]-other[i]) > tol {
			return false
		}
	}
	return true
}

func (m Matrix4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%v\t%v\t%v\t%v", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}
	return b.String()
}

////////  Transform builders

// Translation returns a matrix translating points by v.
func Translation(v Vector3) Matrix4 {
	return Matrix4{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Scaling returns a matrix scaling points by v along each axis.
func Scaling(v Vector3) Matrix4 {
	return Matrix4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// RotationEuler returns the rotation matrix for the Euler angles
// (in radians) about the X, Y and Z axes given by v.
func RotationEuler(v Vector3) Matrix4 {
	sx, cx := Sin(v.X), Cos(v.X)
	sy, cy := Sin(v.Y), Cos(v.Y)
	sz, cz := Sin(v.Z), Cos(v.Z)
	return Matrix4{
		cy * cz, cy * sz, -sy, 0,
		sx*sy*cz - cx*sz, sx*sy*sz + cx*cz, sx * cy, 0,
		cx*sy*cz + sx*sz, cx*sy*sz - sx*cz, cx * cy, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns an OpenGL style perspective projection matrix
// for the given vertical field of view (radians), aspect ratio
// (width / height) and near and far clipping planes.
func Perspective(fov, aspect, near, far float32) Matrix4 {
	f := 1 / Tan(fov/2)
	nf := far - near
	return Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -(far + near) / nf, -2 * far * near / nf,
		0, 0, -1, 0,
	}
}

// Orthographic returns an OpenGL style orthographic projection matrix
// for the given clipping box.
func Orthographic(left, right, bottom, top, near, far float32) Matrix4 {
	w := right - left
	h := top - bottom
	d := far - near
	return Matrix4{
		2 / w, 0, 0, -(right + left) / w,
		0, 2 / h, 0, -(top + bottom) / h,
		0, 0, -2 / d, -(far + near) / d,
		0, 0, 0, 1,
	}
}

// LookAtAxes returns the rotation part of a look-at view matrix whose
// rows are the camera right, up and back (opposite of the viewing
// direction) axes. Multiply by Translation of the negated camera
// position to obtain the full view matrix.
func LookAtAxes(right, up, back Vector3) Matrix4 {
	return Matrix4{
		right.X, right.Y, right.Z, 0,
		up.X, up.Y, up.Z, 0,
		back.X, back.Y, back.Z, 0,
		0, 0, 0, 1,
	}
}
