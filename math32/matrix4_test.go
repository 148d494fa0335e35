// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/scaffold/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-5)

func TolAssertEqualMatrix(t *testing.T, tol float32, mt, ma Matrix4) {
	t.Helper()
	tolassert.EqualTolSlice(t, mt[:], ma[:], tol)
}

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

var (
	matA = Matrix4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	matB = Matrix4{
		2, 0, 1, 0,
		0, 3, 0, -1,
		1, 0, 4, 0,
		0, 2, 0, 5,
	}
	matC = Matrix4{
		0, 1, 0, 2,
		1, 0, 3, 0,
		-1, 0, 0, 1,
		0, 4, 1, 0,
	}
)

func TestMatrix4Identity(t *testing.T) {
	id := Identity4()
	assert.Equal(t, id, NewMatrix4())
	for _, m := range []Matrix4{matA, matB, matC} {
		assert.Equal(t, m, id.Mul(m))
		assert.Equal(t, m, m.Mul(id))
	}
}

func TestMatrix4RowMajor(t *testing.T) {
	m := matA
	assert.Equal(t, float32(7), m.At(1, 2))
	m.SetAt(3, 0, 42)
	assert.Equal(t, float32(42), m[12])

	// (A*B)[i][j] = sum_k A[i][k]*B[k][j]
	ab := matA.Mul(matB)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += matA.At(i, k) * matB.At(k, j)
			}
			assert.Equal(t, sum, ab.At(i, j), "element %d,%d", i, j)
		}
	}
	assert.Equal(t, Matrix4{
		5, 14, 13, 18,
		17, 34, 33, 34,
		29, 54, 53, 50,
		41, 74, 73, 66,
	}, ab)
}

func TestMatrix4Associative(t *testing.T) {
	assert.NotEqual(t, matA.Mul(matB), matB.Mul(matA))
	TolAssertEqualMatrix(t, StandardTol, matA.Mul(matB).Mul(matC), matA.Mul(matB.Mul(matC)))

	m := matA
	m.SetMul(matB)
	assert.Equal(t, matA.Mul(matB), m)
}

func TestMatrix4Arithmetic(t *testing.T) {
	assert.Equal(t, matA.MulScalar(2), matA.Add(matA))
	assert.Equal(t, Matrix4{}, matA.Sub(matA))
	m := matA
	m.SetMulScalar(2)
	m.SetSub(matA)
	assert.Equal(t, matA, m)
	m.SetAdd(matA)
	assert.Equal(t, matA.MulScalar(2), m)
}

func TestMatrix4Data(t *testing.T) {
	m := matA
	d := m.Data()
	assert.Len(t, d, 16)
	assert.Equal(t, float32(2), d[1])
	assert.Equal(t, float32(5), d[4])
	d[0] = 100
	assert.Equal(t, float32(100), m[0], "Data shares storage")

	tr := matA.Transpose()
	assert.Equal(t, float32(5), tr[1])
	assert.Equal(t, matA, tr.Transpose())
}

func TestTransformBuilders(t *testing.T) {
	p := Vec3(1, 2, 3)
	TolAssertEqualVector(t, StandardTol, Vec3(2, 4, 6), Translation(Vec3(1, 2, 3)).MulVector3AsPoint(p))
	TolAssertEqualVector(t, StandardTol, Vec3(2, 6, 12), Scaling(Vec3(2, 3, 4)).MulVector3AsPoint(p))
	TolAssertEqualMatrix(t, StandardTol, Identity4(), RotationEuler(Vector3{}))

	// rightmost factor applies first: scale then translate
	st := Translation(Vec3(1, 0, 0)).Mul(Scaling(Vec3(2, 2, 2)))
	TolAssertEqualVector(t, StandardTol, Vec3(3, 4, 6), st.MulVector3AsPoint(p))
}

func TestPerspective(t *testing.T) {
	fov := DegToRad(90)
	m := Perspective(fov, 2, 1, 10)
	tolassert.EqualTol(t, 0.5, m.At(0, 0), StandardTol)
	tolassert.EqualTol(t, 1, m.At(1, 1), StandardTol)
	tolassert.EqualTol(t, -11.0/9.0, m.At(2, 2), StandardTol)
	tolassert.EqualTol(t, -20.0/9.0, m.At(2, 3), StandardTol)
	assert.Equal(t, float32(-1), m.At(3, 2))
	assert.Equal(t, float32(0), m.At(3, 3))

	// near plane maps to -1, far plane to +1 in NDC
	n := m.MulVector4(Vec4(0, 0, -1, 1))
	tolassert.EqualTol(t, -1, n.Z/n.W, StandardTol)
	f := m.MulVector4(Vec4(0, 0, -10, 1))
	tolassert.EqualTol(t, 1, f.Z/f.W, StandardTol)
}

func TestOrthographic(t *testing.T) {
	m := Orthographic(0, 800, 0, 600, -50, 50)
	lo := m.MulVector4(Vec4(0, 0, 50, 1))
	hi := m.MulVector4(Vec4(800, 600, -50, 1))
	assert.True(t, lo.IsEqualTol(Vec4(-1, -1, -1, 1), StandardTol), lo.String())
	assert.True(t, hi.IsEqualTol(Vec4(1, 1, 1, 1), StandardTol), hi.String())
}

func TestTransform(t *testing.T) {
	tr := NewTransform()
	TolAssertEqualMatrix(t, StandardTol, Identity4(), tr.Matrix())

	tr.SetTranslate(1, 0, 0).SetScale(2, 2, 2)
	TolAssertEqualVector(t, StandardTol, Vec3(3, 2, 2), tr.Matrix().MulVector3AsPoint(Vec3(1, 1, 1)))

	tr.AddTranslate(0, 1, 0).AddScale(-1, -1, -1)
	TolAssertEqualVector(t, StandardTol, Vec3(2, 2, 1), tr.Matrix().MulVector3AsPoint(Vec3(1, 1, 1)))

	tr.SetRotate(0, 0, Pi/2).SetLateRotate(0, 0, 0).AddRotate(0, 0, 0).AddLateRotate(0, 0, 0)
	want := Translation(tr.Translation).Mul(RotationEuler(tr.Rotation)).Mul(Scaling(tr.Scale))
	tolassert.EqualTolSlice(t, want[:], tr.Data(), StandardTol)
}
