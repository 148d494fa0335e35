// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"errors"
	"testing"

	"cogentcore.org/scaffold/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestVector3Arithmetic(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 5, 6)
	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(1, 2, 3), a, "operators return new values")

	c := a
	c.SetAdd(b)
	assert.Equal(t, Vec3(5, 7, 9), c)
	c.SetSub(b)
	assert.Equal(t, a, c)
	c.SetMulScalar(3)
	assert.Equal(t, Vec3(3, 6, 9), c)
	assert.Equal(t, Vec3(1, 2, 3), a)

	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
}

func TestVector4Arithmetic(t *testing.T) {
	a := Vec4(1, 2, 3, 4)
	b := Vec4(4, 3, 2, 1)
	assert.Equal(t, Vec4(5, 5, 5, 5), a.Add(b))
	assert.Equal(t, Vec4(-3, -1, 1, 3), a.Sub(b))
	assert.Equal(t, Vec4(0.5, 1, 1.5, 2), a.MulScalar(0.5))
	c := a
	c.SetAdd(b)
	c.SetSub(b)
	c.SetMulScalar(2)
	assert.Equal(t, Vec4(2, 4, 6, 8), c)
	assert.Equal(t, Vec3(1, 2, 3), a.Vector3())
	assert.Equal(t, Vec4(1, 2, 3, 0), Vector4FromVector3(Vec3(1, 2, 3), 0))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, a.Data())
}

func TestNormal(t *testing.T) {
	for _, v := range []Vector3{Vec3(3, 4, 0), Vec3(-1, 2, -7), Vec3(0.001, 0, 0)} {
		n := v.Normal()
		tolassert.EqualTol(t, 1, n.Length(), StandardTol)
		TolAssertEqualVector(t, StandardTol, n, n.Normal())
	}
	n4 := Vec4(1, 2, 3, 4).Normal()
	tolassert.EqualTol(t, 1, n4.Length(), StandardTol)

	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, Vector4{}, Vector4{}.Normal())
	assert.False(t, IsNaN(Vector3{}.Normal().X))

	v := Vec3(0, 0, 5)
	v.SetNormal()
	assert.Equal(t, Vec3(0, 0, 1), v)
}

func TestCross(t *testing.T) {
	x := Vec3(1, 0, 0)
	y := Vec3(0, 1, 0)
	assert.Equal(t, Vec3(0, 0, 1), x.Cross(y))

	a := Vec3(1, -2, 3.5)
	b := Vec3(-4, 0.5, 2)
	TolAssertEqualVector(t, StandardTol, a.Cross(b), b.Cross(a).Negate())
	tolassert.EqualTol(t, 0, a.Cross(b).Dot(a), 1e-4)
}

func TestDim(t *testing.T) {
	v := Vec4(1, 2, 3, 4)
	for d := X; d <= W; d++ {
		assert.Equal(t, float32(d+1), v.Dim(d))
	}
	v.SetDim(W, 9)
	assert.Equal(t, float32(9), v.W)

	assert.PanicsWithError(t, "math32: dimension out of range: 4 not in [0, 4)", func() { v.Dim(4) })
	defer func() {
		r := recover()
		err, ok := r.(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, ErrDimRange))
	}()
	v3 := Vec3(1, 2, 3)
	v3.Dim(W)
}
