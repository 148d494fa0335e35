// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/scaffold/camera"
	"cogentcore.org/scaffold/math32"
	"cogentcore.org/scaffold/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ MatrixSource = (*math32.Matrix4)(nil)
	_ MatrixSource = (*math32.Transform)(nil)
	_ MatrixSource = projection.Projection(nil)
	_ MatrixSource = (*camera.Controller)(nil)
	_ Uniforms     = (*Values)(nil)
)

type badSource struct{}

func (badSource) Data() []float32 { return make([]float32, 9) }

func TestSetFrame(t *testing.T) {
	vs := NewValues(ModelName, ViewName, ProjectionName)
	model := math32.NewTransform().SetTranslate(1, 2, 3)
	cam := camera.New()
	prj := projection.NewPerspective(math32.DegToRad(45), 800, 600, 0.1, 100)
	require.NoError(t, SetFrame(vs, model, cam, prj))
	assert.Equal(t, []string{ModelName, ViewName, ProjectionName}, vs.Set())

	got, ok := vs.Matrix4(ProjectionName)
	assert.True(t, ok)
	assert.Equal(t, prj.Data(), got[:])

	got, _ = vs.Matrix4(ModelName)
	want := math32.Translation(math32.Vec3(1, 2, 3))
	assert.Equal(t, want.Data(), got[:])

	mat := math32.Scaling(math32.Vec3(2, 2, 2))
	require.NoError(t, vs.SetMatrix4(ViewName, &mat))
	got, _ = vs.Matrix4(ViewName)
	assert.Equal(t, mat.Data(), got[:])
}

func TestValuesCopyData(t *testing.T) {
	vs := NewValues()
	mat := math32.Identity4()
	require.NoError(t, vs.SetMatrix4("anything", &mat))
	mat.SetAt(0, 3, 5)
	got, _ := vs.Matrix4("anything")
	assert.Equal(t, float32(0), got[3])
}

func TestValuesErrors(t *testing.T) {
	vs := NewValues(ViewName)
	mat := math32.Identity4()
	err := vs.SetMatrix4("mvp", &mat)
	assert.ErrorIs(t, err, ErrUnknownUniform)
	assert.ErrorContains(t, err, `"mvp"`)

	assert.Error(t, vs.SetMatrix4(ViewName, badSource{}))

	err = SetFrame(vs, &mat, &mat, &mat)
	assert.ErrorIs(t, err, ErrUnknownUniform)
	assert.Empty(t, vs.Set(), "stops at the model matrix")

	_, ok := NewValues().Matrix4(ViewName)
	assert.False(t, ok)
}
