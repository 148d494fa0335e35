// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Transform builds a model matrix from a translation, an Euler rotation,
// a scale and a late rotation applied to the object before everything else.
// The combined matrix is T * R(Rotation) * S * R(LateRotation), so
// a point is first rotated by LateRotation, then scaled, rotated and
// finally translated.
type Transform struct {

	// Translation in world units.
	Translation Vector3

	// Rotation Euler angles in radians, applied after scaling.
	Rotation Vector3

	// Scale factor for each axis.
	Scale Vector3

	// LateRotation Euler angles in radians, applied to the object
	// before scaling, i.e. in the object's own frame.
	LateRotation Vector3

	mat Matrix4
}

// NewTransform returns a new identity [Transform] with unit scale.
func NewTransform() *Transform {
	tr := &Transform{}
	tr.Defaults()
	return tr
}

// Defaults resets to the identity transform.
func (tr *Transform) Defaults() {
	tr.Translation = Vector3{}
	tr.Rotation = Vector3{}
	tr.LateRotation = Vector3{}
	tr.Scale = Vec3(1, 1, 1)
	tr.mat = Identity4()
}

// AddTranslate adds to the translation.
func (tr *Transform) AddTranslate(x, y, z float32) *Transform {
	tr.Translation.SetAdd(Vec3(x, y, z))
	return tr
}

// AddRotate adds to the rotation angles, in radians.
func (tr *Transform) AddRotate(x, y, z float32) *Transform {
	tr.Rotation.SetAdd(Vec3(x, y, z))
	return tr
}

// AddLateRotate adds to the late rotation angles, in radians.
func (tr *Transform) AddLateRotate(x, y, z float32) *Transform {
	tr.LateRotation.SetAdd(Vec3(x, y, z))
	return tr
}

// AddScale adds to the scale factors.
func (tr *Transform) AddScale(x, y, z float32) *Transform {
	tr.Scale.SetAdd(Vec3(x, y, z))
	return tr
}

// SetTranslate sets the translation.
func (tr *Transform) SetTranslate(x, y, z float32) *Transform {
	tr.Translation.Set(x, y, z)
	return tr
}

// SetRotate sets the rotation angles, in radians.
func (tr *Transform) SetRotate(x, y, z float32) *Transform {
	tr.Rotation.Set(x, y, z)
	return tr
}

// SetLateRotate sets the late rotation angles, in radians.
func (tr *Transform) SetLateRotate(x, y, z float32) *Transform {
	tr.LateRotation.Set(x, y, z)
	return tr
}

// SetScale sets the scale factors.
func (tr *Transform) SetScale(x, y, z float32) *Transform {
	tr.Scale.Set(x, y, z)
	return tr
}

// Matrix returns the combined model matrix.
func (tr *Transform) Matrix() Matrix4 {
	mat := Translation(tr.Translation)
	mat.SetMul(RotationEuler(tr.Rotation))
	mat.SetMul(Scaling(tr.Scale))
	mat.SetMul(RotationEuler(tr.LateRotation))
	return mat
}

// Data recomputes the combined model matrix and returns its
// row-major elements. The returned slice is valid until the next call.
func (tr *Transform) Data() []float32 {
	tr.mat = tr.Matrix()
	return tr.mat.Data()
}
