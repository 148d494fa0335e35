// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projection

import (
	"cogentcore.org/scaffold/base/errors"
	"cogentcore.org/scaffold/math32"
	"cogentcore.org/scaffold/window"
	"github.com/jinzhu/copier"
)

// Orthographic is an OpenGL style orthographic projection of the box
// between the Left, Right, Bottom, Top, Near and Far planes.
// The matrix is recomputed by every setter; call [Orthographic.Update]
// after setting fields directly. Use [Orthographic.Clone] rather than
// copying the struct, which would share its hub subscription.
type Orthographic struct {
	Left   float32
	Right  float32
	Bottom float32
	Top    float32
	Near   float32
	Far    float32

	mat math32.Matrix4
	reg registration `copier:"-"`
}

// NewOrthographic returns a new orthographic projection of the given box.
func NewOrthographic(left, right, bottom, top, near, far float32) *Orthographic {
	o := &Orthographic{Left: left, Right: right, Bottom: bottom, Top: top, Near: near, Far: far}
	o.Update()
	return o
}

// Update recomputes the matrix from the fields.
func (o *Orthographic) Update() {
	o.mat = math32.Orthographic(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
}

func (o *Orthographic) SetLeft(left float32) {
	o.Left = left
	o.Update()
}

func (o *Orthographic) SetRight(right float32) {
	o.Right = right
	o.Update()
}

func (o *Orthographic) SetBottom(bottom float32) {
	o.Bottom = bottom
	o.Update()
}

func (o *Orthographic) SetTop(top float32) {
	o.Top = top
	o.Update()
}

func (o *Orthographic) SetNear(near float32) {
	o.Near = near
	o.Update()
}

func (o *Orthographic) SetFar(far float32) {
	o.Far = far
	o.Update()
}

// SetWindowSize sets Right to width and Top to height,
// leaving the other planes unchanged.
func (o *Orthographic) SetWindowSize(width, height float32) {
	if !validSize(width, height) {
		return
	}
	o.Right = width
	o.Top = height
	o.Update()
}

// SetScrollOffset does nothing: scrolling does not affect
// an orthographic projection.
func (o *Orthographic) SetScrollOffset(dx, dy float32) {}

func (o *Orthographic) Data() []float32 {
	return o.mat.Data()
}

func (o *Orthographic) Matrix() math32.Matrix4 {
	return o.mat
}

// RegisterWithHub subscribes to the resize events of h.
func (o *Orthographic) RegisterWithHub(h *window.Hub) {
	o.reg.register(h, o, false)
}

func (o *Orthographic) Unregister() {
	o.reg.unregister()
}

func (o *Orthographic) Registered() bool {
	return o.reg.registered()
}

// Clone returns a copy of the projection planes and matrix.
// The copy is not registered with any hub.
func (o *Orthographic) Clone() *Orthographic {
	cp := &Orthographic{}
	errors.Log(copier.Copy(cp, o))
	cp.reg = registration{}
	cp.Update()
	return cp
}
