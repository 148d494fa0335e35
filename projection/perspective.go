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

// Field of view limits for scroll zooming, in radians.
const (
	MinFOV = 0.01
	MaxFOV = math32.Pi / 4
)

// ScrollStep is the field of view change per unit of scroll offset, in radians.
const ScrollStep = math32.DegToRadFactor

// Perspective is an OpenGL style perspective projection.
// The matrix is recomputed by every setter; call [Perspective.Update]
// after setting fields directly. Use [Perspective.Clone] rather than
// copying the struct, which would share its hub subscriptions.
type Perspective struct {

	// FOV is the vertical field of view in radians.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near is the distance of the near clipping plane.
	Near float32

	// Far is the distance of the far clipping plane.
	Far float32

	mat math32.Matrix4
	reg registration `copier:"-"`
}

// NewPerspective returns a new perspective projection for the given
// field of view (radians), window size and clipping planes.
// The aspect ratio is 1 if the window size is not positive.
func NewPerspective(fov, width, height, near, far float32) *Perspective {
	p := &Perspective{FOV: fov, Aspect: 1, Near: near, Far: far}
	if validSize(width, height) {
		p.Aspect = width / height
	}
	p.Update()
	return p
}

// Update recomputes the matrix from the fields.
func (p *Perspective) Update() {
	p.mat = math32.Perspective(p.FOV, p.Aspect, p.Near, p.Far)
}

// SetFOV sets the vertical field of view in radians.
func (p *Perspective) SetFOV(fov float32) {
	p.FOV = fov
	p.Update()
}

// SetAspect sets the aspect ratio (width / height).
func (p *Perspective) SetAspect(aspect float32) {
	p.Aspect = aspect
	p.Update()
}

// SetNear sets the near clipping plane distance.
func (p *Perspective) SetNear(near float32) {
	p.Near = near
	p.Update()
}

// SetFar sets the far clipping plane distance.
func (p *Perspective) SetFar(far float32) {
	p.Far = far
	p.Update()
}

// SetWindowSize sets the aspect ratio from the window size.
func (p *Perspective) SetWindowSize(width, height float32) {
	if !validSize(width, height) {
		return
	}
	p.SetAspect(width / height)
}

// SetScrollOffset zooms by decreasing the field of view by dy * [ScrollStep],
// within [MinFOV, MaxFOV]. Horizontal scrolling is ignored.
func (p *Perspective) SetScrollOffset(dx, dy float32) {
	if dy == 0 {
		return
	}
	p.SetFOV(math32.Clamp(p.FOV-dy*ScrollStep, MinFOV, MaxFOV))
}

func (p *Perspective) Data() []float32 {
	return p.mat.Data()
}

func (p *Perspective) Matrix() math32.Matrix4 {
	return p.mat
}

// RegisterWithHub subscribes to the resize and scroll events of h.
func (p *Perspective) RegisterWithHub(h *window.Hub) {
	p.reg.register(h, p, true)
}

func (p *Perspective) Unregister() {
	p.reg.unregister()
}

func (p *Perspective) Registered() bool {
	return p.reg.registered()
}

// Clone returns a copy of the projection parameters and matrix.
// The copy is not registered with any hub.
func (p *Perspective) Clone() *Perspective {
	cp := &Perspective{}
	errors.Log(copier.Copy(cp, p))
	cp.reg = registration{}
	cp.Update()
	return cp
}
