// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projection

import (
	"testing"

	"cogentcore.org/scaffold/base/tolassert"
	"cogentcore.org/scaffold/events"
	"cogentcore.org/scaffold/math32"
	"cogentcore.org/scaffold/window/windowtest"
	"github.com/stretchr/testify/assert"
)

const tol = float32(1e-6)

var (
	_ Projection = (*Perspective)(nil)
	_ Projection = (*Orthographic)(nil)
)

func TestPerspectiveFollowsResize(t *testing.T) {
	h, _ := windowtest.NewHub()
	p := NewPerspective(math32.DegToRad(45), 1024, 768, 0.1, 100)
	p.RegisterWithHub(h)
	assert.True(t, p.Registered())

	h.Resize(800, 600)
	fresh := NewPerspective(math32.DegToRad(45), 800, 600, 0.1, 100)
	tolassert.EqualTolSlice(t, fresh.Data(), p.Data(), tol)
	tolassert.EqualTol(t, 800.0/600.0, p.Aspect, tol)
}

func TestOrthographicFollowsResize(t *testing.T) {
	h, _ := windowtest.NewHub()
	o := NewOrthographic(0, 1024, 0, 768, -1, 1)
	o.RegisterWithHub(h)
	h.Resize(800, 600)
	assert.Equal(t, NewOrthographic(0, 800, 0, 600, -1, 1).Matrix(), o.Matrix())
}

func TestOrthographicEndToEnd(t *testing.T) {
	h, _ := windowtest.NewHub()
	o := NewOrthographic(0, 800, 0, 600, -50, 50)
	o.RegisterWithHub(h)
	h.Resize(1024, 768)
	assert.Equal(t, float32(1024), o.Right)
	assert.Equal(t, float32(768), o.Top)
	assert.Equal(t, float32(0), o.Left)
	assert.Equal(t, float32(0), o.Bottom)
	assert.Equal(t, float32(-50), o.Near)
	assert.Equal(t, float32(50), o.Far)
	assert.Equal(t, math32.Orthographic(0, 1024, 0, 768, -50, 50), o.Matrix())
}

func TestCloneIsNotRegistered(t *testing.T) {
	h, _ := windowtest.NewHub()
	o := NewOrthographic(0, 800, 0, 600, -50, 50)
	o.RegisterWithHub(h)
	cp := o.Clone()
	assert.False(t, cp.Registered())
	assert.Equal(t, o.Matrix(), cp.Matrix())
	assert.Equal(t, float32(-50), cp.Near)

	h.Resize(1024, 768)
	assert.Equal(t, float32(1024), o.Right)
	assert.Equal(t, float32(800), cp.Right, "clone holds no subscription")
	assert.Equal(t, float32(600), cp.Top)
	assert.Equal(t, 1, h.NumSubscribers(events.Resize))

	p := NewPerspective(1, 4, 3, 1, 10)
	p.RegisterWithHub(h)
	pc := p.Clone()
	assert.False(t, pc.Registered())
	h.Resize(100, 100)
	tolassert.EqualTol(t, 1, p.Aspect, tol)
	tolassert.EqualTol(t, 4.0/3.0, pc.Aspect, tol)
	tolassert.EqualTolSlice(t, NewPerspective(1, 4, 3, 1, 10).Data(), pc.Data(), tol)
}

func TestCloneUnregisterKeepsOriginal(t *testing.T) {
	h, _ := windowtest.NewHub()
	o := NewOrthographic(0, 800, 0, 600, -50, 50)
	o.RegisterWithHub(h)
	cp := o.Clone()
	assert.NotPanics(t, cp.Unregister)
	assert.True(t, o.Registered())
	assert.Equal(t, 1, h.NumSubscribers(events.Resize))

	h.Resize(1024, 768)
	assert.Equal(t, float32(1024), o.Right)
	assert.Equal(t, float32(800), cp.Right)
	assert.NotPanics(t, o.Unregister)
	assert.False(t, o.Registered())

	p := NewPerspective(1, 4, 3, 1, 10)
	p.RegisterWithHub(h)
	pc := p.Clone()
	pc.Unregister()
	assert.Equal(t, 1, h.NumSubscribers(events.Resize))
	assert.Equal(t, 1, h.NumSubscribers(events.Scroll))
	h.Scroll(0, 1)
	tolassert.EqualTol(t, 1-ScrollStep, p.FOV, tol)
	tolassert.EqualTol(t, 1, pc.FOV, tol)
	assert.NotPanics(t, p.Unregister)
}

func TestReRegisterMovesHubs(t *testing.T) {
	h1, _ := windowtest.NewHub()
	h2, _ := windowtest.NewHub()
	p := NewPerspective(1, 4, 3, 1, 10)
	p.RegisterWithHub(h1)
	p.RegisterWithHub(h1)
	assert.Equal(t, 1, h1.NumSubscribers(events.Resize), "re-registering replaces the subscription")
	assert.Equal(t, 1, h1.NumSubscribers(events.Scroll))

	p.RegisterWithHub(h2)
	assert.Equal(t, 0, h1.NumSubscribers(events.Resize))
	assert.Equal(t, 0, h1.NumSubscribers(events.Scroll))
	assert.Equal(t, 1, h2.NumSubscribers(events.Resize))

	h1.Resize(100, 100)
	tolassert.EqualTol(t, 4.0/3.0, p.Aspect, tol)
	h2.Resize(200, 100)
	tolassert.EqualTol(t, 2, p.Aspect, tol)
}

func TestUnregister(t *testing.T) {
	h, _ := windowtest.NewHub()
	o := NewOrthographic(0, 800, 0, 600, -1, 1)
	o.Unregister() // not registered: no-op
	o.RegisterWithHub(h)
	o.Unregister()
	o.Unregister()
	assert.False(t, o.Registered())
	assert.Equal(t, 0, h.NumSubscribers(events.Resize))
	h.Resize(10, 10)
	assert.Equal(t, float32(800), o.Right)
}

func TestHubDestroyClearsRegistration(t *testing.T) {
	h, _ := windowtest.NewHub()
	p := NewPerspective(1, 4, 3, 1, 10)
	p.RegisterWithHub(h)
	h.Destroy()
	assert.False(t, p.Registered())
	assert.NotPanics(t, p.Unregister)

	h2, _ := windowtest.NewHub()
	p.RegisterWithHub(h2)
	assert.True(t, p.Registered())
}

func TestScrollZoom(t *testing.T) {
	h, _ := windowtest.NewHub()
	fov := math32.DegToRad(30)
	p := NewPerspective(fov, 4, 3, 1, 10)
	p.RegisterWithHub(h)

	h.Scroll(0, 2)
	tolassert.EqualTol(t, fov-2*ScrollStep, p.FOV, tol)
	tolassert.EqualTolSlice(t, NewPerspective(fov-2*ScrollStep, 4, 3, 1, 10).Data(), p.Data(), 1e-5)

	h.Scroll(0, -1000)
	assert.Equal(t, float32(MaxFOV), p.FOV)
	h.Scroll(0, 1000)
	assert.Equal(t, float32(MinFOV), p.FOV)

	h.Scroll(5, 0)
	assert.Equal(t, float32(MinFOV), p.FOV, "horizontal scrolling ignored")

	o := NewOrthographic(0, 800, 0, 600, -1, 1)
	o.RegisterWithHub(h)
	before := o.Matrix()
	h.Scroll(0, 3)
	assert.Equal(t, before, o.Matrix())
	assert.Equal(t, 1, h.NumSubscribers(events.Scroll), "orthographic does not subscribe to scroll")
}

func TestSetters(t *testing.T) {
	p := NewPerspective(1, 4, 3, 1, 10)
	p.SetFOV(0.5)
	p.SetNear(2)
	p.SetFar(20)
	p.SetAspect(2)
	assert.Equal(t, math32.Perspective(0.5, 2, 2, 20), p.Matrix())

	o := NewOrthographic(0, 1, 0, 1, -1, 1)
	o.SetLeft(-10)
	o.SetRight(10)
	o.SetBottom(-5)
	o.SetTop(5)
	o.SetNear(-2)
	o.SetFar(2)
	assert.Equal(t, math32.Orthographic(-10, 10, -5, 5, -2, 2), o.Matrix())

	o.Left = 0
	o.Update()
	assert.Equal(t, math32.Orthographic(0, 10, -5, 5, -2, 2), o.Matrix())
}

func TestIgnoresEmptyWindow(t *testing.T) {
	h, _ := windowtest.NewHub()
	p := NewPerspective(1, 4, 3, 1, 10)
	o := NewOrthographic(0, 800, 0, 600, -1, 1)
	p.RegisterWithHub(h)
	o.RegisterWithHub(h)
	h.Resize(0, 0)
	tolassert.EqualTol(t, 4.0/3.0, p.Aspect, tol)
	assert.Equal(t, float32(800), o.Right)
	for _, v := range p.Data() {
		assert.False(t, math32.IsNaN(v) || math32.IsInf(v, 0))
	}
}

func TestHorizontalScrollKeepsFOV(t *testing.T) {
	h, _ := windowtest.NewHub()
	wide := math32.DegToRad(60)
	p := NewPerspective(wide, 4, 3, 1, 10)
	p.RegisterWithHub(h)
	h.Scroll(3, 0)
	assert.Equal(t, wide, p.FOV)
	h.Scroll(0, 1)
	assert.Equal(t, float32(MaxFOV), p.FOV)
}

func TestNewPerspectiveEmptyWindow(t *testing.T) {
	for _, size := range [][2]float32{{0, 0}, {800, 0}, {0, 600}, {-1, 600}} {
		p := NewPerspective(1, size[0], size[1], 0.1, 100)
		assert.Equal(t, float32(1), p.Aspect)
		for _, v := range p.Data() {
			assert.False(t, math32.IsNaN(v) || math32.IsInf(v, 0))
		}
		assert.Equal(t, NewPerspective(1, 600, 600, 0.1, 100).Matrix(), p.Matrix())
	}
}
