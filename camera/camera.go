// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides a first person camera [Controller] that turns
// keyboard and cursor input from a [window.Hub] into a view matrix.
package camera

import (
	"log/slog"

	"cogentcore.org/scaffold/events"
	"cogentcore.org/scaffold/events/key"
	"cogentcore.org/scaffold/math32"
	"cogentcore.org/scaffold/window"
)

// MaxPitch is the largest absolute pitch, in radians (89 degrees),
// which keeps the look direction away from the world up axis.
const MaxPitch = 89 * math32.DegToRadFactor

// Controller is a first person camera: the keys bound in [Bindings] move
// it along its own forward and right axes, and cursor motion turns it.
// Input state is updated by hub events; [Controller.Update] applies it
// once per frame and recomputes the view matrix.
type Controller struct {

	// Sensitivity is the rotation per pixel of cursor motion, in degrees.
	Sensitivity float32

	// Speed is the movement speed, in world units per second.
	Speed float32

	// Bindings are the movement keys.
	Bindings Bindings

	pos   math32.Vector3
	yaw   float32
	pitch float32

	forward math32.Vector3
	right   math32.Vector3
	up      math32.Vector3
	view    math32.Matrix4

	moving [DirectionsN]bool

	// lastCursor is only valid when seeded is set.
	lastCursor math32.Vector2
	seeded     bool

	hub   *window.Hub
	keys  *window.Subscription
	focus *window.Subscription
}

// New returns a new controller with default settings.
func New() *Controller {
	cm := &Controller{}
	cm.Defaults()
	return cm
}

// Defaults sets the default settings, and places the camera at
// (0, 0, 3) looking down the negative Z axis.
func (cm *Controller) Defaults() {
	cm.Sensitivity = 0.1
	cm.Speed = 2.5
	cm.Bindings = DefaultBindings()
	cm.pos = math32.Vec3(0, 0, 3)
	cm.yaw = -math32.Pi / 2
	cm.pitch = 0
	cm.moving = [DirectionsN]bool{}
	cm.seeded = false
	cm.updateView()
}

// RegisterWithHub subscribes to the key and focus events of h,
// after unregistering from any previous hub. The cursor position
// is seeded on the next [Controller.Update].
func (cm *Controller) RegisterWithHub(h *window.Hub) {
	cm.Unregister()
	cm.hub = h
	cm.seeded = false
	cm.keys = h.OnKey(cm.handleKey, func() {
		cm.keys = nil
		cm.hubGone()
	})
	cm.focus = h.OnFocus(cm.handleFocus, func() {
		cm.focus = nil
		cm.hubGone()
	})
	slog.Debug("camera: registered")
}

// Unregister cancels the hub subscriptions and clears any movement
// in progress. It is safe to call when not registered.
func (cm *Controller) Unregister() {
	if cm.keys != nil {
		cm.keys.Cancel()
		cm.keys = nil
	}
	if cm.focus != nil {
		cm.focus.Cancel()
		cm.focus = nil
	}
	cm.hubGone()
}

// Registered returns whether the controller is subscribed to a hub.
func (cm *Controller) Registered() bool {
	return cm.keys != nil || cm.focus != nil
}

// hubGone drops the hub reference and all input state tied to it.
func (cm *Controller) hubGone() {
	cm.hub = nil
	cm.moving = [DirectionsN]bool{}
	cm.seeded = false
}

func (cm *Controller) handleKey(ev events.KeyEvent) {
	d, ok := cm.Bindings.Direction(ev.Code)
	if !ok {
		return
	}
	switch ev.Action {
	case key.Press:
		cm.moving[d] = true
	case key.Release:
		cm.moving[d] = false
	}
}

func (cm *Controller) handleFocus(ev events.FocusEvent) {
	if !ev.Focused {
		cm.moving = [DirectionsN]bool{}
	}
	cm.seeded = false
}

// Update applies the input received since the last call, for
// dt seconds of elapsed time: cursor motion turns the camera,
// then held movement keys move it along the new axes.
func (cm *Controller) Update(dt float32) {
	cm.look()
	cm.updateAxes()
	var fwd, side float32
	if cm.moving[Forward] {
		fwd++
	}
	if cm.moving[Backward] {
		fwd--
	}
	if cm.moving[Right] {
		side++
	}
	if cm.moving[Left] {
		side--
	}
	step := cm.Speed * dt
	cm.pos.SetAdd(cm.forward.MulScalar(fwd * step))
	cm.pos.SetAdd(cm.right.MulScalar(side * step))
	cm.updateView()
}

// look turns the camera by the cursor motion since the last call.
// The first call after the hub or focus is (re)gained only records
// the cursor position.
func (cm *Controller) look() {
	if cm.hub == nil || !cm.hub.Focused() {
		cm.seeded = false
		return
	}
	cur := cm.hub.CursorPos()
	if !cm.seeded {
		cm.lastCursor = cur
		cm.seeded = true
		return
	}
	d := cur.Sub(cm.lastCursor)
	cm.lastCursor = cur
	cm.yaw += math32.DegToRad(d.X * cm.Sensitivity)
	// screen y grows downward
	cm.pitch -= math32.DegToRad(d.Y * cm.Sensitivity)
	cm.pitch = math32.Clamp(cm.pitch, -MaxPitch, MaxPitch)
}

func (cm *Controller) updateAxes() {
	cy, sy := math32.Cos(cm.yaw), math32.Sin(cm.yaw)
	cp, sp := math32.Cos(cm.pitch), math32.Sin(cm.pitch)
	cm.forward = math32.Vec3(cy*cp, sp, sy*cp).Normal()
	cm.right = cm.forward.Cross(math32.Vector3Y).Normal()
	cm.up = cm.right.Cross(cm.forward).Normal()
}

func (cm *Controller) updateView() {
	cm.updateAxes()
	cm.view = math32.LookAtAxes(cm.right, cm.up, cm.forward.Negate()).Mul(math32.Translation(cm.pos.Negate()))
}

// Data returns the row-major elements of the view matrix.
func (cm *Controller) Data() []float32 {
	return cm.view.Data()
}

// Matrix returns the view matrix.
func (cm *Controller) Matrix() math32.Matrix4 {
	return cm.view
}

func (cm *Controller) Position() math32.Vector3 {
	return cm.pos
}

// SetPosition moves the camera to pos.
func (cm *Controller) SetPosition(pos math32.Vector3) {
	cm.pos = pos
	cm.updateView()
}

// Yaw returns the rotation about the world up axis, in radians.
// A yaw of zero looks along positive X.
func (cm *Controller) Yaw() float32 {
	return cm.yaw
}

// Pitch returns the elevation of the look direction, in radians.
func (cm *Controller) Pitch() float32 {
	return cm.pitch
}

// SetOrientation sets the yaw and pitch in radians.
// The pitch is clamped to [-MaxPitch, MaxPitch].
func (cm *Controller) SetOrientation(yaw, pitch float32) {
	cm.yaw = yaw
	cm.pitch = math32.Clamp(pitch, -MaxPitch, MaxPitch)
	cm.updateView()
}

// Forward returns the unit look direction.
func (cm *Controller) Forward() math32.Vector3 {
	return cm.forward
}

// Right returns the unit right axis.
func (cm *Controller) Right() math32.Vector3 {
	return cm.right
}

// Up returns the unit up axis of the camera.
func (cm *Controller) Up() math32.Vector3 {
	return cm.up
}

// Moving returns whether the key for the given direction is held.
func (cm *Controller) Moving(d Directions) bool {
	if d < 0 || d >= DirectionsN {
		return false
	}
	return cm.moving[d]
}
