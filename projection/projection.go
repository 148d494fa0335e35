// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package projection provides the perspective and orthographic projection
// matrices, which can subscribe to a [window.Hub] to follow window resizes
// (and, for perspective, scroll zooming).
package projection

import (
	"log/slog"

	"cogentcore.org/scaffold/events"
	"cogentcore.org/scaffold/math32"
	"cogentcore.org/scaffold/window"
)

// Projection is a projection matrix that can follow window events.
// It is implemented by [*Perspective] and [*Orthographic].
type Projection interface {

	// SetWindowSize updates the projection for a new window size in pixels.
	// Non-positive sizes (e.g., a minimized window) are ignored.
	SetWindowSize(width, height float32)

	// SetScrollOffset updates the projection for a scroll offset.
	// Only [Perspective] uses it, to zoom the field of view.
	SetScrollOffset(dx, dy float32)

	// Data returns the row-major elements of the current matrix.
	Data() []float32

	// Matrix returns the current matrix.
	Matrix() math32.Matrix4

	// RegisterWithHub subscribes to the hub's resize events (and scroll
	// events if used), after unregistering from any previous hub.
	RegisterWithHub(h *window.Hub)

	// Unregister cancels all hub subscriptions. It is safe to call
	// when not registered; owners call it when done with the projection.
	Unregister()

	// Registered returns whether the projection is subscribed to a hub.
	Registered() bool
}

// registration holds the hub subscriptions of a projection.
// At most one hub is subscribed to at a time.
type registration struct {
	resize *window.Subscription
	scroll *window.Subscription
}

// register subscribes p to the resize events of h, and to its
// scroll events if scroll is set.
func (rg *registration) register(h *window.Hub, p Projection, scroll bool) {
	rg.unregister()
	rg.resize = h.OnResize(func(ev events.ResizeEvent) {
		p.SetWindowSize(float32(ev.Size.X), float32(ev.Size.Y))
	}, func() {
		rg.resize = nil
	})
	if scroll {
		rg.scroll = h.OnScroll(func(ev events.ScrollEvent) {
			p.SetScrollOffset(ev.Delta.X, ev.Delta.Y)
		}, func() {
			rg.scroll = nil
		})
	}
}

func (rg *registration) unregister() {
	if rg.resize != nil {
		rg.resize.Cancel()
		rg.resize = nil
	}
	if rg.scroll != nil {
		rg.scroll.Cancel()
		rg.scroll = nil
	}
}

func (rg *registration) registered() bool {
	return rg.resize != nil || rg.scroll != nil
}

// validSize returns whether a window size can be used for a projection.
func validSize(width, height float32) bool {
	if width > 0 && height > 0 {
		return true
	}
	slog.Debug("projection: ignoring window size", "width", width, "height", height)
	return false
}
