// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package windowtest provides an in-memory [window.Native] for testing
// code that subscribes to a [window.Hub] without a display.
package windowtest

import (
	"image"

	"cogentcore.org/scaffold/math32"
	"cogentcore.org/scaffold/window"
)

// Native is an in-memory [window.Native] whose state is set directly
// by tests. Events are delivered by calling the hub methods directly,
// or by queueing them with Post and calling [window.Hub.PollEvents].
type Native struct {
	// Hub is the hub that owns this native, set by [NewHub].
	Hub *window.Hub

	WinSize    image.Point
	Cursor     math32.Vector2
	HasFocus   bool
	Close      bool
	CursorMode window.CursorModes
	Clock      float64

	// NumSwaps is the number of SwapBuffers calls.
	NumSwaps int

	// NumDestroys is the number of Destroy calls.
	NumDestroys int

	pending []func(h *window.Hub)
}

// NewHub returns a new hub owning a new focused 800x600 [Native].
func NewHub() (*window.Hub, *Native) {
	nw := &Native{WinSize: image.Pt(800, 600), HasFocus: true}
	nw.Hub = window.NewHub(nw)
	return nw.Hub, nw
}

// Post queues an event delivery for the next PollEvents.
func (nw *Native) Post(fn func(h *window.Hub)) {
	nw.pending = append(nw.pending, fn)
}

// Destroyed returns whether Destroy has been called.
func (nw *Native) Destroyed() bool {
	return nw.NumDestroys > 0
}

func (nw *Native) Size() image.Point                     { return nw.WinSize }
func (nw *Native) CursorPos() math32.Vector2             { return nw.Cursor }
func (nw *Native) Focused() bool                         { return nw.HasFocus }
func (nw *Native) ShouldClose() bool                     { return nw.Close }
func (nw *Native) SetShouldClose(close bool)             { nw.Close = close }
func (nw *Native) SetCursorMode(mode window.CursorModes) { nw.CursorMode = mode }
func (nw *Native) SwapBuffers()                          { nw.NumSwaps++ }
func (nw *Native) Time() float64                         { return nw.Clock }
func (nw *Native) Destroy()                              { nw.NumDestroys++ }

// PollEvents delivers all events queued with Post, in order.
func (nw *Native) PollEvents() {
	pend := nw.pending
	nw.pending = nil
	for _, fn := range pend {
		fn(nw.Hub)
	}
}
