// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"image"

	"cogentcore.org/scaffold/math32"
)

// Native is the boundary to the platform windowing library: one native
// window with a current GPU context. The [Hub] is its only owner.
// Implementations deliver input by calling the [Hub] event methods
// ([Hub.Resize], [Hub.Key], [Hub.Focus], [Hub.Scroll]) from PollEvents.
type Native interface {

	// Size returns the current framebuffer size in pixels.
	Size() image.Point

	// CursorPos returns the cursor position in pixels relative
	// to the top-left corner of the window.
	CursorPos() math32.Vector2

	// Focused returns whether the window has input focus.
	Focused() bool

	// ShouldClose returns whether closing the window has been requested.
	ShouldClose() bool

	// SetShouldClose sets the close requested flag.
	SetShouldClose(close bool)

	// SetCursorMode sets the cursor visibility and capture mode.
	SetCursorMode(mode CursorModes)

	// SwapBuffers presents the rendered frame.
	SwapBuffers()

	// PollEvents processes pending native events, delivering them to the hub.
	PollEvents()

	// Time returns the seconds elapsed since the native library was initialized.
	Time() float64

	// Destroy releases the native window and context.
	Destroy()
}

// CursorModes are the cursor visibility and capture modes.
type CursorModes int32

const (
	// CursorNormal shows the cursor and lets it leave the window.
	CursorNormal CursorModes = iota

	// CursorHidden hides the cursor while it is over the window.
	CursorHidden

	// CursorDisabled hides and captures the cursor, providing unlimited
	// virtual cursor movement, as needed for mouse-look cameras.
	CursorDisabled
)

func (cm CursorModes) String() string {
	switch cm {
	case CursorNormal:
		return "Normal"
	case CursorHidden:
		return "Hidden"
	case CursorDisabled:
		return "Disabled"
	}
	return "CursorModes(?)"
}

// Options are the parameters for creating a native window.
type Options struct {

	// Size is the initial window size in screen coordinates.
	Size image.Point

	// Title is the window title.
	Title string

	// CursorMode is the initial cursor mode.
	CursorMode CursorModes

	// VSync is whether buffer swaps wait for the vertical blank.
	VSync bool
}

// Defaults sets default options: an 800x600 window with vsync.
func (o *Options) Defaults() {
	o.Size = image.Pt(800, 600)
	o.Title = "scaffold"
	o.CursorMode = CursorNormal
	o.VSync = true
}

// Fixup fills in any zero-valued size with the default.
func (o *Options) Fixup() {
	if o.Size.X <= 0 || o.Size.Y <= 0 {
		o.Size = image.Pt(800, 600)
	}
}
