// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window events delivered by the
// window hub to its subscribers.
package events

import (
	"fmt"
	"image"

	"cogentcore.org/scaffold/events/key"
	"cogentcore.org/scaffold/math32"
)

// Event is implemented by every event payload type.
type Event interface {
	fmt.Stringer

	// Type returns the type of event, which selects the registry it is sent to.
	Type() Types
}

// ResizeEvent reports the new framebuffer size in pixels.
type ResizeEvent struct {
	Size image.Point
}

func (ev ResizeEvent) Type() Types { return Resize }

func (ev ResizeEvent) String() string {
	return fmt.Sprintf("Resize{%dx%d}", ev.Size.X, ev.Size.Y)
}

// KeyEvent reports a physical key action.
type KeyEvent struct {

	// Code is the platform-independent key code.
	Code key.Codes

	// Scancode is the platform-specific scancode of the key.
	Scancode int

	// Action is press, release or repeat.
	Action key.Actions

	// Mods are the modifier keys held during the action.
	Mods key.Modifiers
}

func (ev KeyEvent) Type() Types { return Key }

func (ev KeyEvent) String() string {
	return fmt.Sprintf("Key{%v %v scancode: %d mods: %v}", ev.Code, ev.Action, ev.Scancode, ev.Mods)
}

// FocusEvent reports whether the window now has input focus.
type FocusEvent struct {
	Focused bool
}

func (ev FocusEvent) Type() Types { return Focus }

func (ev FocusEvent) String() string {
	return fmt.Sprintf("Focus{%v}", ev.Focused)
}

// ScrollEvent reports a scroll offset along each axis.
type ScrollEvent struct {
	Delta math32.Vector2
}

func (ev ScrollEvent) Type() Types { return Scroll }

func (ev ScrollEvent) String() string {
	return fmt.Sprintf("Scroll{%v}", ev.Delta)
}
