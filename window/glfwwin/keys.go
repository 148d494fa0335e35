// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package glfwwin

import (
	"cogentcore.org/scaffold/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyCodes = map[glfw.Key]key.Codes{
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyEnter:        key.CodeReturnEnter,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeySpace:        key.CodeSpacebar,
	glfw.KeyBackspace:    key.CodeBackspace,
	glfw.KeyRight:        key.CodeRightArrow,
	glfw.KeyLeft:         key.CodeLeftArrow,
	glfw.KeyDown:         key.CodeDownArrow,
	glfw.KeyUp:           key.CodeUpArrow,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyRightControl: key.CodeRightControl,
}

// GlfwKeyCode returns the key code for the given glfw key.
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	switch {
	case kcode >= glfw.KeyA && kcode <= glfw.KeyZ:
		return key.CodeA + key.Codes(kcode-glfw.KeyA)
	case kcode >= glfw.Key0 && kcode <= glfw.Key9:
		return key.Code0 + key.Codes(kcode-glfw.Key0)
	}
	if kc, ok := keyCodes[kcode]; ok {
		return kc
	}
	return key.CodeUnknown
}

// GlfwAction returns the key action for the given glfw action.
func GlfwAction(action glfw.Action) key.Actions {
	switch action {
	case glfw.Press:
		return key.Press
	case glfw.Repeat:
		return key.Repeat
	default:
		return key.Release
	}
}

// GlfwMods returns the modifiers for the given glfw modifier bits.
func GlfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mod&glfw.ModShift != 0 {
		m.SetFlag(true, key.Shift)
	}
	if mod&glfw.ModControl != 0 {
		m.SetFlag(true, key.Control)
	}
	if mod&glfw.ModAlt != 0 {
		m.SetFlag(true, key.Alt)
	}
	if mod&glfw.ModSuper != 0 {
		m.SetFlag(true, key.Meta)
	}
	return m
}
