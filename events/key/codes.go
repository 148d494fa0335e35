// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key contains the platform-independent key codes,
// actions and modifier flags carried by key events.
package key

import "fmt"

// Codes is the identity of a physical key, independent of the
// keyboard layout and the native windowing library.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeEscape
	CodeReturnEnter
	CodeTab
	CodeSpacebar
	CodeBackspace

	CodeRightArrow
	CodeLeftArrow
	CodeDownArrow
	CodeUpArrow

	CodeLeftShift
	CodeRightShift
	CodeLeftControl
	CodeRightControl

	CodesN
)

var codeNames = map[Codes]string{
	CodeUnknown:      "Unknown",
	CodeEscape:       "Escape",
	CodeReturnEnter:  "ReturnEnter",
	CodeTab:          "Tab",
	CodeSpacebar:     "Spacebar",
	CodeBackspace:    "Backspace",
	CodeRightArrow:   "RightArrow",
	CodeLeftArrow:    "LeftArrow",
	CodeDownArrow:    "DownArrow",
	CodeUpArrow:      "UpArrow",
	CodeLeftShift:    "LeftShift",
	CodeRightShift:   "RightShift",
	CodeLeftControl:  "LeftControl",
	CodeRightControl: "RightControl",
}

func (c Codes) String() string {
	switch {
	case c >= CodeA && c <= CodeZ:
		return string(rune('A' + c - CodeA))
	case c >= Code0 && c <= Code9:
		return string(rune('0' + c - Code0))
	}
	if nm, ok := codeNames[c]; ok {
		return nm
	}
	return fmt.Sprintf("Codes(%d)", int32(c))
}

// Actions is what happened to a key.
// The values match the native (glfw) action values.
type Actions int32

const (
	// Release is sent when a key is released.
	Release Actions = iota

	// Press is sent when a key is pressed down.
	Press

	// Repeat is sent while a key is held down, at the system repeat rate.
	Repeat
)

func (a Actions) String() string {
	switch a {
	case Release:
		return "Release"
	case Press:
		return "Press"
	case Repeat:
		return "Repeat"
	}
	return fmt.Sprintf("Actions(%d)", int32(a))
}
