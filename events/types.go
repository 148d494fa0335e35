// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the kind of window event, and also the
// level at which one can select which events to listen to.
// Each type has its own subscriber registry on the window hub.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Resize is sent when the framebuffer of the window changes size.
	Resize

	// Key is sent for every physical key press, release and repeat.
	Key

	// Focus is sent when the window gains or loses input focus.
	Focus

	// Scroll is sent for mouse wheel and trackpad scrolling.
	Scroll

	TypesN
)

var typeNames = [TypesN]string{"UnknownType", "Resize", "Key", "Focus", "Scroll"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typeNames[tp]
}

// IsValid returns whether this is a type that can be subscribed to.
func (tp Types) IsValid() bool {
	return tp > UnknownType && tp < TypesN
}

// AllTypes returns every type that has a subscriber registry.
func AllTypes() []Types {
	ts := make([]Types, 0, TypesN-1)
	for tp := Resize; tp < TypesN; tp++ {
		ts = append(ts, tp)
	}
	return ts
}
