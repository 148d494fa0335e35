// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strings"

// Modifiers is a bitflag set of the modifier keys held during a key event.
type Modifiers int64

const (
	// Shift is the shift key.
	Shift Modifiers = 1 << iota

	// Control is the control key.
	Control

	// Alt is the alt (option on mac) key.
	Alt

	// Meta is the system meta key (command on mac, windows key).
	Meta
)

// HasFlag returns whether all of the given flags are set.
func (m Modifiers) HasFlag(flag Modifiers) bool {
	return m&flag == flag
}

// SetFlag sets the given flags on or off.
func (m *Modifiers) SetFlag(on bool, flag Modifiers) {
	if on {
		*m |= flag
	} else {
		*m &^= flag
	}
}

func (m Modifiers) String() string {
	var s []string
	for _, f := range []struct {
		flag Modifiers
		name string
	}{{Shift, "Shift"}, {Control, "Control"}, {Alt, "Alt"}, {Meta, "Meta"}} {
		if m.HasFlag(f.flag) {
			s = append(s, f.name)
		}
	}
	return strings.Join(s, "|")
}
