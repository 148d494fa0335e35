// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"

	"cogentcore.org/scaffold/events/key"
)

// Directions are the directions in which the camera can move.
type Directions int32

const (
	Forward Directions = iota
	Backward
	Left
	Right

	DirectionsN
)

var directionNames = [DirectionsN]string{"Forward", "Backward", "Left", "Right"}

func (d Directions) String() string {
	if d < 0 || d >= DirectionsN {
		return fmt.Sprintf("Directions(%d)", int32(d))
	}
	return directionNames[d]
}

// Bindings maps each movement direction to the key that moves in it.
type Bindings [DirectionsN]key.Codes

// DefaultBindings returns the standard WASD bindings.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:  key.CodeW,
		Backward: key.CodeS,
		Left:     key.CodeA,
		Right:    key.CodeD,
	}
}

// Direction returns the direction bound to the given key code, if any.
func (b *Bindings) Direction(code key.Codes) (Directions, bool) {
	for d, c := range b {
		if c == code && c != key.CodeUnknown {
			return Directions(d), true
		}
	}
	return 0, false
}
