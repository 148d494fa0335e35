// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"cogentcore.org/scaffold/events/key"
	"cogentcore.org/scaffold/math32"
	"github.com/stretchr/testify/assert"
)

func TestEventTypes(t *testing.T) {
	tests := []struct {
		ev  Event
		typ Types
		str string
	}{
		{ResizeEvent{Size: image.Pt(800, 600)}, Resize, "Resize{800x600}"},
		{KeyEvent{Code: key.CodeW, Action: key.Press, Scancode: 17}, Key, "Key{W Press scancode: 17 mods: }"},
		{FocusEvent{Focused: true}, Focus, "Focus{true}"},
		{ScrollEvent{Delta: math32.Vec2(0, -1)}, Scroll, "Scroll{(0, -1)}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.typ, tt.ev.Type())
		assert.Equal(t, tt.str, tt.ev.String())
	}
}

func TestAllTypes(t *testing.T) {
	assert.Equal(t, []Types{Resize, Key, Focus, Scroll}, AllTypes())
	for _, tp := range AllTypes() {
		assert.True(t, tp.IsValid())
	}
	assert.False(t, UnknownType.IsValid())
	assert.False(t, TypesN.IsValid())
	assert.Equal(t, "Scroll", Scroll.String())
	assert.Equal(t, "Types(42)", Types(42).String())
}
