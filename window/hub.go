// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window provides the window/event [Hub], the single owner of
// the native window, which fans out input events to subscribers and
// tells every remaining subscriber when it is destroyed.
package window

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/scaffold/base/ordmap"
	"cogentcore.org/scaffold/events"
	"cogentcore.org/scaffold/events/key"
	"cogentcore.org/scaffold/math32"
)

// ErrHubDestroyed is the panic value of registering on a destroyed hub.
var ErrHubDestroyed = errors.New("window: hub is destroyed")

// entry is one subscriber in a registry.
type entry struct {
	fire func(ev events.Event)
	gone func()
	sub  *Subscription
}

// Hub owns one [Native] window and one subscriber registry per event type.
// Registries are ordered maps keyed by opaque subscription ids, so an
// entry's id stays a valid removal token however other entries change.
//
// Everything happens on the thread that polls the native window:
// there is no locking. Event fan-out iterates over a snapshot of the
// registry, so subscribers may cancel or register during a fan-out.
type Hub struct {
	native     Native
	registries [events.TypesN]*ordmap.Map[uint64, *entry]
	lastID     uint64
	destroyed  bool
}

// NewHub returns a new hub that owns the given native window.
func NewHub(native Native) *Hub {
	h := &Hub{native: native}
	for _, tp := range events.AllTypes() {
		h.registries[tp] = ordmap.New[uint64, *entry]()
	}
	return h
}

// Register adds a subscriber for the given event type. fire is called
// for every event of that type; gone is called once if the hub is
// destroyed while the subscription is still active, and may be nil.
// It returns the subscription, which is the only way to unsubscribe.
// There is no limit on the number of subscribers.
func (h *Hub) Register(typ events.Types, fire func(ev events.Event), gone func()) *Subscription {
	if h.destroyed {
		panic(ErrHubDestroyed)
	}
	if !typ.IsValid() {
		panic(fmt.Errorf("window: cannot register for event type %v", typ))
	}
	if fire == nil {
		panic("window: Register called with nil fire function")
	}
	h.lastID++
	sub := &Subscription{hub: h, typ: typ, id: h.lastID}
	h.registries[typ].Add(sub.id, &entry{fire: fire, gone: gone, sub: sub})
	slog.Debug("window: registered subscription", "type", typ, "id", sub.id)
	return sub
}

// OnResize registers fn for framebuffer resize events. See [Hub.Register].
func (h *Hub) OnResize(fn func(ev events.ResizeEvent), gone func()) *Subscription {
	return h.Register(events.Resize, func(ev events.Event) { fn(ev.(events.ResizeEvent)) }, gone)
}

// OnKey registers fn for key events. See [Hub.Register].
func (h *Hub) OnKey(fn func(ev events.KeyEvent), gone func()) *Subscription {
	return h.Register(events.Key, func(ev events.Event) { fn(ev.(events.KeyEvent)) }, gone)
}

// OnFocus registers fn for focus events. See [Hub.Register].
func (h *Hub) OnFocus(fn func(ev events.FocusEvent), gone func()) *Subscription {
	return h.Register(events.Focus, func(ev events.Event) { fn(ev.(events.FocusEvent)) }, gone)
}

// OnScroll registers fn for scroll events. See [Hub.Register].
func (h *Hub) OnScroll(fn func(ev events.ScrollEvent), gone func()) *Subscription {
	return h.Register(events.Scroll, func(ev events.Event) { fn(ev.(events.ScrollEvent)) }, gone)
}

// NumSubscribers returns the number of active subscribers for the given type.
func (h *Hub) NumSubscribers(typ events.Types) int {
	if !typ.IsValid() {
		return 0
	}
	return h.registries[typ].Len()
}

// Send synchronously calls every subscriber registered for the type of
// the event, most recently registered first. Subscribers registered
// during the fan-out are not called for this event, and subscribers
// cancelled during the fan-out are skipped if not yet reached.
// Events sent to a destroyed hub are dropped.
func (h *Hub) Send(ev events.Event) {
	if h.destroyed || !ev.Type().IsValid() {
		return
	}
	reg := h.registries[ev.Type()]
	ents := reg.Values()
	for i := len(ents) - 1; i >= 0; i-- {
		e := ents[i]
		if !reg.Has(e.sub.id) {
			continue
		}
		e.fire(ev)
		if h.destroyed {
			return
		}
	}
}

// Resize sends a [events.ResizeEvent] for the new framebuffer size.
func (h *Hub) Resize(width, height int) {
	h.Send(events.ResizeEvent{Size: image.Pt(width, height)})
}

// Key sends a [events.KeyEvent].
func (h *Hub) Key(code key.Codes, scancode int, action key.Actions, mods key.Modifiers) {
	h.Send(events.KeyEvent{Code: code, Scancode: scancode, Action: action, Mods: mods})
}

// Focus sends a [events.FocusEvent].
func (h *Hub) Focus(focused bool) {
	h.Send(events.FocusEvent{Focused: focused})
}

// Scroll sends a [events.ScrollEvent] with the given offsets.
func (h *Hub) Scroll(dx, dy float32) {
	h.Send(events.ScrollEvent{Delta: math32.Vec2(dx, dy)})
}

// Destroy removes every remaining subscriber, calling its gone function
// exactly once (most recently registered first within each type),
// and then destroys the native window. No events are delivered and
// no registrations are accepted afterwards. It is safe to call more than once.
func (h *Hub) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true
	n := 0
	for _, tp := range events.AllTypes() {
		reg := h.registries[tp]
		for {
			kv, ok := reg.Last()
			if !ok {
				break
			}
			reg.DeleteIndex(reg.Len() - 1)
			e := kv.Value
			e.sub.state = subNotifying
			if e.gone != nil {
				e.gone()
			}
			e.sub.consume()
			n++
		}
	}
	slog.Debug("window: destroyed hub", "notified", n)
	h.native.Destroy()
}

// IsDestroyed returns whether [Hub.Destroy] has been called.
func (h *Hub) IsDestroyed() bool {
	return h.destroyed
}

////////  Pull queries

// The queries below read the native window directly. After the hub
// is destroyed they return zero values and ShouldClose returns true.

// Size returns the current framebuffer size in pixels.
func (h *Hub) Size() image.Point {
	if h.destroyed {
		return image.Point{}
	}
	return h.native.Size()
}

// CursorPos returns the current cursor position in pixels.
func (h *Hub) CursorPos() math32.Vector2 {
	if h.destroyed {
		return math32.Vector2{}
	}
	return h.native.CursorPos()
}

// Focused returns whether the window has input focus.
func (h *Hub) Focused() bool {
	if h.destroyed {
		return false
	}
	return h.native.Focused()
}

// ShouldClose returns whether closing the window has been requested.
func (h *Hub) ShouldClose() bool {
	if h.destroyed {
		return true
	}
	return h.native.ShouldClose()
}

// SetShouldClose sets the close requested flag, which the render loop
// checks to end the program.
func (h *Hub) SetShouldClose(close bool) {
	if h.destroyed {
		return
	}
	h.native.SetShouldClose(close)
}

// SetCursorMode sets the cursor visibility and capture mode.
func (h *Hub) SetCursorMode(mode CursorModes) {
	if h.destroyed {
		return
	}
	h.native.SetCursorMode(mode)
}

// SwapBuffers presents the rendered frame.
func (h *Hub) SwapBuffers() {
	if h.destroyed {
		return
	}
	h.native.SwapBuffers()
}

// PollEvents processes pending native events, which are fanned out
// to subscribers before PollEvents returns.
func (h *Hub) PollEvents() {
	if h.destroyed {
		return
	}
	h.native.PollEvents()
}

// Time returns the seconds elapsed since the native library was initialized.
func (h *Hub) Time() float64 {
	if h.destroyed {
		return 0
	}
	return h.native.Time()
}
