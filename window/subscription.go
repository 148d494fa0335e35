// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"errors"
	"log/slog"

	"cogentcore.org/scaffold/events"
)

// ErrSubscriptionConsumed is the panic value of [Subscription.Cancel]
// on a subscription that was already cancelled, or that the hub
// released when it was destroyed.
var ErrSubscriptionConsumed = errors.New("window: subscription already consumed")

type subStates int32

const (
	subActive subStates = iota

	// the hub has removed the entry and is running its gone callback
	subNotifying

	subConsumed
)

// Subscription is the single-use cancellation capability returned by
// [Hub.Register]. Cancel consumes it: after Cancel returns, or after
// the hub has called the subscriber's gone callback, the subscription
// is consumed and any further Cancel panics with [ErrSubscriptionConsumed].
// Subscribers typically store the *Subscription and set it to nil both
// after calling Cancel and inside their gone callback.
type Subscription struct {
	hub   *Hub
	typ   events.Types
	id    uint64
	state subStates
}

// Type returns the event type this subscription receives.
func (s *Subscription) Type() events.Types {
	return s.typ
}

// Active returns whether the subscription is still registered
// and can be cancelled. It is false for a nil subscription.
func (s *Subscription) Active() bool {
	return s != nil && s.state == subActive
}

// Cancel removes the subscription from its hub so its fire callback
// is never called again, and its gone callback is not called.
// Calling Cancel from within the subscriber's own gone callback is allowed
// and only consumes the subscription, since the hub has already removed it.
func (s *Subscription) Cancel() {
	switch s.state {
	case subConsumed:
		panic(ErrSubscriptionConsumed)
	case subNotifying:
		s.consume()
		return
	}
	s.hub.registries[s.typ].DeleteKey(s.id)
	slog.Debug("window: cancelled subscription", "type", s.typ, "id", s.id)
	s.consume()
}

func (s *Subscription) consume() {
	s.state = subConsumed
	s.hub = nil
}
