// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"math"

	"github.com/stretchr/testify/assert"
)

// Float is a floating point type constraint.
type Float interface {
	~float32 | ~float64
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol[T Float](t assert.TestingT, expected T, actual T, tolerance T) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if math.Abs(float64(actual-expected)) > float64(tolerance) {
		return assert.Equal(t, expected, actual)
	}
	return true
}

// EqualTolSlice is a slice version of [EqualTol].
func EqualTolSlice[T Float](t assert.TestingT, expected, actual []T, tolerance T) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	ok := true
	for i := range expected {
		if math.Abs(float64(actual[i]-expected[i])) > float64(tolerance) {
			ok = assert.Equal(t, expected[i], actual[i], "index %d", i) && ok
		}
	}
	return ok
}
