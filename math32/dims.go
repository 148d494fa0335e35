// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"errors"
	"fmt"
)

// ErrDimRange is wrapped by the panic value of any vector
// component access with a dimension that the vector does not have.
var ErrDimRange = errors.New("math32: dimension out of range")

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
)

// DimsN is the number of dimensions of a [Vector4].
const DimsN = 4

var dimNames = [DimsN]string{"X", "Y", "Z", "W"}

func (d Dims) String() string {
	if d < 0 || d >= DimsN {
		return fmt.Sprintf("Dims(%d)", int32(d))
	}
	return dimNames[d]
}

// dimRangeError returns the panic value for an invalid dimension
// on a vector with n components.
func dimRangeError(dim Dims, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrDimRange, int32(dim), n)
}
