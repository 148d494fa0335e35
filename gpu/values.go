// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/scaffold/base/ordmap"
)

// Values is an in-memory [Uniforms] that records the matrices set on it,
// in the order their names were first set. It stands in for a shader
// program where there is no GPU context, such as in tests.
type Values struct {

	// Names restricts the accepted uniform names; if empty, any name is accepted.
	Names []string

	values ordmap.Map[string, [16]float32]
}

// NewValues returns new values that only accept the given uniform names,
// or any name if none are given.
func NewValues(names ...string) *Values {
	return &Values{Names: names}
}

func (vs *Values) SetMatrix4(name string, m MatrixSource) error {
	if len(vs.Names) > 0 && !vs.known(name) {
		return unknownUniform(name)
	}
	data := m.Data()
	if err := checkSize(name, data); err != nil {
		return err
	}
	var v [16]float32
	copy(v[:], data)
	vs.values.Add(name, v)
	return nil
}

func (vs *Values) known(name string) bool {
	for _, n := range vs.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Matrix4 returns the last data set for the named uniform, and whether it was set.
func (vs *Values) Matrix4(name string) ([16]float32, bool) {
	return vs.values.ValueByKeyTry(name)
}

// Set returns the names of the uniforms that have been set, in order.
func (vs *Values) Set() []string {
	return vs.values.Keys()
}
