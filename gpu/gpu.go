// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is the boundary between the scaffold and shader programs:
// matrices are handed to [Uniforms] as row-major float data.
package gpu

import (
	"errors"
	"fmt"
)

// ErrUnknownUniform is returned when a program has no uniform of the given name.
var ErrUnknownUniform = errors.New("gpu: unknown uniform")

// MatrixSource is anything that provides the 16 row-major elements of a
// 4x4 matrix, such as a *math32.Matrix4, math32.Transform, projection or
// camera controller.
type MatrixSource interface {
	Data() []float32
}

// Uniforms sets the uniform variables of a shader program.
type Uniforms interface {

	// SetMatrix4 sets the named mat4 uniform from the row-major data of m.
	SetMatrix4(name string, m MatrixSource) error
}

// Standard names of the frame matrices in shader programs.
const (
	ModelName      = "model"
	ViewName       = "view"
	ProjectionName = "projection"
)

// SetFrame sets the model, view and projection matrices of a frame
// under their standard names, stopping at the first error.
func SetFrame(u Uniforms, model, view, projection MatrixSource) error {
	if err := u.SetMatrix4(ModelName, model); err != nil {
		return err
	}
	if err := u.SetMatrix4(ViewName, view); err != nil {
		return err
	}
	return u.SetMatrix4(ProjectionName, projection)
}

func unknownUniform(name string) error {
	return fmt.Errorf("%w %q", ErrUnknownUniform, name)
}

func checkSize(name string, data []float32) error {
	if len(data) != 16 {
		return fmt.Errorf("gpu: uniform %q: matrix has %d elements, not 16", name, len(data))
	}
	return nil
}
