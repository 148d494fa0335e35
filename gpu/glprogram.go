// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLProgram sets the uniforms of an OpenGL shader program that was
// compiled and linked elsewhere. It requires a current GL context,
// such as the one made by glfwwin.New.
type GLProgram struct {
	handle uint32

	// locations caches uniform locations by name; -1 is not found.
	locations map[string]int32
}

// NewGLProgram returns a new program for the given linked program handle.
func NewGLProgram(handle uint32) *GLProgram {
	return &GLProgram{handle: handle, locations: map[string]int32{}}
}

// Handle returns the GL program handle.
func (pr *GLProgram) Handle() uint32 {
	return pr.handle
}

// Activate makes this the current program.
func (pr *GLProgram) Activate() {
	gl.UseProgram(pr.handle)
}

// location returns the location of the named uniform, looking it up
// in the program the first time.
func (pr *GLProgram) location(name string) int32 {
	if loc, ok := pr.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(pr.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Debug("gpu: uniform not found", "program", pr.handle, "name", name)
	}
	pr.locations[name] = loc
	return loc
}

// SetMatrix4 uploads m to the named mat4 uniform of the current program.
// The data is row-major, so it is uploaded with transpose set.
func (pr *GLProgram) SetMatrix4(name string, m MatrixSource) error {
	loc := pr.location(name)
	if loc < 0 {
		return unknownUniform(name)
	}
	data := m.Data()
	if err := checkSize(name, data); err != nil {
		return err
	}
	gl.UniformMatrix4fv(loc, 1, true, &data[0])
	return nil
}
