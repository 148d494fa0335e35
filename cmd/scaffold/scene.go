// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/scaffold/gpu"
	"cogentcore.org/scaffold/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShader = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 color;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 vcolor;

void main() {
	gl_Position = projection * view * model * vec4(position, 1.0);
	vcolor = color;
}
` + "\x00"

const fragmentShader = `#version 410 core
in vec3 vcolor;
out vec4 fragColor;

void main() {
	fragColor = vec4(vcolor, 1.0);
}
` + "\x00"

// triangle is position then color for each vertex.
var triangle = []float32{
	-0.5, -0.5, 0, 1, 0, 0,
	0.5, -0.5, 0, 0, 1, 0,
	0, 0.5, 0, 0, 0, 1,
}

// scene is a single spinning triangle.
type scene struct {
	program *gpu.GLProgram
	vao     uint32
	vbo     uint32
	model   *math32.Transform
}

func newScene() (*scene, error) {
	handle, err := linkProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	sc := &scene{program: gpu.NewGLProgram(handle), model: math32.NewTransform()}
	gl.GenVertexArrays(1, &sc.vao)
	gl.GenBuffers(1, &sc.vbo)
	gl.BindVertexArray(sc.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, sc.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangle)*4, gl.Ptr(triangle), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.Enable(gl.DEPTH_TEST)
	return sc, nil
}

// draw renders the scene at time t seconds with the given view and projection.
func (sc *scene) draw(t float32, view, projection gpu.MatrixSource) error {
	gl.ClearColor(0.1, 0.1, 0.12, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	sc.program.Activate()
	sc.model.SetRotate(0, t, 0)
	if err := gpu.SetFrame(sc.program, sc.model, view, projection); err != nil {
		return err
	}
	gl.BindVertexArray(sc.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(triangle)/6))
	return nil
}

func (sc *scene) delete() {
	gl.DeleteBuffers(1, &sc.vbo)
	gl.DeleteVertexArrays(1, &sc.vao)
	gl.DeleteProgram(sc.program.Handle())
}

func linkProgram(vertex, fragment string) (uint32, error) {
	vs, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)
	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &n)
		lg := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(handle, n, nil, gl.Str(lg))
		gl.DeleteProgram(handle)
		return 0, fmt.Errorf("scaffold: failed to link program: %s", strings.TrimRight(lg, "\x00"))
	}
	return handle, nil
}

func compileShader(source string, typ uint32) (uint32, error) {
	sh := gl.CreateShader(typ)
	src, free := gl.Strs(source)
	gl.ShaderSource(sh, 1, src, nil)
	free()
	gl.CompileShader(sh)
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		lg := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(sh, n, nil, gl.Str(lg))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("scaffold: failed to compile shader: %s", strings.TrimRight(lg, "\x00"))
	}
	return sh, nil
}
