// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package glfwwin provides the desktop [window.Native] implementation,
// using glfw for the window and an OpenGL 4.1 core context loaded with go-gl.
package glfwwin

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"

	"cogentcore.org/scaffold/base/errors"
	"cogentcore.org/scaffold/math32"
	"cogentcore.org/scaffold/window"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Native is a glfw window with a current OpenGL context.
type Native struct {
	glw *glfw.Window
	hub *window.Hub
}

// New initializes glfw, creates a window with the given options, makes
// its OpenGL context current and loads the OpenGL entry points.
// It returns the [window.Hub] that owns the new window.
// Any failure is fatal: the returned error names the native call
// that failed, and everything created so far is released.
// IMPORTANT: must be called on the main initial thread!
func New(opts window.Options) (*window.Hub, error) {
	opts.Fixup()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwwin: glfw.Init failed: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwwin: glfw.CreateWindow failed: %w", err)
	}
	// MakeContextCurrent reports glfw errors by panicking
	if err := errors.Recover(glw.MakeContextCurrent); err != nil {
		glw.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("glfwwin: glfw.MakeContextCurrent failed: %w", err)
	}
	if err := gl.Init(); err != nil {
		glw.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("glfwwin: gl.Init failed: %w", err)
	}
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	nw := &Native{glw: glw}
	nw.hub = window.NewHub(nw)
	glw.SetFramebufferSizeCallback(nw.framebufferSizeEvent)
	glw.SetKeyCallback(nw.keyEvent)
	glw.SetFocusCallback(nw.focusEvent)
	glw.SetScrollCallback(nw.scrollEvent)
	nw.SetCursorMode(opts.CursorMode)

	fb := nw.Size()
	gl.Viewport(0, 0, int32(fb.X), int32(fb.Y))
	slog.Info("glfwwin: created window", "title", opts.Title, "framebuffer", fb,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))
	return nw.hub, nil
}

func (nw *Native) framebufferSizeEvent(gw *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	nw.hub.Resize(width, height)
}

func (nw *Native) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	nw.hub.Key(GlfwKeyCode(ky), scancode, GlfwAction(action), GlfwMods(mod))
}

func (nw *Native) focusEvent(gw *glfw.Window, focused bool) {
	nw.hub.Focus(focused)
}

func (nw *Native) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	nw.hub.Scroll(float32(xoff), float32(yoff))
}

// Size returns the framebuffer size, which differs from the window
// size in screen coordinates on high-DPI displays.
func (nw *Native) Size() image.Point {
	w, h := nw.glw.GetFramebufferSize()
	return image.Pt(w, h)
}

func (nw *Native) CursorPos() math32.Vector2 {
	x, y := nw.glw.GetCursorPos()
	return math32.Vec2(float32(x), float32(y))
}

func (nw *Native) Focused() bool {
	return nw.glw.GetAttrib(glfw.Focused) == glfw.True
}

func (nw *Native) ShouldClose() bool {
	return nw.glw.ShouldClose()
}

func (nw *Native) SetShouldClose(close bool) {
	nw.glw.SetShouldClose(close)
}

func (nw *Native) SetCursorMode(mode window.CursorModes) {
	m := glfw.CursorNormal
	switch mode {
	case window.CursorHidden:
		m = glfw.CursorHidden
	case window.CursorDisabled:
		m = glfw.CursorDisabled
	}
	nw.glw.SetInputMode(glfw.CursorMode, m)
}

func (nw *Native) SwapBuffers() {
	nw.glw.SwapBuffers()
}

func (nw *Native) PollEvents() {
	glfw.PollEvents()
}

func (nw *Native) Time() float64 {
	return glfw.GetTime()
}

// Destroy destroys the window and terminates glfw.
func (nw *Native) Destroy() {
	nw.glw.Destroy()
	glfw.Terminate()
}
