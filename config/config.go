// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings of the scaffold program,
// which can be read from TOML or YAML files and reloaded when
// the file changes.
package config

import (
	"image"
	"log/slog"
	"strings"

	"cogentcore.org/scaffold/camera"
	"cogentcore.org/scaffold/math32"
	"cogentcore.org/scaffold/projection"
	"cogentcore.org/scaffold/window"
)

// Config is the main config struct.
type Config struct {
	Window     Window     `toml:"window" yaml:"window"`
	Camera     Camera     `toml:"camera" yaml:"camera"`
	Projection Projection `toml:"projection" yaml:"projection"`
	Log        Log        `toml:"log" yaml:"log"`
}

type Window struct {

	// the initial window width, in screen coordinates
	Width int `toml:"width" yaml:"width"`

	// the initial window height, in screen coordinates
	Height int `toml:"height" yaml:"height"`

	Title string `toml:"title" yaml:"title"`

	// whether buffer swaps wait for the vertical blank
	VSync bool `toml:"vsync" yaml:"vsync"`

	// whether to hide and capture the cursor for mouse look
	CaptureCursor bool `toml:"capture_cursor" yaml:"capture_cursor"`
}

type Camera struct {

	// the rotation per pixel of cursor motion, in degrees
	Sensitivity float32 `toml:"sensitivity" yaml:"sensitivity"`

	// the movement speed, in world units per second
	Speed float32 `toml:"speed" yaml:"speed"`

	// the initial camera position
	Position [3]float32 `toml:"position" yaml:"position"`
}

type Projection struct {

	// use an orthographic projection in window pixel units instead of a perspective one
	Ortho bool `toml:"ortho" yaml:"ortho"`

	// the vertical field of view, in degrees
	FOV float32 `toml:"fov" yaml:"fov"`

	// the near clipping plane of the perspective projection
	Near float32 `toml:"near" yaml:"near"`

	// the far clipping plane of the perspective projection
	Far float32 `toml:"far" yaml:"far"`

	// the orthographic projection spans [-Depth, Depth] in depth
	Depth float32 `toml:"depth" yaml:"depth"`
}

type Log struct {

	// the log level: debug, info, warn or error
	Level string `toml:"level" yaml:"level"`
}

// Defaults sets the default values of all settings.
func (c *Config) Defaults() {
	c.Window.Defaults()
	c.Camera.Defaults()
	c.Projection.Defaults()
	c.Log.Level = "warn"
}

func (w *Window) Defaults() {
	var opts window.Options
	opts.Defaults()
	w.Width = opts.Size.X
	w.Height = opts.Size.Y
	w.Title = opts.Title
	w.VSync = opts.VSync
	w.CaptureCursor = true
}

// Options returns the native window options for these settings.
func (w *Window) Options() window.Options {
	opts := window.Options{
		Size:       image.Pt(w.Width, w.Height),
		Title:      w.Title,
		CursorMode: window.CursorNormal,
		VSync:      w.VSync,
	}
	if w.CaptureCursor {
		opts.CursorMode = window.CursorDisabled
	}
	opts.Fixup()
	return opts
}

func (cc *Camera) Defaults() {
	cm := camera.New()
	cc.Sensitivity = cm.Sensitivity
	cc.Speed = cm.Speed
	pos := cm.Position()
	cc.Position = [3]float32{pos.X, pos.Y, pos.Z}
}

// Apply sets the sensitivity and speed of the given camera.
// The position is only used by [Camera.New].
func (cc *Camera) Apply(cm *camera.Controller) {
	cm.Sensitivity = cc.Sensitivity
	cm.Speed = cc.Speed
}

// New returns a new camera with these settings.
func (cc *Camera) New() *camera.Controller {
	cm := camera.New()
	cc.Apply(cm)
	cm.SetPosition(math32.Vec3(cc.Position[0], cc.Position[1], cc.Position[2]))
	return cm
}

func (pc *Projection) Defaults() {
	pc.Ortho = false
	pc.FOV = 45
	pc.Near = 0.1
	pc.Far = 100
	pc.Depth = 50
}

// New returns a new projection with these settings for the given window size.
func (pc *Projection) New(width, height float32) projection.Projection {
	if pc.Ortho {
		return projection.NewOrthographic(0, width, 0, height, -pc.Depth, pc.Depth)
	}
	return projection.NewPerspective(pc.fov(), width, height, pc.Near, pc.Far)
}

// Apply updates the clipping planes and field of view of the given projection.
// The orthographic left, right, bottom and top follow the window, so only its
// depth is set.
func (pc *Projection) Apply(p projection.Projection) {
	switch p := p.(type) {
	case *projection.Perspective:
		p.FOV = pc.fov()
		p.Near = pc.Near
		p.Far = pc.Far
		p.Update()
	case *projection.Orthographic:
		p.Near = -pc.Depth
		p.Far = pc.Depth
		p.Update()
	}
}

// fov returns the field of view in radians, within the scroll zoom range.
func (pc *Projection) fov() float32 {
	return math32.Clamp(math32.DegToRad(pc.FOV), projection.MinFOV, projection.MaxFOV)
}

// SlogLevel returns the log level, or the warn level if it is not valid.
func (lc *Log) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(lc.Level))); err != nil {
		slog.Warn("config: invalid log level", "level", lc.Level)
		return slog.LevelWarn
	}
	return level
}
