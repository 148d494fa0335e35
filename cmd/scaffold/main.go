// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Command scaffold opens a window and renders a triangle through a
// first person camera: W, A, S and D move, the mouse looks around,
// the scroll wheel zooms and Escape quits.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/scaffold/base/errors"
	"cogentcore.org/scaffold/base/logx"
	"cogentcore.org/scaffold/camera"
	"cogentcore.org/scaffold/config"
	"cogentcore.org/scaffold/events"
	"cogentcore.org/scaffold/events/key"
	"cogentcore.org/scaffold/projection"
	"cogentcore.org/scaffold/window"
	"cogentcore.org/scaffold/window/glfwwin"
	"github.com/spf13/cobra"
)

// flags are the command line settings, which override the config file.
type flags struct {
	config  string
	verbose bool
	vverb   bool
	quiet   bool
	width   int
	height  int
	title   string
	ortho   bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	fl := &flags{}
	cmd := &cobra.Command{
		Use:           "scaffold",
		Short:         "Render a triangle with a first person camera",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, fl)
			if err != nil {
				return errors.Log(err)
			}
			return errors.Log(run(cfg, fl.config))
		},
	}
	pf := cmd.Flags()
	pf.StringVar(&fl.config, "config", "", "the TOML or YAML settings file, reloaded when it changes")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "log info messages")
	pf.BoolVar(&fl.vverb, "vv", false, "log debug messages")
	pf.BoolVarP(&fl.quiet, "quiet", "q", false, "only log errors")
	pf.IntVar(&fl.width, "width", 0, "the initial window width")
	pf.IntVar(&fl.height, "height", 0, "the initial window height")
	pf.StringVar(&fl.title, "title", "", "the window title")
	pf.BoolVar(&fl.ortho, "ortho", false, "use an orthographic projection")
	return cmd
}

// loadConfig returns the default settings, overridden by the config
// file and then by any flags that were set.
func loadConfig(cmd *cobra.Command, fl *flags) (*config.Config, error) {
	cfg := &config.Config{}
	cfg.Defaults()
	if fl.config != "" {
		if err := config.Open(cfg, fl.config); err != nil {
			return nil, err
		}
	}
	logx.UserLevel = cfg.Log.SlogLevel()
	if fl.verbose || fl.vverb || fl.quiet {
		logx.UserLevel = logx.LevelFromFlags(fl.vverb, fl.verbose, fl.quiet)
	}
	logx.SetDefaultLogger()

	set := cmd.Flags().Changed
	if set("width") {
		cfg.Window.Width = fl.width
	}
	if set("height") {
		cfg.Window.Height = fl.height
	}
	if set("title") {
		cfg.Window.Title = fl.title
	}
	if set("ortho") {
		cfg.Projection.Ortho = fl.ortho
	}
	return cfg, nil
}

func run(cfg *config.Config, file string) error {
	hub, err := glfwwin.New(cfg.Window.Options())
	if err != nil {
		return err
	}
	defer hub.Destroy()

	sc, err := newScene()
	if err != nil {
		return err
	}
	defer sc.delete()

	size := hub.Size()
	prj := cfg.Projection.New(float32(size.X), float32(size.Y))
	prj.RegisterWithHub(hub)
	defer prj.Unregister()

	cam := cfg.Camera.New()
	cam.RegisterWithHub(hub)
	defer cam.Unregister()

	quit := hub.OnKey(func(ev events.KeyEvent) {
		if ev.Code == key.CodeEscape && ev.Action == key.Press {
			hub.SetShouldClose(true)
		}
	}, nil)
	defer func() {
		if quit.Active() {
			quit.Cancel()
		}
	}()

	var watch *config.Watcher
	if file != "" {
		watch, err = config.Watch(file, cfg)
		if err != nil {
			// rendering works without reloading
			errors.Log(err)
		} else {
			defer watch.Close()
		}
	}
	return loop(hub, sc, prj, cam, watch)
}

// loop renders frames until the window is closed.
func loop(hub *window.Hub, sc *scene, prj projection.Projection, cam *camera.Controller, watch *config.Watcher) error {
	last := hub.Time()
	for !hub.ShouldClose() {
		hub.PollEvents()
		if watch != nil {
			if cfg, ok := watch.Poll(); ok {
				cfg.Camera.Apply(cam)
				cfg.Projection.Apply(prj)
				logx.UserLevel = cfg.Log.SlogLevel()
			}
		}
		now := hub.Time()
		cam.Update(float32(now - last))
		last = now
		if err := sc.draw(float32(now), cam, prj); err != nil {
			return err
		}
		hub.SwapBuffers()
	}
	slog.Info("scaffold: window closed")
	return nil
}
