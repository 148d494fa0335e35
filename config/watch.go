// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes. Each reload starts
// from the base config given to [Watch] and is delivered on C; only
// the most recent reload is kept if C is not drained.
type Watcher struct {

	// C receives each successfully reloaded config.
	C <-chan *Config

	c       chan *Config
	file    string
	base    Config
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

// Watch starts watching the given config file. The directory of the
// file is watched, so that editors that replace the file are followed.
func Watch(file string, base *Config) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	file = filepath.Clean(file)
	if err := fw.Add(filepath.Dir(file)); err != nil {
		fw.Close()
		return nil, err
	}
	c := make(chan *Config, 1)
	w := &Watcher{C: c, c: c, file: file, base: *base, watcher: fw}
	w.wg.Add(1)
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.file {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config: watch error", "file", w.file, "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg := w.base
	if err := Open(&cfg, w.file); err != nil {
		// a partially written file; the next write reloads it
		slog.Debug("config: reload failed", "file", w.file, "err", err)
		return
	}
	slog.Info("config: reloaded", "file", w.file)
	select {
	case <-w.c:
	default:
	}
	w.c <- &cfg
}

// Poll returns the most recently reloaded config without blocking,
// and whether there was one.
func (w *Watcher) Poll() (*Config, bool) {
	select {
	case cfg := <-w.c:
		return cfg, true
	default:
		return nil, false
	}
}

// Close stops watching the file.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
