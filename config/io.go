// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a config file whose extension
// is not .toml, .yaml or .yml.
var ErrUnknownFormat = errors.New("config: unknown file format")

type formats int32

const (
	formatTOML formats = iota
	formatYAML
)

func formatOf(file string) (formats, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, file)
}

// Open reads the given config file into cfg, overwriting only the
// settings present in the file. The format is given by the file extension.
func Open(cfg *Config, file string) error {
	ft, err := formatOf(file)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return ReadBytes(cfg, b, ft == formatYAML)
}

// ReadBytes reads TOML, or YAML if yml is set, from b into cfg.
// Unknown settings are an error.
func ReadBytes(cfg *Config, b []byte, yml bool) error {
	var err error
	if yml {
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) { // empty file
			err = nil
		}
	} else {
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(cfg)
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Save writes cfg to the given file, in the format given by its extension.
func Save(cfg *Config, file string) error {
	ft, err := formatOf(file)
	if err != nil {
		return err
	}
	var b []byte
	if ft == formatYAML {
		b, err = yaml.Marshal(cfg)
	} else {
		b, err = toml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0666)
}
