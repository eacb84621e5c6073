// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argspec/pkg/schema"
)

const configName = "argspec.toml"

// Config is the optional argspec.toml file. Unset fields leave the built-in
// defaults alone.
type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Output OutputConfig `toml:"output"`
}

type ParseConfig struct {
	CaseSensitive *bool `toml:"case_sensitive"`
	IgnoreUnknown *bool `toml:"ignore_unknown"`
	StripQuotes   *bool `toml:"strip_quotes"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// loadConfig reads the file at path, or the nearest argspec.toml above the
// working directory when path is empty. A missing file is not an error when
// it was not asked for explicitly. The returned path is "" when no file was
// read.
func loadConfig(path string, logger *slog.Logger) (*Config, string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		path, err = findConfigPath(cwd)
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, "", nil
		}
		if err != nil {
			return nil, "", err
		}
	}
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("ignoring unknown config key", "path", path, "key", key.String())
	}
	return &cfg, path, nil
}

func findConfigPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, configName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func (c ParseConfig) apply(s *schema.Schema) {
	if c.CaseSensitive != nil {
		s.CaseSensitive = *c.CaseSensitive
	}
	if c.IgnoreUnknown != nil {
		s.IgnoreUnknown = *c.IgnoreUnknown
	}
	if c.StripQuotes != nil {
		s.StripQuotes = *c.StripQuotes
	}
}
