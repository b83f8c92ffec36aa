// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the cube viewer.
// Values come from `default:` struct tags, then an optional TOML
// file, then command line flags.
package config

import (
	"fmt"
	"io"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/glcube/shaders"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Config is the main config struct.
type Config struct {

	// Title is the window title.
	Title string `default:"glcube"`

	// Shaders configures where the shader sources come from.
	Shaders Shaders

	// LogLevel is the minimum level of log messages shown:
	// debug, info, warn or error. Empty uses the build default.
	LogLevel string

	// Overlay is whether to show the Information panel.
	Overlay bool `default:"true"`

	// VSync is whether buffer swaps wait for the vertical refresh.
	VSync bool

	// File is the TOML file the config was read from, if any.
	File string `toml:"-"`

	// PrintConfig is whether to print the config and exit.
	PrintConfig bool `toml:"-"`
}

// Shaders has the shader file names and search paths.
type Shaders struct {

	// Vertex is the vertex shader file name.
	Vertex string `default:"shader.vs"`

	// Fragment is the fragment shader file name.
	Fragment string `default:"shader.fs"`

	// Paths are the directories searched for the shader files.
	Paths []string
}

// Default returns the config with all default values.
func Default() *Config {
	cfg := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(cfg))
	cfg.Shaders.Paths = slices.Clone(shaders.DefaultPaths)
	return cfg
}

// flags are the command line values, bound to a [pflag.FlagSet].
type flags struct {
	file      string
	title     string
	vertex    string
	fragment  string
	paths     []string
	logLevel  string
	overlay   bool
	vsync     bool
	printConf bool
}

func (fl *flags) bind(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&fl.file, "config", "c", "", "TOML config file")
	fs.StringVar(&fl.title, "title", cfg.Title, "window title")
	fs.StringVar(&fl.vertex, "vertex", cfg.Shaders.Vertex, "vertex shader file name")
	fs.StringVar(&fl.fragment, "fragment", cfg.Shaders.Fragment, "fragment shader file name")
	fs.StringSliceVar(&fl.paths, "shader-path", cfg.Shaders.Paths, "directories searched for shader files")
	fs.StringVar(&fl.logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&fl.overlay, "overlay", cfg.Overlay, "show the Information panel")
	fs.BoolVar(&fl.vsync, "vsync", cfg.VSync, "wait for the vertical refresh on buffer swaps")
	fs.BoolVar(&fl.printConf, "print-config", false, "print the config as TOML and exit")
}

// apply sets the fields whose flags were given on the command line.
func (fl *flags) apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("title") {
		cfg.Title = fl.title
	}
	if fs.Changed("vertex") {
		cfg.Shaders.Vertex = fl.vertex
	}
	if fs.Changed("fragment") {
		cfg.Shaders.Fragment = fl.fragment
	}
	if fs.Changed("shader-path") {
		cfg.Shaders.Paths = fl.paths
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = fl.logLevel
	}
	if fs.Changed("overlay") {
		cfg.Overlay = fl.overlay
	}
	if fs.Changed("vsync") {
		cfg.VSync = fl.vsync
	}
	cfg.PrintConfig = fl.printConf
}

// Load returns the config for the given command line arguments,
// not including the program name. It returns [pflag.ErrHelp]
// when help was requested.
func Load(name string, args []string, out io.Writer) (*Config, error) {
	cfg := Default()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fl := &flags{}
	fl.bind(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fl.file != "" {
		if err := tomlx.Open(cfg, fl.file); err != nil {
			return nil, fmt.Errorf("config: opening %s: %w", fl.file, err)
		}
		cfg.File = fl.file
	}
	fl.apply(fs, cfg)
	return cfg, nil
}

// Write writes the config to w as TOML.
func (cfg *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}
