// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders loads GLSL shader sources from the file system,
// falling back on the embedded default sources.
package shaders

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
)

// Default file names of the vertex and fragment shaders.
const (
	Vertex   = "shader.vs"
	Fragment = "shader.fs"
)

// DefaultPaths are the directories searched for shader files.
var DefaultPaths = []string{"rsc/shader", "."}

// ErrNotFound is returned when a shader is neither on the
// search paths nor in the fallback.
var ErrNotFound = errors.New("shaders: shader not found")

//go:embed shader.vs shader.fs
var embedded embed.FS

// Embedded returns the embedded default shader sources.
func Embedded() fs.FS { return embedded }

// Loader finds shader sources by file name.
type Loader struct {

	// Paths are searched in order for the file.
	Paths []string

	// Fallback is read when no path has the file; it may be nil.
	Fallback fs.FS
}

// NewLoader returns a [Loader] on the given paths
// with the embedded sources as fallback.
func NewLoader(paths ...string) *Loader {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	return &Loader{Paths: paths, Fallback: embedded}
}

// Load returns the source of the named shader file.
func (ld *Loader) Load(name string) (string, error) {
	if found := fsx.FindFilesOnPaths(ld.Paths, name); len(found) > 0 {
		b, err := os.ReadFile(found[0])
		if err != nil {
			return "", err
		}
		slog.Info("loaded shader", "file", found[0])
		return string(b), nil
	}
	if ld.Fallback != nil {
		b, err := fs.ReadFile(ld.Fallback, name)
		if err == nil {
			slog.Info("using embedded shader", "file", name)
			return string(b), nil
		}
	}
	return "", fmt.Errorf("%w: %s on %v", ErrNotFound, name, ld.Paths)
}

// LoadPair loads the vertex and fragment shader sources.
func (ld *Loader) LoadPair(vertex, fragment string) (vs, frag string, err error) {
	vs, err = ld.Load(vertex)
	if err != nil {
		return
	}
	frag, err = ld.Load(fragment)
	return
}
