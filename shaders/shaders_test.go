// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPath(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, Vertex), []byte("second"), 0o666))
	ld := &Loader{Paths: []string{first, second}}
	src, err := ld.Load(Vertex)
	require.NoError(t, err)
	assert.Equal(t, "second", src)

	require.NoError(t, os.WriteFile(filepath.Join(first, Vertex), []byte("first"), 0o666))
	src, err = ld.Load(Vertex)
	require.NoError(t, err)
	assert.Equal(t, "first", src)
}

func TestLoadFallback(t *testing.T) {
	ld := NewLoader(t.TempDir())
	vs, frag, err := ld.LoadPair(Vertex, Fragment)
	require.NoError(t, err)
	assert.Contains(t, vs, "#version 330 core")
	for _, u := range []string{"uModel", "uView", "uProjection"} {
		assert.Contains(t, vs, u)
	}
	assert.Contains(t, frag, "FragColor")

	ld.Fallback = fstest.MapFS{Vertex: {Data: []byte("mapped")}}
	src, err := ld.Load(Vertex)
	require.NoError(t, err)
	assert.Equal(t, "mapped", src)
}

func TestLoadNotFound(t *testing.T) {
	ld := &Loader{Paths: []string{t.TempDir()}}
	_, err := ld.Load("missing.vs")
	assert.ErrorIs(t, err, ErrNotFound)

	ld = NewLoader(t.TempDir())
	_, _, err = ld.LoadPair(Vertex, "missing.fs")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRscMatchesEmbedded(t *testing.T) {
	for _, name := range []string{Vertex, Fragment} {
		rsc, err := os.ReadFile(filepath.Join("..", "rsc", "shader", name))
		require.NoError(t, err)
		emb, err := fs.ReadFile(Embedded(), name)
		require.NoError(t, err)
		assert.Equal(t, string(emb), string(rsc), name)
	}
}
