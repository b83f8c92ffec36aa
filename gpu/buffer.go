// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// Buffer owns a vertex array and the vertex buffer holding its data.
// The data is uploaded once by [NewBuffer] and never changed.
// A Buffer must not be copied; it is released with [Buffer.Release].
type Buffer struct {
	_ noCopy

	drv    Driver
	vao    Handle
	vbo    Handle
	layout Layout
	stride int
	count  int
}

// NewBuffer creates a vertex array and buffer on drv, uploads data with
// the given usage hint, and binds the attributes of layout in order,
// starting at index 0. data must hold exactly count records of stride
// bytes each, and stride must fit the packed layout.
func NewBuffer(drv Driver, data []byte, usage Usage, layout Layout, stride, count int) (*Buffer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if stride < layout.Size() {
		return nil, fmt.Errorf("%w: stride %d is smaller than record size %d", ErrInvalidLayout, stride, layout.Size())
	}
	if count <= 0 || len(data) != count*stride {
		return nil, fmt.Errorf("%w: %d bytes for %d vertices of stride %d", ErrInvalidLayout, len(data), count, stride)
	}
	vao, err := drv.NewVertexArray()
	if err != nil {
		return nil, fmt.Errorf("%w: vertex array: %w", ErrResource, err)
	}
	vbo, err := drv.NewBuffer()
	if err != nil {
		drv.DeleteVertexArray(vao)
		return nil, fmt.Errorf("%w: vertex buffer: %w", ErrResource, err)
	}
	bf := &Buffer{drv: drv, vao: vao, vbo: vbo, layout: layout, stride: stride, count: count}

	drv.BindVertexArray(vao)
	drv.BindArrayBuffer(vbo)
	drv.BufferData(data, usage)
	for i, off := range layout.Offsets() {
		drv.VertexAttrib(i, layout[i], stride, off)
	}
	drv.BindArrayBuffer(NoHandle)
	drv.BindVertexArray(NoHandle)

	slog.Debug("gpu buffer created", "vertices", count, "stride", stride, "layout", layout, "usage", usage)
	return bf, nil
}

// Len returns the number of vertices in the buffer.
func (bf *Buffer) Len() int {
	return bf.count
}

// Stride returns the number of bytes per vertex record.
func (bf *Buffer) Stride() int {
	return bf.stride
}

// Layout returns the attribute layout of the vertex records.
func (bf *Buffer) Layout() Layout {
	return bf.layout
}

// Draw draws all vertices as a triangle list, leaving no vertex
// array bound afterward. It does nothing after Release.
func (bf *Buffer) Draw() {
	if bf.vao == NoHandle {
		return
	}
	bf.drv.BindVertexArray(bf.vao)
	bf.drv.Triangles(0, bf.count)
	bf.drv.BindVertexArray(NoHandle)
}

// Release deletes the GPU resources of the buffer.
func (bf *Buffer) Release() {
	if bf.vao == NoHandle {
		return
	}
	bf.drv.DeleteBuffer(bf.vbo)
	bf.drv.DeleteVertexArray(bf.vao)
	bf.vao = NoHandle
	bf.vbo = NoHandle
}
