// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

//go:generate core generate

// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)

// Types is a list of GPU element types that can appear
// in a vertex attribute.
type Types int32 //enums:enum

const (
	UndefinedType Types = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

// TypeBytes returns the number of bytes for one element of the given type,
// or 0 for an undefined type.
func TypeBytes(tp Types) int {
	switch tp {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64:
		return 8
	}
	return 0
}

// Usage is the expected access pattern of buffer data,
// passed on to the driver as a hint.
type Usage int32 //enums:enum

const (
	// StaticDraw data is uploaded once and drawn many times.
	StaticDraw Usage = iota

	// DynamicDraw data is modified repeatedly and drawn many times.
	DynamicDraw

	// StreamDraw data is modified once and drawn at most a few times.
	StreamDraw
)

// ShaderTypes are the programmable pipeline stages.
type ShaderTypes int32 //enums:enum

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

// BlendFactors are the source and destination weights
// of the blend equation.
type BlendFactors int32 //enums:enum -trim-prefix Blend

const (
	BlendZero BlendFactors = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

// AlphaBlend is the source, destination factor pair that
// [Drawing.Blend] enables: standard non-premultiplied alpha.
var AlphaBlend = [2]BlendFactors{BlendSrcAlpha, BlendOneMinusSrcAlpha}

// Handle is an opaque driver resource identifier,
// valid only within the graphics context that created it.
type Handle uint32

// NoHandle is the null resource, used to unbind.
const NoHandle Handle = 0

// noCopy may be embedded in structs that own GPU resources.
// go vet's copylocks check reports copies of such values.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
