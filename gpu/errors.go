// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/core/base/errors"

var (
	// ErrInvalidLayout is returned when vertex data does not match
	// its declared attribute layout.
	ErrInvalidLayout = errors.New("gpu: invalid vertex layout")

	// ErrResource is returned when the driver cannot create a resource,
	// typically because no context is current.
	ErrResource = errors.New("gpu: resource creation failed")

	// ErrCompile is returned when a shader stage fails to compile.
	ErrCompile = errors.New("gpu: shader compile failed")

	// ErrLink is returned when a program fails to link.
	ErrLink = errors.New("gpu: program link failed")
)
