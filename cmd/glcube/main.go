// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glcube shows a unit cube with OpenGL 3.3 and a panel
// for toggling render state and moving the camera.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glcube/app"
	"cogentcore.org/glcube/config"
	"cogentcore.org/glcube/gpu"
	"cogentcore.org/glcube/internal/glgpu"
	"cogentcore.org/glcube/logx"
	"cogentcore.org/glcube/overlay"
	"cogentcore.org/glcube/overlay/imguiov"
	"cogentcore.org/glcube/shaders"
	"cogentcore.org/glcube/shape"
	"cogentcore.org/glcube/system"
	"cogentcore.org/glcube/system/driver/desktop"
	"github.com/spf13/pflag"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load("glcube", os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if errors.Log(err) != nil {
		return 1
	}
	lvl, err := logx.ParseLevel(cfg.LogLevel)
	errors.Log(err)
	logx.UserLevel.Set(lvl)
	logx.SetDefault(os.Stderr)
	if cfg.PrintConfig {
		if errors.Log(cfg.Write(os.Stdout)) != nil {
			return 1
		}
		return 0
	}

	sf, err := desktop.NewSurface(system.Options{
		Title:   cfg.Title,
		Size:    app.WindowSize,
		GLMajor: 3,
		GLMinor: 3,
		VSync:   cfg.VSync,
	})
	if errors.Log(err) != nil {
		return 1
	}
	defer sf.Close()

	drv, err := glgpu.New()
	if errors.Log(err) != nil {
		return 1
	}
	vs, fs, err := shaders.NewLoader(cfg.Shaders.Paths...).LoadPair(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if errors.Log(err) != nil {
		return 1
	}
	prog, err := gpu.NewProgram(drv, vs, fs)
	if errors.Log(err) != nil {
		return 1
	}
	defer prog.Release()
	mesh, err := shape.NewCube(drv)
	if errors.Log(err) != nil {
		return 1
	}
	defer mesh.Release()

	var ov overlay.Overlay = overlay.Nop{}
	if cfg.Overlay {
		iov, err := imguiov.New(sf.Size(), sf.FramebufferSize())
		if errors.Log(err) != nil {
			return 1
		}
		defer iov.Release()
		ov = iov
	}

	lp := app.NewLoop(sf, drv, prog, mesh, ov)
	lp.Framebuffer = sf.FramebufferSize()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := lp.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		errors.Log(err)
		return 1
	}
	return 0
}
