// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"fmt"
	"image"
	"testing"
	"time"

	"cogentcore.org/glcube/camera"
	"cogentcore.org/glcube/events"
	"cogentcore.org/glcube/events/key"
	"cogentcore.org/glcube/gpu"
	"cogentcore.org/glcube/gpu/gputest"
	"cogentcore.org/glcube/overlay"
	"cogentcore.org/glcube/shape"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock is a manual clock; work is added on every swap.
type clock struct {
	now    time.Time
	work   time.Duration
	sleeps []time.Duration
}

func (ck *clock) Now() time.Time { return ck.now }

func (ck *clock) Sleep(d time.Duration) {
	ck.sleeps = append(ck.sleeps, d)
	ck.now = ck.now.Add(d)
}

type surface struct {
	ck     *clock
	frames [][]events.Event
	polls  int
	swaps  int
}

func (sf *surface) PollEvents() []events.Event {
	sf.polls++
	if len(sf.frames) == 0 {
		return nil
	}
	evs := sf.frames[0]
	sf.frames = sf.frames[1:]
	return evs
}

func (sf *surface) SwapBuffers() {
	sf.swaps++
	sf.ck.now = sf.ck.now.Add(sf.ck.work)
}

func (sf *surface) Size() image.Point            { return WindowSize }
func (sf *surface) FramebufferSize() image.Point { return WindowSize }
func (sf *surface) Close()                       {}

// panel records what it is given, claims events matching claim,
// and returns edit applied to its input from Update.
type panel struct {
	claim   func(ev events.Event) bool
	edit    func(in overlay.Controls) overlay.Controls
	handled []events.Event
	tels    []overlay.Telemetry
	ins     []overlay.Controls
	renders int
}

func (pn *panel) HandleEvent(ev events.Event) bool {
	pn.handled = append(pn.handled, ev)
	return pn.claim != nil && pn.claim(ev)
}

func (pn *panel) Update(tel overlay.Telemetry, in overlay.Controls) overlay.Controls {
	pn.tels = append(pn.tels, tel)
	pn.ins = append(pn.ins, in)
	if pn.edit != nil {
		return pn.edit(in)
	}
	return in
}

func (pn *panel) Render() { pn.renders++ }

type fixture struct {
	rec *gputest.Recorder
	ck  *clock
	sf  *surface
	pn  *panel
	lp  *Loop
}

func newFixture(t *testing.T, frames ...[]events.Event) *fixture {
	fx := &fixture{
		rec: &gputest.Recorder{Declared: []string{ModelUniform, ViewUniform, ProjectionUniform}},
		ck:  &clock{now: time.Unix(100, 0), work: 4 * time.Millisecond},
		pn:  &panel{},
	}
	fx.sf = &surface{ck: fx.ck, frames: frames}
	prog, err := gpu.NewProgram(fx.rec, "vs", "fs")
	require.NoError(t, err)
	mesh, err := shape.NewCube(fx.rec)
	require.NoError(t, err)
	fx.rec.Reset()
	fx.lp = NewLoop(fx.sf, fx.rec, prog, mesh, fx.pn)
	fx.lp.Now = fx.ck.Now
	fx.lp.Sleep = fx.ck.Sleep
	return fx
}

func TestDefaultFrame(t *testing.T) {
	fx := newFixture(t)
	assert.Equal(t, Running, fx.lp.Step())

	require.Len(t, fx.rec.Draws, 1)
	dr := fx.rec.Draws[0]
	assert.Equal(t, 0, dr.Start)
	assert.Equal(t, shape.CubeVertices, dr.Count)
	assert.Equal(t, fx.lp.Program.Handle(), dr.Program)
	assert.Equal(t, gputest.Pipeline{
		DepthTest:  true,
		Blend:      true,
		BlendFunc:  gpu.AlphaBlend,
		Wireframe:  true,
		CullFace:   true,
		Viewport:   image.Rect(0, 0, 640, 480),
		ClearColor: [4]float32{1, 1, 1, 1},
	}, dr.Pipeline)

	assert.Equal(t, 1, fx.rec.Clears)
	assert.Contains(t, fx.rec.Calls, "Clear(true, false)")
	assert.NotContains(t, fx.rec.Calls, "Clear(true, true)")

	mx := camera.Compute(camera.Default(), WindowSize)
	assert.Equal(t, mx.Model, fx.rec.Uniforms[ModelUniform])
	assert.Equal(t, mx.View, fx.rec.Uniforms[ViewUniform])
	assert.Equal(t, mx.Projection, fx.rec.Uniforms[ProjectionUniform])

	assert.Equal(t, 1, fx.sf.swaps)
	assert.Equal(t, 1, fx.pn.renders)
	assert.Equal(t, 1, fx.lp.Frames())
	require.Len(t, fx.pn.ins, 1)
	assert.Equal(t, overlay.Controls{State: gpu.DefaultRenderState(), Camera: camera.Default()}, fx.pn.ins[0])
	assert.Equal(t, WindowSize, fx.pn.tels[0].DisplaySize)
}

func TestHighDPIViewport(t *testing.T) {
	fx := newFixture(t)
	fx.lp.Framebuffer = image.Pt(1280, 960)
	fx.lp.Step()
	require.Len(t, fx.rec.Draws, 1)
	assert.Equal(t, image.Rect(0, 0, 1280, 960), fx.rec.Draws[0].Pipeline.Viewport)
	assert.Equal(t, camera.Projection(WindowSize), fx.rec.Uniforms[ProjectionUniform], "aspect follows the window size")
}

func TestStepOrder(t *testing.T) {
	fx := newFixture(t)
	fx.lp.Step()
	calls := fx.rec.Calls
	index := func(call string) int {
		for i, c := range calls {
			if c == call {
				return i
			}
		}
		t.Fatalf("no call %q in %v", call, calls)
		return -1
	}
	state := index("CullFace(true)")
	clr := index("Clear(true, false)")
	use := index(fmt.Sprintf("UseProgram(%d)", fx.lp.Program.Handle()))
	draw := index("Triangles(0, 36)")
	assert.Less(t, state, clr)
	assert.Less(t, clr, use)
	assert.Less(t, use, draw)
}

func TestQuit(t *testing.T) {
	fx := newFixture(t, []events.Event{events.NewQuit(), events.NewMouseMove(image.Pt(1, 1))})
	assert.Equal(t, Terminating, fx.lp.Step())
	assert.Empty(t, fx.rec.Draws)
	assert.Empty(t, fx.rec.Calls)
	assert.Zero(t, fx.sf.swaps)
	assert.Empty(t, fx.ck.sleeps)
	// events after the quit are not handled
	assert.Len(t, fx.pn.handled, 1)

	assert.Equal(t, Terminating, fx.lp.Step())
	assert.Equal(t, 1, fx.sf.polls)
	assert.Zero(t, fx.lp.Frames())
}

func TestEscape(t *testing.T) {
	fx := newFixture(t,
		[]events.Event{events.NewKey(events.KeyUp, key.CodeEscape, 0), events.NewKey(events.KeyDown, key.CodeA, 0)},
		[]events.Event{events.NewKey(events.KeyDown, key.CodeEscape, 0)},
	)
	assert.Equal(t, Running, fx.lp.Step())
	assert.Equal(t, Terminating, fx.lp.Step())
	assert.Len(t, fx.rec.Draws, 1)
}

func TestClaimedEscape(t *testing.T) {
	fx := newFixture(t, []events.Event{events.NewKey(events.KeyDown, key.CodeEscape, 0)})
	fx.pn.claim = func(ev events.Event) bool { return ev.Type.IsKey() }
	assert.Equal(t, Running, fx.lp.Step())
	assert.Len(t, fx.rec.Draws, 1)
}

func TestOverlayEdits(t *testing.T) {
	fx := newFixture(t)
	fx.pn.edit = func(in overlay.Controls) overlay.Controls {
		return overlay.Controls{Camera: camera.Camera{X: 9, Y: -9, Z: 2}}
	}
	fx.lp.Step()
	assert.Equal(t, gpu.RenderState{}, fx.lp.RenderState)
	assert.Equal(t, camera.Camera{X: 5, Y: -5, Z: 2}, fx.lp.Camera)

	fx.pn.edit = nil
	fx.rec.Reset()
	fx.lp.Step()
	require.Len(t, fx.rec.Draws, 1)
	pl := fx.rec.Draws[0].Pipeline
	assert.False(t, pl.DepthTest)
	assert.False(t, pl.Blend)
	assert.Zero(t, pl.BlendFunc)
	assert.False(t, pl.Wireframe)
	assert.False(t, pl.CullFace)
	assert.Equal(t, camera.View(camera.Camera{X: 5, Y: -5, Z: 2}), fx.rec.Uniforms[ViewUniform])
	assert.Equal(t, fx.lp.Camera, fx.pn.ins[1].Camera)
}

func TestMouseTelemetry(t *testing.T) {
	fx := newFixture(t,
		[]events.Event{events.NewMouseMove(image.Pt(10, 20))},
		[]events.Event{events.NewScroll(image.Pt(99, 99), mgl32.Vec2{0, 1})},
	)
	fx.pn.claim = func(ev events.Event) bool { return ev.Type.IsMouse() }
	fx.lp.Step()
	fx.lp.Step()
	assert.Equal(t, image.Pt(10, 20), fx.pn.tels[0].MousePos)
	assert.Equal(t, image.Pt(10, 20), fx.pn.tels[1].MousePos)
}

func TestPacing(t *testing.T) {
	fx := newFixture(t)
	fx.lp.Step()
	require.Len(t, fx.ck.sleeps, 1)
	assert.Equal(t, FrameTime-4*time.Millisecond, fx.ck.sleeps[0])

	fx.ck.work = 30 * time.Millisecond
	fx.lp.Step()
	require.Len(t, fx.ck.sleeps, 2)
	assert.Equal(t, FrameTime, fx.ck.sleeps[1])

	fx.ck.work = FrameTime
	fx.lp.Step()
	require.Len(t, fx.ck.sleeps, 3)
	assert.Equal(t, FrameTime, fx.ck.sleeps[2])

	// back under budget, the remainder is slept again
	fx.ck.work = 10 * time.Millisecond
	fx.lp.Step()
	require.Len(t, fx.ck.sleeps, 4)
	assert.Equal(t, FrameTime-10*time.Millisecond, fx.ck.sleeps[3])
}

func TestFrameRate(t *testing.T) {
	fx := newFixture(t)
	for range 10 {
		fx.lp.Step()
	}
	last := fx.pn.tels[len(fx.pn.tels)-1]
	assert.InDelta(t, 60, last.FrameRate, 0.5)
	assert.Zero(t, fx.pn.tels[0].FrameRate)
}

func TestRun(t *testing.T) {
	fx := newFixture(t, nil, nil, []events.Event{events.NewQuit()})
	assert.NoError(t, fx.lp.Run(context.Background()))
	assert.Equal(t, Terminating, fx.lp.State())
	assert.Equal(t, 2, fx.lp.Frames())
	assert.Equal(t, 3, fx.sf.polls)
}

func TestRunCanceled(t *testing.T) {
	fx := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, fx.lp.Run(ctx), context.Canceled)
	assert.Equal(t, Terminating, fx.lp.State())
	assert.Zero(t, fx.lp.Frames())
}

func TestNilOverlay(t *testing.T) {
	fx := newFixture(t)
	lp := NewLoop(fx.sf, fx.rec, fx.lp.Program, fx.lp.Mesh, nil)
	lp.Now, lp.Sleep = fx.ck.Now, fx.ck.Sleep
	assert.Equal(t, Running, lp.Step())
	assert.Len(t, fx.rec.Draws, 1)
}

func TestStatesString(t *testing.T) {
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Terminating", Terminating.String())
}
