// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imguiov

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

const vertexShader = `#version 330 core
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main() {
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
` + "\x00"

// the font atlas is single channel alpha
const fragmentShader = `#version 330 core
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main() {
	Out_Color = vec4(Frag_Color.rgb, Frag_Color.a * texture(Texture, Frag_UV.st).r);
}
` + "\x00"

// renderer draws ImGui draw lists with OpenGL 3.
type renderer struct {
	program     uint32
	fontTexture uint32
	vbo         uint32
	ebo         uint32

	locTexture int32
	locProjMtx int32
	locPos     uint32
	locUV      uint32
	locColor   uint32
}

func compile(typ uint32, src string) (uint32, error) {
	sh := gl.CreateShader(typ)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(msg))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("imguiov: compiling shader: %s", strings.TrimRight(msg, "\x00\n"))
	}
	return sh, nil
}

func newRenderer(io imgui.IO) (*renderer, error) {
	vs, err := compile(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := compile(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}
	rd := &renderer{program: gl.CreateProgram()}
	gl.AttachShader(rd.program, vs)
	gl.AttachShader(rd.program, fs)
	gl.LinkProgram(rd.program)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	var status int32
	gl.GetProgramiv(rd.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		gl.DeleteProgram(rd.program)
		return nil, fmt.Errorf("imguiov: linking program failed")
	}

	rd.locTexture = gl.GetUniformLocation(rd.program, gl.Str("Texture\x00"))
	rd.locProjMtx = gl.GetUniformLocation(rd.program, gl.Str("ProjMtx\x00"))
	rd.locPos = uint32(gl.GetAttribLocation(rd.program, gl.Str("Position\x00")))
	rd.locUV = uint32(gl.GetAttribLocation(rd.program, gl.Str("UV\x00")))
	rd.locColor = uint32(gl.GetAttribLocation(rd.program, gl.Str("Color\x00")))

	gl.GenBuffers(1, &rd.vbo)
	gl.GenBuffers(1, &rd.ebo)

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	atlas := io.Fonts().TextureDataAlpha8()
	gl.GenTextures(1, &rd.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, rd.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(atlas.Width), int32(atlas.Height), 0, gl.RED, gl.UNSIGNED_BYTE, atlas.Pixels)
	io.Fonts().SetTextureID(imgui.TextureID(rd.fontTexture))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	return rd, nil
}

func (rd *renderer) release() {
	gl.DeleteBuffers(1, &rd.vbo)
	gl.DeleteBuffers(1, &rd.ebo)
	gl.DeleteTextures(1, &rd.fontTexture)
	gl.DeleteProgram(rd.program)
}

// glState is the pipeline state the renderer changes and restores.
type glState struct {
	program, texture, vao, arrayBuffer int32
	polygonMode                        [2]int32
	viewport                           [4]int32
	blend, cull, depth, scissor        bool
}

func saveState() glState {
	var st glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &st.program)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &st.texture)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &st.vao)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &st.arrayBuffer)
	gl.GetIntegerv(gl.POLYGON_MODE, &st.polygonMode[0])
	gl.GetIntegerv(gl.VIEWPORT, &st.viewport[0])
	st.blend = gl.IsEnabled(gl.BLEND)
	st.cull = gl.IsEnabled(gl.CULL_FACE)
	st.depth = gl.IsEnabled(gl.DEPTH_TEST)
	st.scissor = gl.IsEnabled(gl.SCISSOR_TEST)
	return st
}

func setEnabled(cap uint32, on bool) {
	if on {
		gl.Enable(cap)
	} else {
		gl.Disable(cap)
	}
}

func (st glState) restore() {
	gl.UseProgram(uint32(st.program))
	gl.BindTexture(gl.TEXTURE_2D, uint32(st.texture))
	gl.BindVertexArray(uint32(st.vao))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(st.arrayBuffer))
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(st.polygonMode[0]))
	gl.Viewport(st.viewport[0], st.viewport[1], st.viewport[2], st.viewport[3])
	setEnabled(gl.BLEND, st.blend)
	setEnabled(gl.CULL_FACE, st.cull)
	setEnabled(gl.DEPTH_TEST, st.depth)
	setEnabled(gl.SCISSOR_TEST, st.scissor)
}

// render draws the draw data for a window of the given display size
// whose drawable has the given framebuffer size.
func (rd *renderer) render(display, framebuffer image.Point, drawData imgui.DrawData) {
	if framebuffer.X <= 0 || framebuffer.Y <= 0 || display.X <= 0 || display.Y <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(framebuffer.X) / float32(display.X),
		Y: float32(framebuffer.Y) / float32(display.Y),
	})

	st := saveState()
	defer st.restore()

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Viewport(0, 0, int32(framebuffer.X), int32(framebuffer.Y))

	proj := mgl32.Ortho(0, float32(display.X), float32(display.Y), 0, -1, 1)
	gl.UseProgram(rd.program)
	gl.Uniform1i(rd.locTexture, 0)
	gl.UniformMatrix4fv(rd.locProjMtx, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	defer gl.DeleteVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, rd.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rd.ebo)

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	gl.EnableVertexAttribArray(rd.locPos)
	gl.EnableVertexAttribArray(rd.locUV)
	gl.EnableVertexAttribArray(rd.locColor)
	gl.VertexAttribPointer(rd.locPos, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(posOffset))
	gl.VertexAttribPointer(rd.locUV, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(uvOffset))
	gl.VertexAttribPointer(rd.locColor, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), gl.PtrOffset(colOffset))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)
		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		indexOffset := 0
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				clip := cmd.ClipRect()
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.Scissor(int32(clip.X), int32(framebuffer.Y)-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.DrawElements(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, gl.PtrOffset(indexOffset))
			}
			indexOffset += cmd.ElementCount() * indexSize
		}
	}
}
