package glbackend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/echlib/engine/core"
)

// Options tunes the OpenGL backend.
type Options struct {
	// ShaderDir, when set, is searched for <material>.vert/.frag overrides.
	ShaderDir string
}

type glTexture struct {
	id   uint32
	w, h int
}

func (t *glTexture) ID() uint32       { return t.id }
func (t *glTexture) Size() (int, int) { return t.w, t.h }

type glMesh struct {
	vao, vbo, ebo uint32
	layout        core.VertexLayout
}

func (m *glMesh) ID() uint32                { return m.vao }
func (m *glMesh) Layout() core.VertexLayout { return m.layout }

type program struct {
	id       uint32
	uColor   int32
	uTexture int32
}

// RendererGL implements core.Renderer on an OpenGL 3.3 core context, which
// must be current on the calling thread.
type RendererGL struct {
	win      core.Window
	opts     Options
	programs [core.MaterialCount]program
	meshes   []*glMesh
}

func NewRendererGL(win core.Window, _ core.Config, opts Options) (*RendererGL, error) {
	r := &RendererGL{win: win, opts: opts}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

// Init builds the three material programs and sets blending state. A program
// that fails to build is logged and left at handle 0.
func (r *RendererGL) Init() error {
	for m := core.Material(0); m < core.MaterialCount; m++ {
		src := shaderSources(r.opts.ShaderDir, m)
		id, err := makeProgram(src.vertex, src.fragment)
		if err != nil {
			core.Logger().Error("shader build failed", "material", m.String(), "error", err)
			continue
		}
		r.programs[m] = program{
			id:       id,
			uColor:   gl.GetUniformLocation(id, gl.Str("uColor\x00")),
			uTexture: gl.GetUniformLocation(id, gl.Str("uTex\x00")),
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if r.win != nil {
		r.Resize(r.win.FramebufferSize())
	}
	return nil
}

func (r *RendererGL) ProgramValid(m core.Material) bool {
	return m < core.MaterialCount && r.programs[m].id != 0
}

func (r *RendererGL) Shutdown() {
	for _, m := range r.meshes {
		r.deleteMesh(m)
	}
	r.meshes = nil
	for i := range r.programs {
		if r.programs[i].id != 0 {
			gl.DeleteProgram(r.programs[i].id)
		}
		r.programs[i] = program{}
	}
}

func (r *RendererGL) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// --- textures ---

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("create texture: invalid size %dx%d", desc.Width, desc.Height)
	}
	if want := desc.Width * desc.Height * desc.Format.Channels(); len(desc.Pixels) < want {
		return nil, fmt.Errorf("create texture: %d bytes of pixels, need %d", len(desc.Pixels), want)
	}
	internal, format := textureFormats(desc.Format)

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(desc.Width), int32(desc.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter(desc.MinFilter, desc.Mipmaps))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(desc.WrapV))
	if desc.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &glTexture{id: id, w: desc.Width, h: desc.Height}, nil
}

func (r *RendererGL) DeleteTexture(t core.Texture) {
	if t == nil {
		return
	}
	id := t.ID()
	if id != 0 {
		gl.DeleteTextures(1, &id)
	}
}

func textureFormats(f core.TextureFormat) (internal int32, format uint32) {
	switch f {
	case core.TextureRGB8:
		return gl.RGB8, gl.RGB
	case core.TextureR8:
		return gl.R8, gl.RED
	default:
		return gl.RGBA8, gl.RGBA
	}
}

func minFilter(mode string, mipmaps bool) int32 {
	switch {
	case mode == "nearest" && mipmaps:
		return gl.NEAREST_MIPMAP_NEAREST
	case mode == "nearest":
		return gl.NEAREST
	case mipmaps:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		return gl.LINEAR
	}
}

func magFilter(mode string) int32 {
	if mode == "nearest" {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrapMode(mode string) int32 {
	if mode == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// --- meshes ---

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if desc.Layout.Stride <= 0 || len(desc.Layout.Attributes) == 0 {
		return nil, errors.New("create mesh: empty vertex layout")
	}
	m := &glMesh{layout: desc.Layout}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	bufferFloats(gl.ARRAY_BUFFER, desc.Vertices)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	bufferIndices(desc.Indices)

	for _, a := range desc.Layout.Attributes {
		loc := uint32(a.Location)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, int32(a.Size), gl.FLOAT, false, int32(desc.Layout.Stride), gl.PtrOffset(a.Offset))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.meshes = append(r.meshes, m)
	return m, nil
}

// UpdateMesh re-uploads the mesh contents with GL_DYNAMIC_DRAW.
func (r *RendererGL) UpdateMesh(mesh core.Mesh, verts []float32, inds []uint32) error {
	m, ok := mesh.(*glMesh)
	if !ok || m.vao == 0 {
		return errors.New("update mesh: not a live GL mesh")
	}
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	bufferFloats(gl.ARRAY_BUFFER, verts)
	if len(inds) > 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		bufferIndices(inds)
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func bufferFloats(target uint32, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.BufferData(target, len(v)*4, gl.Ptr(v), gl.DYNAMIC_DRAW)
}

func bufferIndices(v []uint32) {
	if len(v) == 0 {
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(v)*4, gl.Ptr(v), gl.DYNAMIC_DRAW)
}

func (r *RendererGL) deleteMesh(m *glMesh) {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = glMesh{}
}

// --- draw ---

// Draw executes cmd. Commands whose program failed to build are dropped.
func (r *RendererGL) Draw(cmd core.DrawCmd) {
	if !r.ProgramValid(cmd.Material) {
		core.Logger().Debug("draw skipped", "material", cmd.Material.String(), "reason", "invalid program")
		return
	}
	m, ok := cmd.Mesh.(*glMesh)
	if !ok || m.vao == 0 || cmd.Count <= 0 {
		return
	}
	p := r.programs[cmd.Material]

	gl.UseProgram(p.id)
	if p.uColor >= 0 {
		gl.Uniform4f(p.uColor, cmd.Color.R(), cmd.Color.G(), cmd.Color.B(), cmd.Color.A())
	}
	if cmd.Texture != nil {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, cmd.Texture.ID())
		if p.uTexture >= 0 {
			gl.Uniform1i(p.uTexture, 0)
		}
	}

	mode := uint32(gl.TRIANGLES)
	if cmd.Primitive == core.PrimitiveLines {
		mode = gl.LINES
	}
	gl.BindVertexArray(m.vao)
	if cmd.Indexed {
		gl.DrawElements(mode, int32(cmd.Count), gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(mode, 0, int32(cmd.Count))
	}
	gl.BindVertexArray(0)
	if cmd.Texture != nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.UseProgram(0)
}

// --- shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
