package renderer

import (
	"fmt"
	"image"

	"Scene3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Anisotropic filtering is an extension in 4.1 core, so the bindings do not
// export its enums.
const (
	textureMaxAnisotropy    = 0x84FE
	maxTextureMaxAnisotropy = 0x84FF
	wantedAnisotropy        = 32.0
)

var noTexture = ^uint32(0) // Initialize with an invalid value

// OpenGLRenderer is the Render implementation for a current OpenGL 4.1 core
// context. All methods must be called on the thread owning the context.
type OpenGLRenderer struct {
	defaultShader    Shader
	uniforms         *UniformCache
	currentTextureID uint32
	anisotropy       float32
}

func NewOpenGLRenderer() *OpenGLRenderer {
	return &OpenGLRenderer{currentTextureID: noTexture}
}

// Init loads the GL entry points, sets the fixed pipeline state and builds
// the default program.
func (rend *OpenGLRenderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}

	gl.Viewport(0, 0, width, height)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	rend.defaultShader = InitShader()
	if err := rend.defaultShader.Compile(); err != nil {
		return fmt.Errorf("default shader: %w", err)
	}
	rend.defaultShader.Use()
	rend.uniforms = NewUniformCache(rend.defaultShader.Program())

	var maxAniso float32
	gl.GetFloatv(maxTextureMaxAnisotropy, &maxAniso)
	if gl.GetError() == gl.NO_ERROR && maxAniso > 0 {
		rend.anisotropy = mgl32.Clamp(wantedAnisotropy, 1, maxAniso)
	}

	logger.Log.Info("OpenGL render initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Float32("anisotropy", rend.anisotropy))
	return nil
}

func (rend *OpenGLRenderer) Clear(color mgl32.Vec3) {
	gl.ClearColor(color[0], color[1], color[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (rend *OpenGLRenderer) UploadMesh(name string, vertices []float32) (*Mesh, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.VertexAttribPointer(attribTexCoord, TexCoordComponents, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(attribTexCoord)

	gl.VertexAttribPointer(attribNormal, NormalComponents, gl.FLOAT, false, stride, gl.PtrOffset(TexCoordComponents*4))
	gl.EnableVertexAttribArray(attribNormal)

	gl.VertexAttribPointer(attribPosition, PositionComponents, gl.FLOAT, false, stride, gl.PtrOffset((TexCoordComponents+NormalComponents)*4))
	gl.EnableVertexAttribArray(attribPosition)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := glError("upload mesh " + name); err != nil {
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteVertexArrays(1, &vao)
		return nil, err
	}
	return &Mesh{
		Name:        name,
		VAO:         vao,
		VBO:         vbo,
		VertexCount: int32(len(vertices) / VertexStride),
	}, nil
}

// UploadTexture creates a mipmapped RGBA texture. img must already be
// flipped so that its first row is the bottom of the picture.
func (rend *OpenGLRenderer) UploadTexture(id int, name string, img *image.RGBA) (*Texture, error) {
	size := img.Rect.Size()
	if img.Stride != size.X*4 {
		return nil, fmt.Errorf("texture %s: unsupported stride", name)
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	if rend.anisotropy > 0 {
		gl.TexParameterf(gl.TEXTURE_2D, textureMaxAnisotropy, rend.anisotropy)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	rend.currentTextureID = noTexture

	if err := glError("upload texture " + name); err != nil {
		gl.DeleteTextures(1, &handle)
		return nil, err
	}
	return &Texture{
		ID:     id,
		Name:   name,
		Handle: handle,
		Width:  size.X,
		Height: size.Y,
	}, nil
}

func (rend *OpenGLRenderer) UseTexture(tex *Texture, unit int32) {
	if tex.Handle == rend.currentTextureID {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tex.Handle)
	rend.currentTextureID = tex.Handle
}

func (rend *OpenGLRenderer) SetMat4(name string, m mgl32.Mat4) {
	rend.uniforms.SetMat4(name, m)
}

func (rend *OpenGLRenderer) SetVec3(name string, v mgl32.Vec3) {
	rend.uniforms.SetVec3(name, v)
}

func (rend *OpenGLRenderer) SetInt(name string, v int32) {
	rend.uniforms.SetInt(name, v)
}

func (rend *OpenGLRenderer) Draw(mesh *Mesh) {
	gl.BindVertexArray(mesh.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, mesh.VertexCount)
	gl.BindVertexArray(0)
}

func (rend *OpenGLRenderer) DeleteMesh(mesh *Mesh) error {
	gl.DeleteVertexArrays(1, &mesh.VAO)
	gl.DeleteBuffers(1, &mesh.VBO)
	mesh.VAO, mesh.VBO = 0, 0
	return glError("delete mesh " + mesh.Name)
}

func (rend *OpenGLRenderer) DeleteTexture(tex *Texture) error {
	if tex.Handle == rend.currentTextureID {
		rend.currentTextureID = noTexture
	}
	gl.DeleteTextures(1, &tex.Handle)
	tex.Handle = 0
	return glError("delete texture " + tex.Name)
}

func (rend *OpenGLRenderer) Cleanup() error {
	rend.defaultShader.Delete()
	logger.Log.Info("OpenGL render cleaned up")
	return glError("cleanup")
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: GL error 0x%x", op, code)
	}
	return nil
}

var _ Render = (*OpenGLRenderer)(nil)
