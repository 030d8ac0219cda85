package renderer

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Interleaved vertex layout shared by every mesh: 2f texcoord, 3f normal,
// 3f position.
const (
	TexCoordComponents = 2
	NormalComponents   = 3
	PositionComponents = 3
	VertexStride       = TexCoordComponents + NormalComponents + PositionComponents
)

// Uniform names of the default program.
const (
	UniformTexture    = "u_texture_0"
	UniformProjection = "m_proj"
	UniformView       = "m_view"
	UniformModel      = "m_model"
	UniformCamPos     = "camPos"
	UniformLightPos   = "light.position"
	UniformLightIa    = "light.Ia"
	UniformLightId    = "light.Id"
	UniformLightIs    = "light.Is"
)

// Mesh is an uploaded vertex stream. It is owned by Assets, drawables only
// hold a reference.
type Mesh struct {
	Name        string
	VAO         uint32
	VBO         uint32
	VertexCount int32
}

// Texture is an uploaded 2D texture, owned by Assets.
type Texture struct {
	ID     int
	Name   string
	Handle uint32
	Width  int
	Height int
}

// Render is the graphics-context contract drawables and the engine talk to.
// Uniform setters target the single default program.
type Render interface {
	Clear(color mgl32.Vec3)
	UploadMesh(name string, vertices []float32) (*Mesh, error)
	UploadTexture(id int, name string, img *image.RGBA) (*Texture, error)
	UseTexture(tex *Texture, unit int32)
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetInt(name string, v int32)
	Draw(mesh *Mesh)
	DeleteMesh(mesh *Mesh) error
	DeleteTexture(tex *Texture) error
	Cleanup() error
}
