package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Drawable is anything the scene can render each frame.
type Drawable interface {
	Name() string
	// Update pushes the per-frame uniforms.
	Update()
	// Render updates and issues the draw call.
	Render()
}

// DrawContext bundles the shared collaborators every drawable references.
// All of them must outlive the drawables built from it.
type DrawContext struct {
	Render Render
	Assets *Assets
	Camera *Camera
	Light  *Light
}

// Object is the state shared by every drawable variant: a transform, its
// cached model matrix, and references to pooled mesh and texture.
type Object struct {
	name        string
	transform   Transform
	modelMatrix mgl32.Mat4
	mesh        *Mesh
	texture     *Texture
	ctx         DrawContext
}

func newObject(ctx DrawContext, meshName string, textureID int, t Transform) (Object, error) {
	mesh, err := ctx.Assets.Mesh(meshName)
	if err != nil {
		return Object{}, err
	}
	texture, err := ctx.Assets.Texture(textureID)
	if err != nil {
		return Object{}, err
	}

	obj := Object{
		name:        fmt.Sprintf("%s#%d", meshName, textureID),
		transform:   t,
		modelMatrix: t.ModelMatrix(),
		mesh:        mesh,
		texture:     texture,
		ctx:         ctx,
	}
	obj.init()
	return obj, nil
}

// init binds the texture and pushes every uniform once. The light never
// changes so it is not pushed again.
func (o *Object) init() {
	r := o.ctx.Render
	r.UseTexture(o.texture, 0)
	r.SetInt(UniformTexture, 0)
	r.SetMat4(UniformProjection, o.ctx.Camera.ProjectionMatrix())
	r.SetMat4(UniformView, o.ctx.Camera.ViewMatrix())
	r.SetMat4(UniformModel, o.modelMatrix)

	light := o.ctx.Light
	r.SetVec3(UniformLightPos, light.Position)
	r.SetVec3(UniformLightIa, light.Ambient)
	r.SetVec3(UniformLightId, light.Diffuse)
	r.SetVec3(UniformLightIs, light.Specular)
}

func (o *Object) Name() string { return o.name }

// Update refreshes only the camera-dependent uniforms and the model matrix
// slot, which the next object overwrites.
func (o *Object) Update() {
	r := o.ctx.Render
	r.UseTexture(o.texture, 0)
	r.SetVec3(UniformCamPos, o.ctx.Camera.Position)
	r.SetMat4(UniformView, o.ctx.Camera.ViewMatrix())
	r.SetMat4(UniformModel, o.modelMatrix)
}

func (o *Object) Render() {
	o.Update()
	o.ctx.Render.Draw(o.mesh)
}

func (o *Object) Transform() Transform { return o.transform }

func (o *Object) ModelMatrix() mgl32.Mat4 { return o.modelMatrix }

func (o *Object) Mesh() *Mesh { return o.mesh }

func (o *Object) Texture() *Texture { return o.texture }

// SetTransform moves the object. The model matrix is only recomputed here,
// never during rendering.
func (o *Object) SetTransform(t Transform) {
	o.transform = t
	o.modelMatrix = t.ModelMatrix()
}

// CubeMesh is the pool key of the procedural cube.
const CubeMesh = "cube"

// Cube is a textured unit cube.
type Cube struct {
	Object
}

func NewCube(ctx DrawContext, textureID int, t Transform) (*Cube, error) {
	obj, err := newObject(ctx, CubeMesh, textureID, t)
	if err != nil {
		return nil, err
	}
	return &Cube{Object: obj}, nil
}

// MeshObject is a textured mesh loaded from a model file.
type MeshObject struct {
	Object
}

func NewMeshObject(ctx DrawContext, meshName string, textureID int, t Transform) (*MeshObject, error) {
	obj, err := newObject(ctx, meshName, textureID, t)
	if err != nil {
		return nil, err
	}
	return &MeshObject{Object: obj}, nil
}

var (
	_ Drawable = (*Cube)(nil)
	_ Drawable = (*MeshObject)(nil)
)
