package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeInitPushesEverything(t *testing.T) {
	ctx, rec := newTestContext()
	tr := Transform{Position: mgl32.Vec3{15, 5, 10}, Scale: mgl32.Vec3{4, 1, 4}}

	cube, err := NewCube(ctx, 0, tr)
	require.NoError(t, err)

	assert.Equal(t, "cube#0", cube.Name())
	assert.Equal(t, []string{
		"UseTexture 0",
		"SetInt u_texture_0=0",
		"SetMat4 m_proj",
		"SetMat4 m_view",
		"SetMat4 m_model",
		"SetVec3 light.position",
		"SetVec3 light.Ia",
		"SetVec3 light.Id",
		"SetVec3 light.Is",
	}, rec.calls)
	assert.Equal(t, ctx.Light.Ambient, rec.vec3[UniformLightIa])
	assert.True(t, tr.ModelMatrix().ApproxEqual(rec.mat4[UniformModel]))
	assert.True(t, ctx.Camera.ProjectionMatrix().ApproxEqual(rec.mat4[UniformProjection]))
}

func TestObjectRenderSequence(t *testing.T) {
	ctx, rec := newTestContext()
	cat, err := NewMeshObject(ctx, "cat", 3, IdentityTransform())
	require.NoError(t, err)
	rec.reset()

	cat.Render()

	assert.Equal(t, []string{
		"UseTexture 3",
		"SetVec3 camPos",
		"SetMat4 m_view",
		"SetMat4 m_model",
		"Draw cat",
	}, rec.calls)
	assert.Equal(t, ctx.Camera.Position, rec.vec3[UniformCamPos])
}

func TestObjectRenderDoesNotRepushLight(t *testing.T) {
	ctx, rec := newTestContext()
	cube, err := NewCube(ctx, 1, IdentityTransform())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		cube.Render()
	}

	assert.Equal(t, 1, rec.count("SetVec3 light.position"))
	assert.Equal(t, 1, rec.count("SetMat4 m_proj"))
	assert.Equal(t, 3, rec.count("Draw cube"))
}

func TestObjectRenderFollowsCamera(t *testing.T) {
	ctx, rec := newTestContext()
	cube, err := NewCube(ctx, 1, IdentityTransform())
	require.NoError(t, err)

	ctx.Camera.Update(FrameInput{Move: MoveInput{Up: true}, DeltaX: 40}, 16)
	cube.Render()

	assert.Equal(t, ctx.Camera.Position, rec.vec3[UniformCamPos])
	assert.True(t, ctx.Camera.ViewMatrix().ApproxEqual(rec.mat4[UniformView]))
}

func TestNewObjectMissingAssets(t *testing.T) {
	ctx, _ := newTestContext()

	_, err := NewMeshObject(ctx, "dog", 3, IdentityTransform())
	assert.ErrorIs(t, err, ErrMeshNotFound)
	assert.Contains(t, err.Error(), `"dog"`)

	_, err = NewCube(ctx, 9, IdentityTransform())
	assert.ErrorIs(t, err, ErrTextureNotFound)
	assert.Contains(t, err.Error(), "9")
}

func TestObjectSetTransform(t *testing.T) {
	ctx, _ := newTestContext()
	cube, err := NewCube(ctx, 2, IdentityTransform())
	require.NoError(t, err)
	assert.True(t, mgl32.Ident4().ApproxEqual(cube.ModelMatrix()))

	tr := Transform{Position: mgl32.Vec3{10, 0, 10}, Rotation: mgl32.Vec3{-45, 30, 0}, Scale: mgl32.Vec3{2, 1, 1}}
	cube.SetTransform(tr)

	assert.Equal(t, tr, cube.Transform())
	assert.True(t, tr.ModelMatrix().ApproxEqual(cube.ModelMatrix()))
	assert.Equal(t, CubeMesh, cube.Mesh().Name)
	assert.Equal(t, 2, cube.Texture().ID)
}

func TestObjectsShareAssets(t *testing.T) {
	ctx, _ := newTestContext()
	a, err := NewCube(ctx, 1, IdentityTransform())
	require.NoError(t, err)
	b, err := NewCube(ctx, 1, IdentityTransform())
	require.NoError(t, err)

	assert.Same(t, a.Mesh(), b.Mesh())
	assert.Same(t, a.Texture(), b.Texture())
}
