package scene

import (
	"errors"
	"fmt"
	"testing"

	"Scene3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDrawable struct {
	name  string
	log   *[]string
	calls int
}

func (d *countingDrawable) Name() string { return d.name }
func (d *countingDrawable) Update()      {}
func (d *countingDrawable) Render() {
	d.calls++
	*d.log = append(*d.log, d.name)
}

type built struct {
	mesh      string
	textureID int
	transform renderer.Transform
}

// fakeBuilder records what it is asked to build and fails on request.
type fakeBuilder struct {
	built   []built
	log     []string
	failOn  string
	failErr error
}

func (b *fakeBuilder) make(mesh string, textureID int, t renderer.Transform) (renderer.Drawable, error) {
	if mesh == b.failOn {
		return nil, b.failErr
	}
	b.built = append(b.built, built{mesh, textureID, t})
	return &countingDrawable{name: fmt.Sprintf("%s#%d", mesh, len(b.built)), log: &b.log}, nil
}

func (b *fakeBuilder) Cube(textureID int, t renderer.Transform) (renderer.Drawable, error) {
	return b.make(renderer.CubeMesh, textureID, t)
}

func (b *fakeBuilder) Mesh(name string, textureID int, t renderer.Transform) (renderer.Drawable, error) {
	return b.make(name, textureID, t)
}

func TestGridCount(t *testing.T) {
	assert.Equal(t, 400, GridCount(30, 3))
	assert.Equal(t, 4, GridCount(1, 1))
	assert.Equal(t, 1, GridCount(1, 2))
	assert.Equal(t, 9, GridCount(4, 3)) // -4, -1, 2
	assert.Equal(t, 0, GridCount(0, 3))
	assert.Equal(t, 0, GridCount(30, 0))
}

func TestGridTransforms(t *testing.T) {
	g := Grid{N: 30, S: 3, TextureID: 1}
	ts := g.Transforms()

	require.Len(t, ts, GridCount(30, 3))
	assert.Equal(t, mgl32.Vec3{-30, -3, -30}, ts[0].Position)
	assert.Equal(t, mgl32.Vec3{-30, -3, -27}, ts[1].Position)
	assert.Equal(t, mgl32.Vec3{27, -3, 27}, ts[len(ts)-1].Position)
	for _, tr := range ts {
		assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale)
		assert.Equal(t, mgl32.Vec3{}, tr.Rotation)
	}
}

func TestLoadDefaultLayout(t *testing.T) {
	s := New()
	b := &fakeBuilder{}

	require.NoError(t, s.Load(b, DefaultLayout()))

	assert.Equal(t, 403, s.Len())
	require.Len(t, b.built, 403)
	for _, c := range b.built[:400] {
		assert.Equal(t, renderer.CubeMesh, c.mesh)
		assert.Equal(t, 1, c.textureID)
	}

	assert.Equal(t, built{renderer.CubeMesh, 0, renderer.Transform{
		Position: mgl32.Vec3{15, 5, 10}, Scale: mgl32.Vec3{4, 1, 4},
	}}, b.built[400])
	assert.Equal(t, 2, b.built[401].textureID)
	assert.Equal(t, mgl32.Vec3{-45, 30, 0}, b.built[401].transform.Rotation)
	assert.Equal(t, "cat", b.built[402].mesh)
	assert.Equal(t, 3, b.built[402].textureID)
	assert.Equal(t, mgl32.Vec3{0.3, 0.3, 0.3}, b.built[402].transform.Scale)
}

func TestRenderDrawsEachObjectOnceInOrder(t *testing.T) {
	s := New()
	b := &fakeBuilder{}
	require.NoError(t, s.Load(b, DefaultLayoutWithGrid(2, 2)))
	require.Equal(t, 7, s.Len())

	s.Render()

	require.Len(t, b.log, 7)
	for i, obj := range s.Objects() {
		assert.Equal(t, obj.Name(), b.log[i])
		assert.Equal(t, 1, obj.(*countingDrawable).calls)
	}
}

func TestRenderEmptyScene(t *testing.T) {
	s := New()
	assert.NotPanics(t, s.Render)
	assert.Zero(t, s.Len())
}

func TestLoadStopsAtFirstFailure(t *testing.T) {
	errMissing := errors.New("mesh missing")
	s := New()
	b := &fakeBuilder{failOn: "cat", failErr: errMissing}

	err := s.Load(b, DefaultLayout())

	assert.ErrorIs(t, err, errMissing)
	assert.Contains(t, err.Error(), "cat")
	assert.Equal(t, 402, s.Len())
}

func TestRendererBuilderMissingMesh(t *testing.T) {
	light := renderer.DefaultLight()
	b := RendererBuilder{Ctx: renderer.DrawContext{
		Assets: renderer.NewAssets(nil),
		Camera: renderer.NewCamera(800, 600, renderer.CameraOptions{}),
		Light:  &light,
	}}

	d, err := b.Mesh("cat", 3, renderer.IdentityTransform())
	assert.ErrorIs(t, err, renderer.ErrMeshNotFound)
	assert.Nil(t, d)

	d, err = b.Cube(0, renderer.IdentityTransform())
	assert.ErrorIs(t, err, renderer.ErrMeshNotFound)
	assert.Nil(t, d)
}
