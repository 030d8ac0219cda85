package scene

import (
	"fmt"

	"Scene3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Builder creates drawables with their mesh and texture resolved.
type Builder interface {
	Cube(textureID int, t renderer.Transform) (renderer.Drawable, error)
	Mesh(name string, textureID int, t renderer.Transform) (renderer.Drawable, error)
}

// Grid is a floor of cubes at y = -S, one every S units on x and z over
// [-N, N).
type Grid struct {
	N         int
	S         int
	TextureID int
}

// GridCount is the number of cubes a grid of half-extent n and step s
// holds. It is zero when s is not positive.
func GridCount(n, s int) int {
	if s <= 0 || n <= 0 {
		return 0
	}
	perAxis := (2*n + s - 1) / s
	return perAxis * perAxis
}

// Transforms lists the grid cells row by row, x outer and z inner.
func (g Grid) Transforms() []renderer.Transform {
	out := make([]renderer.Transform, 0, GridCount(g.N, g.S))
	if g.S <= 0 {
		return out
	}
	for x := -g.N; x < g.N; x += g.S {
		for z := -g.N; z < g.N; z += g.S {
			t := renderer.IdentityTransform()
			t.Position = mgl32.Vec3{float32(x), float32(-g.S), float32(z)}
			out = append(out, t)
		}
	}
	return out
}

// Placement is a single hand-placed object. Mesh is empty for a cube.
type Placement struct {
	Mesh      string
	TextureID int
	Transform renderer.Transform
}

func (p Placement) build(b Builder) (renderer.Drawable, error) {
	if p.Mesh == "" || p.Mesh == renderer.CubeMesh {
		d, err := b.Cube(p.TextureID, p.Transform)
		if err != nil {
			return nil, fmt.Errorf("place cube: %w", err)
		}
		return d, nil
	}
	d, err := b.Mesh(p.Mesh, p.TextureID, p.Transform)
	if err != nil {
		return nil, fmt.Errorf("place %s: %w", p.Mesh, err)
	}
	return d, nil
}

type Layout struct {
	Grid        Grid
	Decorations []Placement
}

// DefaultLayout is the stage: a 20 by 20 floor and three props.
func DefaultLayout() Layout {
	return DefaultLayoutWithGrid(30, 3)
}

func DefaultLayoutWithGrid(n, s int) Layout {
	return Layout{
		Grid: Grid{N: n, S: s, TextureID: 1},
		Decorations: []Placement{
			{
				TextureID: 0,
				Transform: renderer.Transform{
					Position: mgl32.Vec3{15, 5, 10},
					Scale:    mgl32.Vec3{4, 1, 4},
				},
			},
			{
				TextureID: 2,
				Transform: renderer.Transform{
					Position: mgl32.Vec3{10, 0, 10},
					Rotation: mgl32.Vec3{-45, 30, 0},
					Scale:    mgl32.Vec3{2, 1, 1},
				},
			},
			{
				Mesh:      "cat",
				TextureID: 3,
				Transform: renderer.Transform{
					Position: mgl32.Vec3{0, -2, -10},
					Rotation: mgl32.Vec3{-90, 0, -90},
					Scale:    mgl32.Vec3{0.3, 0.3, 0.3},
				},
			},
		},
	}
}

// RendererBuilder builds real objects sharing ctx.
type RendererBuilder struct {
	Ctx renderer.DrawContext
}

func (b RendererBuilder) Cube(textureID int, t renderer.Transform) (renderer.Drawable, error) {
	cube, err := renderer.NewCube(b.Ctx, textureID, t)
	if err != nil {
		return nil, err
	}
	return cube, nil
}

func (b RendererBuilder) Mesh(name string, textureID int, t renderer.Transform) (renderer.Drawable, error) {
	obj, err := renderer.NewMeshObject(b.Ctx, name, textureID, t)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

var _ Builder = RendererBuilder{}
