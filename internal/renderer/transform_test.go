package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestIdentityTransform(t *testing.T) {
	tr := IdentityTransform()

	assert.True(t, mgl32.Ident4().ApproxEqual(tr.ModelMatrix()))
	assertVec3InDelta(t, mgl32.Vec3{4, -5, 6}, tr.Apply(mgl32.Vec3{4, -5, 6}))
}

func TestTransformScaleRotateTranslate(t *testing.T) {
	tr := Transform{
		Position: mgl32.Vec3{1, 0, 0},
		Rotation: mgl32.Vec3{0, 90, 0},
		Scale:    mgl32.Vec3{2, 1, 1},
	}

	assertVec3InDelta(t, mgl32.Vec3{1, 0, -2}, tr.Apply(mgl32.Vec3{1, 0, 0}))
}

func TestTransformRotationOrder(t *testing.T) {
	tr := Transform{
		Rotation: mgl32.Vec3{90, 90, 0},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	// Y is applied before X, so +Z swings onto +X and the X turn leaves it
	// there. The reverse order would give -Y.
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, tr.Apply(mgl32.Vec3{0, 0, 1}))
}

func TestTransformTranslationIsLast(t *testing.T) {
	tr := Transform{
		Position: mgl32.Vec3{0, -3, 0},
		Scale:    mgl32.Vec3{3, 3, 3},
	}

	// The grid cube corner (1,1,1) lands at (3,0,3), not scaled translation.
	assertVec3InDelta(t, mgl32.Vec3{3, 0, 3}, tr.Apply(mgl32.Vec3{1, 1, 1}))
}
