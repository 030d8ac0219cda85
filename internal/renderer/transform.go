package renderer

import "github.com/go-gl/mathgl/mgl32"

// Transform places a drawable in the world. Rotation holds Euler angles in
// degrees, one per axis.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// ModelMatrix composes T * Rx * Ry * Rz * S. A local point is therefore
// scaled first, then rotated about Z, Y and X, then translated. The order
// matters for compound rotations and non-uniform scale.
func (t Transform) ModelMatrix() mgl32.Mat4 {
	rx := mgl32.DegToRad(t.Rotation.X())
	ry := mgl32.DegToRad(t.Rotation.Y())
	rz := mgl32.DegToRad(t.Rotation.Z())

	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(rx))
	m = m.Mul4(mgl32.HomogRotate3DY(ry))
	m = m.Mul4(mgl32.HomogRotate3DZ(rz))
	return m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Apply transforms a local-space point to world space.
func (t Transform) Apply(local mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(local, t.ModelMatrix())
}
