package renderer

import "github.com/go-gl/mathgl/mgl32"

// Fractions of the base color used for each Phong term.
const (
	AmbientFactor  = 0.1
	DiffuseFactor  = 0.8
	SpecularFactor = 1.0
)

// Light is a single static point light. The intensities are derived once
// from Color and never change, so a Light is passed around by value.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Ambient  mgl32.Vec3 // Ia
	Diffuse  mgl32.Vec3 // Id
	Specular mgl32.Vec3 // Is
}

func NewLight(position, color mgl32.Vec3) Light {
	return Light{
		Position: position,
		Color:    color,
		Ambient:  color.Mul(AmbientFactor),
		Diffuse:  color.Mul(DiffuseFactor),
		Specular: color.Mul(SpecularFactor),
	}
}

// DefaultLight is a white light above and behind the origin.
func DefaultLight() Light {
	return NewLight(mgl32.Vec3{3, 3, -3}, mgl32.Vec3{1, 1, 1})
}
