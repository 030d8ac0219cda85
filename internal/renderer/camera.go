// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFov         = 50.0
	DefaultNear        = 0.1
	DefaultFar         = 100.0
	DefaultSpeed       = 0.01 // world units per millisecond
	DefaultSensitivity = 0.05 // degrees per pixel

	MinPitch = -90.0
	MaxPitch = 89.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// MoveInput is the set of movement keys held during a frame. Any subset
// may be set at once.
type MoveInput struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
}

// FrameInput is everything the camera reads from the input devices for one
// frame. DeltaX and DeltaY are the relative pointer displacement in pixels
// since the previous poll.
type FrameInput struct {
	Move   MoveInput
	DeltaX float32
	DeltaY float32
	Quit   bool
}

// CameraOptions carries the tunables. Zero fields fall back to the
// package defaults.
type CameraOptions struct {
	Fov         float32
	Near        float32
	Far         float32
	Speed       float32
	Sensitivity float32
}

func (o CameraOptions) withDefaults() CameraOptions {
	if o.Fov == 0 {
		o.Fov = DefaultFov
	}
	if o.Near == 0 {
		o.Near = DefaultNear
	}
	if o.Far == 0 {
		o.Far = DefaultFar
	}
	if o.Speed == 0 {
		o.Speed = DefaultSpeed
	}
	if o.Sensitivity == 0 {
		o.Sensitivity = DefaultSensitivity
	}
	return o
}

type Camera struct {
	// HOT DATA - read by every drawable each frame
	Position   mgl32.Vec3
	Forward    mgl32.Vec3
	Right      mgl32.Vec3
	Up         mgl32.Vec3
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Yaw        float32 // degrees
	Pitch      float32 // degrees, kept in [MinPitch, MaxPitch]

	// COLD DATA - fixed after construction
	AspectRatio float32
	Fov         float32
	Near        float32
	Far         float32
	Speed       float32
	Sensitivity float32
}

// NewCamera places the camera at (2, 3, 3) looking down -Z and computes
// both matrices. The viewport height must be positive.
func NewCamera(width, height int, opts CameraOptions) *Camera {
	if height <= 0 {
		panic("renderer: camera viewport height must be positive")
	}
	opts = opts.withDefaults()

	camera := Camera{
		Position:    mgl32.Vec3{2, 3, 3},
		Forward:     mgl32.Vec3{0, 0, -1},
		Right:       mgl32.Vec3{1, 0, 0},
		Up:          mgl32.Vec3{0, 1, 0},
		Yaw:         90,
		Pitch:       0,
		AspectRatio: float32(width) / float32(height),
		Fov:         opts.Fov,
		Near:        opts.Near,
		Far:         opts.Far,
		Speed:       opts.Speed,
		Sensitivity: opts.Sensitivity,
	}
	camera.View = camera.lookAt()
	camera.Projection = mgl32.Perspective(mgl32.DegToRad(camera.Fov), camera.AspectRatio, camera.Near, camera.Far)
	return &camera
}

// Update advances the camera by one frame. Movement uses the basis of the
// previous frame; the new orientation only takes effect next frame.
func (c *Camera) Update(in FrameInput, deltaMs float32) {
	c.Move(in.Move, deltaMs)
	c.Rotate(in.DeltaX, in.DeltaY)
	c.UpdateVectors()
	c.View = c.lookAt()
}

// Rotate applies a relative pointer displacement. Yaw is left unbounded,
// it only ever feeds sin/cos.
func (c *Camera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, MinPitch, MaxPitch)
}

// UpdateVectors rebuilds the orthonormal basis from yaw and pitch. Right
// must come from the new forward before up is derived from both.
func (c *Camera) UpdateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	forward := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}

	c.Forward = forward.Normalize()
	c.Right = c.Forward.Cross(worldUp).Normalize()
	c.Up = c.Right.Cross(c.Forward).Normalize()
}

// Move displaces the camera along its current basis. Held directions add
// up without normalization, so diagonal travel is faster than axial travel.
func (c *Camera) Move(in MoveInput, deltaMs float32) {
	velocity := c.Speed * deltaMs
	if in.Forward {
		c.Position = c.Position.Add(c.Forward.Mul(velocity))
	}
	if in.Back {
		c.Position = c.Position.Sub(c.Forward.Mul(velocity))
	}
	if in.Left {
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	}
	if in.Right {
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
	if in.Up {
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	}
	if in.Down {
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.View
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) lookAt() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward), c.Up)
}
