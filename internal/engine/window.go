package engine

import "github.com/go-gl/mathgl/mgl32"

// toBGR packs a [0, 1] color as the 0x00BBGGRR COLORREF layout.
func toBGR(c mgl32.Vec3) uint32 {
	r := uint32(mgl32.Clamp(c[0], 0, 1) * 255)
	g := uint32(mgl32.Clamp(c[1], 0, 1) * 255)
	b := uint32(mgl32.Clamp(c[2], 0, 1) * 255)
	return b<<16 | g<<8 | r
}
