//go:build !windows

package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// styleTitleBar is a no-op where the window manager owns the frame.
func styleTitleBar(window *glfw.Window, color mgl32.Vec3) {}
