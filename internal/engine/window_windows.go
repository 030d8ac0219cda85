//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	DWMWA_USE_IMMERSIVE_DARK_MODE = 20
	DWMWA_BORDER_COLOR            = 34
	DWMWA_CAPTION_COLOR           = 35
)

// styleTitleBar switches the native frame to dark mode and paints the
// caption and border with the clear color.
func styleTitleBar(window *glfw.Window, color mgl32.Vec3) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}

	var useDarkMode int32 = 1
	procDwmSetWindowAttribute.Call(
		uintptr(unsafe.Pointer(hwnd)),
		DWMWA_USE_IMMERSIVE_DARK_MODE,
		uintptr(unsafe.Pointer(&useDarkMode)),
		unsafe.Sizeof(useDarkMode),
	)

	colorBGR := toBGR(color)
	for _, attr := range []uintptr{DWMWA_BORDER_COLOR, DWMWA_CAPTION_COLOR} {
		procDwmSetWindowAttribute.Call(
			uintptr(unsafe.Pointer(hwnd)),
			attr,
			uintptr(unsafe.Pointer(&colorBGR)),
			unsafe.Sizeof(colorBGR),
		)
	}
}
