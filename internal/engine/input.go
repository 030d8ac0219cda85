package engine

import (
	"fmt"
	"strings"

	"Scene3D/internal/config"
	"Scene3D/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var namedKeys = map[string]glfw.Key{
	"SPACE":         glfw.KeySpace,
	"LEFT_SHIFT":    glfw.KeyLeftShift,
	"RIGHT_SHIFT":   glfw.KeyRightShift,
	"LEFT_CONTROL":  glfw.KeyLeftControl,
	"RIGHT_CONTROL": glfw.KeyRightControl,
	"LEFT_ALT":      glfw.KeyLeftAlt,
	"RIGHT_ALT":     glfw.KeyRightAlt,
	"TAB":           glfw.KeyTab,
	"UP":            glfw.KeyUp,
	"DOWN":          glfw.KeyDown,
	"LEFT":          glfw.KeyLeft,
	"RIGHT":         glfw.KeyRight,
	"PAGE_UP":       glfw.KeyPageUp,
	"PAGE_DOWN":     glfw.KeyPageDown,
}

// ParseKey maps a binding name to a glfw key. Letters and digits are
// their own names, other keys use the names in namedKeys. Case is ignored.
func ParseKey(name string) (glfw.Key, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return glfw.KeyA + glfw.Key(c-'A'), nil
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), nil
		}
	}
	if key, ok := namedKeys[name]; ok {
		return key, nil
	}
	return glfw.KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// Bindings are the keys for the six movement directions.
type Bindings struct {
	Forward glfw.Key
	Back    glfw.Key
	Left    glfw.Key
	Right   glfw.Key
	Up      glfw.Key
	Down    glfw.Key
}

func NewBindings(keys config.Keys) (Bindings, error) {
	var b Bindings
	for _, k := range []struct {
		name string
		dst  *glfw.Key
	}{
		{keys.Forward, &b.Forward},
		{keys.Back, &b.Back},
		{keys.Left, &b.Left},
		{keys.Right, &b.Right},
		{keys.Up, &b.Up},
		{keys.Down, &b.Down},
	} {
		key, err := ParseKey(k.name)
		if err != nil {
			return Bindings{}, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		*k.dst = key
	}
	return b, nil
}

// inputSource is the part of *glfw.Window the sampler reads.
type inputSource interface {
	GetKey(key glfw.Key) glfw.Action
	GetCursorPos() (x, y float64)
}

// Input samples the keyboard and the pointer once per frame.
type Input struct {
	src          inputSource
	bindings     Bindings
	lastX, lastY float64
	firstMouse   bool
}

func NewInput(src inputSource, bindings Bindings) *Input {
	return &Input{src: src, bindings: bindings, firstMouse: true}
}

// Sample reads the held movement keys and the cursor travel since the
// previous call. The first call reports no travel.
func (in *Input) Sample() renderer.FrameInput {
	held := func(k glfw.Key) bool {
		return in.src.GetKey(k) == glfw.Press
	}

	frame := renderer.FrameInput{
		Move: renderer.MoveInput{
			Forward: held(in.bindings.Forward),
			Back:    held(in.bindings.Back),
			Left:    held(in.bindings.Left),
			Right:   held(in.bindings.Right),
			Up:      held(in.bindings.Up),
			Down:    held(in.bindings.Down),
		},
		Quit: held(glfw.KeyEscape),
	}

	x, y := in.src.GetCursorPos()
	if in.firstMouse {
		in.firstMouse = false
	} else {
		frame.DeltaX = float32(x - in.lastX)
		frame.DeltaY = float32(y - in.lastY)
	}
	in.lastX, in.lastY = x, y
	return frame
}
