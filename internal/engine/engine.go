package engine

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"Scene3D/internal/config"
	"Scene3D/internal/loader"
	"Scene3D/internal/logger"
	"Scene3D/internal/renderer"
	"Scene3D/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Engine owns the window, the graphics context and everything drawn in it.
// It must be created and run on the main OS thread.
type Engine struct {
	cfg config.Config

	window  *glfw.Window
	rend    *renderer.OpenGLRenderer
	assets  *renderer.Assets
	camera  *renderer.Camera
	light   renderer.Light
	scene   *scene.Scene
	input   *Input
	limiter *FPSLimiter

	teardown renderer.Unwind
	frames   int
	fpsTimer time.Time
}

func New(cfg config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Run brings the viewer up, loops until the window closes, Escape is
// pressed or ctx is cancelled, and releases everything it acquired on
// every exit path.
func (e *Engine) Run(ctx context.Context) (err error) {
	defer func() {
		err = multierr.Append(err, e.teardown.Unwind())
		if err != nil {
			logger.Log.Error("Engine stopped with errors", zap.Error(err))
		} else {
			logger.Log.Info("Engine stopped")
		}
	}()

	if err = e.setup(); err != nil {
		return err
	}
	e.loop(ctx)
	return nil
}

func (e *Engine) setup() error {
	bindings, err := NewBindings(e.cfg.Keys)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	e.teardown.AddFunc(glfw.Terminate)

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win := e.cfg.Window
	e.window, err = glfw.CreateWindow(win.Width, win.Height, win.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	e.teardown.AddFunc(e.window.Destroy)

	clearColor := mgl32.Vec3(e.cfg.ClearColor)
	styleTitleBar(e.window, clearColor)
	e.window.MakeContextCurrent()
	glfw.SwapInterval(0)

	// The framebuffer can be larger than the window on HiDPI screens.
	fbWidth, fbHeight := e.window.GetFramebufferSize()
	e.rend = renderer.NewOpenGLRenderer()
	if err := e.rend.Init(int32(fbWidth), int32(fbHeight)); err != nil {
		return err
	}
	e.teardown.Add(e.rend.Cleanup)

	e.assets = renderer.NewAssets(e.rend)
	e.teardown.Add(e.assets.Release)
	if err := e.loadAssets(); err != nil {
		return err
	}
	e.assets.LogStats()

	e.camera = renderer.NewCamera(win.Width, win.Height, renderer.CameraOptions{
		Fov:         e.cfg.Camera.FOV,
		Near:        e.cfg.Camera.Near,
		Far:         e.cfg.Camera.Far,
		Speed:       e.cfg.Camera.Speed,
		Sensitivity: e.cfg.Camera.Sensitivity,
	})
	e.light = renderer.NewLight(e.cfg.Light.PositionVec(), e.cfg.Light.ColorVec())

	e.scene = scene.New()
	builder := scene.RendererBuilder{Ctx: renderer.DrawContext{
		Render: e.rend,
		Assets: e.assets,
		Camera: e.camera,
		Light:  &e.light,
	}}
	if err := e.scene.Load(builder, scene.DefaultLayoutWithGrid(e.cfg.Grid.N, e.cfg.Grid.S)); err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	e.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		e.window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	e.input = NewInput(e.window, bindings)
	e.limiter = NewFPSLimiter(e.cfg.FrameRate)

	logger.Log.Info("Engine ready",
		zap.Int("width", win.Width),
		zap.Int("height", win.Height),
		zap.Int("objects", e.scene.Len()),
		zap.Int("fps", e.cfg.FrameRate))
	return nil
}

// loadAssets fills the pools: the cube, every configured mesh, then every
// texture in id order.
func (e *Engine) loadAssets() error {
	if _, err := e.assets.AddMesh(renderer.CubeMesh, loader.LoadCube()); err != nil {
		return err
	}

	names := make([]string, 0, len(e.cfg.Assets.Meshes))
	for name := range e.cfg.Assets.Meshes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := e.cfg.Assets.Meshes[name]
		data, err := loader.LoadOBJ(path)
		if err != nil {
			return fmt.Errorf("load mesh %q: %w", name, err)
		}
		if _, err := e.assets.AddMesh(name, data); err != nil {
			return err
		}
	}

	ids, err := textureIDs(e.cfg.Assets.Textures)
	if err != nil {
		return err
	}
	for _, id := range ids {
		path := e.cfg.Assets.Textures[strconv.Itoa(id)]
		img, err := loader.LoadTexture(path)
		if err != nil {
			return fmt.Errorf("load texture %d: %w", id, err)
		}
		if _, err := e.assets.AddTexture(id, path, img); err != nil {
			return err
		}
	}
	return nil
}

// textureIDs parses the texture table keys and returns them sorted.
func textureIDs(textures map[string]string) ([]int, error) {
	ids := make([]int, 0, len(textures))
	for key := range textures {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: texture id %q is not an integer", config.ErrInvalidConfig, key)
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			return nil, fmt.Errorf("%w: texture id %d listed twice", config.ErrInvalidConfig, ids[i])
		}
	}
	return ids, nil
}

func (e *Engine) loop(ctx context.Context) {
	clearColor := mgl32.Vec3(e.cfg.ClearColor)
	var deltaMs float32
	e.fpsTimer = time.Now()

	for !e.window.ShouldClose() {
		if ctx.Err() != nil {
			logger.Log.Info("Run cancelled", zap.Error(ctx.Err()))
			return
		}

		glfw.PollEvents()
		in := e.input.Sample()
		if in.Quit {
			return
		}

		e.camera.Update(in, deltaMs)
		e.rend.Clear(clearColor)
		e.scene.Render()
		e.window.SwapBuffers()

		deltaMs = e.limiter.Tick()
		e.reportFPS()
	}
}

// reportFPS logs the frame count once per second at debug level.
func (e *Engine) reportFPS() {
	e.frames++
	if elapsed := time.Since(e.fpsTimer); elapsed >= time.Second {
		logger.Log.Debug("FPS",
			zap.Float64("fps", float64(e.frames)/elapsed.Seconds()),
			zap.Float32("x", e.camera.Position.X()),
			zap.Float32("y", e.camera.Position.Y()),
			zap.Float32("z", e.camera.Position.Z()))
		e.frames = 0
		e.fpsTimer = time.Now()
	}
}
