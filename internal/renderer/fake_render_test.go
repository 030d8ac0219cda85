package renderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// recordingRender is a GL-free Render that logs every call.
type recordingRender struct {
	calls    []string
	mat4     map[string]mgl32.Mat4
	vec3     map[string]mgl32.Vec3
	nextID   uint32
	failMesh map[string]error
	failTex  map[string]error
}

func newRecordingRender() *recordingRender {
	return &recordingRender{
		mat4:     make(map[string]mgl32.Mat4),
		vec3:     make(map[string]mgl32.Vec3),
		failMesh: make(map[string]error),
		failTex:  make(map[string]error),
	}
}

func (r *recordingRender) record(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingRender) reset() { r.calls = nil }

func (r *recordingRender) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (r *recordingRender) Clear(color mgl32.Vec3) { r.record("Clear") }

func (r *recordingRender) UploadMesh(name string, vertices []float32) (*Mesh, error) {
	r.record("UploadMesh %s", name)
	if name == "broken" {
		return nil, errors.New("out of memory")
	}
	r.nextID++
	return &Mesh{Name: name, VAO: r.nextID, VBO: r.nextID, VertexCount: int32(len(vertices) / VertexStride)}, nil
}

func (r *recordingRender) UploadTexture(id int, name string, img *image.RGBA) (*Texture, error) {
	r.record("UploadTexture %d", id)
	r.nextID++
	size := img.Rect.Size()
	return &Texture{ID: id, Name: name, Handle: r.nextID, Width: size.X, Height: size.Y}, nil
}

func (r *recordingRender) UseTexture(tex *Texture, unit int32) {
	r.record("UseTexture %d", tex.ID)
}

func (r *recordingRender) SetMat4(name string, m mgl32.Mat4) {
	r.record("SetMat4 %s", name)
	r.mat4[name] = m
}

func (r *recordingRender) SetVec3(name string, v mgl32.Vec3) {
	r.record("SetVec3 %s", name)
	r.vec3[name] = v
}

func (r *recordingRender) SetInt(name string, v int32) {
	r.record("SetInt %s=%d", name, v)
}

func (r *recordingRender) Draw(mesh *Mesh) { r.record("Draw %s", mesh.Name) }

func (r *recordingRender) DeleteMesh(mesh *Mesh) error {
	r.record("DeleteMesh %s", mesh.Name)
	return r.failMesh[mesh.Name]
}

func (r *recordingRender) DeleteTexture(tex *Texture) error {
	r.record("DeleteTexture %d", tex.ID)
	return r.failTex[tex.Name]
}

func (r *recordingRender) Cleanup() error {
	r.record("Cleanup")
	return nil
}

var _ Render = (*recordingRender)(nil)

func testVertices(n int) []float32 {
	return make([]float32, n*VertexStride)
}

func testImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 2, 2))
}

// newTestContext returns a context with the cube mesh and textures 0..3
// pooled, and the recorder cleared.
func newTestContext() (DrawContext, *recordingRender) {
	rec := newRecordingRender()
	assets := NewAssets(rec)
	if _, err := assets.AddMesh(CubeMesh, testVertices(36)); err != nil {
		panic(err)
	}
	if _, err := assets.AddMesh("cat", testVertices(3)); err != nil {
		panic(err)
	}
	for id := 0; id < 4; id++ {
		if _, err := assets.AddTexture(id, fmt.Sprintf("tex%d", id), testImage()); err != nil {
			panic(err)
		}
	}
	light := DefaultLight()
	ctx := DrawContext{
		Render: rec,
		Assets: assets,
		Camera: NewCamera(1600, 900, CameraOptions{}),
		Light:  &light,
	}
	rec.reset()
	return ctx, rec
}
