package renderer

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"Scene3D/internal/logger"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	ErrMeshNotFound    = errors.New("mesh not found")
	ErrTextureNotFound = errors.New("texture not found")
	ErrDuplicateAsset  = errors.New("asset already registered")
)

// AssetStats provides debugging information about the pools
type AssetStats struct {
	Meshes       int
	Textures     int
	Vertices     int
	TextureBytes int
	Lookups      int
	Misses       int
}

// Assets owns every uploaded mesh and texture. Meshes are keyed by name,
// textures by integer id. Drawables only borrow what they look up here.
type Assets struct {
	rend     Render
	meshes   map[string]*Mesh
	textures map[int]*Texture
	stats    AssetStats
}

func NewAssets(rend Render) *Assets {
	return &Assets{
		rend:     rend,
		meshes:   make(map[string]*Mesh),
		textures: make(map[int]*Texture),
	}
}

// AddMesh uploads an interleaved vertex stream under name.
func (a *Assets) AddMesh(name string, vertices []float32) (*Mesh, error) {
	if _, exists := a.meshes[name]; exists {
		return nil, fmt.Errorf("mesh %q: %w", name, ErrDuplicateAsset)
	}
	if len(vertices) == 0 || len(vertices)%VertexStride != 0 {
		return nil, fmt.Errorf("mesh %q: vertex data length %d is not a multiple of %d", name, len(vertices), VertexStride)
	}

	mesh, err := a.rend.UploadMesh(name, vertices)
	if err != nil {
		return nil, fmt.Errorf("upload mesh %q: %w", name, err)
	}
	a.meshes[name] = mesh
	a.stats.Meshes++
	a.stats.Vertices += int(mesh.VertexCount)

	logger.Log.Info("Mesh uploaded",
		zap.String("name", name),
		zap.Int32("vertices", mesh.VertexCount))
	return mesh, nil
}

// AddTexture uploads img under id. name is kept for diagnostics.
func (a *Assets) AddTexture(id int, name string, img *image.RGBA) (*Texture, error) {
	if _, exists := a.textures[id]; exists {
		return nil, fmt.Errorf("texture %d: %w", id, ErrDuplicateAsset)
	}

	tex, err := a.rend.UploadTexture(id, name, img)
	if err != nil {
		return nil, fmt.Errorf("upload texture %d (%s): %w", id, name, err)
	}
	a.textures[id] = tex
	a.stats.Textures++
	a.stats.TextureBytes += len(img.Pix)

	logger.Log.Info("Texture uploaded",
		zap.Int("id", id),
		zap.String("path", name),
		zap.Int("width", tex.Width),
		zap.Int("height", tex.Height))
	return tex, nil
}

func (a *Assets) Mesh(name string) (*Mesh, error) {
	a.stats.Lookups++
	mesh, ok := a.meshes[name]
	if !ok {
		a.stats.Misses++
		return nil, fmt.Errorf("%w: %q", ErrMeshNotFound, name)
	}
	return mesh, nil
}

func (a *Assets) Texture(id int) (*Texture, error) {
	a.stats.Lookups++
	tex, ok := a.textures[id]
	if !ok {
		a.stats.Misses++
		return nil, fmt.Errorf("%w: %d", ErrTextureNotFound, id)
	}
	return tex, nil
}

func (a *Assets) Stats() AssetStats {
	return a.stats
}

// LogStats logs current pool statistics
func (a *Assets) LogStats() {
	logger.Log.Info("Asset pool stats",
		zap.Int("meshes", a.stats.Meshes),
		zap.Int("textures", a.stats.Textures),
		zap.Int("vertices", a.stats.Vertices),
		zap.Float64("textureMB", float64(a.stats.TextureBytes)/(1024*1024)),
		zap.Int("lookups", a.stats.Lookups),
		zap.Int("misses", a.stats.Misses))
}

// Release frees every mesh and texture, in a stable order, and empties the
// pools. It keeps going past failures and reports all of them.
func (a *Assets) Release() error {
	var err error

	names := make([]string, 0, len(a.meshes))
	for name := range a.meshes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		err = multierr.Append(err, a.rend.DeleteMesh(a.meshes[name]))
	}

	ids := make([]int, 0, len(a.textures))
	for id := range a.textures {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		err = multierr.Append(err, a.rend.DeleteTexture(a.textures[id]))
	}

	a.meshes = make(map[string]*Mesh)
	a.textures = make(map[int]*Texture)

	logger.Log.Info("Assets released",
		zap.Int("meshes", len(names)),
		zap.Int("textures", len(ids)))
	return err
}
