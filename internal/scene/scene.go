package scene

import (
	"Scene3D/internal/logger"
	"Scene3D/internal/renderer"

	"go.uber.org/zap"
)

// Scene is the ordered list of drawables rendered every frame.
type Scene struct {
	objects []renderer.Drawable
}

func New() *Scene {
	return &Scene{}
}

func (s *Scene) Add(d renderer.Drawable) {
	s.objects = append(s.objects, d)
}

func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns the drawables in insertion order. The slice is shared.
func (s *Scene) Objects() []renderer.Drawable {
	return s.objects
}

// Render draws every object once, in insertion order.
func (s *Scene) Render() {
	for _, obj := range s.objects {
		obj.Render()
	}
}

// Load builds every drawable of the layout through b and appends them:
// the grid first, then the decorations. It stops at the first failure.
func (s *Scene) Load(b Builder, l Layout) error {
	start := s.Len()

	for _, t := range l.Grid.Transforms() {
		d, err := b.Cube(l.Grid.TextureID, t)
		if err != nil {
			return err
		}
		s.Add(d)
	}

	for _, p := range l.Decorations {
		d, err := p.build(b)
		if err != nil {
			return err
		}
		s.Add(d)
	}

	logger.Log.Info("Scene loaded",
		zap.Int("grid", GridCount(l.Grid.N, l.Grid.S)),
		zap.Int("decorations", len(l.Decorations)),
		zap.Int("objects", s.Len()-start))
	return nil
}
