package loader

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadTexture decodes an image file ready for upload.
func LoadTexture(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := DecodeTexture(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// DecodeTexture decodes any registered format into RGBA, flipped
// vertically so the first row is the bottom of the picture, as GL samples it.
func DecodeTexture(r io.Reader) (*image.RGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode texture: empty %s image", format)
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	flip := f64.Aff3{
		1, 0, -float64(b.Min.X),
		0, -1, float64(b.Dy() + b.Min.Y),
	}
	draw.NearestNeighbor.Transform(dst, flip, src, b, draw.Src, nil)
	return dst, nil
}
