package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"Scene3D/internal/logger"
	"Scene3D/internal/renderer"

	"go.uber.org/zap"
)

// ErrMalformedOBJ is wrapped by every OBJ parse failure.
var ErrMalformedOBJ = errors.New("malformed obj")

// LoadOBJ reads a Wavefront OBJ file into an interleaved vertex stream.
func LoadOBJ(path string) ([]float32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Log.Debug("OBJ parsed",
		zap.String("path", path),
		zap.Int("vertices", len(data)/renderer.VertexStride))
	return data, nil
}

// ParseOBJ turns the v, vt, vn and f statements of an OBJ stream into
// triangles laid out as texcoord, normal, position. Polygons are fan
// triangulated. Corners without a texcoord or normal get zeros. Every other
// statement (materials, groups, smoothing) is ignored.
func ParseOBJ(r io.Reader) ([]float32, error) {
	var (
		positions [][3]float32
		texCoords [][2]float32
		normals   [][3]float32
		data      []float32
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
			continue
		}

		switch parts[0] {
		case "v":
			v, err := parseVertex(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, [3]float32{v[0], v[1], v[2]})
		case "vn":
			n, err := parseVertex(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normals = append(normals, [3]float32{n[0], n[1], n[2]})
		case "vt":
			t, err := parseVertex(parts[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			texCoords = append(texCoords, [2]float32{t[0], t[1]})
		case "f":
			face, err := parseFace(parts[1:], len(positions), len(texCoords), len(normals))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			for i := 1; i+1 < len(face); i++ {
				for _, fv := range [3]faceVertex{face[0], face[i], face[i+1]} {
					data = appendCorner(data, fv, positions, texCoords, normals)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no faces", ErrMalformedOBJ)
	}
	return data, nil
}

func appendCorner(data []float32, fv faceVertex, positions [][3]float32, texCoords [][2]float32, normals [][3]float32) []float32 {
	var uv [2]float32
	if fv.texCoord >= 0 {
		uv = texCoords[fv.texCoord]
	}
	var n [3]float32
	if fv.normal >= 0 {
		n = normals[fv.normal]
	}
	p := positions[fv.position]
	return append(data, uv[0], uv[1], n[0], n[1], n[2], p[0], p[1], p[2])
}

// parseVertex reads at least want floats. Extra components such as the
// optional w of a position are dropped.
func parseVertex(parts []string, want int) ([]float32, error) {
	if len(parts) < want {
		return nil, fmt.Errorf("%w: want %d components, got %d", ErrMalformedOBJ, want, len(parts))
	}
	vertex := make([]float32, want)
	for i := range vertex {
		val, err := strconv.ParseFloat(parts[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid value %q", ErrMalformedOBJ, parts[i])
		}
		vertex[i] = float32(val)
	}
	return vertex, nil
}

// faceVertex holds zero-based indices, -1 when the element is absent.
type faceVertex struct {
	position int
	texCoord int
	normal   int
}

func parseFace(parts []string, nPos, nTex, nNorm int) ([]faceVertex, error) {
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: face with %d corners", ErrMalformedOBJ, len(parts))
	}

	face := make([]faceVertex, 0, len(parts))
	for _, part := range parts {
		vals := strings.Split(part, "/")

		pos, err := resolveIndex(vals[0], nPos)
		if err != nil {
			return nil, err
		}
		fv := faceVertex{position: pos, texCoord: -1, normal: -1}

		if len(vals) > 1 && vals[1] != "" {
			if fv.texCoord, err = resolveIndex(vals[1], nTex); err != nil {
				return nil, err
			}
		}
		if len(vals) > 2 && vals[2] != "" {
			if fv.normal, err = resolveIndex(vals[2], nNorm); err != nil {
				return nil, err
			}
		}
		face = append(face, fv)
	}
	return face, nil
}

// resolveIndex converts a one-based OBJ index, or a negative one relative
// to the elements seen so far, to a zero-based index.
func resolveIndex(s string, count int) (int, error) {
	raw, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid index %q", ErrMalformedOBJ, s)
	}
	idx := raw - 1
	if raw < 0 {
		idx = count + raw
	}
	if raw == 0 || idx < 0 || idx >= count {
		return 0, fmt.Errorf("%w: index %d out of range (%d defined)", ErrMalformedOBJ, raw, count)
	}
	return idx, nil
}
