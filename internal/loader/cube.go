package loader

import "Scene3D/internal/renderer"

// Corners of the cube spanning [-1, 1] on every axis.
var cubeVertices = [8][3]float32{
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	{-1, 1, -1}, {-1, -1, -1}, {1, -1, -1}, {1, 1, -1},
}

// Two counter-clockwise triangles per face, in the order
// front, right, back, left, top, bottom.
var cubeIndices = [12][3]int{
	{0, 2, 3}, {0, 1, 2},
	{1, 7, 2}, {1, 6, 7},
	{6, 5, 4}, {4, 7, 6},
	{3, 4, 5}, {3, 5, 0},
	{3, 7, 4}, {3, 2, 7},
	{0, 6, 1}, {0, 5, 6},
}

var cubeTexCoords = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

var cubeTexCoordIndices = [12][3]int{
	{0, 2, 3}, {0, 1, 2},
	{0, 2, 3}, {0, 1, 2},
	{0, 1, 2}, {2, 3, 0},
	{2, 3, 0}, {2, 0, 1},
	{0, 2, 3}, {0, 1, 2},
	{3, 1, 2}, {3, 0, 1},
}

var cubeFaceNormals = [6][3]float32{
	{0, 0, 1}, {1, 0, 0}, {0, 0, -1}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
}

// CubeVertexCount is the number of vertices LoadCube emits.
const CubeVertexCount = len(cubeIndices) * 3

// LoadCube builds the interleaved vertex stream of the textured cube.
func LoadCube() []float32 {
	data := make([]float32, 0, CubeVertexCount*renderer.VertexStride)
	for tri, corners := range cubeIndices {
		normal := cubeFaceNormals[tri/2]
		for k, corner := range corners {
			uv := cubeTexCoords[cubeTexCoordIndices[tri][k]]
			pos := cubeVertices[corner]
			data = append(data, uv[0], uv[1])
			data = append(data, normal[0], normal[1], normal[2])
			data = append(data, pos[0], pos[1], pos[2])
		}
	}
	return data
}
