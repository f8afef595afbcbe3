// Package geometry generates the static vertex data shared by every drawable
// part of the table.
package geometry

// VertexCount is the number of vertices in the cube mesh: 6 faces of 2
// triangles, each face specified independently so normals stay flat.
const VertexCount = 36

// cubeFace is one face of the unit cube: a flat normal and six corner
// positions (two triangles).
type cubeFace struct {
	normal    [3]float32
	positions [6][3]float32
}

var cubeFaces = [6]cubeFace{
	{ // front (Z+)
		normal: [3]float32{0, 0, 1},
		positions: [6][3]float32{
			{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5},
			{-0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
		},
	},
	{ // back (Z-)
		normal: [3]float32{0, 0, -1},
		positions: [6][3]float32{
			{-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5},
			{-0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, -0.5, -0.5},
		},
	},
	{ // left (X-)
		normal: [3]float32{-1, 0, 0},
		positions: [6][3]float32{
			{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5},
			{-0.5, -0.5, -0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5},
		},
	},
	{ // right (X+)
		normal: [3]float32{1, 0, 0},
		positions: [6][3]float32{
			{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
			{0.5, -0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5},
		},
	},
	{ // top (Y+)
		normal: [3]float32{0, 1, 0},
		positions: [6][3]float32{
			{-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5},
			{-0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5},
		},
	},
	{ // bottom (Y-)
		normal: [3]float32{0, -1, 0},
		positions: [6][3]float32{
			{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5},
			{-0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5},
		},
	},
}

// Cube returns the unit cube as 36 position vertices [x y z], centered at the
// origin with extents of 0.5 per axis.
func Cube() []float32 {
	out := make([]float32, 0, VertexCount*3)
	for _, face := range cubeFaces {
		for _, p := range face.positions {
			out = append(out, p[0], p[1], p[2])
		}
	}
	return out
}

// CubeWithNormals returns the unit cube as 36 interleaved vertices
// [x y z nx ny nz] with flat per-face normals.
func CubeWithNormals() []float32 {
	out := make([]float32, 0, VertexCount*6)
	for _, face := range cubeFaces {
		for _, p := range face.positions {
			out = append(out, p[0], p[1], p[2], face.normal[0], face.normal[1], face.normal[2])
		}
	}
	return out
}
