package voxel

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction represents one of the six axis-aligned face directions
type Direction int

const (
	Up      Direction = iota // +Y
	Down                     // -Y
	Forward                  // +Z
	Back                     // -Z
	Right                    // +X
	Left                     // -X
)

// Directions lists every face direction in the order faces are emitted
var Directions = [6]Direction{Up, Down, Forward, Back, Right, Left}

// Offset returns the integer step to the neighbouring cell in direction d
func (d Direction) Offset() (dx, dy, dz int) {
	switch d {
	case Up:
		return 0, 1, 0
	case Down:
		return 0, -1, 0
	case Forward:
		return 0, 0, 1
	case Back:
		return 0, 0, -1
	case Right:
		return 1, 0, 0
	case Left:
		return -1, 0, 0
	default:
		return 0, 0, 0
	}
}

// DirectionVector returns the unit vector for a direction
func (d Direction) DirectionVector() mgl32.Vec3 {
	dx, dy, dz := d.Offset()
	return mgl32.Vec3{float32(dx), float32(dy), float32(dz)}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Forward:
		return "forward"
	case Back:
		return "back"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// faceCorners holds the unit-cube corners of each face, counter-clockwise
// when seen from outside the cube.
var faceCorners = [6][4]mgl32.Vec3{
	Up:      {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	Down:    {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	Forward: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	Back:    {{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
	Right:   {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	Left:    {{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}},
}

// Mesh holds face-culled chunk geometry in local chunk space. Vertices,
// Colors and Normals are parallel; Indices holds two triangles per quad.
type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint32
	Colors   []mgl32.Vec4
	Normals  []mgl32.Vec3
}

// NewMesh creates a new empty mesh
func NewMesh() *Mesh {
	return &Mesh{
		Vertices: make([]mgl32.Vec3, 0),
		Indices:  make([]uint32, 0),
		Colors:   make([]mgl32.Vec4, 0),
		Normals:  make([]mgl32.Vec3, 0),
	}
}

// AddFace appends the quad of the cell at (x, y, z) facing dir
func (m *Mesh) AddFace(x, y, z int, dir Direction, color mgl32.Vec4) {
	baseIndex := uint32(len(m.Vertices))
	pos := mgl32.Vec3{float32(x), float32(y), float32(z)}

	for _, corner := range faceCorners[dir] {
		m.Vertices = append(m.Vertices, pos.Add(corner))
		m.Colors = append(m.Colors, color)
	}

	// Add indices for two triangles (CCW winding)
	m.Indices = append(m.Indices, baseIndex, baseIndex+1, baseIndex+2)
	m.Indices = append(m.Indices, baseIndex, baseIndex+2, baseIndex+3)
}

// RecalculateNormals derives vertex normals from triangle winding. Each
// vertex gets the normalised sum of the normals of triangles using it.
func (m *Mesh) RecalculateNormals() {
	normals := make([]mgl32.Vec3, len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		e1 := m.Vertices[b].Sub(m.Vertices[a])
		e2 := m.Vertices[c].Sub(m.Vertices[a])
		n := e1.Cross(e2)

		normals[a] = normals[a].Add(n)
		normals[b] = normals[b].Add(n)
		normals[c] = normals[c].Add(n)
	}

	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		}
	}
	m.Normals = normals
}

// FaceCount returns the number of quads in the mesh
func (m *Mesh) FaceCount() int {
	return len(m.Vertices) / 4
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned box enclosing every vertex. An empty mesh
// reports two zero vectors.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], v[i])
			hi[i] = max(hi[i], v[i])
		}
	}
	return lo, hi
}

// Equal reports whether two meshes hold identical buffers
func (m *Mesh) Equal(o *Mesh) bool {
	if m == nil || o == nil {
		return m == o
	}
	return slices.Equal(m.Vertices, o.Vertices) &&
		slices.Equal(m.Indices, o.Indices) &&
		slices.Equal(m.Colors, o.Colors) &&
		slices.Equal(m.Normals, o.Normals)
}

// BuildMesh emits one quad for every solid cell face whose neighbour is
// transparent. Neighbours outside the grid are transparent, so faces on the
// chunk boundary are always emitted. Faces are never merged.
func BuildMesh(grid *VoxelGrid) *Mesh {
	mesh := NewMesh()

	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			for z := 0; z < grid.Depth(); z++ {
				block := grid.At(x, y, z)
				if !block.IsSolid() {
					continue
				}
				color := block.Color()

				for _, dir := range Directions {
					dx, dy, dz := dir.Offset()
					if grid.IsTransparent(x+dx, y+dy, z+dz) {
						mesh.AddFace(x, y, z, dir, color)
					}
				}
			}
		}
	}

	mesh.RecalculateNormals()
	return mesh
}
