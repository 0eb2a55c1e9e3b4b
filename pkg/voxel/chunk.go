package voxel

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/voxel-terrain/pkg/noise"
)

// ErrNotGenerated is returned when meshing a chunk that has no terrain yet.
var ErrNotGenerated = errors.New("chunk has not been generated")

// State is the lifecycle stage of a chunk
type State int

const (
	Empty State = iota
	Generated
	Meshed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Generated:
		return "generated"
	case Meshed:
		return "meshed"
	default:
		return "unknown"
	}
}

// Chunk represents one column of terrain: a voxel grid and the mesh derived
// from it. The grid is the source of truth; the mesh is rebuilt from scratch.
type Chunk struct {
	coord ChunkCoord
	cfg   Config
	grid  *VoxelGrid
	mesh  *Mesh
	state State
}

// NewChunk creates an empty chunk at the specified coordinates
func NewChunk(coord ChunkCoord, cfg Config) *Chunk {
	return &Chunk{
		coord: coord,
		cfg:   cfg,
		grid:  NewVoxelGrid(cfg.ChunkSize, cfg.ChunkHeight, cfg.ChunkSize),
	}
}

// Generate fills the whole grid with the terrain of coord. Any previous
// contents and mesh are discarded.
func (c *Chunk) Generate(coord ChunkCoord, cfg Config, field noise.Field) {
	if c.grid == nil || c.grid.Width() != cfg.ChunkSize || c.grid.Height() != cfg.ChunkHeight || c.grid.Depth() != cfg.ChunkSize {
		c.grid = NewVoxelGrid(cfg.ChunkSize, cfg.ChunkHeight, cfg.ChunkSize)
	}
	c.coord = coord
	c.cfg = cfg

	NewGenerator(cfg, field).Fill(c.grid, coord)

	c.mesh = nil
	c.state = Generated
}

// BuildMesh rebuilds the mesh from the current grid contents
func (c *Chunk) BuildMesh() (*Mesh, error) {
	if c.state == Empty {
		return nil, ErrNotGenerated
	}
	c.mesh = BuildMesh(c.grid)
	c.state = Meshed
	return c.mesh, nil
}

// Coord returns the chunk coordinate
func (c *Chunk) Coord() ChunkCoord { return c.coord }

// Config returns the configuration the chunk was last generated with
func (c *Chunk) Config() Config { return c.cfg }

// Grid returns the chunk's voxel grid
func (c *Chunk) Grid() *VoxelGrid { return c.grid }

// Mesh returns the last built mesh, or nil if it is missing or stale
func (c *Chunk) Mesh() *Mesh { return c.mesh }

// State returns the lifecycle state
func (c *Chunk) State() State { return c.state }

// WorldOrigin returns the world position of this chunk (corner)
func (c *Chunk) WorldOrigin() mgl32.Vec3 {
	return c.coord.WorldOrigin(c.cfg.ChunkSize)
}
