package voxel

import "slices"

// VoxelGrid is a dense width x height x depth block buffer for one chunk.
// Cells are stored flat, indexed by ((x*height)+y)*depth+z.
type VoxelGrid struct {
	width, height, depth int
	blocks               []BlockType
}

// NewVoxelGrid creates a grid with every cell set to Air
func NewVoxelGrid(width, height, depth int) *VoxelGrid {
	return &VoxelGrid{
		width:  width,
		height: height,
		depth:  depth,
		blocks: make([]BlockType, width*height*depth),
	}
}

// Width returns the size along X
func (g *VoxelGrid) Width() int { return g.width }

// Height returns the size along Y
func (g *VoxelGrid) Height() int { return g.height }

// Depth returns the size along Z
func (g *VoxelGrid) Depth() int { return g.depth }

// Len returns the number of cells in the grid
func (g *VoxelGrid) Len() int { return len(g.blocks) }

// InBounds checks if the given coordinates are within the grid
func (g *VoxelGrid) InBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < g.width && y < g.height && z < g.depth
}

func (g *VoxelGrid) index(x, y, z int) int {
	return (x*g.height+y)*g.depth + z
}

// At returns the block at the given local coordinates, or Air when they are
// outside the grid.
func (g *VoxelGrid) At(x, y, z int) BlockType {
	if !g.InBounds(x, y, z) {
		return Air
	}
	return g.blocks[g.index(x, y, z)]
}

// Set stores a block at the given local coordinates. Out-of-range writes are
// ignored.
func (g *VoxelGrid) Set(x, y, z int, b BlockType) {
	if !g.InBounds(x, y, z) {
		return
	}
	g.blocks[g.index(x, y, z)] = b
}

// IsTransparent reports whether a face bordering (x, y, z) is exposed. Cells
// outside the grid count as transparent, so chunk edges always render.
func (g *VoxelGrid) IsTransparent(x, y, z int) bool {
	return g.At(x, y, z).IsTransparent()
}

// Fill sets every cell to b
func (g *VoxelGrid) Fill(b BlockType) {
	for i := range g.blocks {
		g.blocks[i] = b
	}
}

// Count returns how many cells hold b
func (g *VoxelGrid) Count(b BlockType) int {
	n := 0
	for _, c := range g.blocks {
		if c == b {
			n++
		}
	}
	return n
}

// Blocks returns the flat backing buffer. Callers must not modify it.
func (g *VoxelGrid) Blocks() []BlockType {
	return g.blocks
}

// Equal reports whether two grids have the same dimensions and contents
func (g *VoxelGrid) Equal(o *VoxelGrid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height || g.depth != o.depth {
		return false
	}
	return slices.Equal(g.blocks, o.blocks)
}
