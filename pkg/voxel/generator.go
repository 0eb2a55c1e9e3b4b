package voxel

import (
	"math"

	"github.com/leterax/voxel-terrain/pkg/noise"
)

const (
	// Caves never open at or below this layer.
	caveFloor = 5
	// Layers of dirt between the surface block and stone.
	dirtDepth = 4
)

// Generator turns a Config and a noise field into block classifications. It
// holds no mutable state and is safe for concurrent use when its field is.
type Generator struct {
	cfg   Config
	field noise.Field
}

// NewGenerator creates a generator sampling field with the given config
func NewGenerator(cfg Config, field noise.Field) *Generator {
	return &Generator{cfg: cfg, field: field}
}

// Config returns the generator's configuration
func (g *Generator) Config() Config {
	return g.cfg
}

// Height returns the surface height of the world column (worldX, worldZ).
// Both amplitude and frequency fall off by Persistence after every octave.
func (g *Generator) Height(worldX, worldZ int) int {
	amplitude := 1.0
	frequency := 1.0
	total := 0.0

	for range g.cfg.Octaves {
		sampleX := float64(worldX) * g.cfg.NoiseScale * frequency
		sampleZ := float64(worldZ) * g.cfg.NoiseScale * frequency

		total += g.field(sampleX, sampleZ) * amplitude

		amplitude *= g.cfg.Persistence
		frequency *= g.cfg.Persistence
	}

	height := g.cfg.GroundLevel + int(math.RoundToEven(total*float64(g.cfg.HeightVariation)))
	return clampInt(height, 1, g.cfg.ChunkHeight-1)
}

// IsCave reports whether the cave density at (x, y, z) exceeds the threshold.
// It does not check whether the cell is eligible for carving.
func (g *Generator) IsCave(x, y, z int) bool {
	s := g.cfg.CaveScale
	fx, fy, fz := float64(x), float64(y), float64(z)

	density := g.field.Average3(
		[2]float64{fx * s, fz * s},
		[2]float64{fx*s + g.cfg.CaveOffsetX, fy * s * 0.5},
		[2]float64{fy * s * 0.5, fz*s + g.cfg.CaveOffsetZ},
	)
	return density > g.cfg.CaveThreshold
}

// ClassifyOre picks the block for a stone cell. The first matching ore band
// wins; with no match the cell stays Stone.
func (g *Generator) ClassifyOre(x, y, z int) BlockType {
	n := g.field(
		float64(x)*g.cfg.OreScale+g.cfg.OreOffset,
		float64(z)*g.cfg.OreScale+g.cfg.OreOffset,
	)
	return classifyOre(g.cfg.OreBands, y, n)
}

func classifyOre(bands []OreBand, y int, n float64) BlockType {
	for _, band := range bands {
		if band.BelowY > 0 && y >= band.BelowY {
			continue
		}
		if n > band.Threshold {
			return band.Block
		}
	}
	return Stone
}

// BlockAt applies the generation rules to one cell of a column whose surface
// height is height. Rules are checked in order and the first match wins.
func (g *Generator) BlockAt(worldX, y, worldZ, height int) BlockType {
	switch {
	case y == 0:
		return Bedrock
	case y > caveFloor && y < height-1 && g.IsCave(worldX, y, worldZ):
		return Air
	case y < height-dirtDepth:
		return g.ClassifyOre(worldX, y, worldZ)
	case y < height-1:
		return Dirt
	case y == height-1:
		if y > g.cfg.WaterLevel+1 {
			return Grass
		}
		return Sand
	case y < g.cfg.WaterLevel:
		return Water
	default:
		return Air
	}
}

// Fill overwrites every cell of grid with the terrain of chunk coord. Columns
// are sampled in world space so neighbouring chunks line up.
func (g *Generator) Fill(grid *VoxelGrid, coord ChunkCoord) {
	for x := 0; x < grid.Width(); x++ {
		for z := 0; z < grid.Depth(); z++ {
			worldX := int(coord.X)*grid.Width() + x
			worldZ := int(coord.Z)*grid.Depth() + z

			height := g.Height(worldX, worldZ)
			for y := 0; y < grid.Height(); y++ {
				grid.Set(x, y, z, g.BlockAt(worldX, y, worldZ, height))
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
