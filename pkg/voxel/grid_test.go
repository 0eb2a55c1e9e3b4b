package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoxelGrid(t *testing.T) {
	g := NewVoxelGrid(4, 8, 3)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 8, g.Height())
	assert.Equal(t, 3, g.Depth())
	assert.Equal(t, 96, g.Len())
	assert.Equal(t, 96, g.Count(Air))
}

func TestVoxelGridLayout(t *testing.T) {
	g := NewVoxelGrid(4, 8, 3)
	g.Set(2, 5, 1, Stone)

	idx := ((2*8)+5)*3 + 1
	require.Equal(t, Stone, g.Blocks()[idx])
	assert.Equal(t, 1, g.Count(Stone))
	assert.Equal(t, Stone, g.At(2, 5, 1))
}

func TestVoxelGridOutOfRange(t *testing.T) {
	g := NewVoxelGrid(2, 2, 2)
	g.Fill(Stone)

	tests := []struct {
		name    string
		x, y, z int
	}{
		{"negative x", -1, 0, 0},
		{"negative y", 0, -1, 0},
		{"negative z", 0, 0, -1},
		{"x past width", 2, 0, 0},
		{"y past height", 0, 2, 0},
		{"z past depth", 0, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, g.InBounds(tt.x, tt.y, tt.z))
			assert.Equal(t, Air, g.At(tt.x, tt.y, tt.z))
			assert.True(t, g.IsTransparent(tt.x, tt.y, tt.z))

			g.Set(tt.x, tt.y, tt.z, Dirt)
			assert.Equal(t, 0, g.Count(Dirt), "out-of-range write must be dropped")
		})
	}
}

func TestVoxelGridTransparency(t *testing.T) {
	g := NewVoxelGrid(2, 2, 2)
	g.Set(0, 0, 0, Water)
	g.Set(1, 0, 0, Stone)

	assert.False(t, g.IsTransparent(0, 0, 0), "water is opaque for culling")
	assert.False(t, g.IsTransparent(1, 0, 0))
	assert.True(t, g.IsTransparent(0, 1, 0))
}

func TestVoxelGridFillAndEqual(t *testing.T) {
	a := NewVoxelGrid(3, 3, 3)
	b := NewVoxelGrid(3, 3, 3)
	assert.True(t, a.Equal(b))

	a.Fill(Dirt)
	assert.Equal(t, 27, a.Count(Dirt))
	assert.False(t, a.Equal(b))

	b.Fill(Dirt)
	assert.True(t, a.Equal(b))

	b.Set(1, 1, 1, Grass)
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(NewVoxelGrid(3, 3, 2)))
	assert.False(t, a.Equal(nil))
}
