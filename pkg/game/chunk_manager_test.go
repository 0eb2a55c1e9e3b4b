package game

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/leterax/voxel-terrain/pkg/noise"
	"github.com/leterax/voxel-terrain/pkg/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func smallConfig() voxel.Config {
	cfg := voxel.DefaultConfig()
	cfg.ChunkSize = 8
	cfg.ChunkHeight = 48
	cfg.GroundLevel = 24
	cfg.WaterLevel = 26
	return cfg
}

func TestAreaCoords(t *testing.T) {
	assert.Nil(t, AreaCoords(voxel.ChunkCoord{}, -1))
	assert.Equal(t, []voxel.ChunkCoord{{X: 3, Z: -2}}, AreaCoords(voxel.ChunkCoord{X: 3, Z: -2}, 0))

	coords := AreaCoords(voxel.ChunkCoord{X: 1, Z: 1}, 2)
	require.Len(t, coords, 25)
	assert.Equal(t, voxel.ChunkCoord{X: -1, Z: -1}, coords[0])
	assert.Equal(t, voxel.ChunkCoord{X: 3, Z: 3}, coords[24])

	seen := make(map[voxel.ChunkCoord]bool)
	for _, c := range coords {
		assert.False(t, seen[c], "duplicate %v", c)
		seen[c] = true
	}
}

func TestGenerateAreaMatchesSerial(t *testing.T) {
	cfg := smallConfig()
	field := noise.Perlin(11)

	cm := NewChunkManager(cfg, field, 4, testLogger())
	defer cm.Cleanup()

	require.NoError(t, cm.GenerateArea(context.Background(), voxel.ChunkCoord{}, 1))

	chunks := cm.GetChunks()
	require.Len(t, chunks, 9)
	assert.Equal(t, voxel.ChunkCoord{X: -1, Z: -1}, chunks[0].Coord())
	assert.Equal(t, voxel.ChunkCoord{X: 1, Z: 1}, chunks[8].Coord())

	for _, got := range chunks {
		require.Equal(t, voxel.Meshed, got.State())

		want := voxel.NewChunk(got.Coord(), cfg)
		want.Generate(got.Coord(), cfg, field)
		mesh, err := want.BuildMesh()
		require.NoError(t, err)

		assert.True(t, want.Grid().Equal(got.Grid()), "grid of %v", got.Coord())
		assert.True(t, mesh.Equal(got.Mesh()), "mesh of %v", got.Coord())
	}
}

func TestGenerateAreaCancelled(t *testing.T) {
	cm := NewChunkManager(smallConfig(), noise.Perlin(1), 2, testLogger())
	defer cm.Cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cm.GenerateArea(ctx, voxel.ChunkCoord{}, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateChunkReplaces(t *testing.T) {
	cm := NewChunkManager(smallConfig(), noise.Constant(0.5), 1, nil)
	defer cm.Cleanup()

	assert.False(t, cm.HaveChunksChanged())

	first, err := cm.GenerateChunk(voxel.ChunkCoord{X: 2, Z: 2})
	require.NoError(t, err)
	assert.True(t, cm.HaveChunksChanged())
	assert.False(t, cm.HaveChunksChanged(), "flag resets after being read")

	second, err := cm.GenerateChunk(voxel.ChunkCoord{X: 2, Z: 2})
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	stored, ok := cm.GetChunk(voxel.ChunkCoord{X: 2, Z: 2})
	require.True(t, ok)
	assert.Same(t, second, stored)

	_, ok = cm.GetChunk(voxel.ChunkCoord{})
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	cfg := smallConfig()
	cfg.HeightVariation = 0
	cfg.WaterLevel = 1

	cm := NewChunkManager(cfg, noise.Constant(0.5), 2, testLogger())
	defer cm.Cleanup()

	require.NoError(t, cm.GenerateArea(context.Background(), voxel.ChunkCoord{}, 1))

	// Flat terrain 24 high on an 8x8 footprint; chunks do not occlude each other.
	perChunk := 2*(8*8) + 4*(8*24)
	s := cm.Stats()
	assert.Equal(t, 9, s.Chunks)
	assert.Equal(t, 9*perChunk, s.Faces)
	assert.Equal(t, 9*perChunk*4, s.Vertices)
	assert.Equal(t, 9*perChunk*2, s.Triangles)
}
