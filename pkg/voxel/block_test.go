package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockSolidity(t *testing.T) {
	assert.False(t, Air.IsSolid())
	assert.True(t, Air.IsTransparent())

	for b := Grass; b < blockTypeCount; b++ {
		assert.True(t, b.IsSolid(), "%s should be solid", b)
		assert.False(t, b.IsTransparent(), "%s should be opaque", b)
	}

	// Water is drawn as a liquid but culls faces like any other block.
	assert.True(t, Water.IsSolid())
}

func TestBlockColors(t *testing.T) {
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 0}, Air.Color())
	assert.Equal(t, mgl32.Vec4{0.2, 0.8, 0.2, 1}, Grass.Color())
	assert.Equal(t, mgl32.Vec4{0.9, 0.85, 0.6, 1}, Sand.Color())
	assert.Equal(t, mgl32.Vec4{0.3, 0.8, 0.9, 1}, DiamondOre.Color())

	seen := make(map[mgl32.Vec4]BlockType)
	for b := Grass; b < blockTypeCount; b++ {
		c := b.Color()
		assert.Equal(t, float32(1), c[3], "%s should be opaque", b)
		if other, ok := seen[c]; ok {
			t.Errorf("%s shares color %v with %s", b, c, other)
		}
		seen[c] = b
	}
}

func TestUnknownBlockBehavesLikeAir(t *testing.T) {
	unknown := BlockType(200)
	assert.False(t, unknown.IsSolid())
	assert.Equal(t, Air.Color(), unknown.Color())
	assert.Equal(t, "BlockType(200)", unknown.String())

	_, err := unknown.MarshalText()
	assert.Error(t, err)
}

func TestParseBlockType(t *testing.T) {
	b, ok := ParseBlockType("diamond_ore")
	require.True(t, ok)
	assert.Equal(t, DiamondOre, b)

	_, ok = ParseBlockType("obsidian")
	assert.False(t, ok)

	var parsed BlockType
	require.NoError(t, parsed.UnmarshalText([]byte("coal_ore")))
	assert.Equal(t, CoalOre, parsed)
	assert.Error(t, parsed.UnmarshalText([]byte("lava")))
}

func TestBlockTextRoundTrip(t *testing.T) {
	for b := Air; b < blockTypeCount; b++ {
		text, err := b.MarshalText()
		require.NoError(t, err)

		var got BlockType
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, b, got)
	}
}
