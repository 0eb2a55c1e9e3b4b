package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockType represents the different types of blocks in the game
type BlockType uint8

const (
	Air BlockType = iota
	Grass
	Dirt
	Stone
	Bedrock
	Wood
	Leaf
	Water
	Sand
	CoalOre
	IronOre
	GoldOre
	DiamondOre

	blockTypeCount
)

// BlockProperties contains the static rendering and culling properties of a block
type BlockProperties struct {
	Name  string
	Solid bool
	Color mgl32.Vec4
}

// blockProperties is indexed by BlockType. Water is solid for meshing even
// though it is drawn as a liquid.
var blockProperties = [blockTypeCount]BlockProperties{
	Air:        {Name: "air", Solid: false, Color: mgl32.Vec4{0, 0, 0, 0}},
	Grass:      {Name: "grass", Solid: true, Color: mgl32.Vec4{0.2, 0.8, 0.2, 1}},
	Dirt:       {Name: "dirt", Solid: true, Color: mgl32.Vec4{0.6, 0.4, 0.2, 1}},
	Stone:      {Name: "stone", Solid: true, Color: mgl32.Vec4{0.5, 0.5, 0.5, 1}},
	Bedrock:    {Name: "bedrock", Solid: true, Color: mgl32.Vec4{0.2, 0.2, 0.2, 1}},
	Wood:       {Name: "wood", Solid: true, Color: mgl32.Vec4{0.6, 0.3, 0.1, 1}},
	Leaf:       {Name: "leaf", Solid: true, Color: mgl32.Vec4{0.1, 0.6, 0.1, 1}},
	Water:      {Name: "water", Solid: true, Color: mgl32.Vec4{0.2, 0.4, 0.9, 1}},
	Sand:       {Name: "sand", Solid: true, Color: mgl32.Vec4{0.9, 0.85, 0.6, 1}},
	CoalOre:    {Name: "coal_ore", Solid: true, Color: mgl32.Vec4{0.3, 0.3, 0.3, 1}},
	IronOre:    {Name: "iron_ore", Solid: true, Color: mgl32.Vec4{0.7, 0.6, 0.5, 1}},
	GoldOre:    {Name: "gold_ore", Solid: true, Color: mgl32.Vec4{0.9, 0.8, 0.2, 1}},
	DiamondOre: {Name: "diamond_ore", Solid: true, Color: mgl32.Vec4{0.3, 0.8, 0.9, 1}},
}

// GetBlockProperties returns properties for a specific block type.
// Unknown types get the properties of Air.
func GetBlockProperties(blockType BlockType) BlockProperties {
	if blockType >= blockTypeCount {
		return blockProperties[Air]
	}
	return blockProperties[blockType]
}

// IsSolid returns whether the block type is solid
func (b BlockType) IsSolid() bool {
	return GetBlockProperties(b).Solid
}

// IsTransparent returns whether faces next to this block type are visible
func (b BlockType) IsTransparent() bool {
	return !b.IsSolid()
}

// Color returns the vertex color used for every face of the block type
func (b BlockType) Color() mgl32.Vec4 {
	return GetBlockProperties(b).Color
}

func (b BlockType) String() string {
	if b >= blockTypeCount {
		return fmt.Sprintf("BlockType(%d)", uint8(b))
	}
	return blockProperties[b].Name
}

// MarshalText encodes the block type by name.
func (b BlockType) MarshalText() ([]byte, error) {
	if b >= blockTypeCount {
		return nil, fmt.Errorf("unknown block type %d", uint8(b))
	}
	return []byte(blockProperties[b].Name), nil
}

// UnmarshalText decodes a block type from its name, e.g. "diamond_ore".
func (b *BlockType) UnmarshalText(text []byte) error {
	t, ok := ParseBlockType(string(text))
	if !ok {
		return fmt.Errorf("unknown block type %q", text)
	}
	*b = t
	return nil
}

// ParseBlockType looks a block type up by name.
func ParseBlockType(name string) (BlockType, bool) {
	for i, p := range blockProperties {
		if p.Name == name {
			return BlockType(i), true
		}
	}
	return Air, false
}
