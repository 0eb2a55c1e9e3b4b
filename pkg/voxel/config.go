package voxel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OreBand replaces stone with Block when the ore noise exceeds Threshold and
// the cell lies below BelowY. A BelowY of zero or less applies at any depth.
type OreBand struct {
	Block     BlockType `yaml:"block"`
	BelowY    int       `yaml:"below_y"`
	Threshold float64   `yaml:"threshold"`
}

// Config holds the parameters that fully determine a generated chunk.
type Config struct {
	Seed int64 `yaml:"seed"`

	ChunkSize   int `yaml:"chunk_size"`
	ChunkHeight int `yaml:"chunk_height"`

	NoiseScale  float64 `yaml:"noise_scale"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	// Lacunarity is carried for completeness. Height accumulation scales
	// frequency by Persistence, not by this value.
	Lacunarity float64 `yaml:"lacunarity"`

	GroundLevel     int `yaml:"ground_level"`
	HeightVariation int `yaml:"height_variation"`

	CaveScale     float64 `yaml:"cave_scale"`
	CaveThreshold float64 `yaml:"cave_threshold"`
	CaveOffsetX   float64 `yaml:"cave_offset_x"`
	CaveOffsetZ   float64 `yaml:"cave_offset_z"`

	OreScale  float64   `yaml:"ore_scale"`
	OreOffset float64   `yaml:"ore_offset"`
	OreBands  []OreBand `yaml:"ore_bands"`

	WaterLevel int `yaml:"water_level"`
}

// DefaultOreBands returns the ore cascade in priority order.
func DefaultOreBands() []OreBand {
	return []OreBand{
		{Block: DiamondOre, BelowY: 10, Threshold: 0.95},
		{Block: GoldOre, BelowY: 20, Threshold: 0.92},
		{Block: IronOre, BelowY: 35, Threshold: 0.85},
		{Block: CoalOre, Threshold: 0.75},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize:       16,
		ChunkHeight:     64,
		NoiseScale:      0.1,
		Octaves:         3,
		Persistence:     0.5,
		Lacunarity:      2.0,
		GroundLevel:     32,
		HeightVariation: 16,
		CaveScale:       0.05,
		CaveThreshold:   0.55,
		CaveOffsetX:     100,
		CaveOffsetZ:     200,
		OreScale:        0.1,
		OreOffset:       500,
		OreBands:        DefaultOreBands(),
		WaterLevel:      28,
	}
}

// LoadConfig reads a YAML config file. Keys absent from the file keep their
// DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
