// Package noise provides the coherent noise fields that drive terrain generation.
package noise

import (
	"github.com/aquilax/go-perlin"
)

// Field is a pure 2D noise sampler. Identical coordinates always yield an
// identical value, regardless of call order.
type Field func(x, y float64) float64

// Perlin parameters. Alpha is the weight divisor between octaves, Beta the
// frequency multiplier and Octaves the number of layers summed per sample.
const (
	PerlinAlpha   = 2.0
	PerlinBeta    = 2.0
	PerlinOctaves = 3
)

// Perlin returns a Perlin-backed field for the given seed. Samples are
// remapped into [0,1] so callers can compare them against fixed thresholds.
func Perlin(seed int64) Field {
	p := perlin.NewPerlin(PerlinAlpha, PerlinBeta, PerlinOctaves, seed)
	return func(x, y float64) float64 {
		return clamp01((p.Noise2D(x, y) + 1) * 0.5)
	}
}

// Constant returns a field that yields v everywhere.
func Constant(v float64) Field {
	return func(float64, float64) float64 {
		return v
	}
}

// Average3 returns the mean of three samples. Sampling one point on each of
// the (x,z), (x,y) and (y,z) planes approximates a 3D density field.
func (f Field) Average3(a, b, c [2]float64) float64 {
	return (f(a[0], a[1]) + f(b[0], b[1]) + f(c[0], c[1])) / 3
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
