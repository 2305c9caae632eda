package perlin2d

import (
	"fmt"
	"math"
)

// Params configures a NoiseGenerator. The fields are read once by New;
// the generator never observes later changes to the caller's copy.
type Params struct {
	Octaves     int     // number of noise layers summed, must be >= 1
	Amplitude   float64 // overall scale of the output
	Frequency   float64 // spatial frequency of the first octave
	Persistence float64 // per-octave amplitude decay, typically in (0,1)
	Lacunarity  float64 // per-octave frequency growth, typically > 1
	ScaleX      float64 // divisor applied to x before sampling, must be non-zero
	ScaleY      float64 // divisor applied to y before sampling, must be non-zero
	Bias        float64 // constant added to the final value
	Seed        int64   // drives the permutation table shuffle
}

// NoiseGenerator produces deterministic 2D fractal Perlin noise from a
// seeded permutation table. Immutable after construction and safe for
// concurrent use.
type NoiseGenerator struct {
	params Params
	perm   [2 * tableSize]int
}

// New builds a generator, deriving the permutation table from p.Seed.
// It fails if p.Octaves < 1 or either scale component is zero; these
// are the only error conditions in the package, and evaluation itself
// never fails.
func New(p Params) (*NoiseGenerator, error) {
	if p.Octaves < 1 {
		return nil, fmt.Errorf("perlin2d: octaves must be >= 1, got %d", p.Octaves)
	}
	if p.ScaleX == 0 || p.ScaleY == 0 {
		return nil, fmt.Errorf("perlin2d: scale components must be non-zero, got (%v, %v)", p.ScaleX, p.ScaleY)
	}
	return &NoiseGenerator{params: p, perm: buildPerm(p.Seed)}, nil
}

// Params returns a copy of the configuration the generator was built with.
func (ng *NoiseGenerator) Params() Params {
	return ng.params
}

// GetNoise evaluates the fractal noise at (x, y). The point is divided
// by (ScaleX, ScaleY), then Octaves layers of gradient noise are
// summed, amplitudes decaying by Persistence and frequencies growing by
// Lacunarity per octave. The sum is scaled by Amplitude and offset by
// Bias. The call is a pure read of immutable state; non-finite inputs
// propagate per the usual floating-point rules.
func (ng *NoiseGenerator) GetNoise(x, y float64) float64 {
	p := ng.params
	nx := x / p.ScaleX
	ny := y / p.ScaleY

	var total float64
	amplitude := 1.0
	frequency := p.Frequency
	for i := 0; i < p.Octaves; i++ {
		total += ng.noise2D(nx*frequency, ny*frequency) * amplitude
		amplitude *= p.Persistence
		frequency *= p.Lacunarity
	}
	return p.Bias + p.Amplitude*total
}

// AmplitudeBound returns |Amplitude| times the geometric series
// 1 + Persistence + Persistence^2 + ... across the configured octaves.
// Single-octave output stays roughly within [-1, 1], so this bounds
// |GetNoise(x, y) - Bias|; callers needing output in a fixed range can
// divide by it.
func (ng *NoiseGenerator) AmplitudeBound() float64 {
	p := ng.params
	amplitude := 1.0
	var sum float64
	for i := 0; i < p.Octaves; i++ {
		sum += amplitude
		amplitude *= p.Persistence
	}
	return math.Abs(p.Amplitude) * sum
}
