// Package perlin2d implements deterministic 2D fractal Perlin noise.
//
// A NoiseGenerator is built once from a seed and a set of octave
// parameters, then evaluated any number of times with GetNoise. Nothing
// is mutated after construction, so a single generator may be shared
// between concurrent readers.
package perlin2d

import "math"

// tableSize is the permutation table period. Lattice coordinates are
// masked with tableSize-1, so it must stay a power of two.
const tableSize = 256

// buildPerm derives the doubled permutation table from a seed. Each
// 256-entry half is a permutation of [0,256); the appended copy lets
// corner lookups add an offset of up to 255 without wrapping.
func buildPerm(seed int64) [2 * tableSize]int {
	var base [tableSize]int
	for i := range base {
		base[i] = i
	}

	// Fisher-Yates shuffle with seed-derived random.
	s := seed
	for i := tableSize - 1; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407 // LCG
		j := int((s>>33)&0x7FFFFFFF) % (i + 1)
		base[i], base[j] = base[j], base[i]
	}

	var perm [2 * tableSize]int
	for i := range perm {
		perm[i] = base[i&(tableSize-1)]
	}
	return perm
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3. Its first and
// second derivatives vanish at t=0 and t=1, so interpolated values stay
// smooth across lattice boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad2 picks one of 8 gradient directions (the 4 axes and the 4
// diagonals) from the low bits of hash and returns its dot product with
// the offset vector (x, y).
func grad2(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x
	case 1:
		return -x
	case 2:
		return y
	case 3:
		return -y
	case 4:
		return x + y
	case 5:
		return -x + y
	case 6:
		return x - y
	default:
		return -x - y
	}
}

// noise2D evaluates a single octave of gradient noise at (x, y).
// Output is roughly in [-1, 1] and exactly 0 at integer lattice points.
func (ng *NoiseGenerator) noise2D(x, y float64) float64 {
	// Unit cell containing the point. Floor, not truncation: x=-0.5
	// must land in the cell left of 0, not the cell holding x=0.5.
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & (tableSize - 1)
	yi := int(fy) & (tableSize - 1)

	// Offsets from the cell origin, each in [0,1).
	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	// Hash the four corners via chained table lookups.
	aa := ng.perm[ng.perm[xi]+yi]
	ab := ng.perm[ng.perm[xi]+yi+1]
	ba := ng.perm[ng.perm[xi+1]+yi]
	bb := ng.perm[ng.perm[xi+1]+yi+1]

	// Interpolate the corner gradient contributions along x, then y.
	x1 := lerp(u, grad2(aa, xf, yf), grad2(ba, xf-1, yf))
	x2 := lerp(u, grad2(ab, xf, yf-1), grad2(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}
