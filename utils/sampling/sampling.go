// Package sampling implements the sampling of bytes and floating point values
// from a PRNG.
package sampling

import (
	"encoding/binary"
	"fmt"

	"github.com/tuneinsight/interval/utils"
)

// Float64 returns a float64 uniformly distributed in [0, 1) using the 53
// most significant bits of an uint64 read from prng.
func Float64(prng PRNG) (f float64, err error) {
	var b [8]byte
	if _, err = prng.Read(b[:]); err != nil {
		return 0, fmt.Errorf("cannot Float64: %w", err)
	}
	return float64(binary.LittleEndian.Uint64(b[:])>>11) / (1 << 53), nil
}

// Uniform returns a float64 in [l, u] drawn from prng.
// Both bounds must be finite and ordered.
func Uniform(prng PRNG, l, u float64) (x float64, err error) {

	if !utils.IsFinite(l) || !utils.IsFinite(u) {
		return 0, fmt.Errorf("cannot Uniform: bounds [%v, %v] are not finite", l, u)
	}

	if l > u {
		return 0, fmt.Errorf("cannot Uniform: lower bound %v is greater than upper bound %v", l, u)
	}

	var f float64
	if f, err = Float64(prng); err != nil {
		return
	}

	// l/2 and u/2 avoid the overflow of u-l for bounds near MaxFloat64.
	x = 2 * (l/2 + f*(u/2-l/2))

	return utils.MinFloat64(utils.MaxFloat64(x, l), u), nil
}
