// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional random source. It must
// be deterministic for a given source state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always yields value.
func ConstantWeightFn(value int64) WeightFn {
	return func(*rand.Rand) int64 { return value }
}

// UniformWeightFn samples uniformly from [lo, hi]. Without a random source
// it yields lo. Panics if hi < lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeightFn: require lo <= hi, got lo=%d hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}
