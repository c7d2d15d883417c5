// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package radixsort

import (
	"math/rand"

	"github.com/samber/lo"
)

// Shared random/edge-case slice generators, in the spirit of
// hwy/contrib/sort/sort_bench_test.go's generateInt32/generateInt64
// helpers, retargeted at the unsigned 16/64-bit domains this package sorts.

func randomU16(rng *rand.Rand, n int) []uint16 {
	return lo.RepeatBy(n, func(_ int) uint16 {
		return uint16(rng.Intn(1 << 16))
	})
}

func randomU64(rng *rand.Rand, n int) []uint64 {
	return lo.RepeatBy(n, func(_ int) uint64 {
		return rng.Uint64()
	})
}

// fullRangeU16Shuffled returns every value a uint16 can hold, exactly
// once, in a pseudo-random order (spec.md §8 scenario S6).
func fullRangeU16Shuffled(rng *rand.Rand) []uint16 {
	values := lo.RepeatBy(1<<16, func(i int) uint16 { return uint16(i) })
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}

func isSortedU16(a []uint16) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}
	return true
}

func isSortedU64(a []uint64) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}
	return true
}

func histogramU16(a []uint16) map[uint16]int {
	h := make(map[uint16]int, len(a))
	for _, v := range a {
		h[v]++
	}
	return h
}

func histogramU64(a []uint64) map[uint64]int {
	h := make(map[uint64]int, len(a))
	for _, v := range a {
		h[v]++
	}
	return h
}
