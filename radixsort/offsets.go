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

// offsetTable8 mirrors histogram8's shape: one row of bucket cursors per
// eight-bit digit position.
type offsetTable8 [maxPasses8][bucketCount8]int

// skipMask has one bit per digit position, set iff that position's
// histogram concentrates every key in a single bucket. W/b is at most 64
// (the one-bit variant on uint64 keys), so a single uint64 always has room.
type skipMask uint64

func (m skipMask) isTrivial(p int) bool {
	return m&(1<<uint(p)) != 0
}

func (m *skipMask) setTrivial(p int) {
	*m |= 1 << uint(p)
}

// buildOffsets runs the Offset Builder phase: for every digit position,
// converts the histogram into a prefix-sum table of write cursors (O_lo),
// its mirror indexed from the top (O_hi), and the skip mask identifying
// trivial positions.
//
// Grounded in BaseRadixPass's "compute prefix sum to get bucket offsets"
// loop (radix_base.go), extended with the O_hi bookkeeping modeled on
// radixsortbidi8's parallel "high half" offsets.
func buildOffsets(h *histogram8, passes, n int) (lo, hi offsetTable8, m skipMask) {
	for p := 0; p < passes; p++ {
		cursor := 0
		trivial := false
		for v := 0; v < bucketCount8; v++ {
			count := h[p][v]
			if count == n {
				trivial = true
			}
			lo[p][v] = cursor
			if v > 0 {
				hi[p][v-1] = cursor - 1
			}
			cursor += count
		}
		hi[p][bucketCount8-1] = n - 1
		if trivial {
			m.setTrivial(p)
		}
	}
	return lo, hi, m
}
