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

// runBidiPass performs one bidirectional eight-bit distribution pass: two
// read cursors sweep src from both ends toward the middle, writing into dst
// through independent low/high write cursors (loRow/hiRow) for each bucket.
//
// Grounded in radixsortbidi8's main loop (WindowsProject1.cpp:465-511); the
// original's raw pointer pairs (psrclo/psrchi, pdst + byte offsets) are
// re-expressed here as slice indices into loRow/hiRow, per spec.md's
// "Design Notes" on re-architecting mixed-unit pointer arithmetic.
//
// Stability: the low stream writes bucket v's slots in ascending source
// order starting at loRow[v]; the high stream writes the same bucket's
// slots in descending source order starting at hiRow[v]. Because the two
// cursors never cross and the ranges [loRow[v], hiRow[v]] exactly tile the
// bucket (by construction of the Offset Builder), every bucket ends up
// filled with no gap and no overlap, in original relative order.
func runBidiPass[T radixKey](src, dst []T, p int, loRow, hiRow *[bucketCount8]int) {
	n := len(src)
	i, j := 0, n-1
	for i < j {
		keyLo := src[i]
		keyHi := src[j]
		vLo := digit8(keyLo, p)
		vHi := digit8(keyHi, p)

		dst[loRow[vLo]] = keyLo
		loRow[vLo]++

		dst[hiRow[vHi]] = keyHi
		hiRow[vHi]--

		i++
		j--
	}
	if i == j {
		// N odd: the meeting element is routed through the low writer only;
		// its bucket's high cursor has already been fully consumed by the
		// mirror relationship O_hi[v] = O_lo[v+1] - 1.
		key := src[i]
		v := digit8(key, p)
		dst[loRow[v]] = key
	}
}

// distributeBidi8 runs the Distributor phase over every active digit
// position starting at firstPos, skipping trivial positions without moving
// any data, and exchanging src/dst roles after each active pass.
//
// The Parity Resolver guarantees that, by construction, the last active
// pass always writes into the caller's array: the number of passes run
// here always equals the "active" count resolveParity computed, and
// initialDst is the caller's array exactly when that count is odd.
//
// If firstPos is -1 (every position is trivial, i.e. all keys compare
// equal under the radix), no pass runs; the caller's array is never
// written and already holds the correct, unchanged content in that case.
func distributeBidi8[T radixKey](initialSrc, initialDst []T, lo, hi offsetTable8, m skipMask, passes, firstPos int) {
	if firstPos < 0 {
		return
	}
	src, dst := initialSrc, initialDst
	for p := firstPos; p < passes; p++ {
		if m.isTrivial(p) {
			continue
		}
		runBidiPass(src, dst, p, &lo[p], &hi[p])
		src, dst = dst, src
	}
}
