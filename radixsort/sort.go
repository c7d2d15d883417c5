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

// SortU16 sorts a in place, ascending, using the bidirectional eight-bit
// radix sort engine (spec.md §4.1's sort(A, N, page_size) contract).
// pageSize is a power-of-two allocation-granularity hint for the auxiliary
// buffer; pass 1 if the platform exposes no large pages.
//
// Returns true on success, in which case a is a non-decreasing permutation
// of its original contents. Returns false only if the auxiliary buffer
// could not be allocated, in which case a is left bitwise unchanged.
func SortU16(a []uint16, pageSize int) bool {
	return sortEngine(a, pageSize)
}

// SortU64 is SortU16's uint64 counterpart.
func SortU64(a []uint64, pageSize int) bool {
	return sortEngine(a, pageSize)
}

// sortEngine implements the full four-phase engine for any supported key
// width: trivial sizes are handled without allocation; everything else
// goes through Histogrammer, Offset Builder, Parity Resolver, and
// Distributor in sequence.
func sortEngine[T radixKey](a []T, pageSize int) bool {
	assertPrecondition(isPowerOfTwo(pageSize), "pageSize must be a power of two")

	n := len(a)
	if n <= 1 {
		return true
	}
	if n == 2 {
		if a[1] < a[0] {
			a[0], a[1] = a[1], a[0]
		}
		return true
	}

	buf, release, ok := allocBuffer[T](n, pageSize)
	if !ok {
		return false
	}
	defer release()

	passes := passCount8[T]()
	h := buildHistogram8(a, buf)
	lo, hi, mask := buildOffsets(&h, passes, n)
	plan := resolveParity(mask, passes)

	src, dst := a, buf
	if plan.swapped {
		src, dst = buf, a
	}
	distributeBidi8(src, dst, lo, hi, mask, passes, plan.firstPos)
	return true
}
