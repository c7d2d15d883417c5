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

// RadixSort1Bit sorts a in place using a one-bit-digit radix sort: per
// pass, the destination splits into a "zeros" region and a "ones" region,
// so only two write cursors are needed (spec.md §4.6's "one-bit variant").
// It shares the Histogrammer / Offset Builder / Parity Resolver skeleton
// of SortU16/SortU64 at a smaller, simpler digit width, and is provided
// for reference rather than as a production entry point: at one bit per
// pass it runs W passes instead of W/8.
//
// Grounded in radixsort2's two-bit buffered pass (WindowsProject1.cpp:238-358),
// generalized down to one bit.
func RadixSort1Bit[T radixKey](a []T, pageSize int) bool {
	return genericRadixSort[T](a, pageSize, 1)
}

// RadixSort2Bit sorts a in place using a two-bit-digit radix sort: four
// buckets per pass (spec.md §4.6's "two-bit variant"). Per the Open
// Question decision in SPEC_FULL.md §12, bucket counts use one int
// counter per bucket rather than the original's packed-into-a-word
// encoding, favoring clarity since no profiling motivated the packing.
//
// Grounded in radixsort2 (WindowsProject1.cpp:238-358).
func RadixSort2Bit[T radixKey](a []T, pageSize int) bool {
	return genericRadixSort[T](a, pageSize, 2)
}

// genericRadixSort is the shared skeleton behind RadixSort1Bit/RadixSort2Bit:
// the same four phases as the production engine, but with a single
// low-to-high write cursor per bucket instead of the bidirectional
// low/high pair, since spec.md §4.6 does not call for bidirectional
// distribution at these digit widths.
func genericRadixSort[T radixKey](a []T, pageSize int, b uint) bool {
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

	buckets := 1 << b
	passes := widthBits[T]() / int(b)
	digitMask := T(buckets - 1)

	hist := make([][]int, passes)
	for p := range hist {
		hist[p] = make([]int, buckets)
	}
	for i, v := range a {
		buf[i] = v
		for p := 0; p < passes; p++ {
			d := int((v >> (uint(p) * b)) & digitMask)
			hist[p][d]++
		}
	}

	lo := make([][]int, passes)
	var mask skipMask
	for p := 0; p < passes; p++ {
		lo[p] = make([]int, buckets)
		cursor := 0
		trivial := false
		for v := 0; v < buckets; v++ {
			count := hist[p][v]
			if count == n {
				trivial = true
			}
			lo[p][v] = cursor
			cursor += count
		}
		if trivial {
			mask.setTrivial(p)
		}
	}

	plan := resolveParity(mask, passes)
	if plan.firstPos < 0 {
		return true
	}

	src, dst := a, buf
	if plan.swapped {
		src, dst = buf, a
	}
	for p := plan.firstPos; p < passes; p++ {
		if mask.isTrivial(p) {
			continue
		}
		shift := uint(p) * b
		cursor := lo[p]
		for _, v := range src {
			d := int((v >> shift) & digitMask)
			dst[cursor[d]] = v
			cursor[d]++
		}
		src, dst = dst, src
	}
	return true
}
