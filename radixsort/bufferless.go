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

// RadixSortBufferless sorts a in place without an auxiliary buffer, one
// bit at a time from the least significant bit up. It is documented for
// reference only (spec.md §4.6): worst case is Theta(n^2 * W), since each
// bit pass can require shifting an arbitrarily long run of elements to
// restore a stable 0/1 partition. SortU16/SortU64 never call this.
//
// Grounded in radixsortbufferless (WindowsProject1.cpp:145-189): the
// original's goto-based "scan for a 1, then scan for a 0, then shift the
// run down" loop is re-expressed here as a labeled-free loop with an
// explicit done condition, per spec.md §9's note on re-architecting
// goto-based early termination.
func RadixSortBufferless[T radixKey](a []T) bool {
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
	for bit := 0; bit < widthBits[T](); bit++ {
		bufferlessBitPass(a, uint(bit))
	}
	return true
}

// bufferlessBitPass performs one stable 0/1 partition of a by the given
// bit, in place: it repeatedly finds a "1" followed later by a "0" and
// shifts the intervening run of 1s up by one slot to let the 0 drop below
// it, which preserves the relative order of both the 0s and the 1s.
func bufferlessBitPass[T radixKey](a []T, bit uint) {
	n := len(a)
	bitVal := T(1) << bit
	end := n - 1

	i := 0
	for {
		for i <= end && a[i]&bitVal == 0 {
			i++
		}
		if i >= end {
			return
		}
		j := i + 1
		for j <= end && a[j]&bitVal != 0 {
			j++
		}
		if j > end {
			return
		}
		zero := a[j]
		copy(a[i+1:j+1], a[i:j])
		a[i] = zero
		i++
	}
}
