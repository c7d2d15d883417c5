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

import "unsafe"

// forceAllocFailure lets tests exercise spec.md §8's "allocation-failure
// transparency" property (a stubbed-to-refuse allocator leaves the input
// bitwise unchanged) without depending on actually exhausting host memory.
// Production code never sets this.
var forceAllocFailure bool

// DebugForceAllocFailure forces every subsequent allocation to fail until
// called again, returning the previous setting. It exists so that external
// callers (the radixbench command's --alloc-failures flag) can exercise the
// same failure path the test suite does; it is not meant for use inside a
// production call site and is not goroutine-safe against concurrent sorts.
func DebugForceAllocFailure(force bool) (previous bool) {
	previous = forceAllocFailure
	forceAllocFailure = force
	return previous
}

// allocBuffer acquires the auxiliary buffer B of spec.md §3: n elements of
// T, backed by memory rounded up to a multiple of pageSize bytes. It
// returns the buffer, a release function that MUST be invoked on every
// exit path, and false if the underlying allocation failed (in which case
// the release function is nil and must not be called).
//
// The byte-level allocation is delegated to platformAlloc, a per-OS
// collaborator (alloc_unix.go / alloc_other.go), matching spec.md §6's
// "Aligned allocator" contract: yield memory aligned to at least the key
// width, with alignment to pageSize preferred but not required.
func allocBuffer[T radixKey](n, pageSize int) (buf []T, release func(), ok bool) {
	if n == 0 {
		return nil, func() {}, true
	}
	if forceAllocFailure {
		return nil, nil, false
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	nBytes := n * elemSize
	if pageSize > 1 {
		nBytes = roundUpToMultiple(nBytes, pageSize)
	}

	raw, release, ok := platformAlloc(nBytes)
	if !ok {
		return nil, nil, false
	}
	buf = unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(raw))), n)
	return buf, release, true
}

// roundUpToMultiple rounds size up to the next multiple of multiple, which
// must be a power of two.
func roundUpToMultiple(size, multiple int) int {
	return (size + multiple - 1) &^ (multiple - 1)
}
