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

//go:build unix

package radixsort

import "golang.org/x/sys/unix"

// platformAlloc acquires nBytes of anonymous, page-aligned memory via
// mmap. The result is always aligned to the platform's page size, which
// satisfies spec.md §6's preferred (pageSize-aligned) allocation for any
// pageSize hint up to that page size; larger hints only round the buffer
// size and do not raise the alignment.
//
// Grounded in the original source's VirtualAlloc(..., MEM_LARGE_PAGES |
// MEM_RESERVE | MEM_COMMIT, ...) call (radixsortbidi8,
// WindowsProject1.cpp); this is the POSIX equivalent, reached via the
// teacher's own golang.org/x/sys dependency, repurposed here from its
// cpu-feature-detection subpackage (out of scope per spec.md §1) to unix.
func platformAlloc(nBytes int) ([]byte, func(), bool) {
	if nBytes == 0 {
		return nil, func() {}, true
	}
	b, err := unix.Mmap(-1, 0, nBytes, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, false
	}
	release := func() {
		_ = unix.Munmap(b)
	}
	return b, release, true
}
