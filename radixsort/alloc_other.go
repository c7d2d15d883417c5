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

//go:build !unix

package radixsort

// platformAlloc falls back to the Go heap on platforms with no mmap (e.g.
// windows, wasm). Alignment is whatever the runtime allocator guarantees,
// which spec.md §6 notes is sufficient for correctness even though it
// forgoes the engine's best-case, large-page throughput.
func platformAlloc(nBytes int) ([]byte, func(), bool) {
	if nBytes == 0 {
		return nil, func() {}, true
	}
	b := make([]byte, nBytes)
	return b, func() {}, true
}
