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
	"testing"
)

// Benchmarks follow hwy/contrib/sort/sort_bench_test.go's convention:
// generate reference data once per size, then re-copy it into a reused
// slice, with the timer stopped, before every iteration so every
// iteration sorts the same input.

func BenchmarkSortU16_1000(b *testing.B) {
	benchmarkSortU16(b, 1000)
}

func BenchmarkSortU16_100000(b *testing.B) {
	benchmarkSortU16(b, 100000)
}

func BenchmarkSortU64_1000(b *testing.B) {
	benchmarkSortU64(b, 1000)
}

func BenchmarkSortU64_100000(b *testing.B) {
	benchmarkSortU64(b, 100000)
}

func benchmarkSortU16(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(int64(n)))
	reference := randomU16(rng, n)
	data := make([]uint16, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(data, reference)
		b.StartTimer()
		SortU16(data, 1)
	}
}

func benchmarkSortU64(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(int64(n)))
	reference := randomU64(rng, n)
	data := make([]uint64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(data, reference)
		b.StartTimer()
		SortU64(data, 1)
	}
}
