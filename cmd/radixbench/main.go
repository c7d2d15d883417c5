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

// Command radixbench drives the radixsort engine against randomly
// generated arrays and reports the wall-clock time of the sort call. It exists for manual
// tuning of the pageSize hint against a target machine's TLB and cache
// geometry; it is not part of the engine's test suite.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-radixsort/radixsort"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		width         int
		n             int
		seed          int64
		pageSize      int
		allocFailures bool
	)

	cmd := &cobra.Command{
		Use:   "radixbench",
		Short: "Benchmark the radixsort engine against random input",
		RunE: func(cmd *cobra.Command, args []string) error {
			if width != 16 && width != 64 {
				return fmt.Errorf("--width must be 16 or 64, got %d", width)
			}
			if n < 0 {
				return fmt.Errorf("--n must be non-negative, got %d", n)
			}

			rng := rand.New(rand.NewSource(seed))
			elapsed, ok := runBenchmark(rng, width, n, pageSize, allocFailures)
			if !ok {
				return fmt.Errorf("sort reported allocation failure for n=%d pageSize=%d", n, pageSize)
			}

			log.Printf("width=%d n=%d pageSize=%d elapsed=%s", width, n, pageSize, elapsed)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&width, "width", 64, "key width in bits: 16 or 64")
	flags.IntVar(&n, "n", 1_000_000, "number of keys to sort")
	flags.Int64Var(&seed, "seed", 1, "PRNG seed for generated input")
	flags.IntVar(&pageSize, "page-size", 4096, "auxiliary buffer size granularity hint in bytes, must be a power of two")
	flags.BoolVar(&allocFailures, "alloc-failures", false, "force the allocator to refuse, exercising the failure path (the command then exits with an allocation-failure error)")

	return cmd
}

// runBenchmark generates n random keys of the requested width, sorts them
// once, and returns the wall-clock duration of the sort call alone.
func runBenchmark(rng *rand.Rand, width, n, pageSize int, forceFailure bool) (time.Duration, bool) {
	prevForce := radixsort.DebugForceAllocFailure(forceFailure)
	defer radixsort.DebugForceAllocFailure(prevForce)

	switch width {
	case 16:
		data := lo.RepeatBy(n, func(_ int) uint16 { return uint16(rng.Intn(1 << 16)) })
		start := time.Now()
		ok := radixsort.SortU16(data, pageSize)
		return time.Since(start), ok
	case 64:
		data := lo.RepeatBy(n, func(_ int) uint64 { return rng.Uint64() })
		start := time.Now()
		ok := radixsort.SortU64(data, pageSize)
		return time.Since(start), ok
	default:
		// newRootCmd validates width before calling runBenchmark.
		fmt.Fprintln(os.Stderr, "unreachable width")
		return 0, false
	}
}
