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
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentDisjointCalls exercises spec.md §5: the engine MAY be
// called concurrently from unrelated threads as long as each call owns its
// own array and auxiliary buffer. Run with -race to catch any accidental
// sharing of histogram/offset/skip-mask state across calls.
func TestConcurrentDisjointCalls(t *testing.T) {
	const workers = 16
	rng := rand.New(rand.NewSource(99))

	inputs := make([][]uint64, workers)
	for i := range inputs {
		inputs[i] = randomU64(rng, 5000+i)
	}

	var g errgroup.Group
	for i := range inputs {
		data := inputs[i]
		g.Go(func() error {
			if !SortU64(data, 1) {
				return errors.New("worker sort failed")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, data := range inputs {
		assert.Truef(t, isSortedU64(data), "worker %d produced unsorted result", i)
	}
}
