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

import "math/bits"

// parityPlan is the output of the Parity Resolver: which buffer the first
// active pass should read from, and the index of that first active digit
// position. swapped is true when the initial (caller-array, auxiliary)
// roles had to be exchanged so the final active pass lands back in the
// caller's array.
type parityPlan struct {
	swapped  bool
	firstPos int // -1 if there is nothing to do (every position is trivial)
}

// resolveParity runs the Parity Resolver phase.
//
// Grounded in radixsortbidi8's paritybool/runsteps computation: the
// original XORs a per-pass "all one bucket" boolean into paritybool while
// building offsets; here the equivalent is a popcount over the already
// built skip mask, which keeps Offset Builder and Parity Resolver cleanly
// separated as spec'd.
func resolveParity(m skipMask, passes int) parityPlan {
	activeMask := uint64(m) & ((1 << uint(passes)) - 1)
	trivialCount := bits.OnesCount64(activeMask)
	active := passes - trivialCount
	plan := parityPlan{swapped: active%2 == 1}

	inactive := activeMask
	// lowest clear bit within [0, passes) is the first active position.
	cleared := ^inactive & ((1 << uint(passes)) - 1)
	if cleared == 0 {
		plan.firstPos = -1
		return plan
	}
	plan.firstPos = bits.TrailingZeros64(cleared)
	return plan
}
