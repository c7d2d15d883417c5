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

// sortState documents the per-call state machine of spec.md §4.7. It has
// no effect on production behavior; sortEngine's control flow already
// encodes these transitions directly. It gives readers names for "where
// in the call" an invariant applies; no code in the package, debug
// assertions included, references these values.
type sortState int

const (
	stateAllocated sortState = iota
	stateHistogrammed
	stateOffsetsBuilt
	stateParityResolved
	stateDistributing
	stateDone
)

func (s sortState) String() string {
	switch s {
	case stateAllocated:
		return "Allocated"
	case stateHistogrammed:
		return "Histogrammed"
	case stateOffsetsBuilt:
		return "OffsetsBuilt"
	case stateParityResolved:
		return "ParityResolved"
	case stateDistributing:
		return "Distributing"
	case stateDone:
		return "Done"
	default:
		return "Unknown"
	}
}
