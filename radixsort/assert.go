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

// assertPrecondition panics with msg if cond is false and debug assertions
// are enabled. It is a no-op in release builds (debugAsserts == false),
// matching spec.md §7: PreconditionViolation is a debug-only contract
// violation, not a runtime error the core surfaces to callers.
func assertPrecondition(cond bool, msg string) {
	if debugAsserts && !cond {
		panic("radixsort: precondition violated: " + msg)
	}
}

// isPowerOfTwo reports whether v is a power of two. Used only by debug
// assertions; pageSize validity is otherwise the caller's responsibility.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
