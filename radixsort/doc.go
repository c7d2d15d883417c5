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

// Package radixsort provides an in-memory, stable, LSD radix sort for
// fixed-width unsigned integer keys.
//
// # Algorithm
//
// The production path (SortU16, SortU64) is a bidirectional eight-bit-digit
// radix sort: a single counting pass builds a 256-bucket histogram for
// every digit position, each histogram is converted into write-cursor
// offsets, and each pass scatters elements from both ends of the array
// toward the middle, so that for every pass it writes each element exactly
// once. A parity resolver decides up front whether the final pass
// lands in the caller's array or the auxiliary buffer, so no extra copy is
// ever needed at the end.
//
// Digit positions whose histogram concentrates every key in a single bucket
// carry no information and are skipped entirely; the distributor runs zero
// passes only when every position is skipped, i.e. when all keys are equal.
//
// # Supported keys
//
//	SortU16(a []uint16, pageSize int) bool
//	SortU64(a []uint64, pageSize int) bool
//
// Both sort in place and return false only if the auxiliary buffer could
// not be allocated, in which case the input is left bitwise unchanged.
//
// # Non-goals
//
// This package sorts keys only: it does not stabilize attached payloads (a
// thin (key, payload) wrapper can be built on top), does not accept signed
// or floating-point keys (callers must bias them into unsigned order first),
// and does not expose a comparator-based entry point. A buffer-free variant
// is provided for reference (see RadixSortBufferless) but is quadratic in
// the worst case and is not used by SortU16/SortU64.
package radixsort
