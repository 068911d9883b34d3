// Copyright 2025-2026 The smallvec authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package smallvec provides a dynamic sequence container that stores short
// sequences inline, in the container's own footprint, and transparently
// promotes to a heap buffer once the inline capacity is exceeded.
//
// The intended use is hot paths that build many short sequences, such as
// per-instruction operand lists in a compiler pipeline: the common case
// fits inline and never touches the allocator, while the container still
// supports unbounded growth.
//
// A [Vec] is parameterized both over its element type and over the array
// type used as its inline buffer, so the inline capacity is fixed at
// compile time:
//
//	var operands smallvec.Vec[uint32, [4]uint32]
//
// A [Span] is the non-owning counterpart: a two-word pointer+length view
// over contiguous storage owned elsewhere.
//
// Vectors are not synchronized; a Vec must not be mutated from more than
// one goroutine. Builds with the smallvecdebug tag panic on cross-goroutine
// mutation to help diagnose misuse.
package smallvec
