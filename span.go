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

package smallvec

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/chrisforbes/smallvec/internal/ext/unsafex"
)

// Span is a non-owning view over contiguous storage owned elsewhere: a
// pointer and a length, two words wide.
//
// Instead of storing both length and capacity, this type only stores a
// pointer and length. This representation is ideal for sequences that will
// not be appended to.
//
// A Span performs no allocation and manages no element lifetimes. It must
// not outlive the storage it points into; that is the caller's obligation.
type Span[T any] struct {
	_ [0]chan int // Make the type incomparable.

	ptr unsafe.Pointer
	len int
}

// SpanOf wraps a slice as a span. The slice's capacity is forgotten, so this
// is equivalent to SpanOf(s[:len(s):len(s)]).
func SpanOf[T any](s []T) Span[T] {
	return Span[T]{
		ptr: unsafe.Pointer(unsafe.SliceData(s)),
		len: len(s),
	}
}

// UnsafeSpan constructs a span from a raw pointer and length.
//
// p must point to at least n contiguous valid Ts. This function has the same
// safety caveats as [unsafe.Slice].
func UnsafeSpan[T any](p *T, n int) Span[T] {
	return Span[T]{ptr: unsafe.Pointer(p), len: n}
}

// Len returns the number of elements in the span.
func (s Span[T]) Len() int {
	return s.len
}

// At returns the element at index idx.
//
// Panics if the index is out of range.
func (s Span[T]) At(idx int) T {
	return s.Slice()[idx]
}

// Slice returns a Go slice view into this span.
func (s Span[T]) Slice() []T {
	return unsafe.Slice((*T)(s.ptr), s.len)
}

// Values returns an iterator over the elements.
func (s Span[T]) Values() iter.Seq[T] {
	return slices.Values(s.Slice())
}

// Format implements fmt.Formatter.
func (s Span[T]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), s.Slice())
}

// Get performs a bounds check and returns the value at idx.
//
// If the bounds check fails, returns the zero value and false.
func Get[T any, I unsafex.Int](s Span[T], idx I) (element T, ok bool) {
	if idx < 0 {
		return element, false
	}
	if uint64(idx) >= uint64(s.len) {
		return element, false
	}

	// Dodge the bounds check, since Go probably won't be able to
	// eliminate it even after stenciling.
	return *unsafex.Add((*T)(s.ptr), int(idx)), true
}
