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

// Array is a fixed-size array of T, used as the inline buffer of a [Vec].
//
// The length of the array is the vector's inline capacity. Only the lengths
// listed here are supported; pick the next size up if the one you want is
// missing.
type Array[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[12]T | ~[16]T | ~[24]T | ~[32]T | ~[48]T | ~[64]T
}

// Vec is a contiguous sequence of T that stores up to len(B) elements inline,
// with no separate allocation, and spills to a heap buffer beyond that.
//
// Only a subset of a general-purpose vector is implemented: append, pop,
// reserve, and shrink. There is no insertion or deletion in the middle.
//
// A zero Vec is empty and ready to use. A Vec must not be copied by value
// once in use (the inline buffer would be snapshotted and the heap buffer
// aliased); use [Vec.Clone] or [Vec.Move] instead.
//
// Vecs are not synchronized. Mutating one from two goroutines is a data
// race; see the package documentation for the smallvecdebug build tag.
type Vec[T any, B Array[T]] struct {
	guard

	n int

	// Invariants:
	// 1. heap == nil means elements live in inline ("inline mode");
	//    otherwise they live in heap, and len(heap) == cap(heap) > len(B).
	// 2. 0 <= n <= Cap().
	// 3. Slots [n, Cap()) of the active storage are zero, so vacated
	//    elements do not pin memory through the GC.
	heap   []T
	inline B
}

// Of returns a vector holding the given elements, in order.
//
// The inline buffer type cannot be inferred from the arguments, so both type
// parameters must be spelled out: Of[int, [4]int](1, 2, 3).
func Of[T any, B Array[T]](elems ...T) Vec[T, B] {
	return FromSlice[T, B](elems)
}

// FromSlice returns a vector holding a copy of s.
//
// This is also how a vector is copied across inline capacities:
// FromSlice[T, [8]T](v.Slice()) rebuilds any sequence under a different
// inline buffer.
func FromSlice[T any, B Array[T]](s []T) Vec[T, B] {
	var v Vec[T, B]
	v.Reserve(len(s))
	copy(v.storage(), s)
	v.n = len(s)
	// Constructing does not claim ownership; the first mutator does.
	v.guard = guard{}
	return v
}

// Len returns the number of elements in the vector.
func (v *Vec[T, B]) Len() int {
	return v.n
}

// Cap returns the number of element slots available without reallocation.
//
// Cap never drops below the inline capacity.
func (v *Vec[T, B]) Cap() int {
	if v.heap != nil {
		return len(v.heap)
	}
	return v.inlineLen()
}

// IsInlined reports whether the elements currently live in the inline
// buffer. Equivalent to Cap() == len(B).
func (v *Vec[T, B]) IsInlined() bool {
	return v.heap == nil
}

// At returns the element at index idx.
//
// Panics if the index is out of range.
func (v *Vec[T, B]) At(idx int) T {
	return v.Slice()[idx]
}

// SetAt sets the element at index idx.
//
// Panics if the index is out of range.
func (v *Vec[T, B]) SetAt(idx int, x T) {
	v.Slice()[idx] = x
}

// Ptr returns a pointer to the element at index idx.
//
// The pointer is invalidated by any operation that reallocates. Panics if
// the index is out of range.
func (v *Vec[T, B]) Ptr(idx int) *T {
	return &v.Slice()[idx]
}

// First returns the first element. Panics if the vector is empty.
func (v *Vec[T, B]) First() T {
	return v.Slice()[0]
}

// Last returns the last element. Panics if the vector is empty.
func (v *Vec[T, B]) Last() T {
	return v.Slice()[v.n-1]
}

// Slice returns the live elements as a Go slice.
//
// The slice aliases the vector's storage: writes through it are visible in
// the vector, and it is invalidated by any operation that reallocates
// (a growing Push or Append, Reserve, ShrinkToFit) and by Pop or Clear for
// the slots they vacate. The capacity of the returned slice is clipped so
// that appending to it cannot scribble over unused vector slots.
func (v *Vec[T, B]) Slice() []T {
	return v.storage()[:v.n:v.n]
}

// Span returns a borrowed [Span] over the live elements.
//
// The span is invalidated under the same conditions as [Vec.Slice].
func (v *Vec[T, B]) Span() Span[T] {
	return SpanOf(v.Slice())
}

// Values returns an iterator over the elements.
func (v *Vec[T, B]) Values() iter.Seq[T] {
	return slices.Values(v.Slice())
}

// All returns an iterator over index/element pairs.
func (v *Vec[T, B]) All() iter.Seq2[int, T] {
	return slices.All(v.Slice())
}

// Push appends one element, growing by doubling when the vector is full.
//
// Appending is amortized O(1): growth doubles the current capacity, and the
// first growth out of the inline buffer allocates twice the inline capacity.
func (v *Vec[T, B]) Push(x T) {
	v.check()
	if v.n == v.Cap() {
		v.Reserve(2 * v.Cap())
	}
	v.storage()[v.n] = x
	v.n++
}

// Append appends all the given elements, growing at most once.
func (v *Vec[T, B]) Append(xs ...T) {
	v.check()
	if need := v.n + len(xs); need > v.Cap() {
		newCap := v.Cap()
		for newCap < need {
			newCap *= 2
		}
		v.Reserve(newCap)
	}
	copy(v.storage()[v.n:], xs)
	v.n += len(xs)
}

// Pop removes and returns the last element, and zeroes the slot it occupied
// so that the element is no longer retained.
//
// Panics if the vector is empty.
func (v *Vec[T, B]) Pop() T {
	v.check()
	s := v.storage()
	x := s[v.n-1]
	var zero T
	s[v.n-1] = zero
	v.n--
	return x
}

// Clear removes all elements, zeroing their slots. Capacity is unchanged.
func (v *Vec[T, B]) Clear() {
	v.check()
	clear(v.storage()[:v.n])
	v.n = 0
}

// Reserve grows the vector's capacity to at least capacity. It is a no-op
// when the vector already has that much room; capacity never shrinks here.
//
// All live elements are carried over in order. Any pointers or slices
// previously obtained from the vector are invalidated.
func (v *Vec[T, B]) Reserve(capacity int) {
	v.check()
	if capacity <= v.Cap() {
		return
	}
	fresh := make([]T, capacity)
	copy(fresh, v.storage()[:v.n])
	if v.heap == nil {
		// Leaving inline mode: the inline slots must not keep their
		// elements alive once the heap copy owns them.
		clear(v.inlineRaw()[:v.n])
	}
	v.heap = fresh
}

// ShrinkToFit reduces capacity to the smallest supported value that still
// holds the live elements: back to the inline buffer when they fit, or to a
// tight heap buffer otherwise. No-op when already inline or already tight.
func (v *Vec[T, B]) ShrinkToFit() {
	v.check()
	if v.heap == nil {
		return
	}
	if v.n <= v.inlineLen() {
		copy(v.inlineRaw(), v.heap[:v.n])
		v.heap = nil
		return
	}
	if v.n == len(v.heap) {
		return
	}
	tight := make([]T, v.n)
	copy(tight, v.heap)
	v.heap = tight
}

// Move empties the vector into a new one and returns it.
//
// In inline mode the elements are copied over and the donor's slots zeroed.
// In heap mode the heap buffer is handed off as-is, in O(1), with no
// per-element work; the result adopts the donor's exact length and capacity.
// Either way the donor ends up empty, back on its inline buffer.
func (v *Vec[T, B]) Move() Vec[T, B] {
	v.check()
	out := Vec[T, B]{n: v.n, heap: v.heap, inline: v.inline}
	if v.heap == nil {
		clear(v.inlineRaw()[:v.n])
	}
	v.heap = nil
	v.n = 0
	return out
}

// Clone returns an independent copy with the same inline capacity.
func (v *Vec[T, B]) Clone() Vec[T, B] {
	return FromSlice[T, B](v.Slice())
}

// Format implements fmt.Formatter.
func (v *Vec[T, B]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Slice())
}

// storage returns the active backing storage, Cap() slots long.
func (v *Vec[T, B]) storage() []T {
	if v.heap != nil {
		return v.heap
	}
	return v.inlineRaw()
}

// inlineRaw views the inline buffer as a slice.
//
// This is sound because every type in [Array]'s type set is an array of T,
// so &v.inline is a pointer to inlineLen contiguous Ts.
func (v *Vec[T, B]) inlineRaw() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.inline)), v.inlineLen())
}

// inlineLen returns the inline capacity, i.e. the length of B.
func (v *Vec[T, B]) inlineLen() int {
	elem := unsafex.Size[T]()
	if elem == 0 {
		panic("smallvec: zero-size element types are not supported")
	}
	return unsafex.Size[B]() / elem
}
