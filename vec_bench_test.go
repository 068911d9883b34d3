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

package smallvec_test

import (
	"testing"

	"github.com/chrisforbes/smallvec"
)

// The point of the container is that short sequences never allocate; the
// baseline below shows what a plain slice costs for the same workload.

func BenchmarkPushInline(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		var v smallvec.Vec[uint32, [16]uint32]
		for i := range uint32(16) {
			v.Push(i)
		}
	}
}

func BenchmarkPushPromoted(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		var v smallvec.Vec[uint32, [4]uint32]
		for i := range uint32(64) {
			v.Push(i)
		}
	}
}

func BenchmarkSliceAppendBaseline(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		var s []uint32
		for i := range uint32(16) {
			s = append(s, i)
		}
		_ = s
	}
}
