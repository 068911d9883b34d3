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

package unsafex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chrisforbes/smallvec/internal/ext/unsafex"
)

func TestSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, unsafex.Size[byte]())
	assert.Equal(t, 4, unsafex.Size[int32]())
	assert.Equal(t, 8, unsafex.Size[[2]int32]())
	assert.Equal(t, 0, unsafex.Size[struct{}]())
}

func TestAdd(t *testing.T) {
	t.Parallel()

	s := []int64{1, 2, 3, 4}
	p := &s[0]
	assert.Same(t, &s[0], unsafex.Add(p, 0))
	assert.Same(t, &s[3], unsafex.Add(p, 3))
	assert.Same(t, &s[1], unsafex.Add(unsafex.Add(p, 3), -2))
}
