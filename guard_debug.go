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

//go:build smallvecdebug

package smallvec

import (
	"fmt"

	"github.com/petermattis/goid"
)

// guard is the debug-mode mutation guard. A Vec is single-owner: the first
// goroutine to mutate it becomes the owner, and any mutation from another
// goroutine panics. The guard itself is unsynchronized, so it only catches
// misuse rather than proving its absence; run with -race for the latter.
type guard struct {
	owner int64
}

func (g *guard) check() {
	id := goid.Get()
	switch g.owner {
	case 0:
		g.owner = id
	case id:
	default:
		panic(fmt.Sprintf(
			"smallvec: vector mutated by goroutines %d and %d without synchronization",
			g.owner, id,
		))
	}
}
