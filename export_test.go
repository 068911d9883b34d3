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

// This file exports internal symbols for testing purposes only.

// RawStorage returns the active backing storage, all Cap() slots of it,
// so tests can check that vacated slots really are zeroed.
func (v *Vec[T, B]) RawStorage() []T { return v.storage() }

// RawInline returns the inline buffer regardless of the current mode.
func (v *Vec[T, B]) RawInline() []T { return v.inlineRaw() }
