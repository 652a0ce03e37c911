// Copyright 2026 go-numtheory Authors
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

// Package numtheory is the root of a small exact number-theory module
// centered on counting squarefree integers in sub-linear time.
//
// The module is layered bottom-up:
//
//   - introot: exact floor k-th roots of arbitrary-precision integers
//   - sieve: bounded-memory prime enumeration (plain, segmented, parallel)
//   - sqfree: the squarefree counting engine Q(x)
//
// All operations are pure functions over integers: no floating point, no
// shared state, no I/O. Invalid inputs (negative bounds, roots of degree
// below one) are rejected up front with an error wrapping
// [ErrInvalidArgument]; nothing is ever discovered mid-computation.
package numtheory
