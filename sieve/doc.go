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

// Package sieve enumerates primes up to a bound with the sieve of
// Eratosthenes.
//
// Three forms share one contract (the strictly increasing list of every
// prime <= n, nothing else):
//
//   - Primes: one flag array over [0, n]. O(n log log n) time, O(n) space.
//   - Segmented / SegmentedBlock: fixed-size blocks sieved against the base
//     primes up to sqrt(n). Working memory O(sqrt(n) + blockSize),
//     independent of n.
//   - SegmentedParallel: the segmented form with blocks sieved
//     concurrently. Blocks are independent, so this is safe; results are
//     reassembled in block order.
//
// Loop bounds come from introot, never from floating-point square roots.
package sieve
