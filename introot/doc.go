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

// Package introot computes exact floor roots of non-negative integers.
//
// For n >= 0 and k >= 1, the floor k-th root is the unique integer m with
//
//	m^k <= n < (m+1)^k
//
// Everything here is integer arithmetic: starting estimates come from the
// bit length of n and the iterations use only exact floor division, so
// results are correct for operands far beyond float64 mantissa precision
// (thousands of decimal digits and up).
//
// # Functions
//
//   - Sqrt(n)    - floor square root of a *big.Int
//   - Root(n, k) - floor k-th root of a *big.Int
//   - Sqrt64(n)  - floor square root of an int64 (fast machine-word form)
//
// All three share one contract and reject out-of-domain inputs with an
// error wrapping numtheory.ErrInvalidArgument.
package introot
