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

package sieve

import (
	"fmt"

	"github.com/go-numtheory/numtheory"
	"github.com/go-numtheory/numtheory/introot"
)

// Primes returns all primes <= n in increasing order. n < 2 yields an
// empty list; n < 0 fails.
//
// One boolean flag per integer in [0, n]. For each still-unmarked k up to
// sqrt(n), multiples are struck starting at k*k: anything below k*k has a
// smaller prime factor and is already gone.
//
// Example:
//
//	ps, _ := sieve.Primes(30)
//	// ps = [2 3 5 7 11 13 17 19 23 29]
func Primes(n int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("sieve: negative bound %d: %w", n, numtheory.ErrInvalidArgument)
	}
	if n < 2 {
		return nil, nil
	}

	composite := make([]bool, n+1)
	root, err := introot.Sqrt64(n)
	if err != nil {
		return nil, err
	}
	for k := int64(2); k <= root; k++ {
		if composite[k] {
			continue
		}
		for m := k * k; m <= n; m += k {
			composite[m] = true
		}
	}

	primes := make([]int64, 0, guessPrimeCount(n))
	for k := int64(2); k <= n; k++ {
		if !composite[k] {
			primes = append(primes, k)
		}
	}
	return primes, nil
}

// guessPrimeCount over-estimates pi(n) slightly to size the result slice.
// n/ln(n) * 1.2 computed in integers; exactness does not matter, only
// avoiding repeated growth.
func guessPrimeCount(n int64) int {
	if n < 10 {
		return 4
	}
	ln := 0
	for v := n; v > 0; v >>= 1 {
		ln++
	}
	// ln(n) ~= bitlen * 0.693
	approx := n * 10 / (int64(ln) * 7)
	return int(approx + approx/5)
}
