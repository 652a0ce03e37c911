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

package sqfree

import (
	"fmt"

	"github.com/go-numtheory/numtheory"
	"github.com/go-numtheory/numtheory/introot"
	"github.com/go-numtheory/numtheory/sieve"
)

// CountMobius returns Q(x) by sieving the Möbius function's effect over
// the inversion identity
//
//	Q(x) = sum_{d=1}^{sqrt(x)} mu(d) * floor(x/d^2)
//
// without evaluating mu for any d. The array starts as
// vals[d] = floor(x/d^2); then for each prime p <= sqrt(x) in ascending
// order, entries at multiples of p are negated (their mu gains one more
// distinct prime factor) and entries at multiples of p*p are zeroed
// (those d are not squarefree, so mu(d) = 0). Once every prime has been
// applied, vals[d] = mu(d)*floor(x/d^2) and the answer is the array sum.
//
// Space is O(sqrt(x)), plus the prime list from sieve.Primes.
func CountMobius(x int64) (int64, error) {
	if x < 0 {
		return 0, fmt.Errorf("sqfree: negative bound %d: %w", x, numtheory.ErrInvalidArgument)
	}
	if x < 1 {
		return 0, nil
	}

	root, err := introot.Sqrt64(x)
	if err != nil {
		return 0, err
	}
	vals := make([]int64, root+1) // vals[0] unused
	for d := int64(1); d <= root; d++ {
		vals[d] = x / (d * d)
	}

	primes, err := sieve.Primes(root)
	if err != nil {
		return 0, err
	}
	for _, p := range primes {
		for m := p; m <= root; m += p {
			vals[m] = -vals[m]
		}
		if pp := p * p; pp <= root {
			for m := pp; m <= root; m += pp {
				vals[m] = 0
			}
		}
	}

	var sum int64
	for d := int64(1); d <= root; d++ {
		sum += vals[d]
	}
	return sum, nil
}
