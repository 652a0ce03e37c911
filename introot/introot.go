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

package introot

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/go-numtheory/numtheory"
	"github.com/go-numtheory/numtheory/internal/bigmul"
)

var one = big.NewInt(1)

// Sqrt returns the floor square root of n: the integer m satisfying
// m*m <= n < (m+1)*(m+1). It fails if n is negative.
//
// The iteration is a bisection on the invariant lo <= sqrt(n) <= hi with
// lo = n/hi. hi starts at 2^((bitlen(n)+1)/2), which is always an
// over-estimate, and strictly decreases until the window closes. Only
// floor division is used, so there is no rounding error at any operand
// size.
//
// Example:
//
//	m, _ := introot.Sqrt(big.NewInt(121))
//	// m = 11
func Sqrt(n *big.Int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("introot: Sqrt of negative %s: %w", n, numtheory.ErrInvalidArgument)
	}
	if n.Cmp(one) <= 0 {
		return new(big.Int).Set(n), nil
	}

	hi := new(big.Int).Lsh(one, uint(n.BitLen()+1)/2)
	lo := new(big.Int).Quo(n, hi)
	for lo.Cmp(hi) < 0 {
		hi.Add(hi, lo)
		hi.Rsh(hi, 1)
		lo.Quo(n, hi)
	}
	return hi, nil
}

// Root returns the floor k-th root of n: the integer m satisfying
// m^k <= n < (m+1)^k. It fails if n is negative or k < 1.
//
// This is Newton's method for t^k - n adapted to exact integers: start
// from the over-estimate 2^(bitlen(n)/k + 1) and iterate
//
//	y = ((k-1)*x + n/x^(k-1)) / k
//
// The sequence decreases monotonically and the first non-decrease marks
// the answer. Convergence is quadratic, O(log bitlen(n)) iterations, each
// costing one exponentiation and one division of magnitude comparable
// to n.
//
// Example:
//
//	m, _ := introot.Root(big.NewInt(100), 3)
//	// m = 4
func Root(n *big.Int, k int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("introot: Root of negative %s: %w", n, numtheory.ErrInvalidArgument)
	}
	if k < 1 {
		return nil, fmt.Errorf("introot: Root degree %d < 1: %w", k, numtheory.ErrInvalidArgument)
	}
	if k == 1 || n.Cmp(one) <= 0 {
		return new(big.Int).Set(n), nil
	}

	x := new(big.Int).Lsh(one, uint(n.BitLen()/k+1))
	km1 := big.NewInt(int64(k - 1))
	kk := big.NewInt(int64(k))
	y := new(big.Int)
	for {
		// y = ((k-1)*x + n/x^(k-1)) / k
		y.Quo(n, bigmul.Pow(x, k-1))
		y.Add(y, new(big.Int).Mul(km1, x))
		y.Quo(y, kk)
		if y.Cmp(x) >= 0 {
			return x, nil
		}
		x.Set(y)
	}
}

// Sqrt64 is Sqrt for machine words. It uses the same division-only
// bisection, so no intermediate product can overflow. It fails if n is
// negative.
func Sqrt64(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("introot: Sqrt64 of negative %d: %w", n, numtheory.ErrInvalidArgument)
	}
	if n <= 1 {
		return n, nil
	}

	hi := int64(1) << ((bits.Len64(uint64(n)) + 1) / 2)
	lo := n / hi
	for lo < hi {
		hi = (hi + lo) >> 1
		lo = n / hi
	}
	return hi, nil
}
