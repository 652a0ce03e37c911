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
	"math/big"

	"github.com/go-numtheory/numtheory"
	"github.com/go-numtheory/numtheory/introot"
)

var one = big.NewInt(1)

// Count returns Q(x), the number of squarefree integers in [1, x].
// Q(0) = 0. It fails if x is negative.
//
// Dispatch: bounds that fit a machine word run the bottom-up form on
// int64 arithmetic; anything larger falls back to the big.Int memoized
// recursion. Both produce identical counts.
//
// Example:
//
//	q, _ := sqfree.Count(big.NewInt(20))
//	// q = 13
func Count(x *big.Int) (*big.Int, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("sqfree: negative bound %s: %w", x, numtheory.ErrInvalidArgument)
	}
	if x.IsInt64() {
		q, err := CountDP(x.Int64())
		if err != nil {
			return nil, err
		}
		return big.NewInt(q), nil
	}
	return CountMemo(x)
}

// CountDP returns Q(x) by the bottom-up (dynamic-programming) form.
//
// The distinct-value set V(x) = {floor(x/k^2)} ∪ {0..sqrt(x)} is built in
// ascending order: the small tail 0..sqrt(x) directly, then the large
// values floor(x/k^2) for descending k (each exceeding sqrt(x), so values
// keep ascending). Every entry's table value is seeded to itself — exact
// for v <= 1, "no corrections yet" for the rest — and each value v then
// has table[floor(v/l^2)] subtracted for l from 2 to sqrt(v). Ascending
// order guarantees every referenced sub-argument is already final, so
// after its own corrections table[v] = Q(v).
func CountDP(x int64) (int64, error) {
	if x < 0 {
		return 0, fmt.Errorf("sqfree: negative bound %d: %w", x, numtheory.ErrInvalidArgument)
	}
	if x < 2 {
		return x, nil
	}

	root, err := introot.Sqrt64(x)
	if err != nil {
		return 0, err
	}

	// Large half first, while k^2 divides x down to something above the
	// small tail. k stays below x^(1/4), so this half is short.
	var large []int64 // descending as built
	for k := int64(1); x/(k*k) > root; k++ {
		large = append(large, x/(k*k))
	}

	values := make([]int64, 0, root+1+int64(len(large)))
	for v := int64(0); v <= root; v++ {
		values = append(values, v)
	}
	for i := len(large) - 1; i >= 0; i-- {
		values = append(values, large[i])
	}

	table := make(map[int64]int64, len(values))
	for _, v := range values {
		table[v] = v
	}
	for _, v := range values {
		sv, err := introot.Sqrt64(v)
		if err != nil {
			return 0, err
		}
		for l := int64(2); l <= sv; l++ {
			table[v] -= table[v/(l*l)]
		}
	}
	return table[x], nil
}

// CountMemo returns Q(x) by top-down memoized recursion on the identity
// Q(x) = x - sum Q(floor(x/k^2)). The cache is local to the call and
// passed explicitly down the recursion, so independent top-level calls
// share nothing. Keys are the bound's decimal digits.
//
// This is the only form with no machine-word ceiling; use it (or Count,
// which selects it automatically) when x exceeds int64.
func CountMemo(x *big.Int) (*big.Int, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("sqfree: negative bound %s: %w", x, numtheory.ErrInvalidArgument)
	}
	cache := make(map[string]*big.Int)
	q, err := countMemo(x, cache)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(q), nil
}

func countMemo(x *big.Int, cache map[string]*big.Int) (*big.Int, error) {
	if x.Cmp(one) <= 0 {
		return new(big.Int).Set(x), nil
	}
	key := x.String()
	if q, ok := cache[key]; ok {
		return q, nil
	}

	root, err := introot.Sqrt(x)
	if err != nil {
		return nil, err
	}
	q := new(big.Int).Set(x)
	arg := new(big.Int)
	sq := new(big.Int)
	for k := big.NewInt(2); k.Cmp(root) <= 0; k.Add(k, one) {
		sq.Mul(k, k)
		arg.Quo(x, sq)
		sub, err := countMemo(new(big.Int).Set(arg), cache)
		if err != nil {
			return nil, err
		}
		q.Sub(q, sub)
	}
	cache[key] = q
	return q, nil
}
