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
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-numtheory/numtheory"
	"github.com/go-numtheory/numtheory/introot"
)

// DefaultBlockSize is the segment length used by Segmented and
// SegmentedParallel. 64K flags keep a block inside L1/L2 cache; the value
// is a constant deliberately independent of the bound.
const DefaultBlockSize = 1 << 16

// Segmented returns all primes <= n in increasing order, identical to
// Primes, but with working memory bounded by O(sqrt(n) + DefaultBlockSize)
// instead of O(n).
func Segmented(n int64) ([]int64, error) {
	return SegmentedBlock(n, DefaultBlockSize)
}

// SegmentedBlock is Segmented with an explicit block size. It fails if n
// is negative or blockSize < 1.
//
// The base primes up to sqrt(n) are sieved first with the bounded form.
// Each block [low, high] then gets its own flag array: for every base
// prime p, multiples of p inside the block are struck starting at
// max(p*p, the smallest multiple of p that is >= low). Survivors, offset
// by low, are the block's primes.
func SegmentedBlock(n int64, blockSize int) ([]int64, error) {
	if err := checkSegmentArgs(n, blockSize); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, nil
	}

	base, root, err := basePrimes(n)
	if err != nil {
		return nil, err
	}

	// root < n for every n >= 2, so (root, n] is never empty.
	primes := append(make([]int64, 0, guessPrimeCount(n)), base...)
	bs := int64(blockSize)
	for low := root + 1; low <= n; low += bs {
		high := low + bs - 1
		if high > n {
			high = n
		}
		primes = appendBlockPrimes(primes, low, high, base)
	}
	return primes, nil
}

// SegmentedParallel is Segmented with blocks sieved concurrently by at
// most workers goroutines (GOMAXPROCS when workers < 1). Every block owns
// its flag array and bookkeeping, so blocks never share mutable state; the
// per-block results are concatenated in block order, keeping the output
// identical to the sequential forms.
func SegmentedParallel(n int64, workers int) ([]int64, error) {
	if err := checkSegmentArgs(n, DefaultBlockSize); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, nil
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	base, root, err := basePrimes(n)
	if err != nil {
		return nil, err
	}

	const bs = int64(DefaultBlockSize)
	span := n - root // candidates in (root, n]
	blocks := int((span + bs - 1) / bs)
	results := make([][]int64, blocks)

	var g errgroup.Group
	g.SetLimit(workers)
	for b := 0; b < blocks; b++ {
		b := b
		low := root + 1 + int64(b)*bs
		high := low + bs - 1
		if high > n {
			high = n
		}
		g.Go(func() error {
			results[b] = appendBlockPrimes(nil, low, high, base)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	primes := append(make([]int64, 0, guessPrimeCount(n)), base...)
	for _, r := range results {
		primes = append(primes, r...)
	}
	return primes, nil
}

func checkSegmentArgs(n int64, blockSize int) error {
	if n < 0 {
		return fmt.Errorf("sieve: negative bound %d: %w", n, numtheory.ErrInvalidArgument)
	}
	if blockSize < 1 {
		return fmt.Errorf("sieve: block size %d < 1: %w", blockSize, numtheory.ErrInvalidArgument)
	}
	return nil
}

// basePrimes sieves the primes up to sqrt(n) with the bounded form. Those
// are both part of the answer and the strike list for every later block.
func basePrimes(n int64) ([]int64, int64, error) {
	root, err := introot.Sqrt64(n)
	if err != nil {
		return nil, 0, err
	}
	base, err := Primes(root)
	if err != nil {
		return nil, 0, err
	}
	return base, root, nil
}

// appendBlockPrimes sieves the closed interval [low, high] against the
// base primes and appends the survivors to dst. low must exceed 1 and
// every prime factor below or equal to sqrt(high) must appear in base.
func appendBlockPrimes(dst []int64, low, high int64, base []int64) []int64 {
	composite := make([]bool, high-low+1)
	for _, p := range base {
		// First multiple of p inside the block, but never below p*p:
		// smaller multiples were struck by a smaller prime (or are p
		// itself).
		start := p * p
		if start < low {
			start = ((low + p - 1) / p) * p
		}
		for m := start; m <= high; m += p {
			composite[m-low] = true
		}
	}
	for v := low; v <= high; v++ {
		if !composite[v-low] {
			dst = append(dst, v)
		}
	}
	return dst
}
