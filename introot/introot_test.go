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
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"modernc.org/mathutil"

	"github.com/go-numtheory/numtheory"
)

func TestSqrtScenarios(t *testing.T) {
	tests := []struct {
		n, want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{10, 3},
		{15, 3},
		{16, 4},
		{121, 11},
		{1 << 40, 1 << 20},
		{(1 << 40) - 1, (1 << 20) - 1},
	}
	for _, tt := range tests {
		got, err := Sqrt(big.NewInt(tt.n))
		if err != nil {
			t.Fatalf("Sqrt(%d): %v", tt.n, err)
		}
		if got.Int64() != tt.want {
			t.Errorf("Sqrt(%d) = %v, want %d", tt.n, got, tt.want)
		}
	}
}

func TestRootScenarios(t *testing.T) {
	tests := []struct {
		n    int64
		k    int
		want int64
	}{
		{0, 5, 0},
		{1, 7, 1},
		{10, 2, 3},
		{121, 2, 11},
		{100, 3, 4},
		{27, 3, 3},
		{26, 3, 2},
		{1024, 10, 2},
		{1023, 10, 1},
		{243, 5, 3},
		{7, 1, 7},
	}
	for _, tt := range tests {
		got, err := Root(big.NewInt(tt.n), tt.k)
		if err != nil {
			t.Fatalf("Root(%d, %d): %v", tt.n, tt.k, err)
		}
		if got.Int64() != tt.want {
			t.Errorf("Root(%d, %d) = %v, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

// The defining property: m^k <= n < (m+1)^k.
func checkRootContract(t *testing.T, n *big.Int, k int, m *big.Int) {
	t.Helper()
	kk := big.NewInt(int64(k))
	low := new(big.Int).Exp(m, kk, nil)
	high := new(big.Int).Exp(new(big.Int).Add(m, big.NewInt(1)), kk, nil)
	if low.Cmp(n) > 0 || high.Cmp(n) <= 0 {
		t.Errorf("Root(%v, %d) = %v violates m^k <= n < (m+1)^k", n, k, m)
	}
}

func TestRootContractRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		bits := 1 + rng.Intn(512)
		n := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
		k := 2 + rng.Intn(9)
		m, err := Root(n, k)
		if err != nil {
			t.Fatalf("Root(%v, %d): %v", n, k, err)
		}
		checkRootContract(t, n, k, m)
	}
}

func TestSqrtAgainstMathutil(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		bits := 1 + rng.Intn(1024)
		n := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
		got, err := Sqrt(n)
		if err != nil {
			t.Fatalf("Sqrt(%v): %v", n, err)
		}
		if want := mathutil.SqrtBig(n); got.Cmp(want) != 0 {
			t.Fatalf("Sqrt(%v) = %v, mathutil says %v", n, got, want)
		}
	}
}

// Operands with thousands of decimal digits must come back exact: floats
// would have lost the low bits long before this size.
func TestRootHugeOperands(t *testing.T) {
	// m = 10^2000 + 12345, n = m^2 + m. Floor sqrt of n is exactly m.
	m := new(big.Int).Exp(big.NewInt(10), big.NewInt(2000), nil)
	m.Add(m, big.NewInt(12345))
	n := new(big.Int).Mul(m, m)
	n.Add(n, m)

	got, err := Sqrt(n)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(m) != 0 {
		t.Fatal("Sqrt lost precision on a 4000-digit operand")
	}

	// Same idea for a fifth root: n = m^5 + 1 has floor root exactly m.
	m5 := new(big.Int).Exp(big.NewInt(10), big.NewInt(800), nil)
	m5.Add(m5, big.NewInt(99))
	n5 := new(big.Int).Exp(m5, big.NewInt(5), nil)
	n5.Add(n5, big.NewInt(1))

	got5, err := Root(n5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got5.Cmp(m5) != 0 {
		t.Fatal("Root lost precision on a 4000-digit operand")
	}
}

func TestRootDegenerate(t *testing.T) {
	for k := 1; k <= 10; k++ {
		for n := int64(0); n <= 1; n++ {
			got, err := Root(big.NewInt(n), k)
			if err != nil {
				t.Fatalf("Root(%d, %d): %v", n, k, err)
			}
			if got.Int64() != n {
				t.Errorf("Root(%d, %d) = %v, want %d", n, k, got, n)
			}
		}
	}
}

func TestInvalidArguments(t *testing.T) {
	if _, err := Sqrt(big.NewInt(-1)); !errors.Is(err, numtheory.ErrInvalidArgument) {
		t.Errorf("Sqrt(-1) err = %v, want ErrInvalidArgument", err)
	}
	if _, err := Root(big.NewInt(-5), 3); !errors.Is(err, numtheory.ErrInvalidArgument) {
		t.Errorf("Root(-5, 3) err = %v, want ErrInvalidArgument", err)
	}
	if _, err := Root(big.NewInt(5), 0); !errors.Is(err, numtheory.ErrInvalidArgument) {
		t.Errorf("Root(5, 0) err = %v, want ErrInvalidArgument", err)
	}
	if _, err := Sqrt64(-1); !errors.Is(err, numtheory.ErrInvalidArgument) {
		t.Errorf("Sqrt64(-1) err = %v, want ErrInvalidArgument", err)
	}
}

func TestSqrt64AgreesWithSqrt(t *testing.T) {
	cases := []int64{0, 1, 2, 3, 4, 5, 24, 25, 26, 99, 100, 1 << 31, (1 << 31) - 1,
		1<<62 - 1, 1 << 62, 1<<63 - 1}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		cases = append(cases, rng.Int63())
	}
	for _, n := range cases {
		got, err := Sqrt64(n)
		if err != nil {
			t.Fatalf("Sqrt64(%d): %v", n, err)
		}
		want, err := Sqrt(big.NewInt(n))
		if err != nil {
			t.Fatal(err)
		}
		if got != want.Int64() {
			t.Fatalf("Sqrt64(%d) = %d, Sqrt says %v", n, got, want)
		}
	}
}

func TestSqrtIdempotent(t *testing.T) {
	n := big.NewInt(1 << 50)
	a, _ := Sqrt(n)
	b, _ := Sqrt(n)
	if a.Cmp(b) != 0 {
		t.Fatal("repeated Sqrt calls disagree")
	}
	if n.Int64() != 1<<50 {
		t.Fatal("Sqrt modified its argument")
	}
}

func BenchmarkSqrt10kDigits(b *testing.B) {
	n := new(big.Int).Exp(big.NewInt(10), big.NewInt(10000), nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sqrt(n); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRootK5(b *testing.B) {
	n := new(big.Int).Exp(big.NewInt(10), big.NewInt(5000), nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Root(n, 5); err != nil {
			b.Fatal(err)
		}
	}
}
