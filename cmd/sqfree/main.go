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

// Command sqfree is a thin CLI over the numtheory packages: squarefree
// counts, prime lists, and exact integer roots. All computation and
// validation live in the library; this binary only parses arguments and
// formats output.
package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-numtheory/numtheory/introot"
	"github.com/go-numtheory/numtheory/sieve"
	"github.com/go-numtheory/numtheory/sqfree"
)

var printer = message.NewPrinter(language.English)

func main() {
	root := &cobra.Command{
		Use:           "sqfree",
		Short:         "Squarefree counting, prime sieving, and integer roots",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(countCommand(), primesCommand(), rootCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// printCount groups digits for human-scale results and falls back to
// plain decimal beyond int64 (big.Int bypasses locale formatting).
func printCount(w io.Writer, v *big.Int) {
	if v.IsInt64() {
		printer.Fprintf(w, "%d\n", v.Int64())
		return
	}
	fmt.Fprintln(w, v.String())
}

func parseBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("not a decimal integer: %q", s)
	}
	return n, nil
}

func countCommand() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "count <x>",
		Short: "Count the squarefree integers in [1, x]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseBig(args[0])
			if err != nil {
				return err
			}
			switch method {
			case "auto":
				q, err := sqfree.Count(x)
				if err != nil {
					return err
				}
				printCount(cmd.OutOrStdout(), q)
			case "memo":
				q, err := sqfree.CountMemo(x)
				if err != nil {
					return err
				}
				printCount(cmd.OutOrStdout(), q)
			case "dp", "mobius":
				if !x.IsInt64() {
					return fmt.Errorf("method %q needs a bound within int64; use --method memo", method)
				}
				var q int64
				if method == "dp" {
					q, err = sqfree.CountDP(x.Int64())
				} else {
					q, err = sqfree.CountMobius(x.Int64())
				}
				if err != nil {
					return err
				}
				printCount(cmd.OutOrStdout(), big.NewInt(q))
			default:
				return fmt.Errorf("unknown method %q (want auto, dp, memo, or mobius)", method)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "auto", "counting form: auto, dp, memo, or mobius")
	return cmd
}

func primesCommand() *cobra.Command {
	var (
		segmented bool
		blockSize int
		workers   int
		countOnly bool
	)
	cmd := &cobra.Command{
		Use:   "primes <n>",
		Short: "List the primes up to n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("not an int64 bound: %q", args[0])
			}
			var primes []int64
			switch {
			case workers != 1:
				primes, err = sieve.SegmentedParallel(n, workers)
			case segmented:
				primes, err = sieve.SegmentedBlock(n, blockSize)
			default:
				primes, err = sieve.Primes(n)
			}
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if countOnly {
				printer.Fprintf(w, "%d\n", len(primes))
				return nil
			}
			for _, p := range primes {
				fmt.Fprintln(w, p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&segmented, "segmented", false, "sieve in fixed-size blocks (bounded memory)")
	cmd.Flags().IntVar(&blockSize, "block-size", sieve.DefaultBlockSize, "segment length for --segmented")
	cmd.Flags().IntVar(&workers, "workers", 1, "sieve blocks concurrently with this many workers (0 = all CPUs)")
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only how many primes were found")
	return cmd
}

func rootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "root <n> [k]",
		Short: "Exact floor k-th root of n (k defaults to 2)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseBig(args[0])
			if err != nil {
				return err
			}
			k := 2
			if len(args) == 2 {
				k, err = strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("not an integer degree: %q", args[1])
				}
			}
			m, err := introot.Root(n, k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.String())
			return nil
		},
	}
}
