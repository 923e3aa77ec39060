// Command generate-golden emits a golden corpus of 64x64-bit products
// computed with math/big as an independent oracle. The output file is
// consumed by the multiplier verification tests to cross-check both
// the hardware and the portable strategies against an implementation
// that shares no code with either.
//
// Usage:
//
//	generate-golden [-output FILE] [-random N] [-seed S]
//
// Each output line has the form:
//
//	<a hex> <b hex> <product hex>
//
// with all values zero-padded: 16 digits for the operands, 32 for the
// product.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/agbru/u128calc/internal/verify"
)

func main() {
	output := flag.String("output", "internal/uint128/testdata/products_golden.txt", "destination file")
	random := flag.Int("random", 256, "number of random cases to include")
	seed := flag.Int64("seed", 1, "seed for the random cases")
	flag.Parse()

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}

	cases := verify.Corpus(*random, *seed)
	if err := writeGolden(f, cases); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d cases to %s\n", len(cases), *output)
}

// writeGolden writes one line per case with the oracle product.
func writeGolden(w io.Writer, cases []verify.Case) error {
	bw := bufio.NewWriter(w)
	for _, c := range cases {
		p := productBig(c.A, c.B)
		if _, err := fmt.Fprintf(bw, "%016x %016x %032x\n", c.A, c.B, p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// productBig computes a*b exactly using math/big. It is deliberately
// independent of the uint128 package so the golden file can catch a
// bug shared by both multiplier strategies.
func productBig(a, b uint64) *big.Int {
	x := new(big.Int).SetUint64(a)
	y := new(big.Int).SetUint64(b)
	return x.Mul(x, y)
}
