package uint128

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestMultipliers_GoldenCorpus checks both strategies against the checked-in
// product corpus, which is produced by an independent math/big oracle.
// Regenerate with: go run ./cmd/generate-golden -random 0
func TestMultipliers_GoldenCorpus(t *testing.T) {
	path := filepath.Join("testdata", "products_golden.txt")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open golden corpus: %v", err)
	}
	defer f.Close()

	multipliers := []Multiplier{HardwareMultiplier{}, PortableMultiplier{}}

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			t.Fatalf("line %d: expected 3 fields, got %d", lineNo, len(fields))
		}

		a := parseHex64(t, lineNo, fields[0])
		b := parseHex64(t, lineNo, fields[1])
		want := parseHex128(t, lineNo, fields[2])

		for _, m := range multipliers {
			if got := m.Product(a, b); got != want {
				t.Errorf("line %d: %s.Product(%#x, %#x) = %s, want %s",
					lineNo, m.Name(), a, b, got.Hex(), want.Hex())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("read golden corpus: %v", err)
	}
	if lineNo == 0 {
		t.Fatal("golden corpus is empty")
	}
}

func parseHex64(t *testing.T, line int, s string) uint64 {
	t.Helper()
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		t.Fatalf("line %d: bad operand %q: %v", line, s, err)
	}
	return v
}

func parseHex128(t *testing.T, line int, s string) Uint128 {
	t.Helper()
	if len(s) != 32 {
		t.Fatalf("line %d: product %q is not 32 hex digits", line, s)
	}
	hi := parseHex64(t, line, s[:16])
	lo := parseHex64(t, line, s[16:])
	return New(lo, hi)
}
