package uint128

import (
	"fmt"
	"math"
	"math/big"
	"testing"
)

// TestHex verifies the fixed-width hexadecimal form: 34 characters, lowercase,
// zero-padded, high word first.
func TestHex(t *testing.T) {
	tests := []struct {
		name string
		u    Uint128
		want string
	}{
		{"zero", Zero, "0x00000000000000000000000000000000"},
		{"one", One, "0x00000000000000000000000000000001"},
		{"max", Max, "0xffffffffffffffffffffffffffffffff"},
		{"two word value", New(0x2a, 0x10), "0x0000000000000010000000000000002a"},
		{"one shl 100 plus 42", One.Lsh(100).Add64(42), "0x0000001000000000000000000000002a"},
		{"hi only", New(0, 1), "0x00000000000000010000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.u.Hex()
			if got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
			if len(got) != HexLength {
				t.Errorf("len(Hex()) = %d, want %d", len(got), HexLength)
			}
		})
	}
}

// TestString verifies the decimal display form, including the documented
// "hi_lo" placeholder for values with a nonzero high word.
func TestString(t *testing.T) {
	tests := []struct {
		name string
		u    Uint128
		want string
	}{
		{"zero", Zero, "0"},
		{"low word only", From64(18446744073709551615), "18446744073709551615"},
		{"nonzero hi uses separator", New(42, 1), "1_42"},
		{"max", Max, "18446744073709551615_18446744073709551615"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.u.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFormat verifies that fmt verbs render the mathematically correct
// 128-bit value through the big.Int fallback.
func TestFormat(t *testing.T) {
	// 2^64 = 18446744073709551616
	u := New(0, 1)
	if got := fmt.Sprintf("%d", u); got != "18446744073709551616" {
		t.Errorf("%%d = %q, want %q", got, "18446744073709551616")
	}
	if got := fmt.Sprintf("%x", u); got != "10000000000000000" {
		t.Errorf("%%x = %q, want %q", got, "10000000000000000")
	}
}

// TestBigIntRoundTrip verifies conversion to and from math/big.
func TestBigIntRoundTrip(t *testing.T) {
	values := []Uint128{
		Zero, One, Max,
		From64(math.MaxUint64),
		New(0, 1),
		New(0x2a, 0x10),
		New(math.MaxUint64, 1),
	}

	for _, u := range values {
		got, exact := FromBigInt(u.AsBigInt())
		if !exact || got != u {
			t.Errorf("FromBigInt(AsBigInt(%v)) = (%v, %v), want (%v, true)", u.Hex(), got.Hex(), exact, u.Hex())
		}
	}

	t.Run("negative is rejected", func(t *testing.T) {
		got, exact := FromBigInt(big.NewInt(-1))
		if exact || got != Zero {
			t.Errorf("FromBigInt(-1) = (%v, %v), want (Zero, false)", got.Hex(), exact)
		}
	})

	t.Run("overflow truncates to Max", func(t *testing.T) {
		got, exact := FromBigInt(mod128) // 2^128, one past Max
		if exact || got != Max {
			t.Errorf("FromBigInt(2^128) = (%v, %v), want (Max, false)", got.Hex(), exact)
		}
	})
}

// TestFromString verifies decimal and hexadecimal parsing, including the
// rejection of malformed and overflowing inputs.
func TestFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Uint128
		wantErr bool
	}{
		{"decimal", "42", From64(42), false},
		{"hex lowercase", "0x2a", From64(42), false},
		{"hex uppercase prefix", "0X2A", From64(42), false},
		{"full width hex", "0x0000000000000010000000000000002a", New(0x2a, 0x10), false},
		{"decimal above 64 bits", "18446744073709551616", New(0, 1), false},
		{"empty", "", Zero, true},
		{"garbage", "12z4", Zero, true},
		{"negative", "-1", Zero, true},
		{"overflow", "0x1ffffffffffffffffffffffffffffffff", Zero, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromString(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromString(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("FromString(%q) = %v, want %v", tt.in, got.Hex(), tt.want.Hex())
			}
		})
	}
}

// TestHash verifies hash stability and equality for equal values, and basic
// dispersion between the two words.
func TestHash(t *testing.T) {
	t.Run("equal values hash equal", func(t *testing.T) {
		a, b := New(7, 9), New(7, 9)
		if a.Hash() != b.Hash() {
			t.Error("equal values must produce equal Hash")
		}
		if a.Sum64() != b.Sum64() {
			t.Error("equal values must produce equal Sum64")
		}
	})

	t.Run("repeated calls are stable", func(t *testing.T) {
		u := New(0xDEADBEEF, 0xCAFEBABE)
		h := u.Hash()
		s := u.Sum64()
		for i := 0; i < 10; i++ {
			if u.Hash() != h || u.Sum64() != s {
				t.Fatal("hash must be stable across calls")
			}
		}
	})

	t.Run("swapped words hash differently", func(t *testing.T) {
		// Not a contract, but the golden-ratio mix should separate these.
		if New(1, 2).Hash() == New(2, 1).Hash() {
			t.Error("Hash(1,2) == Hash(2,1): words are not being mixed")
		}
	})
}

// TestBytes verifies the little-endian byte codec.
func TestBytes(t *testing.T) {
	u := New(0x0807060504030201, 0x100F0E0D0C0B0A09)
	b := u.Bytes()
	for i := range b {
		if b[i] != byte(i+1) {
			t.Fatalf("Bytes()[%d] = %#x, want %#x", i, b[i], byte(i+1))
		}
	}
	if FromBytes(b) != u {
		t.Error("FromBytes(Bytes()) should round-trip")
	}
}
