package uint128

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// HexLength is the length of the fixed-width hexadecimal form: "0x" followed
// by 32 hex digits.
const HexLength = 34

// Hex returns the fixed-width hexadecimal form of u: "0x" followed by the
// 16 lowercase, zero-padded hex digits of the high word and then of the low
// word. The result is always exactly HexLength characters.
func (u Uint128) Hex() string {
	return fmt.Sprintf("0x%016x%016x", u.hi, u.lo)
}

// String returns a decimal display form of u.
//
// When the high word is zero this is the exact decimal representation of the
// low word. When the high word is nonzero the form is "hi_lo", the decimal
// digits of each word joined by an underscore. That is a display convenience,
// not a base-10 conversion of the 128-bit value; use Format or AsBigInt for
// the mathematically correct rendering.
func (u Uint128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return strconv.FormatUint(u.hi, 10) + "_" + strconv.FormatUint(u.lo, 10)
}

// Format implements fmt.Formatter by delegating to the big.Int form of u,
// which renders the full 128-bit value correctly in any base.
func (u Uint128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// IntoBigInt writes the value of u into b, reusing b's storage.
func (u Uint128) IntoBigInt(b *big.Int) {
	b.SetUint64(u.hi)
	b.Lsh(b, 64)
	var lo big.Int
	lo.SetUint64(u.lo)
	b.Or(b, &lo)
}

// AsBigInt returns the value of u as a freshly allocated big.Int.
func (u Uint128) AsBigInt() *big.Int {
	var b big.Int
	u.IntoBigInt(&b)
	return &b
}

// FromBigInt creates a Uint128 from a big.Int. A negative input yields
// (Zero, false); an input of 128 bits or fewer converts exactly and sets
// exact to true; anything wider truncates to Max with exact set to false.
func FromBigInt(v *big.Int) (out Uint128, exact bool) {
	if v.Sign() < 0 {
		return Zero, false
	}
	if v.BitLen() > 128 {
		return Max, false
	}
	var hi big.Int
	hi.Rsh(v, 64)
	return Uint128{lo: v.Uint64(), hi: hi.Uint64()}, true
}

// FromString parses s as a Uint128. Decimal strings and "0x"-prefixed
// hexadecimal strings are accepted; values wider than 128 bits are rejected.
func FromString(s string) (Uint128, error) {
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	b, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Zero, fmt.Errorf("uint128: invalid number %q", s)
	}
	if b.Sign() < 0 {
		return Zero, fmt.Errorf("uint128: negative number %q", s)
	}
	out, exact := FromBigInt(b)
	if !exact {
		return Zero, fmt.Errorf("uint128: %q overflows 128 bits", s)
	}
	return out, nil
}
