// Package uint128 implements a fixed-width 128-bit unsigned integer with
// wraparound (modulo 2¹²⁸) arithmetic.
//
// A Uint128 is an ordered pair of 64-bit words, lo (bits 0–63) and hi
// (bits 64–127). Values are plain scalars: they are freely copyable, carry no
// hidden state, and every operation is a pure function of its operands. All
// arithmetic wraps silently at 2¹²⁸, matching the behavior of Go's native
// fixed-width unsigned types. Division, modulo, and subtraction are
// deliberately not provided.
package uint128

// Uint128 holds the lo and hi 64-bit words of a 128-bit unsigned integer.
// The zero value is ready to use and equals Zero.
type Uint128 struct {
	lo, hi uint64
}

// Named constants of the value domain.
var (
	// Zero is the additive identity (0, 0).
	Zero = Uint128{}
	// One is the multiplicative identity (1, 0).
	One = Uint128{lo: 1}
	// Max is the largest representable value, 2¹²⁸ − 1.
	Max = Uint128{lo: ^uint64(0), hi: ^uint64(0)}
)

// New creates a Uint128 from an explicit (lo, hi) word pair.
//
// Parameters:
//   - lo: Bits 0–63 of the value.
//   - hi: Bits 64–127 of the value.
//
// Returns:
//   - Uint128: The value hi·2⁶⁴ + lo.
func New(lo, hi uint64) Uint128 {
	return Uint128{lo: lo, hi: hi}
}

// From64 creates a Uint128 from a single 64-bit word. The high word is
// implicitly zero.
func From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

// Raw returns the lo and hi words of u. See New for the counterpart.
func (u Uint128) Raw() (lo, hi uint64) {
	return u.lo, u.hi
}

// Lo returns bits 0–63 of u.
func (u Uint128) Lo() uint64 { return u.lo }

// Hi returns bits 64–127 of u.
func (u Uint128) Hi() uint64 { return u.hi }

// IsZero reports whether u == Zero.
func (u Uint128) IsZero() bool {
	return u == Zero
}

// Equals reports whether u == v. Uint128 values can also be compared directly
// with ==; equality is field-wise on (lo, hi).
func (u Uint128) Equals(v Uint128) bool {
	return u == v
}

// Equals64 reports whether u equals the 64-bit word v.
func (u Uint128) Equals64(v uint64) bool {
	return u.lo == v && u.hi == 0
}

// Cmp compares u and v and returns:
//
//	-1 if u <  v
//	 0 if u == v
//	+1 if u >  v
//
// Ordering is lexicographic on (hi, lo): the high word is the primary key,
// so for example New(5, 0) < New(0, 1).
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u == v:
		return 0
	case u.hi < v.hi || (u.hi == v.hi && u.lo < v.lo):
		return -1
	default:
		return 1
	}
}

// Less reports whether u < v.
func (u Uint128) Less(v Uint128) bool {
	return u.hi < v.hi || (u.hi == v.hi && u.lo < v.lo)
}

// Greater reports whether u > v.
func (u Uint128) Greater(v Uint128) bool {
	return v.Less(u)
}

// Not returns ^u, the word-wise complement.
func (u Uint128) Not() Uint128 {
	return Uint128{lo: ^u.lo, hi: ^u.hi}
}

// And returns u & v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{lo: u.lo & v.lo, hi: u.hi & v.hi}
}

// And64 returns u & v, where v occupies the low word only.
func (u Uint128) And64(v uint64) Uint128 {
	return Uint128{lo: u.lo & v}
}

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{lo: u.lo | v.lo, hi: u.hi | v.hi}
}

// Or64 returns u | v, where v occupies the low word only.
func (u Uint128) Or64(v uint64) Uint128 {
	return Uint128{lo: u.lo | v, hi: u.hi}
}

// Xor returns u ^ v.
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{lo: u.lo ^ v.lo, hi: u.hi ^ v.hi}
}

// Xor64 returns u ^ v, where v occupies the low word only.
func (u Uint128) Xor64(v uint64) Uint128 {
	return Uint128{lo: u.lo ^ v, hi: u.hi}
}

// Lsh returns u << n. Any shift count is accepted: n == 0 is the identity and
// n >= 128 yields Zero. For 64 <= n < 128 the high word absorbs the low word
// before the remaining n­-64 bits are applied; that branch also guarantees the
// cross-boundary formula below never evaluates a shift by 64 on a 64-bit word.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{lo: 0, hi: u.lo << (n - 64)}
	default:
		return Uint128{
			lo: u.lo << n,
			hi: u.hi<<n | u.lo>>(64-n),
		}
	}
}

// Rsh returns u >> n. The shift semantics mirror Lsh: n == 0 is the identity,
// n >= 128 yields Zero, and 64 <= n < 128 moves the high word into the low
// word before shifting the remainder.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{lo: u.hi >> (n - 64), hi: 0}
	default:
		return Uint128{
			lo: u.lo>>n | u.hi<<(64-n),
			hi: u.hi >> n,
		}
	}
}

// Add returns u + v modulo 2¹²⁸. The carry out of the low word is detected by
// the wrap test (the new low word is numerically smaller than v.lo only when
// the addition wrapped) and propagated into the high word. Overflow out of
// bit 127 is discarded silently.
func (u Uint128) Add(v Uint128) Uint128 {
	lo := u.lo + v.lo
	carry := uint64(0)
	if lo < v.lo {
		carry = 1
	}
	return Uint128{lo: lo, hi: u.hi + v.hi + carry}
}

// Add64 returns u + v modulo 2¹²⁸, where v occupies the low word only.
func (u Uint128) Add64(v uint64) Uint128 {
	lo := u.lo + v
	hi := u.hi
	if lo < v {
		hi++
	}
	return Uint128{lo: lo, hi: hi}
}

// Mul64 returns u · v modulo 2¹²⁸, where v is a single 64-bit word. The
// product of the low word is kept in full; the product of the high word
// contributes only its low 64 bits shifted into the high word, because its
// upper half represents bits at or above 2¹²⁸.
func (u Uint128) Mul64(v uint64) Uint128 {
	pLo := Mul64(u.lo, v)
	pHi := Mul64(u.hi, v)
	return pLo.Add(Uint128{hi: pHi.lo})
}

// Mul returns u · v modulo 2¹²⁸. Three cross products are summed: lo·lo in
// full, and the low halves of lo·hi and hi·lo shifted into the high word. The
// hi·hi term would contribute only to bits at or above 2¹²⁸ and is never
// computed.
func (u Uint128) Mul(v Uint128) Uint128 {
	res := Mul64(u.lo, v.lo)
	res = res.Add(Uint128{hi: Mul64(u.lo, v.hi).lo})
	res = res.Add(Uint128{hi: Mul64(u.hi, v.lo).lo})
	return res
}
