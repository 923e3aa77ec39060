package uint128

import "math/bits"

// Mul64 returns the exact 128-bit product of two 64-bit unsigned integers.
// The result is never reduced: no bits are lost.
//
// This is the hardware path. math/bits.Mul64 compiles to the platform's
// double-width multiply instruction where one exists and to efficient
// generated code everywhere else, so callers never need to select a strategy
// themselves. The portable limb algorithm (mul64Portable) remains available
// as the universal fallback and as the verification subject.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{lo: lo, hi: hi}
}

// mul64Portable computes the exact 128-bit product of a and b using only
// 64-bit arithmetic: no intrinsic and no integer type wider than 64 bits.
//
// Each operand is split into two 32-bit limbs (a = a1:a0, b = b1:b0) and four
// 32×32→64 partial products are formed. Each partial product fits exactly in
// 64 bits since (2³²−1)² < 2⁶⁴. The middle terms overlap bits [32,95] of the
// result, so their carries are propagated through two 64-bit accumulators:
//
//	x = high32(p00) + low32(p01) + low32(p10)   // bits [32,63] + carry out
//	y = high32(p01) + high32(p10) + low32(p11) + high32(x)
//
// x sums three values below 2³², so it cannot overflow 64 bits; y is bounded
// by 3·(2³²−1)+2 and cannot overflow either. The high word uses + rather
// than | for the final term because y may exceed 2³² and those excess bits
// are carries into bits [96,127].
func mul64Portable(a, b uint64) Uint128 {
	const mask32 = 0xFFFFFFFF

	a0, a1 := a&mask32, a>>32
	b0, b1 := b&mask32, b>>32

	p00 := a0 * b0
	p01 := a0 * b1
	p10 := a1 * b0
	p11 := a1 * b1

	x := p00>>32 + p01&mask32 + p10&mask32
	y := p01>>32 + p10>>32 + p11&mask32 + x>>32

	return Uint128{
		lo: p00&mask32 | x<<32,
		hi: y + (p11>>32)<<32,
	}
}

// Multiplier is the strategy surface for the 64×64→128 multiply. All
// implementations must agree bit-for-bit for every input pair; the choice
// between them is a performance decision that is transparent to callers.
type Multiplier interface {
	// Name returns the human-readable identifier of the strategy.
	Name() string
	// Product returns the exact 128-bit product of a and b.
	Product(a, b uint64) Uint128
}

// HardwareMultiplier computes products through math/bits.Mul64, the
// compiler-intrinsic double-width multiply. This is the preferred strategy.
type HardwareMultiplier struct{}

// Name returns the strategy identifier.
func (HardwareMultiplier) Name() string { return "hardware" }

// Product returns the exact 128-bit product of a and b.
func (HardwareMultiplier) Product(a, b uint64) Uint128 { return Mul64(a, b) }

// PortableMultiplier computes products with the 32-bit-limb algorithm. It is
// the mandatory universal fallback and the subject of the verification
// harness, which establishes its agreement with HardwareMultiplier.
type PortableMultiplier struct{}

// Name returns the strategy identifier.
func (PortableMultiplier) Name() string { return "portable" }

// Product returns the exact 128-bit product of a and b.
func (PortableMultiplier) Product(a, b uint64) Uint128 { return mul64Portable(a, b) }

// Verify interface compliance.
var (
	_ Multiplier = HardwareMultiplier{}
	_ Multiplier = PortableMultiplier{}
)

// DefaultMultiplier returns the preferred multiplication strategy.
func DefaultMultiplier() Multiplier { return HardwareMultiplier{} }

// Multipliers returns every available strategy, preferred first. The
// verification harness iterates this list when comparing implementations.
func Multipliers() []Multiplier {
	return []Multiplier{HardwareMultiplier{}, PortableMultiplier{}}
}
