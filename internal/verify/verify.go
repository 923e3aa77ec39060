// Package verify implements the multiplication self-test harness. It compares
// the portable 64×64→128 multiply strategy against the hardware reference over
// a corpus of pseudo-random and deterministic boundary operand pairs, and
// aggregates any mismatches into a report.
//
// A mismatch is a reportable discrepancy, never a fatal one: every case in the
// corpus runs to completion regardless of earlier failures.
package verify

import (
	"math"
	"math/rand"

	"github.com/agbru/u128calc/internal/uint128"
)

// DefaultRandomCases is the number of pseudo-random operand pairs in the
// standard corpus, matching the harness this package descends from.
const DefaultRandomCases = 10_000

// Case is a single pair of 64-bit operands to multiply.
type Case struct {
	A, B uint64
}

// Mismatch records one verification failure: the operand pair together with
// both computed products.
type Mismatch struct {
	Case
	// Got is the product computed by the strategy under test.
	Got uint128.Uint128
	// Want is the product computed by the reference strategy.
	Want uint128.Uint128
}

// Report aggregates the outcome of a verification run.
type Report struct {
	// Subject is the name of the strategy under test.
	Subject string
	// Reference is the name of the reference strategy.
	Reference string
	// Cases is the total number of operand pairs checked.
	Cases int
	// Mismatches holds one entry per failed case, in corpus order.
	Mismatches []Mismatch
}

// Failures returns the aggregate failure count of the run.
func (r Report) Failures() int { return len(r.Mismatches) }

// Passed reports whether every case in the corpus agreed bit-for-bit.
func (r Report) Passed() bool { return len(r.Mismatches) == 0 }

// BoundaryCases returns the deterministic corner cases: zeros, ones, maxima,
// and patterns chosen to stress carry propagation across the 32-bit limbs.
func BoundaryCases() []Case {
	return []Case{
		{0, 0},                                         // zero × zero
		{1, 1},                                         // small × small
		{1, math.MaxUint64},                            // 1 × max
		{math.MaxUint64, 1},                            // max × 1
		{math.MaxUint64, math.MaxUint64},               // max × max (full carry propagation)
		{1<<32 + 1, 1<<32 + 1},                         // cross-boundary pattern (2^32+1)^2
		{0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFD},       // near-max descending
		{0xFFFFFFFFFFFFFFFD, 0xFFFFFFFFFFFFFFFE},       // near-max ascending
		{0x00000000FFFFFFFF, 0x00000000FFFFFFFF},       // max low limbs
		{0xFFFFFFFF00000000, 0xFFFFFFFF00000000},       // max high limbs
		{0xAAAAAAAAAAAAAAAA, 0x5555555555555555},       // alternating bits
	}
}

// RandomCases returns n pseudo-random operand pairs drawn from the given
// seed. The same seed always yields the same corpus, which keeps failures
// reproducible in reports and regression runs.
func RandomCases(n int, seed int64) []Case {
	rng := rand.New(rand.NewSource(seed))
	cases := make([]Case, n)
	for i := range cases {
		cases[i] = Case{A: rng.Uint64(), B: rng.Uint64()}
	}
	return cases
}

// Corpus returns the standard verification corpus: n pseudo-random pairs
// followed by the deterministic boundary pairs.
func Corpus(n int, seed int64) []Case {
	return append(RandomCases(n, seed), BoundaryCases()...)
}

// CheckCase multiplies the operands of c with both strategies and reports
// whether the products agree. ok is true when all 128 bits match exactly.
func CheckCase(subject, reference uint128.Multiplier, c Case) (got, want uint128.Uint128, ok bool) {
	got = subject.Product(c.A, c.B)
	want = reference.Product(c.A, c.B)
	return got, want, got == want
}

// Run checks every case in the corpus and returns the aggregated report.
// Mismatches do not stop the run.
func Run(subject, reference uint128.Multiplier, corpus []Case) Report {
	report := Report{
		Subject:   subject.Name(),
		Reference: reference.Name(),
		Cases:     len(corpus),
	}
	for _, c := range corpus {
		if got, want, ok := CheckCase(subject, reference, c); !ok {
			report.Mismatches = append(report.Mismatches, Mismatch{Case: c, Got: got, Want: want})
		}
	}
	return report
}
