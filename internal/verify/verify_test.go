package verify

import (
	"math"
	"testing"

	"github.com/agbru/u128calc/internal/uint128"
)

// brokenMultiplier returns a wrong product for one specific operand pair,
// to exercise the mismatch reporting path.
type brokenMultiplier struct {
	badA, badB uint64
}

func (brokenMultiplier) Name() string { return "broken" }

func (m brokenMultiplier) Product(a, b uint64) uint128.Uint128 {
	p := uint128.Mul64(a, b)
	if a == m.badA && b == m.badB {
		return p.Xor(uint128.One)
	}
	return p
}

// TestBoundaryCases verifies the deterministic corpus contains the required
// corner pairs.
func TestBoundaryCases(t *testing.T) {
	cases := BoundaryCases()

	required := []Case{
		{0, 0},
		{1, 1},
		{1, math.MaxUint64},
		{math.MaxUint64, 1},
		{math.MaxUint64, math.MaxUint64},
		{1<<32 + 1, 1<<32 + 1},
	}

	for _, want := range required {
		found := false
		for _, c := range cases {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("boundary corpus is missing the pair (%#x, %#x)", want.A, want.B)
		}
	}
}

// TestRandomCasesDeterminism verifies that a seed fully determines the
// pseudo-random corpus.
func TestRandomCasesDeterminism(t *testing.T) {
	a := RandomCases(100, 7)
	b := RandomCases(100, 7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("case %d differs across runs with the same seed", i)
		}
	}

	c := RandomCases(100, 8)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced an identical corpus")
	}
}

// TestCorpusShape verifies the standard corpus is the random pairs followed
// by the boundary pairs.
func TestCorpusShape(t *testing.T) {
	corpus := Corpus(DefaultRandomCases, 1)
	want := DefaultRandomCases + len(BoundaryCases())
	if len(corpus) != want {
		t.Errorf("len(Corpus) = %d, want %d", len(corpus), want)
	}
	tail := corpus[DefaultRandomCases:]
	for i, c := range BoundaryCases() {
		if tail[i] != c {
			t.Errorf("corpus tail[%d] = (%#x, %#x), want boundary pair (%#x, %#x)",
				i, tail[i].A, tail[i].B, c.A, c.B)
		}
	}
}

// TestRunAllPass verifies a clean run over the full standard corpus: the
// portable strategy must agree with the hardware reference on every case.
func TestRunAllPass(t *testing.T) {
	report := Run(uint128.PortableMultiplier{}, uint128.HardwareMultiplier{}, Corpus(DefaultRandomCases, 42))

	if !report.Passed() {
		t.Fatalf("verification failed %d of %d cases; first: %+v",
			report.Failures(), report.Cases, report.Mismatches[0])
	}
	if report.Cases != DefaultRandomCases+len(BoundaryCases()) {
		t.Errorf("report.Cases = %d, want %d", report.Cases, DefaultRandomCases+len(BoundaryCases()))
	}
	if report.Subject != "portable" || report.Reference != "hardware" {
		t.Errorf("report names = (%s, %s), want (portable, hardware)", report.Subject, report.Reference)
	}
}

// TestRunReportsMismatch verifies that a wrong product is recorded with its
// operands and both computed values, and that the run continues past it.
func TestRunReportsMismatch(t *testing.T) {
	corpus := BoundaryCases()
	bad := corpus[4] // max × max
	subject := brokenMultiplier{badA: bad.A, badB: bad.B}

	report := Run(subject, uint128.HardwareMultiplier{}, corpus)

	if report.Failures() != 1 {
		t.Fatalf("Failures() = %d, want 1", report.Failures())
	}
	m := report.Mismatches[0]
	if m.A != bad.A || m.B != bad.B {
		t.Errorf("mismatch operands = (%#x, %#x), want (%#x, %#x)", m.A, m.B, bad.A, bad.B)
	}
	if m.Got == m.Want {
		t.Error("mismatch should record differing products")
	}
	if m.Want != uint128.Mul64(bad.A, bad.B) {
		t.Errorf("mismatch reference product = %v, want %v", m.Want.Hex(), uint128.Mul64(bad.A, bad.B).Hex())
	}
	if report.Cases != len(corpus) {
		t.Errorf("run stopped early: checked %d of %d cases", report.Cases, len(corpus))
	}
}

// TestCheckCase verifies the single-case comparison helper.
func TestCheckCase(t *testing.T) {
	got, want, ok := CheckCase(uint128.PortableMultiplier{}, uint128.HardwareMultiplier{}, Case{A: 3, B: 5})
	if !ok || got != want || !got.Equals64(15) {
		t.Errorf("CheckCase(3, 5) = (%v, %v, %v), want agreeing products of 15", got.Hex(), want.Hex(), ok)
	}
}
