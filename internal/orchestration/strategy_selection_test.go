package orchestration

import (
	"testing"

	"github.com/agbru/u128calc/internal/config"
	"github.com/agbru/u128calc/internal/uint128"
)

func TestSelectMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		wantName string
		wantErr  bool
	}{
		{"auto resolves to hardware", "auto", "hardware", false},
		{"hardware", "hardware", "hardware", false},
		{"portable", "portable", "portable", false},
		{"unknown", "quantum", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := SelectMultiplier(config.AppConfig{Strategy: tt.strategy})
			if (err != nil) != tt.wantErr {
				t.Fatalf("SelectMultiplier() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if m.Name() != tt.wantName {
				t.Errorf("selected multiplier %q, want %q", m.Name(), tt.wantName)
			}
		})
	}
}

func TestSelectedMultiplierProducesCorrectProducts(t *testing.T) {
	for _, strategy := range []string{"auto", "hardware", "portable"} {
		m, err := SelectMultiplier(config.AppConfig{Strategy: strategy})
		if err != nil {
			t.Fatalf("SelectMultiplier(%q) error = %v", strategy, err)
		}
		got := m.Product(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF)
		want := uint128.New(1, 0xFFFFFFFFFFFFFFFE)
		if got != want {
			t.Errorf("%s: max*max = %v, want %v", strategy, got, want)
		}
	}
}

func TestVerificationPair(t *testing.T) {
	subject, reference := VerificationPair()
	if subject.Name() != "portable" {
		t.Errorf("subject = %q, want %q", subject.Name(), "portable")
	}
	if reference.Name() != "hardware" {
		t.Errorf("reference = %q, want %q", reference.Name(), "hardware")
	}
}
