package orchestration

import (
	"fmt"

	"github.com/agbru/u128calc/internal/config"
	"github.com/agbru/u128calc/internal/uint128"
)

// SelectMultiplier resolves the configured multiplication strategy to a
// concrete implementation.
//
// Parameters:
//   - cfg: The application configuration containing the strategy selection.
//
// Returns:
//   - uint128.Multiplier: The selected implementation.
//   - error: A descriptive error for unknown strategy names.
func SelectMultiplier(cfg config.AppConfig) (uint128.Multiplier, error) {
	switch cfg.Strategy {
	case "auto", "hardware":
		return uint128.HardwareMultiplier{}, nil
	case "portable":
		return uint128.PortableMultiplier{}, nil
	default:
		return nil, fmt.Errorf("unknown multiplication strategy %q", cfg.Strategy)
	}
}

// VerificationPair returns the subject and reference multipliers for a
// cross-verification run. The portable implementation is always the subject:
// the hardware-backed multiplier compiles to a single instruction pair and
// serves as the trusted reference.
func VerificationPair() (subject, reference uint128.Multiplier) {
	return uint128.PortableMultiplier{}, uint128.HardwareMultiplier{}
}
