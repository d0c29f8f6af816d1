// Package epp applies and reports energy performance preference settings
// across all CPU cores that expose a control file.
package epp

import (
	"errors"
	"fmt"
)

// Profile is one of the four EPP trade-off settings understood by the kernel,
// ordered from maximum performance to maximum power saving.
type Profile int

const (
	Performance Profile = iota
	BalancePerformance
	BalancePower
	Power
)

// ErrInvalidLevel indicates a numeric profile level outside the 0-3 range.
var ErrInvalidLevel = errors.New("invalid profile level")

// Profiles returns all profiles in performance-to-power-saving order.
func Profiles() []Profile {
	return []Profile{Performance, BalancePerformance, BalancePower, Power}
}

// FromLevel maps a numeric shorthand to a profile. Level 0 is maximum
// performance and level 3 is maximum power saving; anything else is rejected.
func FromLevel(level uint8) (Profile, error) {
	switch level {
	case 0:
		return Performance, nil
	case 1:
		return BalancePerformance, nil
	case 2:
		return BalancePower, nil
	case 3:
		return Power, nil
	default:
		return 0, fmt.Errorf("%w: %d (must be between 0 and 3)", ErrInvalidLevel, level)
	}
}

// Token returns the literal value written to and read from control files.
func (p Profile) Token() string {
	switch p {
	case Performance:
		return "performance"
	case BalancePerformance:
		return "balance_performance"
	case BalancePower:
		return "balance_power"
	case Power:
		return "power"
	default:
		return "unknown"
	}
}

func (p Profile) String() string {
	return p.Token()
}

// Description explains the profile's trade-off for help output.
func (p Profile) Description() string {
	switch p {
	case Performance:
		return "Prioritizes performance above power saving.\n" +
			"CPU reaches higher clock speeds aggressively."
	case BalancePerformance:
		return "Aims for a balance but leans towards performance.\n" +
			"This is the default value in many systems."
	case BalancePower:
		return "Aims for a balance but leans towards power saving.\n" +
			"More conservative clock speed increases."
	case Power:
		return "Strongly prioritizes power saving.\n" +
			"Favors lower frequencies, may limit peak performance."
	default:
		return ""
	}
}
