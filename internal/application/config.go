package application

import (
	"fmt"
	"math"

	"github.com/bnema/kondo-sampler/internal/domain"
)

type ProposalPolicy string

const (
	// PolicyCoupled redraws k whenever the spin is redrawn.
	PolicyCoupled ProposalPolicy = "coupled"
	// PolicyIndependent redraws the spin on its own branch.
	PolicyIndependent ProposalPolicy = "independent"
)

func (p ProposalPolicy) Valid() bool {
	switch p {
	case PolicyCoupled, PolicyIndependent:
		return true
	default:
		return false
	}
}

// CoordinateRange is the half-open interval [Min, Max) new coordinates are
// drawn from.
type CoordinateRange struct {
	Min int16
	Max int16
}

func (r CoordinateRange) Width() int {
	return int(r.Max) - int(r.Min)
}

func (r CoordinateRange) Contains(v int16) bool {
	return v >= r.Min && v < r.Max
}

func (r CoordinateRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Min, r.Max)
}

type Config struct {
	Iterations       int
	BetaStep         float64
	CouplingStrength float64
	InitialState     domain.State
	CoordinateRange  CoordinateRange
	Policy           ProposalPolicy
	// Seed fixes the random source. Zero means seed from the OS.
	Seed uint64
}

const (
	DefaultIterations       = 99
	DefaultBetaStep         = 0.01
	DefaultCouplingStrength = 0.5
)

func DefaultConfig() Config {
	return Config{
		Iterations:       DefaultIterations,
		BetaStep:         DefaultBetaStep,
		CouplingStrength: DefaultCouplingStrength,
		InitialState:     domain.NewUp(1, 1, 1),
		CoordinateRange:  CoordinateRange{Min: 1, Max: 10},
		Policy:           PolicyCoupled,
	}
}

func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative, got %d", domain.ErrInvalidConfig, c.Iterations)
	}
	if math.IsNaN(c.BetaStep) || math.IsInf(c.BetaStep, 0) || c.BetaStep < 0 {
		return fmt.Errorf("%w: beta step must be a finite non-negative number, got %v", domain.ErrInvalidConfig, c.BetaStep)
	}
	if math.IsNaN(c.CouplingStrength) || math.IsInf(c.CouplingStrength, 0) {
		return fmt.Errorf("%w: coupling strength must be finite, got %v", domain.ErrInvalidConfig, c.CouplingStrength)
	}
	if c.CoordinateRange.Width() <= 0 {
		return fmt.Errorf("%w: coordinate range %s is empty", domain.ErrInvalidConfig, c.CoordinateRange)
	}
	if c.Seed > math.MaxInt64 {
		return fmt.Errorf("%w: seed must fit in 63 bits, got %d", domain.ErrInvalidConfig, c.Seed)
	}
	if !c.Policy.Valid() {
		return fmt.Errorf("%w: unsupported proposal policy %q", domain.ErrInvalidConfig, c.Policy)
	}

	return nil
}
