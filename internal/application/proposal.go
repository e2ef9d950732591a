package application

import (
	"fmt"

	"github.com/bnema/kondo-sampler/internal/domain"
	"github.com/bnema/kondo-sampler/internal/ports"
)

// Each table entry is equally likely; the draw index maps to the entry at
// that position.
var (
	coupledChoices     = []domain.ChangeChoice{domain.ChangeK, domain.ChangeL, domain.ChangeM, domain.ChangeKSpin}
	independentChoices = []domain.ChangeChoice{domain.ChangeK, domain.ChangeL, domain.ChangeM, domain.ChangeSpin}
	spinChoices        = []domain.Spin{domain.SpinUp, domain.SpinDown}
)

// ChoiceTable returns a copy of the choice table used by policy.
func ChoiceTable(policy ProposalPolicy) ([]domain.ChangeChoice, error) {
	var table []domain.ChangeChoice
	switch policy {
	case PolicyCoupled:
		table = coupledChoices
	case PolicyIndependent:
		table = independentChoices
	default:
		return nil, fmt.Errorf("%w: unsupported proposal policy %q", domain.ErrInvalidConfig, policy)
	}

	return append([]domain.ChangeChoice(nil), table...), nil
}

type ProposalGenerator struct {
	rng     ports.RandomSource
	choices []domain.ChangeChoice
	coords  CoordinateRange
}

func NewProposalGenerator(rng ports.RandomSource, policy ProposalPolicy, coords CoordinateRange) (*ProposalGenerator, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: proposal generator needs a random source", domain.ErrRandomUnavailable)
	}

	choices, err := ChoiceTable(policy)
	if err != nil {
		return nil, err
	}

	if coords.Width() <= 0 {
		return nil, fmt.Errorf("%w: coordinate range %s is empty", domain.ErrInvalidConfig, coords)
	}

	return &ProposalGenerator{rng: rng, choices: choices, coords: coords}, nil
}

// Propose derives a candidate from current by redrawing the dimension picked
// from the choice table. current is never modified.
func (g *ProposalGenerator) Propose(current domain.State) (domain.State, domain.ChangeChoice) {
	choice := g.choices[g.rng.IntN(len(g.choices))]

	switch choice {
	case domain.ChangeK:
		return current.WithK(g.drawCoordinate()), choice
	case domain.ChangeL:
		return current.WithL(g.drawCoordinate()), choice
	case domain.ChangeM:
		return current.WithM(g.drawCoordinate()), choice
	case domain.ChangeKSpin:
		k := g.drawCoordinate()
		return current.WithK(k).WithSpin(g.drawSpin()), choice
	case domain.ChangeSpin:
		return current.WithSpin(g.drawSpin()), choice
	default:
		return current, choice
	}
}

func (g *ProposalGenerator) drawCoordinate() int16 {
	return int16(int(g.coords.Min) + g.rng.IntN(g.coords.Width()))
}

func (g *ProposalGenerator) drawSpin() domain.Spin {
	return spinChoices[g.rng.IntN(len(spinChoices))]
}
