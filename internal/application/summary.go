package application

import (
	"github.com/bnema/kondo-sampler/internal/domain"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Iterations     int
	Accepted       int
	AcceptanceRate float64
	HistoryLength  int
	Policy         ProposalPolicy
	Seed           uint64
	InitialState   domain.State
	FinalState     domain.State
	FinalEnergy    float64
	FinalBeta      float64
	LowestState    domain.State
	LowestEnergy   float64
	// MeanEnergy and StdDevEnergy are taken over the current energy after
	// each iteration.
	MeanEnergy   float64
	StdDevEnergy float64
}

func (s *Sampler) Summary() Summary {
	summary := Summary{
		Iterations:    s.iteration,
		Accepted:      s.accepted,
		HistoryLength: len(s.history),
		Policy:        s.cfg.Policy,
		Seed:          s.cfg.Seed,
		InitialState:  s.cfg.InitialState,
		FinalState:    s.current,
		FinalEnergy:   s.currentEnergy,
		FinalBeta:     s.beta,
		LowestState:   s.lowest,
		LowestEnergy:  s.lowestEnergy,
		MeanEnergy:    s.currentEnergy,
	}

	if s.iteration > 0 {
		summary.AcceptanceRate = float64(s.accepted) / float64(s.iteration)
	}

	switch n := len(s.energies); {
	case n == 1:
		summary.MeanEnergy = s.energies[0]
	case n > 1:
		summary.MeanEnergy, summary.StdDevEnergy = stat.MeanStdDev(s.energies, nil)
	}

	return summary
}
