package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/kondo-sampler/internal/domain"
	"github.com/bnema/kondo-sampler/internal/ports"
)

// Sampler is the Metropolis driver. It owns the chain state for one run and
// is not safe for concurrent use.
type Sampler struct {
	cfg         Config
	hamiltonian ports.Hamiltonian
	rng         ports.RandomSource
	proposals   *ProposalGenerator
	sink        ports.TrajectorySink
	logger      *slog.Logger

	current       domain.State
	currentEnergy float64
	beta          float64
	iteration     int
	accepted      int
	history       []domain.State
	energies      []float64
	lowest        domain.State
	lowestEnergy  float64
}

type Option func(*Sampler)

// WithHamiltonian replaces the default KondoEffect built from the config.
func WithHamiltonian(h ports.Hamiltonian) Option {
	return func(s *Sampler) {
		if h != nil {
			s.hamiltonian = h
		}
	}
}

func WithSink(sink ports.TrajectorySink) Option {
	return func(s *Sampler) {
		if sink != nil {
			s.sink = sink
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Sampler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSampler(cfg Config, rng ports.RandomSource, opts ...Option) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	proposals, err := NewProposalGenerator(rng, cfg.Policy, cfg.CoordinateRange)
	if err != nil {
		return nil, fmt.Errorf("build proposal generator: %w", err)
	}

	s := &Sampler{
		cfg:         cfg,
		hamiltonian: domain.KondoEffect{CouplingStrength: cfg.CouplingStrength},
		rng:         rng,
		proposals:   proposals,
		sink:        ports.DiscardSink{},
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.current = cfg.InitialState
	s.currentEnergy = s.hamiltonian.Score(s.current)
	s.lowest = s.current
	s.lowestEnergy = s.currentEnergy
	s.history = append(make([]domain.State, 0, cfg.Iterations+1), s.current)
	s.energies = make([]float64, 0, cfg.Iterations)

	return s, nil
}

// Step runs one propose/score/decide/record cycle and hands the resulting
// transition to the sink.
func (s *Sampler) Step(ctx context.Context) (domain.Transition, error) {
	if err := ctx.Err(); err != nil {
		return domain.Transition{}, err
	}

	candidate, choice := s.proposals.Propose(s.current)
	candidateEnergy := s.hamiltonian.Score(candidate)
	s.beta += s.cfg.BetaStep

	probability := AcceptanceProbability(s.beta, s.currentEnergy, candidateEnergy)
	threshold := s.rng.Float64()
	accepted := Accept(probability, threshold)

	s.iteration++
	if accepted {
		s.accepted++
		s.current = candidate
		s.currentEnergy = candidateEnergy
		s.history = append(s.history, candidate)
		if candidateEnergy < s.lowestEnergy {
			s.lowest = candidate
			s.lowestEnergy = candidateEnergy
		}
	}
	s.energies = append(s.energies, s.currentEnergy)

	transition := domain.Transition{
		Iteration:       s.iteration,
		Choice:          choice,
		Candidate:       candidate,
		CandidateEnergy: candidateEnergy,
		Beta:            s.beta,
		Probability:     probability,
		Threshold:       threshold,
		Accepted:        accepted,
		Current:         s.current,
		CurrentEnergy:   s.currentEnergy,
	}

	s.logger.DebugContext(ctx, "metropolis step",
		slog.Int("iteration", transition.Iteration),
		slog.String("choice", choice.String()),
		slog.String("candidate", candidate.String()),
		slog.Float64("beta", s.beta),
		slog.Float64("probability", probability),
		slog.Bool("accepted", accepted),
	)

	if err := s.sink.Record(ctx, transition); err != nil {
		return transition, fmt.Errorf("record transition %d: %w", transition.Iteration, err)
	}

	return transition, nil
}

// Run steps the chain until the configured iteration budget is spent.
func (s *Sampler) Run(ctx context.Context) (Summary, error) {
	for s.iteration < s.cfg.Iterations {
		if _, err := s.Step(ctx); err != nil {
			return s.Summary(), err
		}
	}

	summary := s.Summary()
	s.logger.InfoContext(ctx, "sampling finished",
		slog.Int("iterations", summary.Iterations),
		slog.Int("accepted", summary.Accepted),
		slog.String("final_state", summary.FinalState.String()),
		slog.Float64("final_energy", summary.FinalEnergy),
	)

	return summary, nil
}

func (s *Sampler) Current() domain.State {
	return s.current
}

func (s *Sampler) CurrentEnergy() float64 {
	return s.currentEnergy
}

func (s *Sampler) Beta() float64 {
	return s.beta
}

func (s *Sampler) Iteration() int {
	return s.iteration
}

func (s *Sampler) Accepted() int {
	return s.accepted
}

// History returns a copy of the accepted trajectory, starting with the
// initial state.
func (s *Sampler) History() []domain.State {
	return append([]domain.State(nil), s.history...)
}
