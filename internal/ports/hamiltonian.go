package ports

import "github.com/bnema/kondo-sampler/internal/domain"

type Hamiltonian interface {
	Score(state domain.State) float64
}
