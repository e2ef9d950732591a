package application

import "math"

// AcceptanceProbability returns the Metropolis acceptance probability
// min(1, exp(beta*(current-candidate))). Moves that do not raise the energy
// return exactly 1, as does any overflowing or undefined exponential.
func AcceptanceProbability(beta, currentEnergy, candidateEnergy float64) float64 {
	if candidateEnergy <= currentEnergy {
		return 1
	}

	p := math.Exp(beta * (currentEnergy - candidateEnergy))
	if math.IsNaN(p) || math.IsInf(p, 0) || p > 1 {
		return 1
	}

	return p
}

// Accept applies the threshold test. threshold is a uniform draw in [0, 1).
func Accept(probability, threshold float64) bool {
	return threshold < probability
}
