package domain

// KondoEffect is the spin-coupled Hamiltonian
// H(s) = k² + l² + m² + spin·J, with J the coupling strength.
type KondoEffect struct {
	CouplingStrength float64
}

func (h KondoEffect) Score(state State) float64 {
	return state.Energy() + state.Spin.Value()*h.CouplingStrength
}
