package domain

// ChangeChoice selects which dimension of a State a proposal perturbs.
type ChangeChoice uint8

const (
	ChangeK ChangeChoice = iota
	ChangeL
	ChangeM
	// ChangeKSpin redraws k and the spin together.
	ChangeKSpin
	// ChangeSpin redraws only the spin.
	ChangeSpin
)

func (c ChangeChoice) String() string {
	switch c {
	case ChangeK:
		return "k"
	case ChangeL:
		return "l"
	case ChangeM:
		return "m"
	case ChangeKSpin:
		return "k+spin"
	case ChangeSpin:
		return "spin"
	default:
		return "unknown"
	}
}

// ChangesSpin reports whether the choice redraws the spin.
func (c ChangeChoice) ChangesSpin() bool {
	return c == ChangeKSpin || c == ChangeSpin
}
