package domain

// Transition records one iteration of the Metropolis loop.
type Transition struct {
	Iteration       int
	Choice          ChangeChoice
	Candidate       State
	CandidateEnergy float64
	Beta            float64
	Probability     float64
	Threshold       float64
	Accepted        bool
	Current         State
	CurrentEnergy   float64
}
