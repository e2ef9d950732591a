package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// State is a point of the sampled lattice: three quantum numbers and a spin.
// Values are copied; every transformation returns a new State.
type State struct {
	K    int16
	L    int16
	M    int16
	Spin Spin
}

func NewUp(k, l, m int16) State {
	return State{K: k, L: l, M: m, Spin: SpinUp}
}

func NewDown(k, l, m int16) State {
	return State{K: k, L: l, M: m, Spin: SpinDown}
}

// Energy returns k² + l² + m². The spin does not contribute here.
func (s State) Energy() float64 {
	k, l, m := float64(s.K), float64(s.L), float64(s.M)
	return k*k + l*l + m*m
}

func (s State) WithK(k int16) State {
	s.K = k
	return s
}

func (s State) WithL(l int16) State {
	s.L = l
	return s
}

func (s State) WithM(m int16) State {
	s.M = m
	return s
}

func (s State) WithSpin(spin Spin) State {
	s.Spin = spin
	return s
}

func (s State) String() string {
	return fmt.Sprintf("%d,%d,%d,%s", s.K, s.L, s.M, s.Spin)
}

// ParseState reads the "k,l,m,spin" form. The spin accepts names ("up",
// "down") as well as the arrow glyphs produced by String.
func ParseState(raw string) (State, error) {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != 4 {
		return State{}, fmt.Errorf("%w: expected k,l,m,spin, got %q", ErrInvalidState, raw)
	}

	coords := make([]int16, 3)
	for i, part := range parts[:3] {
		value, err := strconv.ParseInt(strings.TrimSpace(part), 10, 16)
		if err != nil {
			return State{}, fmt.Errorf("%w: coordinate %d of %q: %w", ErrInvalidState, i+1, raw, err)
		}
		coords[i] = int16(value)
	}

	spin, err := ParseSpin(parts[3])
	if err != nil {
		return State{}, fmt.Errorf("parse state %q: %w", raw, err)
	}

	return State{K: coords[0], L: coords[1], M: coords[2], Spin: spin}, nil
}
