package domain

import (
	"fmt"
	"strings"
)

type Spin uint8

const (
	SpinUp Spin = iota
	SpinDown
)

// Value is the numeric contribution of the spin: +1 for up, -1 for down.
func (s Spin) Value() float64 {
	if s == SpinDown {
		return -1
	}
	return 1
}

func (s Spin) Flip() Spin {
	if s == SpinDown {
		return SpinUp
	}
	return SpinDown
}

func (s Spin) String() string {
	if s == SpinDown {
		return "↓"
	}
	return "↑"
}

func (s Spin) Name() string {
	if s == SpinDown {
		return "down"
	}
	return "up"
}

func ParseSpin(raw string) (Spin, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up", "u", "+", "+1", "1", "↑":
		return SpinUp, nil
	case "down", "d", "-", "-1", "↓":
		return SpinDown, nil
	default:
		return SpinUp, fmt.Errorf("%w: %q", ErrInvalidSpin, raw)
	}
}
