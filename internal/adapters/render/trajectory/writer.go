package trajectory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/kondo-sampler/internal/domain"
	"github.com/bnema/kondo-sampler/internal/ports"
)

type Format string

const (
	// FormatText prints the current state as "k,l,m,glyph", one line per
	// iteration, whether or not the proposal was accepted.
	FormatText Format = "text"
	// FormatJSONLines prints one JSON object per transition.
	FormatJSONLines Format = "jsonl"
	// FormatNone prints nothing.
	FormatNone Format = "none"
)

type Writer struct {
	out    io.Writer
	format Format
	enc    *json.Encoder
}

var _ ports.TrajectorySink = (*Writer)(nil)

func NewWriter(out io.Writer, format Format) (*Writer, error) {
	switch format {
	case FormatText, FormatJSONLines, FormatNone:
	default:
		return nil, fmt.Errorf("unsupported trajectory format %q", format)
	}

	return &Writer{out: out, format: format, enc: json.NewEncoder(out)}, nil
}

func (w *Writer) Record(ctx context.Context, transition domain.Transition) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatText:
		_, err := fmt.Fprintln(w.out, transition.Current.String())
		return err
	case FormatJSONLines:
		return w.enc.Encode(toSchema(transition))
	default:
		return nil
	}
}

type stateSchema struct {
	K    int16  `json:"k"`
	L    int16  `json:"l"`
	M    int16  `json:"m"`
	Spin string `json:"spin"`
}

type transitionSchema struct {
	Iteration       int         `json:"iteration"`
	Choice          string      `json:"choice"`
	Candidate       stateSchema `json:"candidate"`
	CandidateEnergy float64     `json:"candidate_energy"`
	Beta            float64     `json:"beta"`
	Probability     float64     `json:"probability"`
	Threshold       float64     `json:"threshold"`
	Accepted        bool        `json:"accepted"`
	Current         stateSchema `json:"current"`
	CurrentEnergy   float64     `json:"current_energy"`
}

func toStateSchema(s domain.State) stateSchema {
	return stateSchema{K: s.K, L: s.L, M: s.M, Spin: s.Spin.Name()}
}

func toSchema(t domain.Transition) transitionSchema {
	return transitionSchema{
		Iteration:       t.Iteration,
		Choice:          t.Choice.String(),
		Candidate:       toStateSchema(t.Candidate),
		CandidateEnergy: t.CandidateEnergy,
		Beta:            t.Beta,
		Probability:     t.Probability,
		Threshold:       t.Threshold,
		Accepted:        t.Accepted,
		Current:         toStateSchema(t.Current),
		CurrentEnergy:   t.CurrentEnergy,
	}
}
