package summary

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/kondo-sampler/internal/application"
	"github.com/bnema/kondo-sampler/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const currentSchemaVersion = 1

type summarySchema struct {
	Version        int          `toml:"version" json:"version"`
	Iterations     int          `toml:"iterations" json:"iterations"`
	Accepted       int          `toml:"accepted" json:"accepted"`
	AcceptanceRate float64      `toml:"acceptance_rate" json:"acceptance_rate"`
	HistoryLength  int          `toml:"history_length" json:"history_length"`
	Policy         string       `toml:"policy" json:"policy"`
	Seed           uint64       `toml:"seed" json:"seed"`
	Initial        stateSchema  `toml:"initial" json:"initial"`
	Final          stateSchema  `toml:"final" json:"final"`
	Lowest         stateSchema  `toml:"lowest" json:"lowest"`
	FinalBeta      float64      `toml:"final_beta" json:"final_beta"`
	Energy         energySchema `toml:"energy" json:"energy"`
}

type stateSchema struct {
	K      int16    `toml:"k" json:"k"`
	L      int16    `toml:"l" json:"l"`
	M      int16    `toml:"m" json:"m"`
	Spin   string   `toml:"spin" json:"spin"`
	Energy *float64 `toml:"energy,omitempty" json:"energy,omitempty"`
}

type energySchema struct {
	Mean   float64 `toml:"mean" json:"mean"`
	StdDev float64 `toml:"stddev" json:"stddev"`
}

func toStateSchema(s domain.State, energy *float64) stateSchema {
	return stateSchema{K: s.K, L: s.L, M: s.M, Spin: s.Spin.Name(), Energy: energy}
}

func toSchema(summary application.Summary) summarySchema {
	finalEnergy := summary.FinalEnergy
	lowestEnergy := summary.LowestEnergy

	return summarySchema{
		Version:        currentSchemaVersion,
		Iterations:     summary.Iterations,
		Accepted:       summary.Accepted,
		AcceptanceRate: summary.AcceptanceRate,
		HistoryLength:  summary.HistoryLength,
		Policy:         string(summary.Policy),
		Seed:           summary.Seed,
		Initial:        toStateSchema(summary.InitialState, nil),
		Final:          toStateSchema(summary.FinalState, &finalEnergy),
		Lowest:         toStateSchema(summary.LowestState, &lowestEnergy),
		FinalBeta:      summary.FinalBeta,
		Energy: energySchema{
			Mean:   summary.MeanEnergy,
			StdDev: summary.StdDevEnergy,
		},
	}
}

func EncodeTOML(summary application.Summary) ([]byte, error) {
	encoded, err := toml.Marshal(toSchema(summary))
	if err != nil {
		return nil, fmt.Errorf("encode summary toml: %w", err)
	}

	return encoded, nil
}

func EncodeJSON(summary application.Summary) ([]byte, error) {
	encoded, err := json.MarshalIndent(toSchema(summary), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode summary json: %w", err)
	}

	return append(encoded, '\n'), nil
}
