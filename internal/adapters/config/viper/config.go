package viper

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/bnema/kondo-sampler/internal/application"
	"github.com/bnema/kondo-sampler/internal/domain"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const envPrefix = "KONDO"

const (
	KeyIterations   = "iterations"
	KeyBetaStep     = "beta-step"
	KeyCoupling     = "coupling"
	KeyInitialState = "initial-state"
	KeyRangeMin     = "range-min"
	KeyRangeMax     = "range-max"
	KeyPolicy       = "policy"
	KeySeed         = "seed"
	KeyLogLevel     = "log-level"
)

const defaultLogLevel = "warn"

// New returns a viper instance reading KONDO_* environment variables, with
// dashes in keys mapped to underscores (beta-step -> KONDO_BETA_STEP).
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func SetDefaults(v *viper.Viper) {
	defaults := application.DefaultConfig()

	v.SetDefault(KeyIterations, defaults.Iterations)
	v.SetDefault(KeyBetaStep, defaults.BetaStep)
	v.SetDefault(KeyCoupling, defaults.CouplingStrength)
	v.SetDefault(KeyInitialState, stateFlagValue(defaults.InitialState))
	v.SetDefault(KeyRangeMin, int(defaults.CoordinateRange.Min))
	v.SetDefault(KeyRangeMax, int(defaults.CoordinateRange.Max))
	v.SetDefault(KeyPolicy, string(defaults.Policy))
	v.SetDefault(KeySeed, defaults.Seed)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
}

func LoadConfig(v *viper.Viper) (application.Config, error) {
	if v == nil {
		v = New()
	}

	initial, err := domain.ParseState(v.GetString(KeyInitialState))
	if err != nil {
		return application.Config{}, fmt.Errorf("read %s: %w", KeyInitialState, err)
	}

	rangeMin, err := int16Value(v, KeyRangeMin)
	if err != nil {
		return application.Config{}, err
	}
	rangeMax, err := int16Value(v, KeyRangeMax)
	if err != nil {
		return application.Config{}, err
	}

	iterations, err := intValue(v, KeyIterations)
	if err != nil {
		return application.Config{}, err
	}
	betaStep, err := floatValue(v, KeyBetaStep)
	if err != nil {
		return application.Config{}, err
	}
	coupling, err := floatValue(v, KeyCoupling)
	if err != nil {
		return application.Config{}, err
	}
	seed, err := uint64Value(v, KeySeed)
	if err != nil {
		return application.Config{}, err
	}

	cfg := application.Config{
		Iterations:       iterations,
		BetaStep:         betaStep,
		CouplingStrength: coupling,
		InitialState:     initial,
		CoordinateRange:  application.CoordinateRange{Min: rangeMin, Max: rangeMax},
		Policy:           application.ProposalPolicy(strings.ToLower(strings.TrimSpace(v.GetString(KeyPolicy)))),
		Seed:             seed,
	}

	if err := cfg.Validate(); err != nil {
		return application.Config{}, err
	}

	return cfg, nil
}

func LoadLogLevel(v *viper.Viper) (slog.Level, error) {
	var level slog.Level
	raw := strings.TrimSpace(v.GetString(KeyLogLevel))
	if raw == "" {
		raw = defaultLogLevel
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return level, fmt.Errorf("read %s: %w", KeyLogLevel, err)
	}

	return level, nil
}

// LoadCoupling reads the coupling strength on its own, for commands that
// only score states.
func LoadCoupling(v *viper.Viper) (float64, error) {
	coupling, err := floatValue(v, KeyCoupling)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(coupling) || math.IsInf(coupling, 0) {
		return 0, fmt.Errorf("%w: %s must be finite, got %v", domain.ErrInvalidConfig, KeyCoupling, coupling)
	}

	return coupling, nil
}

// The typed viper getters swallow parse errors and return zero; these
// readers surface them instead.

func intValue(v *viper.Viper, key string) (int, error) {
	value, err := cast.ToIntE(trimmed(v.Get(key)))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrInvalidConfig, key, err)
	}

	return value, nil
}

func floatValue(v *viper.Viper, key string) (float64, error) {
	value, err := cast.ToFloat64E(trimmed(v.Get(key)))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrInvalidConfig, key, err)
	}

	return value, nil
}

func uint64Value(v *viper.Viper, key string) (uint64, error) {
	value, err := cast.ToUint64E(trimmed(v.Get(key)))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrInvalidConfig, key, err)
	}

	return value, nil
}

func int16Value(v *viper.Viper, key string) (int16, error) {
	value, err := intValue(v, key)
	if err != nil {
		return 0, err
	}
	if value < math.MinInt16 || value > math.MaxInt16 {
		return 0, fmt.Errorf("%w: %s %d does not fit a lattice coordinate", domain.ErrInvalidConfig, key, value)
	}

	return int16(value), nil
}

func trimmed(value any) any {
	if raw, ok := value.(string); ok {
		return strings.TrimSpace(raw)
	}
	return value
}

func stateFlagValue(s domain.State) string {
	return fmt.Sprintf("%d,%d,%d,%s", s.K, s.L, s.M, s.Spin.Name())
}
