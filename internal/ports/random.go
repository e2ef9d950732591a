package ports

// RandomSource is the random capability consumed by the sampler: one
// discrete draw per proposal choice and coordinate, one uniform draw per
// acceptance test.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}
