// Package service defines the collaborator interfaces the use cases and
// simulator depend on. Implementations live under internal/infra.
package service

// RandomSource abstracts the random draws that drive simulated business
// outcomes (payment settlement, interception, manifest contents) so tests
// can supply a deterministic seed and assert exact results.
type RandomSource interface {
	// Float64 returns a uniform draw in [0,1).
	Float64() float64

	// Intn returns a uniform draw in [0,n). Panics if n <= 0.
	Intn(n int) int

	// Between returns a uniform draw in [min,max).
	Between(min, max float64) float64

	// Chance reports whether an event with probability p occurred.
	Chance(p float64) bool
}
