// Package random provides the injectable random source behind all
// simulated business outcomes. Production draws a crypto seed at startup;
// tests pass a fixed seed for deterministic assertions.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"log/slog"
	"math/rand"
	"sync"

	"freeport/config"
	"freeport/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// source wraps math/rand behind a mutex; the scheduler and request
// handlers draw from it concurrently.
type source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewWithSeed creates a deterministic RandomSource from a fixed seed.
func NewWithSeed(seed int64) service.RandomSource {
	return &source{rng: rand.New(rand.NewSource(seed))}
}

// Params defines the parameters required for the random source.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the platform RandomSource. A zero configured seed draws one
// from crypto/rand; the chosen seed is logged for reproducibility.
func New(params Params) (service.RandomSource, error) {
	seed := params.Config.Simulation.Seed
	if seed == 0 {
		drawn, err := cryptoSeed()
		if err != nil {
			return nil, err
		}
		seed = drawn
	}

	params.Logger.Info("Random source initialized", slog.Int64("seed", seed))

	return NewWithSeed(seed), nil
}

func cryptoSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func (s *source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}

func (s *source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(n)
}

func (s *source) Between(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return min + s.rng.Float64()*(max-min)
}

func (s *source) Chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64() < p
}
