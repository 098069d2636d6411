package datasource

import (
	"context"
	"math/rand"
	"sync"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// Simulator is a stochastic EnvironmentalSource seeded for reproducibility.
// Equal seeds produce identical reading sequences, which tests rely on.
// Ranges mirror the live providers: rainfall 0-150mm, elevation 0-100m.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a simulator with the given seed
func NewSimulator(seed int64) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// Name returns the source name
func (s *Simulator) Name() string {
	return "simulator"
}

// Fetch returns a simulated weather reading and elevation for the coordinate
func (s *Simulator) Fetch(ctx context.Context, coord models.Coordinate) (models.WeatherReading, float64, error) {
	if err := ctx.Err(); err != nil {
		return models.WeatherReading{}, 0, err
	}

	s.mu.Lock()
	rainfall := s.rng.Float64() * 150
	elevation := s.rng.Float64() * 100
	s.mu.Unlock()

	reading := models.WeatherReading{
		RainfallMM:   rainfall,
		TemperatureC: 25,
		HumidityPct:  80,
	}
	return reading, elevation, nil
}
