package datasource_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodwatch/floodwatch-backend-go/internal/datasource"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

func TestSimulator_SeedReproducibility(t *testing.T) {
	coord := models.Coordinate{Latitude: 14.5995, Longitude: 120.9842}

	a := datasource.NewSimulator(42)
	b := datasource.NewSimulator(42)

	for i := 0; i < 20; i++ {
		readingA, elevA, err := a.Fetch(context.Background(), coord)
		require.NoError(t, err)
		readingB, elevB, err := b.Fetch(context.Background(), coord)
		require.NoError(t, err)

		assert.Equal(t, readingA.RainfallMM, readingB.RainfallMM, "step %d", i)
		assert.Equal(t, elevA, elevB, "step %d", i)
	}
}

func TestSimulator_Ranges(t *testing.T) {
	sim := datasource.NewSimulator(7)
	coord := models.Coordinate{Latitude: 0, Longitude: 0}

	for i := 0; i < 200; i++ {
		reading, elevation, err := sim.Fetch(context.Background(), coord)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, reading.RainfallMM, 0.0)
		assert.Less(t, reading.RainfallMM, 150.0)
		assert.GreaterOrEqual(t, elevation, 0.0)
		assert.Less(t, elevation, 100.0)
		assert.Equal(t, 25.0, reading.TemperatureC)
		assert.Equal(t, 80.0, reading.HumidityPct)
	}
}

func TestSimulator_CancelledContext(t *testing.T) {
	sim := datasource.NewSimulator(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := sim.Fetch(ctx, models.Coordinate{})
	assert.ErrorIs(t, err, context.Canceled)
}
