package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodwatch/floodwatch-backend-go/internal/alert"
	"github.com/floodwatch/floodwatch-backend-go/internal/datasource"
	"github.com/floodwatch/floodwatch-backend-go/internal/flood"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
	"github.com/floodwatch/floodwatch-backend-go/internal/observability"
	"github.com/floodwatch/floodwatch-backend-go/internal/service"
	"github.com/floodwatch/floodwatch-backend-go/internal/store"
)

// stubSource returns a constant rainfall at elevation 100, so depth is
// rainfall * 0.5 and risk is rainfall / 100.
type stubSource struct {
	rainfall float64
	err      error
}

func (s stubSource) Name() string { return "stub" }

func (s stubSource) Fetch(context.Context, models.Coordinate) (models.WeatherReading, float64, error) {
	if s.err != nil {
		return models.WeatherReading{}, 0, s.err
	}
	return models.WeatherReading{RainfallMM: s.rainfall, TemperatureC: 25, HumidityPct: 80}, 100, nil
}

// recordingNotifier signals each delivery on a channel so tests can wait
// for the dispatcher's detached goroutine.
type recordingNotifier struct {
	sent chan sentAlert
}

type sentAlert struct {
	recipient string
	subject   string
	body      string
}

func (n *recordingNotifier) Send(_ context.Context, recipient, subject, body string) error {
	n.sent <- sentAlert{recipient: recipient, subject: subject, body: body}
	return nil
}

func newFloodService(source datasource.EnvironmentalSource, alerts store.AlertStore, notifier alert.Notifier) *service.FloodService {
	engine := flood.NewEngine(source, flood.RainfallScorer{}, clockwork.NewRealClock(), 4)
	dispatcher := alert.NewDispatcher(notifier, time.Second, nil)
	return service.NewFloodService(engine, alerts, dispatcher, observability.NewMetricsForTesting())
}

func TestDetect_HighRiskRecordsAndDispatches(t *testing.T) {
	notifier := &recordingNotifier{sent: make(chan sentAlert, 1)}
	alerts := store.NewMemoryStore()
	svc := newFloodService(stubSource{rainfall: 85}, alerts, notifier)

	coord := models.Coordinate{Latitude: 14.5995, Longitude: 120.9842}
	assessment, err := svc.Detect(context.Background(), coord, "ana@example.com")
	require.NoError(t, err)
	assert.InDelta(t, 0.85, assessment.FloodRisk, 1e-9)

	select {
	case got := <-notifier.sent:
		assert.Equal(t, "ana@example.com", got.recipient)
		assert.Contains(t, got.subject, "FLOOD ALERT")
		assert.Contains(t, got.body, "Estimated Water Depth: 42.5 cm")
	case <-time.After(2 * time.Second):
		t.Fatal("expected an alert dispatch")
	}

	history, err := svc.AlertHistory(context.Background(), "ana@example.com", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 0.85, history[0].FloodRisk, 1e-9)
	assert.Equal(t, coord.Latitude, history[0].Latitude)
}

func TestDetect_ThresholdIsStrict(t *testing.T) {
	// Rainfall 70 puts the risk at exactly the alert threshold; no alert.
	notifier := &recordingNotifier{sent: make(chan sentAlert, 1)}
	alerts := store.NewMemoryStore()
	svc := newFloodService(stubSource{rainfall: 70}, alerts, notifier)

	assessment, err := svc.Detect(context.Background(), models.Coordinate{Latitude: 1, Longitude: 1}, "ana@example.com")
	require.NoError(t, err)
	assert.InDelta(t, flood.AlertThreshold, assessment.FloodRisk, 1e-9)

	select {
	case <-notifier.sent:
		t.Fatal("no alert should be dispatched at the threshold")
	case <-time.After(100 * time.Millisecond):
	}

	history, err := svc.AlertHistory(context.Background(), "ana@example.com", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestDetect_LowRiskNoAlert(t *testing.T) {
	notifier := &recordingNotifier{sent: make(chan sentAlert, 1)}
	svc := newFloodService(stubSource{rainfall: 30}, store.NewMemoryStore(), notifier)

	assessment, err := svc.Detect(context.Background(), models.Coordinate{Latitude: 1, Longitude: 1}, "ana@example.com")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, assessment.FloodRisk, 1e-9)

	select {
	case <-notifier.sent:
		t.Fatal("no alert should be dispatched below the threshold")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDetect_SourceFailureSurfaces(t *testing.T) {
	injected := fmt.Errorf("%w: upstream down", datasource.ErrUnavailable)
	svc := newFloodService(stubSource{err: injected}, store.NewMemoryStore(), nil)

	_, err := svc.Detect(context.Background(), models.Coordinate{Latitude: 1, Longitude: 1}, "ana@example.com")
	assert.ErrorIs(t, err, datasource.ErrUnavailable)
}

func TestVehicleSafety(t *testing.T) {
	// 120mm rainfall at elevation 100 puts 60cm of water on the road.
	svc := newFloodService(stubSource{rainfall: 120}, store.NewMemoryStore(), nil)

	depth, verdict, err := svc.VehicleSafety(context.Background(), "truck", models.Coordinate{Latitude: 1, Longitude: 1})
	require.NoError(t, err)
	assert.InDelta(t, 60.0, depth, 1e-9)
	assert.False(t, verdict.Safe)
	assert.Equal(t, "DANGER: No vehicles should attempt crossing", verdict.Message)
}

func TestVehicleSafety_SafeCrossing(t *testing.T) {
	// 10mm rainfall puts 5cm of water; car threshold is 7cm.
	svc := newFloodService(stubSource{rainfall: 10}, store.NewMemoryStore(), nil)

	depth, verdict, err := svc.VehicleSafety(context.Background(), "car", models.Coordinate{Latitude: 1, Longitude: 1})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, depth, 1e-9)
	assert.True(t, verdict.Safe)
}

func TestLive_PassesThroughScan(t *testing.T) {
	svc := newFloodService(stubSource{rainfall: 90}, store.NewMemoryStore(), nil)

	scan, err := svc.Live(context.Background(), models.Coordinate{Latitude: 14.5995, Longitude: 120.9842}, 5)
	require.NoError(t, err)
	assert.Equal(t, 50, scan.TotalAffectedAreas)
	assert.Equal(t, 5.0, scan.RadiusKM)
}
