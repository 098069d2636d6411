package service

import (
	"context"
	"log"

	"github.com/floodwatch/floodwatch-backend-go/internal/alert"
	"github.com/floodwatch/floodwatch-backend-go/internal/flood"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
	"github.com/floodwatch/floodwatch-backend-go/internal/observability"
	"github.com/floodwatch/floodwatch-backend-go/internal/store"
)

// FloodService wraps the detection engine with alerting policy, alert
// history persistence, and metrics
type FloodService struct {
	engine     *flood.Engine
	alerts     store.AlertStore
	dispatcher *alert.Dispatcher
	metrics    *observability.Metrics
}

// NewFloodService creates a new flood service
func NewFloodService(engine *flood.Engine, alerts store.AlertStore, dispatcher *alert.Dispatcher, metrics *observability.Metrics) *FloodService {
	return &FloodService{
		engine:     engine,
		alerts:     alerts,
		dispatcher: dispatcher,
		metrics:    metrics,
	}
}

// Detect assesses one point and, when the risk strictly exceeds the alert
// threshold, records an alert and dispatches a notification to the
// requesting user. Alert handling never fails the detection request.
func (s *FloodService) Detect(ctx context.Context, coord models.Coordinate, userEmail string) (models.FloodAssessment, error) {
	assessment, err := s.engine.DetectFloodArea(ctx, coord)
	if err != nil {
		s.metrics.ProviderErrors.Inc()
		return models.FloodAssessment{}, err
	}
	s.metrics.AssessmentsTotal.Inc()

	if assessment.FloodRisk > flood.AlertThreshold {
		s.recordAndDispatch(ctx, userEmail, assessment)
	}
	return assessment, nil
}

func (s *FloodService) recordAndDispatch(ctx context.Context, userEmail string, assessment models.FloodAssessment) {
	record := models.Alert{
		UserEmail: userEmail,
		Latitude:  assessment.Latitude,
		Longitude: assessment.Longitude,
		FloodRisk: assessment.FloodRisk,
		DepthCM:   assessment.DepthCM,
		CreatedAt: assessment.Timestamp,
	}
	if err := s.alerts.SaveAlert(ctx, record); err != nil {
		log.Printf("failed to save alert for %s: %v", userEmail, err)
	}
	s.dispatcher.DispatchFlood(userEmail, assessment)
}

// Live runs an area scan around center
func (s *FloodService) Live(ctx context.Context, center models.Coordinate, radiusKM float64) (models.AreaScan, error) {
	scan, err := s.engine.LiveFloodData(ctx, center, radiusKM)
	if err != nil {
		return models.AreaScan{}, err
	}
	s.metrics.AreaScansTotal.Inc()
	s.metrics.ScanPointsSkipped.Add(float64(scan.SkippedPoints))
	return scan, nil
}

// VehicleSafety estimates depth at the location and assesses the vehicle
// crossing against it
func (s *FloodService) VehicleSafety(ctx context.Context, vehicleType string, location models.Coordinate) (float64, models.SafetyVerdict, error) {
	depth, err := s.engine.EstimateWaterDepth(ctx, location)
	if err != nil {
		s.metrics.ProviderErrors.Inc()
		return 0, models.SafetyVerdict{}, err
	}

	vehicle := models.ParseVehicleClass(vehicleType)
	return depth, flood.AssessVehicleSafety(vehicle, depth), nil
}

// AlertHistory returns the most recent alerts recorded for the user
func (s *FloodService) AlertHistory(ctx context.Context, userEmail string, limit int) ([]models.Alert, error) {
	return s.alerts.ListAlerts(ctx, userEmail, limit)
}
