package flood

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/floodwatch/floodwatch-backend-go/internal/datasource"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// Engine orchestrates the data source, depth estimator, and risk scorer
// into point and area queries. It holds no state between requests; every
// assessment is computed from a fresh reading.
type Engine struct {
	source      datasource.EnvironmentalSource
	scorer      RiskScorer
	clock       clockwork.Clock
	concurrency int
}

// NewEngine creates a flood detection engine. concurrency bounds the
// parallel point queries of an area scan; values below 1 fall back to 1.
func NewEngine(source datasource.EnvironmentalSource, scorer RiskScorer, clock clockwork.Clock, concurrency int) *Engine {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Engine{
		source:      source,
		scorer:      scorer,
		clock:       clock,
		concurrency: concurrency,
	}
}

// DetectFloodArea assesses flood risk and water depth at a single point.
// Fails with datasource.ErrUnavailable when the provider does; it never
// retries internally, retry policy belongs to the caller.
func (e *Engine) DetectFloodArea(ctx context.Context, coord models.Coordinate) (models.FloodAssessment, error) {
	weather, elevation, err := e.source.Fetch(ctx, coord)
	if err != nil {
		return models.FloodAssessment{}, fmt.Errorf("detect flood area: %w", err)
	}

	return models.FloodAssessment{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		FloodRisk: e.scorer.ScoreRisk(weather),
		DepthCM:   EstimateDepth(weather.RainfallMM, elevation),
		Timestamp: e.clock.Now(),
		Weather:   weather,
	}, nil
}

// LiveFloodData scans the grid around center and returns the zones whose
// risk exceeds the area-inclusion threshold. Point queries run in
// parallel, bounded by the engine's concurrency limit and the grid cap.
//
// Partial-failure policy: a point whose provider call fails is skipped and
// counted in SkippedPoints; the scan never fails wholesale on individual
// point errors.
func (e *Engine) LiveFloodData(ctx context.Context, center models.Coordinate, radiusKM float64) (models.AreaScan, error) {
	points := GenerateGrid(center, radiusKM)

	zones, skipped := e.assessPoints(ctx, points)

	return models.AreaScan{
		Center:             models.LatLon{Lat: center.Latitude, Lon: center.Longitude},
		RadiusKM:           radiusKM,
		FloodZones:         zones,
		TotalAffectedAreas: len(zones),
		SkippedPoints:      skipped,
	}, nil
}

// EstimateWaterDepth estimates standing water depth at a point. Same
// failure semantics as DetectFloodArea.
func (e *Engine) EstimateWaterDepth(ctx context.Context, coord models.Coordinate) (float64, error) {
	weather, elevation, err := e.source.Fetch(ctx, coord)
	if err != nil {
		return 0, fmt.Errorf("estimate water depth: %w", err)
	}
	return EstimateDepth(weather.RainfallMM, elevation), nil
}

// FloodZonesAlongPath samples the great-circle path between origin and
// destination at ~1km spacing and returns the assessments above the
// area-inclusion threshold. Same skip-on-failure policy as area scans.
func (e *Engine) FloodZonesAlongPath(ctx context.Context, origin, destination models.Coordinate) ([]models.FloodAssessment, error) {
	points := GeneratePath(origin, destination)

	zones, skipped := e.assessPoints(ctx, points)
	if skipped > 0 {
		log.Printf("path scan skipped %d of %d points", skipped, len(points))
	}
	return zones, nil
}

// assessPoints runs DetectFloodArea for every point with bounded fan-out
// and filters to assessments above AreaInclusionThreshold. Results keep
// the input point order regardless of completion order.
func (e *Engine) assessPoints(ctx context.Context, points []models.Coordinate) ([]models.FloodAssessment, int) {
	results := make([]*models.FloodAssessment, len(points))
	var skipped int
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, point := range points {
		i, point := i, point
		g.Go(func() error {
			assessment, err := e.DetectFloodArea(gctx, point)
			if err != nil {
				mu.Lock()
				skipped++
				mu.Unlock()
				log.Printf("skipping point (%.4f, %.4f): %v", point.Latitude, point.Longitude, err)
				return nil
			}
			results[i] = &assessment
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	g.Wait()

	zones := make([]models.FloodAssessment, 0, len(points))
	for _, r := range results {
		if r != nil && r.FloodRisk > AreaInclusionThreshold {
			zones = append(zones, *r)
		}
	}
	return zones, skipped
}
