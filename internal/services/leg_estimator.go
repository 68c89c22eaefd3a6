package services

import (
	"context"

	"go.uber.org/zap"
	dbm "tripcheck/internal/models/db_models"
)

// LegEstimator fills in the distance of legs stored without duration or
// distance, using the driving matrix between the two activities. The
// conflict detector turns that distance into minutes per transport mode.
type LegEstimator struct {
	matrix DistanceMatrixService
	log    *zap.Logger
}

// NewLegEstimator accepts a nil matrix; estimation is then skipped.
func NewLegEstimator(matrix DistanceMatrixService, log *zap.Logger) *LegEstimator {
	return &LegEstimator{matrix: matrix, log: log}
}

// FillMissing updates legs of ordered in place and reports how many got a
// distance. Matrix failures are logged and leave the legs untouched.
func (e *LegEstimator) FillMissing(ctx context.Context, ordered []dbm.JourneyActivity) int {
	if e == nil || e.matrix == nil {
		return 0
	}

	type pending struct {
		leg      *dbm.ItineraryLeg
		from, to string
	}
	var todo []pending
	seen := make(map[string]bool)
	var points []MatrixPoint

	addPoint := func(a dbm.JourneyActivity) string {
		id := a.ID.String()
		if !seen[id] {
			seen[id] = true
			points = append(points, MatrixPoint{ID: id, Lat: a.Latitude, Lng: a.Longitude})
		}
		return id
	}

	for i := 0; i+1 < len(ordered); i++ {
		cur, next := ordered[i], ordered[i+1]
		leg := cur.TransportToNext
		if leg == nil || leg.DurationMinutes != nil || leg.DistanceMeters != nil {
			continue
		}
		if !cur.HasCoordinates() || !next.HasCoordinates() {
			continue
		}
		todo = append(todo, pending{leg: leg, from: addPoint(cur), to: addPoint(next)})
	}
	if len(todo) == 0 {
		return 0
	}

	mat, err := e.matrix.ComputeDistances(ctx, points)
	if err != nil {
		e.log.Warn("leg distance estimation skipped", zap.Int("legs", len(todo)), zap.Error(err))
		return 0
	}

	filled := 0
	for _, p := range todo {
		edge, ok := mat[p.from][p.to]
		if !ok {
			continue
		}
		meters := edge.DistanceMeters
		p.leg.DistanceMeters = &meters
		filled++
	}
	e.log.Debug("estimated leg distances", zap.Int("requested", len(todo)), zap.Int("filled", filled))
	return filled
}
