package services

import (
	"context"
	"testing"

	"go.uber.org/zap"
	dbm "tripcheck/internal/models/db_models"
)

func TestLegEstimator_FillMissing(t *testing.T) {
	a := stored(1, "A", at(day1, 8, 0), at(day1, 9, 0))
	b := stored(2, "B", at(day1, 9, 30), at(day1, 10, 0))
	c := stored(3, "C", at(day1, 11, 0), at(day1, 12, 0))
	d := stored(4, "D", at(day1, 13, 0), at(day1, 14, 0))
	d.Latitude, d.Longitude = 0, 0

	known := 25
	a.TransportToNext = &dbm.ItineraryLeg{Mode: "drive"}
	b.TransportToNext = &dbm.ItineraryLeg{Mode: "taxi", DurationMinutes: &known}
	c.TransportToNext = &dbm.ItineraryLeg{Mode: "walk"}

	ordered := []dbm.JourneyActivity{a, b, c, d}
	matrix := &fakeMatrix{meters: 4200}
	filled := NewLegEstimator(matrix, zap.NewNop()).FillMissing(context.Background(), ordered)

	if filled != 1 {
		t.Fatalf("filled = %d, want 1", filled)
	}
	if got := ordered[0].TransportToNext.DistanceMeters; got == nil || *got != 4200 {
		t.Errorf("first leg distance = %v", got)
	}
	if ordered[1].TransportToNext.DistanceMeters != nil {
		t.Error("leg with a stored duration must not be estimated")
	}
	if ordered[2].TransportToNext.DistanceMeters != nil {
		t.Error("leg to an activity without coordinates must not be estimated")
	}
}

func TestLegEstimator_NothingToDo(t *testing.T) {
	matrix := &fakeMatrix{meters: 100}
	a := stored(1, "A", at(day1, 8, 0), at(day1, 9, 0))
	b := stored(2, "B", at(day1, 9, 30), at(day1, 10, 0))

	if n := NewLegEstimator(matrix, zap.NewNop()).FillMissing(context.Background(), []dbm.JourneyActivity{a, b}); n != 0 {
		t.Errorf("filled = %d, want 0", n)
	}
	if matrix.calls != 0 {
		t.Errorf("matrix called %d times without pending legs", matrix.calls)
	}

	var nilEstimator *LegEstimator
	if n := nilEstimator.FillMissing(context.Background(), []dbm.JourneyActivity{a, b}); n != 0 {
		t.Errorf("nil estimator filled %d", n)
	}
}
