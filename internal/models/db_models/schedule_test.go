package db_models

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"tripcheck/pkg/conflicts"
)

func TestBuildScheduleActivities(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)

	end := day.Add(10 * time.Hour)
	dist := 2500
	museum := JourneyActivity{
		Position: 2, Name: "War Remnants Museum", ActivityType: "sightseeing",
		StartTime: day.Add(9 * time.Hour), EndTime: &end,
		PlaceName: "War Remnants Museum", Address: "28 Vo Van Tan",
		TransportToNext: &ItineraryLeg{Mode: "walk", DistanceMeters: &dist},
	}
	museum.ID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	museum.TransportToNext.ID = uuid.MustParse("33333333-3333-3333-3333-333333333333")

	breakfast := JourneyActivity{Position: 1, Name: "Pho", ActivityType: "dining", StartTime: day.Add(7 * time.Hour)}
	breakfast.ID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	d := JourneyDay{Activities: []JourneyActivity{museum, breakfast}}
	got := BuildScheduleActivities(d.OrderedActivities(), loc)

	want := []conflicts.Activity{
		{ID: breakfast.ID.String(), Name: "Pho", Type: conflicts.ActivityDining, StartTime: "07:00"},
		{
			ID: museum.ID.String(), Name: "War Remnants Museum", Type: conflicts.ActivitySightseeing,
			StartTime: "09:00", EndTime: "10:00",
			Location: conflicts.Location{Name: "War Remnants Museum", Address: "28 Vo Van Tan"},
			TransportToNext: &conflicts.ItineraryLeg{
				ID:                 museum.TransportToNext.ID.String(),
				TransportationMode: conflicts.ModeWalk,
				EstimatedDistance:  2.5,
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
	if d.Activities[0].Position != 2 {
		t.Error("OrderedActivities must not reorder the day in place")
	}
}

func TestOrderedActivities_TiesBreakOnStart(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	late := JourneyActivity{Name: "late", StartTime: base.Add(12 * time.Hour)}
	early := JourneyActivity{Name: "early", StartTime: base.Add(8 * time.Hour)}

	d := JourneyDay{Activities: []JourneyActivity{late, early}}
	got := d.OrderedActivities()
	if got[0].Name != "early" || got[1].Name != "late" {
		t.Errorf("order = %s, %s", got[0].Name, got[1].Name)
	}
}
