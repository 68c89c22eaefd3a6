package db_models

import (
	"sort"
	"time"

	"tripcheck/pkg/conflicts"
	"tripcheck/pkg/utils"
)

// OrderedActivities returns the day's activities by Position, then start time.
func (d *JourneyDay) OrderedActivities() []JourneyActivity {
	out := make([]JourneyActivity, len(d.Activities))
	copy(out, d.Activities)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// BuildScheduleActivities converts ordered stored activities into the
// sequence the conflict detector reads. Times are rendered as wall clock in loc.
func BuildScheduleActivities(ordered []JourneyActivity, loc *time.Location) []conflicts.Activity {
	out := make([]conflicts.Activity, 0, len(ordered))
	for _, a := range ordered {
		item := conflicts.Activity{
			ID:        a.ID.String(),
			Name:      a.Name,
			Type:      conflicts.ActivityType(a.ActivityType),
			StartTime: utils.FormatClock(a.StartTime, loc),
			Location: conflicts.Location{
				Name:    a.PlaceName,
				Address: a.Address,
			},
		}
		if a.EndTime != nil {
			item.EndTime = utils.FormatClock(*a.EndTime, loc)
		}
		if a.TransportToNext != nil {
			item.TransportToNext = a.TransportToNext.ToScheduleLeg()
		}
		out = append(out, item)
	}
	return out
}

func (l *ItineraryLeg) ToScheduleLeg() *conflicts.ItineraryLeg {
	leg := &conflicts.ItineraryLeg{
		ID:                 l.ID.String(),
		TransportationMode: conflicts.TransportationMode(l.Mode),
	}
	if l.DurationMinutes != nil {
		leg.EstimatedDuration = *l.DurationMinutes
	}
	if l.DistanceMeters != nil {
		leg.EstimatedDistance = float64(*l.DistanceMeters) / 1000
	}
	return leg
}
