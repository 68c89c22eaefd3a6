package response_models

import (
	"github.com/google/uuid"
	"tripcheck/pkg/conflicts"
)

type DayConflictsResponse struct {
	DayID     uuid.UUID                     `json:"day_id"`
	DayNumber int                           `json:"day_number"`
	Date      string                        `json:"date"` // YYYY-MM-DD in the schedule zone
	Options   conflicts.Options             `json:"options"`
	Result    conflicts.ConflictCheckResult `json:"result"`
}

// JourneyConflictsResponse has one entry per day, ordered by day number.
type JourneyConflictsResponse struct {
	Journey     JourneyResponse        `json:"journey"`
	HasErrors   bool                   `json:"has_errors"`
	HasWarnings bool                   `json:"has_warnings"`
	Summary     conflicts.Summary      `json:"summary"`
	Days        []DayConflictsResponse `json:"days"`
}

type SaveLegResponse struct {
	ID uuid.UUID `json:"id"`
}

type DetectConflictsResponse struct {
	Options conflicts.Options             `json:"options"`
	Result  conflicts.ConflictCheckResult `json:"result"`
}
