package db_models

import "github.com/google/uuid"

// ItineraryLeg is the transport from one activity to the next in its day.
// Duration and distance are optional; missing values are estimated when the
// schedule is checked.
type ItineraryLeg struct {
	BaseModel
	FromActivityID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Mode            string
	DurationMinutes *int
	DistanceMeters  *int
}
