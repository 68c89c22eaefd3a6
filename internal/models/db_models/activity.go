package db_models

import (
	"time"

	"github.com/google/uuid"
)

type JourneyDay struct {
	BaseModel
	JourneyID uuid.UUID `gorm:"type:uuid;index"`
	Date      time.Time
	DayNumber int

	Activities []JourneyActivity
}

// JourneyActivity is one scheduled stop of a day. Position orders the
// activities as the traveller sees them; legs always point to the next one.
type JourneyActivity struct {
	BaseModel
	JourneyDayID uuid.UUID `gorm:"type:uuid;index"`
	Position     int
	Name         string
	ActivityType string
	StartTime    time.Time
	EndTime      *time.Time
	PlaceName    string
	Address      string
	Latitude     float64
	Longitude    float64
	Notes        string

	TransportToNext *ItineraryLeg `gorm:"foreignKey:FromActivityID"`
}

func (a JourneyActivity) HasCoordinates() bool {
	return a.Latitude != 0 || a.Longitude != 0
}
