package db_models

import "github.com/google/uuid"

type Journey struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Title     string
	Location  string
	StartDate int64  // unix seconds
	EndDate   *int64 // unix seconds

	Days []JourneyDay
}
