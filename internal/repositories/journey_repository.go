package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "tripcheck/internal/models/db_models"
)

// JourneyRepository reads stored schedules. Lookups are scoped to the
// owning account and return (nil, nil) when nothing matches.
type JourneyRepository interface {
	GetJourneyWithSchedule(ctx context.Context, journeyId, accountId string) (*dbm.Journey, error)
	GetJourneyDayWithSchedule(ctx context.Context, dayId, accountId string) (*dbm.JourneyDay, error)
	GetActivityById(ctx context.Context, activityId, accountId string) (*dbm.JourneyActivity, error)
	UpsertLeg(ctx context.Context, leg *dbm.ItineraryLeg) error
}

type journeyRepository struct {
	db *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

func orderedActivities(db *gorm.DB) *gorm.DB {
	return db.Order("journey_activities.position ASC, journey_activities.start_time ASC")
}

func (r *journeyRepository) GetJourneyWithSchedule(ctx context.Context, journeyId, accountId string) (*dbm.Journey, error) {
	var journey dbm.Journey
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", journeyId, accountId).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("journey_days.day_number ASC")
		}).
		Preload("Days.Activities", orderedActivities).
		Preload("Days.Activities.TransportToNext").
		First(&journey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journey, nil
}

func (r *journeyRepository) GetJourneyDayWithSchedule(ctx context.Context, dayId, accountId string) (*dbm.JourneyDay, error) {
	var day dbm.JourneyDay
	err := r.db.WithContext(ctx).
		Joins("JOIN journeys ON journeys.id = journey_days.journey_id AND journeys.deleted_at IS NULL").
		Where("journey_days.id = ? AND journeys.account_id = ?", dayId, accountId).
		Preload("Activities", orderedActivities).
		Preload("Activities.TransportToNext").
		First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

func (r *journeyRepository) GetActivityById(ctx context.Context, activityId, accountId string) (*dbm.JourneyActivity, error) {
	var activity dbm.JourneyActivity
	err := r.db.WithContext(ctx).
		Joins("JOIN journey_days ON journey_days.id = journey_activities.journey_day_id").
		Joins("JOIN journeys ON journeys.id = journey_days.journey_id AND journeys.deleted_at IS NULL").
		Where("journey_activities.id = ? AND journeys.account_id = ?", activityId, accountId).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

// UpsertLeg writes the single leg leaving leg.FromActivityID, replacing any
// previous one.
func (r *journeyRepository) UpsertLeg(ctx context.Context, leg *dbm.ItineraryLeg) error {
	if leg.ID == uuid.Nil {
		leg.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "from_activity_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"mode", "duration_minutes", "distance_meters", "updated_at", "deleted_at"}),
		}).Create(leg).Error
		if err != nil {
			return err
		}
		// on conflict the stored row keeps its original id
		return tx.Where("from_activity_id = ?", leg.FromActivityID).First(leg).Error
	})
}
