package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "tripcheck/internal/models/db_models"
	"tripcheck/internal/models/request_models"
	"tripcheck/internal/models/response_models"
	"tripcheck/internal/repositories"
	"tripcheck/pkg/conflicts"
	mem "tripcheck/pkg/memcache"
	"tripcheck/pkg/utils"
)

type ConflictServiceInterface interface {
	DetectForActivities(ctx context.Context, activities []conflicts.Activity, opts request_models.DetectOptions) *response_models.DetectConflictsResponse
	DetectForJourneyDay(ctx context.Context, dayId, accountId string, opts request_models.DetectOptions) (*response_models.DayConflictsResponse, error)
	DetectForJourney(ctx context.Context, journeyId, accountId string, opts request_models.DetectOptions) (*response_models.JourneyConflictsResponse, error)
	SaveLeg(ctx context.Context, accountId string, req request_models.SaveLegRequest) (uuid.UUID, error)
}

// ConflictSettings are the server-side defaults of the conflict service.
type ConflictSettings struct {
	Defaults conflicts.Options
	CacheTTL time.Duration
	Location *time.Location
}

type ConflictService struct {
	journeyRepo repositories.JourneyRepository
	estimator   *LegEstimator
	cache       mem.ResultStore
	settings    ConflictSettings
	log         *zap.Logger
}

func NewConflictService(
	journeyRepo repositories.JourneyRepository,
	estimator *LegEstimator,
	cache mem.ResultStore,
	settings ConflictSettings,
	log *zap.Logger,
) ConflictServiceInterface {
	if settings.Location == nil {
		settings.Location = utils.LoadScheduleLocation("")
	}
	return &ConflictService{
		journeyRepo: journeyRepo,
		estimator:   estimator,
		cache:       cache,
		settings:    settings,
		log:         log,
	}
}

func (s *ConflictService) DetectForActivities(
	ctx context.Context,
	activities []conflicts.Activity,
	opts request_models.DetectOptions,
) *response_models.DetectConflictsResponse {
	resolved := opts.Apply(s.settings.Defaults)
	return &response_models.DetectConflictsResponse{
		Options: resolved,
		Result:  s.detect(activities, resolved),
	}
}

func (s *ConflictService) DetectForJourneyDay(
	ctx context.Context,
	dayId, accountId string,
	opts request_models.DetectOptions,
) (*response_models.DayConflictsResponse, error) {
	if _, err := uuid.Parse(dayId); err != nil {
		return nil, fmt.Errorf("%w: day id must be a uuid", utils.ErrInvalidInput)
	}

	day, err := s.journeyRepo.GetJourneyDayWithSchedule(ctx, dayId, accountId)
	if err != nil {
		return nil, fmt.Errorf("%w: load journey day %s: %v", utils.ErrDatabaseError, dayId, err)
	}
	if day == nil {
		return nil, utils.ErrJourneyDayNotFound
	}

	out := s.checkDay(ctx, day, opts.Apply(s.settings.Defaults))
	return &out, nil
}

func (s *ConflictService) DetectForJourney(
	ctx context.Context,
	journeyId, accountId string,
	opts request_models.DetectOptions,
) (*response_models.JourneyConflictsResponse, error) {
	if _, err := uuid.Parse(journeyId); err != nil {
		return nil, fmt.Errorf("%w: journey id must be a uuid", utils.ErrInvalidInput)
	}

	journey, err := s.journeyRepo.GetJourneyWithSchedule(ctx, journeyId, accountId)
	if err != nil {
		return nil, fmt.Errorf("%w: load journey %s: %v", utils.ErrDatabaseError, journeyId, err)
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}

	resolved := opts.Apply(s.settings.Defaults)
	out := &response_models.JourneyConflictsResponse{
		Journey: s.journeyHeader(journey),
		Days:    make([]response_models.DayConflictsResponse, 0, len(journey.Days)),
	}
	for i := range journey.Days {
		day := s.checkDay(ctx, &journey.Days[i], resolved)
		out.Summary.Errors += day.Result.Summary.Errors
		out.Summary.Warnings += day.Result.Summary.Warnings
		out.Summary.Infos += day.Result.Summary.Infos
		out.Days = append(out.Days, day)
	}
	out.HasErrors = out.Summary.Errors > 0
	out.HasWarnings = out.Summary.Warnings > 0

	s.log.Info("journey checked",
		zap.String("journey_id", journeyId),
		zap.Int("days", len(out.Days)),
		zap.Int("errors", out.Summary.Errors),
		zap.Int("warnings", out.Summary.Warnings),
		zap.Int("infos", out.Summary.Infos),
	)
	return out, nil
}

func (s *ConflictService) SaveLeg(ctx context.Context, accountId string, req request_models.SaveLegRequest) (uuid.UUID, error) {
	fromID, err := uuid.Parse(req.FromActivityID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: from_activity_id must be a uuid", utils.ErrInvalidInput)
	}

	activity, err := s.journeyRepo.GetActivityById(ctx, req.FromActivityID, accountId)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: load activity %s: %v", utils.ErrDatabaseError, req.FromActivityID, err)
	}
	if activity == nil {
		return uuid.Nil, utils.ErrActivityNotFound
	}

	leg := &dbm.ItineraryLeg{
		FromActivityID:  fromID,
		Mode:            req.Mode,
		DurationMinutes: req.DurationMinutes,
		DistanceMeters:  req.DistanceMeters,
	}
	if err := s.journeyRepo.UpsertLeg(ctx, leg); err != nil {
		return uuid.Nil, fmt.Errorf("%w: save leg: %v", utils.ErrDatabaseError, err)
	}
	return leg.ID, nil
}

func (s *ConflictService) journeyHeader(journey *dbm.Journey) response_models.JourneyResponse {
	loc := s.settings.Location
	out := response_models.JourneyResponse{
		ID:        journey.ID.String(),
		Title:     journey.Title,
		Location:  journey.Location,
		StartDate: utils.FormatRFC3339(utils.FromUnixSeconds(journey.StartDate, loc), loc),
	}
	if journey.EndDate != nil {
		out.EndDate = utils.FormatRFC3339(utils.FromUnixSeconds(*journey.EndDate, loc), loc)
	}
	return out
}

func (s *ConflictService) checkDay(ctx context.Context, day *dbm.JourneyDay, opts conflicts.Options) response_models.DayConflictsResponse {
	ordered := day.OrderedActivities()
	s.estimator.FillMissing(ctx, ordered)

	return response_models.DayConflictsResponse{
		DayID:     day.ID,
		DayNumber: day.DayNumber,
		Date:      utils.FormatDate(day.Date, s.settings.Location),
		Options:   opts,
		Result:    s.detect(dbm.BuildScheduleActivities(ordered, s.settings.Location), opts),
	}
}

// detect memoizes on the activity sequence and resolved options.
func (s *ConflictService) detect(activities []conflicts.Activity, opts conflicts.Options) conflicts.ConflictCheckResult {
	key, err := cacheKey(activities, opts)
	if err != nil {
		s.log.Warn("conflict cache key", zap.Error(err))
		return conflicts.DetectWithOptions(activities, opts)
	}

	if cached, ok := s.cache.Get(key); ok {
		s.log.Debug("conflict cache hit", zap.String("key", key))
		return cached
	}

	result := conflicts.DetectWithOptions(activities, opts)
	s.cache.Set(key, result, s.settings.CacheTTL)

	if len(result.Skipped) > 0 {
		s.log.Info("activities skipped by conflict check", zap.Int("skipped", len(result.Skipped)))
	}
	s.log.Debug("conflict check",
		zap.String("key", key),
		zap.Int("activities", len(activities)),
		zap.Int("conflicts", len(result.Conflicts)),
	)
	return result
}

func cacheKey(activities []conflicts.Activity, opts conflicts.Options) (string, error) {
	raw, err := json.Marshal(struct {
		Activities []conflicts.Activity `json:"a"`
		Options    conflicts.Options    `json:"o"`
	}{activities, opts})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
