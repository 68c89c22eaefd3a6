package conflict_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripcheck/internal/config"
	"tripcheck/internal/repositories"
	"tripcheck/internal/services"
	mem "tripcheck/pkg/memcache"
)

var Module = fx.Provide(provideLegEstimator, provideConflictService)

func provideLegEstimator(matrix services.DistanceMatrixService, log *zap.Logger) *services.LegEstimator {
	return services.NewLegEstimator(matrix, log.Named("legs"))
}

func provideConflictService(
	journeyRepo repositories.JourneyRepository,
	estimator *services.LegEstimator,
	cache mem.ResultStore,
	cfg *config.Config,
	loc *time.Location,
	log *zap.Logger,
) services.ConflictServiceInterface {
	return services.NewConflictService(journeyRepo, estimator, cache, services.ConflictSettings{
		Defaults: cfg.DetectDefault,
		CacheTTL: cfg.CacheTTL,
		Location: loc,
	}, log.Named("conflicts"))
}
