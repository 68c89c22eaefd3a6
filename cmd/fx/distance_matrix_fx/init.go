package distance_matrix_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripcheck/internal/config"
	"tripcheck/internal/services"
)

var Module = fx.Provide(provideMatrixService)

// provideMatrixService returns nil without a Mapbox token; legs then keep
// whatever estimates they were stored with.
func provideMatrixService(cfg *config.Config, log *zap.Logger) services.DistanceMatrixService {
	if cfg.MapboxToken == "" {
		log.Info("MAPBOX_ACCESS_TOKEN not set, leg distance estimation disabled")
		return nil
	}
	return services.NewMapboxMatrixClient(cfg.MapboxToken, services.NewInMemoryPairCache())
}
