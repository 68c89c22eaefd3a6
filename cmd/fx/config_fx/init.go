package config_fx

import (
	"time"

	"go.uber.org/fx"
	"tripcheck/internal/config"
	"tripcheck/pkg/utils"
)

var Module = fx.Provide(config.Load, provideScheduleLocation)

func provideScheduleLocation(cfg *config.Config) *time.Location {
	return utils.LoadScheduleLocation(cfg.ScheduleZone)
}
