package journey_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripcheck/internal/repositories"
)

var Module = fx.Provide(provideJourneyRepo)

func provideJourneyRepo(db *gorm.DB) repositories.JourneyRepository {
	return repositories.NewJourneyRepository(db)
}
