package controllers_fx

import (
	"go.uber.org/fx"
	"tripcheck/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewConflictController))
