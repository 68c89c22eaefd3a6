package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tripcheck/internal/api/controllers"
	"tripcheck/pkg/middleware"
)

func NewRouter(jwtSecret []byte, log *zap.Logger, conflictController *controllers.ConflictController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, jwtSecret, conflictController)
	return r
}

func RegisterRoutes(r *gin.Engine, jwtSecret []byte, conflictController *controllers.ConflictController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	conflictsGroup := r.Group("/conflicts")
	conflictsGroup.POST("/detect", conflictController.DetectConflicts)

	auth := middleware.JWTAuthMiddleware(jwtSecret)

	journeyGroup := r.Group("/journeys", auth)
	journeyGroup.GET("/:journeyId/conflicts", conflictController.GetJourneyConflicts)
	journeyGroup.POST("/legs", conflictController.SaveLeg)

	dayGroup := r.Group("/journey-days", auth)
	dayGroup.GET("/:dayId/conflicts", conflictController.GetJourneyDayConflicts)
}
