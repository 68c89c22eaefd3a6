package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripcheck/cmd/fx/config_fx"
	"tripcheck/cmd/fx/conflict_fx"
	"tripcheck/cmd/fx/controllers_fx"
	"tripcheck/cmd/fx/db_fx"
	"tripcheck/cmd/fx/distance_matrix_fx"
	"tripcheck/cmd/fx/journey_fx"
	"tripcheck/cmd/fx/logger_fx"
	"tripcheck/cmd/fx/memcache_fx"
	"tripcheck/internal/api"
	"tripcheck/internal/api/controllers"
	"tripcheck/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		journey_fx.Module,
		memcache_fx.Module,
		distance_matrix_fx.Module,
		conflict_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(cfg *config.Config, log *zap.Logger, conflictController *controllers.ConflictController) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter([]byte(cfg.JWTSecret), log.Named("http"), conflictController)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
