package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/clinic-reports/analytics"
	"github.com/tidepool-org/clinic-reports/config"
	"github.com/tidepool-org/clinic-reports/logger"
	"github.com/tidepool-org/clinic-reports/records/repository"
	"github.com/tidepool-org/clinic-reports/reports"
	"github.com/tidepool-org/clinic-reports/store"
)

func Start(e *echo.Echo, cfg *config.Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Infow("starting server", "address", cfg.ServerAddress)
				if err := e.Start(cfg.ServerAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Errorw("server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// Set after mongo is initialized. Lifecycle hooks run in topological order and
			// this hook depends on the database.
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewFormattingConfig(cfg *config.Config) (analytics.FormattingConfig, error) {
	loc, err := cfg.Location()
	if err != nil {
		return analytics.FormattingConfig{}, err
	}
	return analytics.NewFormattingConfig(cfg.Currency, cfg.Locale, loc)
}

// Dependencies is the provider graph shared by the service and the command line tools
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.NewConfig,
			logger.NewProductionLogger,
			logger.Suggar,
			store.NewConfig,
			store.NewClient,
			store.NewDatabase,
			repository.NewRepository,
			NewFormattingConfig,
			analytics.NewSystemClock,
			analytics.NewAssembler,
			reports.NewService,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	fx.New(
		append(Dependencies(),
			fx.Invoke(SetReady),
			fx.Invoke(Start),
		)...,
	).Run()
}
