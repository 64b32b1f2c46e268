package cli

import (
	"context"
	"fmt"

	"github.com/formcraft/formbuilder-api/internal/cache"
	"github.com/formcraft/formbuilder-api/internal/config"
	"github.com/formcraft/formbuilder-api/internal/events"
	"github.com/formcraft/formbuilder-api/internal/handlers"
	"github.com/formcraft/formbuilder-api/internal/media"
	"github.com/formcraft/formbuilder-api/internal/repositories"
	"github.com/formcraft/formbuilder-api/internal/repositories/postgres"
	"github.com/formcraft/formbuilder-api/internal/services"
	"github.com/formcraft/formbuilder-api/internal/utils"
	"github.com/formcraft/formbuilder-api/internal/validator"
	"github.com/formcraft/formbuilder-api/pkg"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// application owns every long lived dependency of the process
type application struct {
	cfg       *config.Config
	logger    utils.Logger
	repo      repositories.Repository
	redis     *redis.Client
	cache     cache.CacheService
	publisher events.EventPublisher
	mediaHost media.Host
}

func newApplication(ctx context.Context, cfg *config.Config, logger utils.Logger) (*application, error) {
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return nil, err
	}

	app := &application{
		cfg:    cfg,
		logger: logger,
		repo:   postgres.NewRepository(db, validator.New()),
	}

	app.redis, err = pkg.NewRedisClient(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	if app.redis == nil {
		logger.Info("REDIS_URL not set, form cache disabled")
	}
	app.cache = cache.NewRedisCache(app.redis, logger.With("component", "cache"))

	app.publisher, err = cfg.Events.CreateEventPublisher(utils.ToSlogLogger(logger))
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create event publisher: %w", err)
	}

	app.mediaHost, err = media.NewHost(cfg.Media)
	if err != nil {
		logger.Warn("Media host not configured, uploads will fail", "provider", cfg.Media.Provider, "error", err)
		app.mediaHost = media.NewUnavailableHost(err)
	}

	return app, nil
}

func (a *application) router() *gin.Engine {
	manager := services.NewServiceManager(services.Dependencies{
		Repo:           a.repo,
		Cache:          a.cache,
		CacheTTL:       a.cfg.CacheTTL,
		Publisher:      a.publisher,
		MediaHost:      a.mediaHost,
		MaxUploadBytes: a.cfg.Media.MaxUploadBytes,
		Logger:         utils.ToSlogLogger(a.logger),
	})

	checks := map[string]handlers.Pinger{"database": a.repo}
	if a.redis != nil {
		checks["cache"] = a.cache
	}

	hm := handlers.NewHandlerManager(manager, checks, a.logger)
	return hm.NewRouter(handlers.RouterConfig{
		AllowedOrigins: a.cfg.CORSAllowedOrigins,
		MaxBodyBytes:   a.cfg.MaxBodyBytes,
		ServeStatic:    a.cfg.IsProduction(),
		StaticDir:      a.cfg.StaticDir,
	})
}

func (a *application) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.LogError(err, "Failed to close event publisher")
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.LogError(err, "Failed to close redis client")
		}
	}
	if err := a.repo.Close(); err != nil {
		a.logger.LogError(err, "Failed to close database")
	}
}
