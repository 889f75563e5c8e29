package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"hatake/internal/advisor"
	"hatake/internal/api"
	"hatake/internal/cache"
	"hatake/internal/config"
	"hatake/internal/dashboard"
	"hatake/internal/models"
	"hatake/internal/provider"
)

// app holds the wired dependencies shared by the subcommands.
type app struct {
	engine    *advisor.Engine
	provider  *provider.Provider
	dashboard *dashboard.Service
	redis     *redis.Client
	cached    bool
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	catalog, err := advisor.CatalogFor(cfg.Locale)
	if err != nil {
		return nil, err
	}
	engine := advisor.NewEngine(catalog)

	location := models.Location{
		Name:      cfg.Location.Name,
		Latitude:  cfg.Location.Latitude,
		Longitude: cfg.Location.Longitude,
		Timezone:  cfg.Location.Timezone,
	}

	a := &app{engine: engine}

	var forecastCache provider.Cache = cache.NopCache{}
	if cfg.Redis.Enabled {
		redisCfg := config.GetRedisConfig(cfg)
		a.redis = redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		rc := cache.NewRedisCache(a.redis, cfg.Redis.KeyPrefix, cfg.Forecast.CacheTTL)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			logger.Warn("redis unavailable, forecast cache disabled", "addr", redisCfg.Addr, "error", err)
		} else {
			forecastCache = rc
			a.cached = true
		}
	}

	client := api.NewOpenMeteoClient(cfg.Forecast.BaseURL, cfg.Forecast.Timeout)
	a.provider = provider.New(client, provider.Options{
		Location:       location,
		Days:           cfg.Forecast.Days,
		Retries:        cfg.Forecast.Retries,
		FallbackNotice: catalog.FallbackNotice,
		Cache:          forecastCache,
		Logger:         logger,
	})

	a.dashboard = dashboard.NewService(a.provider, engine, location, nil, logger)
	return a, nil
}

func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
}
