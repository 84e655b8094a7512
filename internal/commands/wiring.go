package commands

import (
	"context"
	"time"

	"AstroSentinel/internal/cache"
	"AstroSentinel/internal/dashboard"
	"AstroSentinel/internal/events"
	"AstroSentinel/internal/logger"
	"AstroSentinel/internal/model"
	"AstroSentinel/internal/recorder"
)

// buildService assembles the dashboard service from config. Optional backends that
// fail to initialise degrade to no-ops with a warning.
func (a *app) buildService(ctx context.Context) (*dashboard.Service, func()) {
	cfg := a.cfg
	var closers []func() error

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, logger.Component(a.log, "recorder"))
		if err != nil {
			a.log.WithError(err).Warn("init sqlite recorder failed, using noop")
		} else {
			rec = sr
			closers = append(closers, sr.Close)
		}
	}

	c := a.newCache(ctx)
	closers = append(closers, c.Close)

	var pub events.Publisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		pub = kp
		closers = append(closers, kp.Close)
	}

	svc := dashboard.NewService(rec, c, pub, cfg.Redis.TTL, logger.Component(a.log, "dashboard"))
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				a.log.WithError(err).Warn("close backend")
			}
		}
	}
	return svc, cleanup
}

// newCache picks Redis when configured. Without Redis a long-running serve process keeps an
// in-process cache; one-shot commands gain nothing from one and use the no-op cache.
func (a *app) newCache(ctx context.Context) cache.Cache {
	cfg := a.cfg
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger.Component(a.log, "cache"))
		if err == nil {
			return rc
		}
		a.log.WithError(err).Warn("init redis cache failed")
	}
	if a.serving {
		a.log.Info("using in-process report cache")
		return cache.NewMemoryCache()
	}
	return cache.NoopCache{}
}

func today() string {
	return time.Now().Format(model.DateLayout)
}
