// Package dashboard wires the generators to the optional log, cache and event stream.
package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"AstroSentinel/internal/cache"
	"AstroSentinel/internal/calculator"
	"AstroSentinel/internal/events"
	"AstroSentinel/internal/generator"
	"AstroSentinel/internal/logger"
	"AstroSentinel/internal/model"
	"AstroSentinel/internal/recorder"
	"AstroSentinel/internal/seed"
	"AstroSentinel/internal/strategy"
)

// DefaultPublishTimeout bounds how long Generate waits on the event publisher.
const DefaultPublishTimeout = 3 * time.Second

// Service produces reports. It holds no per-request state and is safe for concurrent use.
type Service struct {
	Recorder  recorder.Recorder
	Cache     cache.Cache
	Publisher events.Publisher
	CacheTTL  time.Duration

	// PublishTimeout caps PublishReport so an unreachable broker cannot stall requests.
	PublishTimeout time.Duration

	log   *logrus.Entry
	now   func() time.Time
	newID func() string
}

// NewService creates a Service. Nil collaborators are replaced by no-op implementations.
func NewService(rec recorder.Recorder, c cache.Cache, pub events.Publisher, ttl time.Duration, log *logrus.Entry) *Service {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if c == nil {
		c = cache.NoopCache{}
	}
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	if log == nil {
		log = logrus.NewEntry(logger.Discard())
	}
	return &Service{
		Recorder:  rec,
		Cache:     c,
		Publisher: pub,
		CacheTTL:  ttl,

		PublishTimeout: DefaultPublishTimeout,

		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Seed validates req and returns its derived seed.
func (s *Service) Seed(req Request) (model.SeedInput, uint64, error) {
	in, err := req.SeedInput(s.now())
	if err != nil {
		return model.SeedInput{}, 0, err
	}
	return in, seed.Derive(in), nil
}

// Series generates only the price series for req.
func (s *Service) Series(req Request) (*model.PriceSeries, error) {
	in, err := req.SeedInput(s.now())
	if err != nil {
		return nil, err
	}
	return generator.PriceSeriesFor(in)
}

// Transits generates the transit table for a reference date.
func (s *Service) Transits(date string) (model.TransitTable, error) {
	ref, err := parseNotFuture(date, s.now())
	if err != nil {
		return nil, err
	}
	return generator.GenerateTransitTable(ref), nil
}

// Generate builds the full report for req, then records, caches and publishes it.
// Side-channel failures are logged, never returned.
func (s *Service) Generate(ctx context.Context, req Request) (*model.Report, error) {
	in, err := req.SeedInput(s.now())
	if err != nil {
		return nil, err
	}
	sd := seed.Derive(in)
	key := cache.ReportKey(sd)
	entry := s.log.WithFields(logrus.Fields{
		"symbol":    in.Symbol,
		"date":      in.DateString(),
		"timeframe": in.Timeframe.String(),
		"seed":      sd,
	})

	rep := s.fromCache(ctx, key, entry)
	if rep == nil {
		if rep, err = s.build(in, sd); err != nil {
			return nil, err
		}
		s.store(ctx, key, rep, entry)
	}
	rep.RunID = s.newID()
	rep.GeneratedAt = s.now().UTC()

	if err := s.Recorder.RecordReport(rep); err != nil {
		entry.WithError(err).Error("record report")
	}
	s.publish(ctx, rep, entry)
	entry.WithFields(logrus.Fields{"run_id": rep.RunID, "cached": rep.Cached}).Info("report generated")
	return rep, nil
}

// History returns the most recent generation log entries.
func (s *Service) History(limit int) ([]model.HistoryEntry, error) {
	return s.Recorder.Recent(limit)
}

func (s *Service) build(in model.SeedInput, sd uint64) (*model.Report, error) {
	series, err := generator.PriceSeriesFor(in)
	if err != nil {
		return nil, err
	}
	transits := generator.GenerateTransitTable(in.StartDate)
	sum := calculator.Summarize(series)
	return &model.Report{
		Input:    in,
		Seed:     sd,
		Series:   series,
		Transits: transits,
		Summary:  sum,
		Outlook:  strategy.Evaluate(sum, transits),
	}, nil
}

func (s *Service) publish(ctx context.Context, rep *model.Report, entry *logrus.Entry) {
	if s.PublishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.PublishTimeout)
		defer cancel()
	}
	if err := s.Publisher.PublishReport(ctx, rep); err != nil {
		entry.WithError(err).Warn("publish report event")
	}
}

func (s *Service) fromCache(ctx context.Context, key string, entry *logrus.Entry) *model.Report {
	data, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		entry.WithError(err).Warn("cache get")
		return nil
	}
	if !ok {
		return nil
	}
	var rep model.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		entry.WithError(err).Warn("discarding undecodable cache entry")
		return nil
	}
	rep.Cached = true
	return &rep
}

func (s *Service) store(ctx context.Context, key string, rep *model.Report, entry *logrus.Entry) {
	data, err := json.Marshal(rep)
	if err != nil {
		entry.WithError(err).Warn("encode report for cache")
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.CacheTTL); err != nil {
		entry.WithError(err).Warn("cache set")
	}
}
