package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"AstroSentinel/internal/dashboard"
	"AstroSentinel/internal/model"
	"AstroSentinel/internal/notifier"
)

// Sender delivers formatted messages. *notifier.TelegramNotifier satisfies it.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs the daily digest and answers chat commands.
type Scheduler struct {
	Cron      *cron.Cron
	Service   *dashboard.Service
	Sender    Sender
	Watchlist []string
	Timeframe model.Timeframe
	Ctx       context.Context

	log *logrus.Entry
	now func() time.Time
}

// NewScheduler creates a new Scheduler. sender may be nil, in which case digests are only logged.
func NewScheduler(ctx context.Context, svc *dashboard.Service, sender Sender, watchlist []string, tf model.Timeframe, log *logrus.Entry) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Service:   svc,
		Sender:    sender,
		Watchlist: watchlist,
		Timeframe: tf,
		Ctx:       ctx,
		log:       log,
		now:       time.Now,
	}
}

// Register adds the digest task under the given cron spec (with seconds).
func (s *Scheduler) Register(digestCron string) error {
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// RunDigestNow executes the digest task immediately and returns the message it built.
func (s *Scheduler) RunDigestNow() string {
	return s.digest()
}

func (s *Scheduler) digestTask() {
	s.digest()
}

func (s *Scheduler) digest() string {
	today := s.now().Format(model.DateLayout)
	s.log.WithFields(logrus.Fields{"date": today, "symbols": len(s.Watchlist)}).Info("running digest task")

	var reports []*model.Report
	for _, sym := range s.Watchlist {
		rep, err := s.Service.Generate(s.Ctx, dashboard.Request{Symbol: sym, Date: today, Timeframe: s.Timeframe.String()})
		if err != nil {
			s.log.WithError(err).WithField("symbol", sym).Error("digest generate")
			continue
		}
		reports = append(reports, rep)
	}
	if len(reports) == 0 {
		s.trySend("❌ digest produced no reports")
		return ""
	}
	msg := notifier.FormatDigest(today, reports)
	s.trySend(msg)
	return msg
}

func (s *Scheduler) trySend(text string) {
	if s.Sender == nil {
		s.log.Debug("no sender configured, digest not delivered")
		return
	}
	if err := s.Sender.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.log.WithError(err).Error("send notification")
	}
}
