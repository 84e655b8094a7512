package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"AstroSentinel/internal/api"
	"AstroSentinel/internal/logger"
	"AstroSentinel/internal/notifier"
	"AstroSentinel/internal/scheduler"
)

func newServeCmd(a *app) *cobra.Command {
	var digestOnStart bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the digest scheduler and the Telegram bot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, digestOnStart || os.Getenv("RUN_ON_START") == "true")
		},
	}
	cmd.Flags().BoolVar(&digestOnStart, "digest-on-start", false, "send the digest immediately on start")
	return cmd
}

func (a *app) serve(ctx context.Context, digestOnStart bool) error {
	cfg := a.cfg
	a.log.Info("AstroSentinel starting")
	a.serving = true

	svc, cleanup := a.buildService(ctx)
	defer cleanup()

	var sender scheduler.Sender
	var tn *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, logger.Component(a.log, "telegram"))
		sender = tn
	} else {
		a.log.Warn("telegram not configured, digests will only be logged")
	}

	sched := scheduler.NewScheduler(ctx, svc, sender, cfg.Schedule.Watchlist, cfg.DigestTimeframe(), logger.Component(a.log, "scheduler"))
	if err := sched.Register(cfg.Schedule.DigestCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		a.log.Info("telegram polling started")
	}

	if digestOnStart {
		a.log.Info("digest-on-start enabled, running digest now")
		go sched.RunDigestNow()
	}

	srv := api.NewServer(cfg.Server.Addr, api.NewHandler(svc, logger.Component(a.log, "api")), logger.Component(a.log, "api"))
	err := srv.Run(ctx)
	a.log.Info("AstroSentinel stopped")
	return err
}
