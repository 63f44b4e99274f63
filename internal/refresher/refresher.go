package refresher

import (
	"context"
	"fmt"
	"time"

	"github.com/forkfeed/forkfeed-client/internal/stores/account"
	"github.com/forkfeed/forkfeed-client/internal/stores/notifications"
	"github.com/forkfeed/forkfeed-client/pkg/config"
	"github.com/forkfeed/forkfeed-client/pkg/logger"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config        *config.Config
	Logger        logger.Logger
	Account       account.Store
	Notifications notifications.Store
}

// Refresher keeps the notification mapping fresh while a session is
// authenticated. It adds no retry of its own; a failed refresh waits
// for the next tick.
type Refresher struct {
	cfg           *config.Config
	logger        logger.Logger
	account       account.Store
	notifications notifications.Store
	scheduler     gocron.Scheduler
}

func New(opts Opts) *Refresher {
	return &Refresher{
		cfg:           opts.Config,
		logger:        opts.Logger.WithComponent("NotificationRefresher"),
		account:       opts.Account,
		notifications: opts.Notifications,
	}
}

func (r *Refresher) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create refresh scheduler: %w", err)
	}
	r.scheduler = scheduler

	interval := time.Duration(r.cfg.Notifications.RefreshMinutes) * time.Minute

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				r.logger.Info("Context cancelled, skipping notification refresh")
				return
			}
			if !r.account.HasLogin() {
				r.logger.Debug("Not authenticated, skipping notification refresh")
				return
			}

			taskCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			r.logger.Info("Refreshing notifications")
			r.notifications.QueryNotifications(taskCtx)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule notification refresh: %w", err)
	}

	scheduler.Start()

	return nil
}

func (r *Refresher) Shutdown() error {
	if r.scheduler == nil {
		return nil
	}
	return r.scheduler.Shutdown()
}
