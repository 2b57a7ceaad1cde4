// Package scheduler runs the background jobs of the service on cron
// schedules. Its only job today is keeping the device-calendar feed cache
// warm so calendar queries rarely hit a cold or unreachable feed host.
package scheduler

import (
	"context"
	"log/slog"

	"tattooer/config"
	"tattooer/internal/delivery"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const defaultRefreshCron = "@every 30m"

// FeedRefresher re-fetches every subscribed calendar feed.
type FeedRefresher interface {
	RefreshAll(ctx context.Context)
}

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Refresher FeedRefresher
}

type scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler builds the cron delivery with the feed refresh job registered.
func NewScheduler(params Params) (delivery.Delivery, error) {
	spec := defaultRefreshCron
	if params.Config.DeviceCalendar != nil && params.Config.DeviceCalendar.RefreshCron != "" {
		spec = params.Config.DeviceCalendar.RefreshCron
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		params.Logger.Debug("Refreshing device calendar feeds")
		params.Refresher.RefreshAll(context.Background())
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invalid feed refresh schedule %q", spec)
	}

	s := &scheduler{
		cron:   c,
		logger: params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron loop and blocks until the context is cancelled.
func (s *scheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting background scheduler")
	s.cron.Start()

	<-ctx.Done()

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down background scheduler")

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}

	return nil
}
