// Package devicecal implements the device-calendar service on top of
// per-artist external calendar feed subscriptions (ICS). An artist grants
// access by registering a feed URL; a missing feed or a feed that rejects
// our request is surfaced as a permission error so callers can degrade.
package devicecal

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tattooer/internal/domain/entity"
	"tattooer/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const fetchTimeout = 15 * time.Second

// Config describes the feed subscriptions the provider serves.
type Config struct {
	// Feeds maps artist id (string form) to the artist's ICS feed URL.
	Feeds map[string]string `json:"feeds" yaml:"feeds"`
	// CacheDir is the base directory for the per-feed HTTP cache.
	CacheDir string `json:"cacheDir" yaml:"cacheDir"`
}

// FeedProvider reads artists' device calendars from their subscribed feeds.
// It keeps a disk-backed HTTP cache per feed so a flaky feed host degrades
// to slightly stale events instead of an empty calendar.
type FeedProvider struct {
	feeds  map[string]string
	cache  *feedCache
	client *http.Client
	logger *slog.Logger
}

// NewFeedProvider creates a feed-backed device calendar provider.
func NewFeedProvider(cfg Config, logger *slog.Logger) *FeedProvider {
	return &FeedProvider{
		feeds:  cfg.Feeds,
		cache:  newFeedCache(cfg.CacheDir),
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// EventsInRange returns the artist's device events intersecting [start, end].
// This is the silent path: when the artist has no feed registered, or the
// feed rejects the request, it returns service.ErrCalendarPermissionDenied
// without any interactive probing.
func (p *FeedProvider) EventsInRange(ctx context.Context, artistID uuid.UUID, start, end time.Time) ([]*entity.DeviceEvent, error) {
	feedURL, ok := p.feeds[artistID.String()]
	if !ok || feedURL == "" {
		return nil, service.ErrCalendarPermissionDenied
	}

	body, err := p.fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	events, err := parseFeed(body, p.logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse calendar feed")
	}

	return expandFeedEvents(events, start, end), nil
}

// RequestAccess probes the artist's feed once and reports whether device
// calendar access is available. A denial is a result, not an error.
func (p *FeedProvider) RequestAccess(ctx context.Context, artistID uuid.UUID) (bool, error) {
	feedURL, ok := p.feeds[artistID.String()]
	if !ok || feedURL == "" {
		return false, nil
	}

	if _, err := p.fetch(ctx, feedURL); err != nil {
		if errors.Is(err, service.ErrCalendarPermissionDenied) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// RefreshAll re-fetches every registered feed to keep the disk cache warm.
// Individual feed failures are logged and skipped.
func (p *FeedProvider) RefreshAll(ctx context.Context) {
	for artistID, feedURL := range p.feeds {
		if feedURL == "" {
			continue
		}
		if _, err := p.fetch(ctx, feedURL); err != nil {
			p.logger.Warn("Feed refresh failed",
				slog.String("artistID", artistID), slog.Any("error", err))
		}
	}
}
