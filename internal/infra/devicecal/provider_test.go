package devicecal

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tattooer/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:flight-123
SUMMARY:Flight to Berlin
DTSTART:20250110T080000Z
DTEND:20250110T110000Z
END:VEVENT
BEGIN:VEVENT
UID:standup-1
SUMMARY:Weekly standup
DTSTART:20250106T090000Z
DTEND:20250106T093000Z
RRULE:FREQ=WEEKLY;COUNT=4
END:VEVENT
END:VCALENDAR
`

func feedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newTestProvider(t *testing.T, artistID uuid.UUID, feedURL string) *FeedProvider {
	t.Helper()

	return NewFeedProvider(Config{
		Feeds:    map[string]string{artistID.String(): feedURL},
		CacheDir: t.TempDir(),
	}, slog.New(slog.DiscardHandler))
}

func TestFeedProvider_EventsInRange(t *testing.T) {
	artistID := uuid.New()
	srv := feedServer(t, http.StatusOK, sampleFeed)
	provider := newTestProvider(t, artistID, srv.URL)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	events, err := provider.EventsInRange(context.Background(), artistID, start, end)
	require.NoError(t, err)

	// One single event plus four weekly occurrences.
	require.Len(t, events, 5)

	titles := map[string]int{}
	for _, ev := range events {
		titles[ev.Title]++
	}
	assert.Equal(t, 1, titles["Flight to Berlin"])
	assert.Equal(t, 4, titles["Weekly standup"])
}

func TestFeedProvider_RecurringOccurrencesKeepDuration(t *testing.T) {
	artistID := uuid.New()
	srv := feedServer(t, http.StatusOK, sampleFeed)
	provider := newTestProvider(t, artistID, srv.URL)

	start := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)

	events, err := provider.EventsInRange(context.Background(), artistID, start, end)
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC), ev.Start.UTC())
	assert.Equal(t, 30*time.Minute, ev.End.Sub(ev.Start))
	assert.Equal(t, "standup-1", ev.CalendarID)
	assert.NotEqual(t, ev.CalendarID, ev.NativeID)
}

func TestFeedProvider_NoFeedConfigured(t *testing.T) {
	provider := NewFeedProvider(Config{CacheDir: t.TempDir()}, slog.New(slog.DiscardHandler))

	_, err := provider.EventsInRange(context.Background(), uuid.New(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, service.ErrCalendarPermissionDenied)
}

func TestFeedProvider_FeedRejectsRequest(t *testing.T) {
	artistID := uuid.New()
	srv := feedServer(t, http.StatusForbidden, "")
	provider := newTestProvider(t, artistID, srv.URL)

	_, err := provider.EventsInRange(context.Background(), artistID, time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, service.ErrCalendarPermissionDenied)
}

func TestFeedProvider_RequestAccess(t *testing.T) {
	artistID := uuid.New()

	t.Run("granted", func(t *testing.T) {
		srv := feedServer(t, http.StatusOK, sampleFeed)
		provider := newTestProvider(t, artistID, srv.URL)

		granted, err := provider.RequestAccess(context.Background(), artistID)
		require.NoError(t, err)
		assert.True(t, granted)
	})

	t.Run("denied by feed", func(t *testing.T) {
		srv := feedServer(t, http.StatusUnauthorized, "")
		provider := newTestProvider(t, artistID, srv.URL)

		granted, err := provider.RequestAccess(context.Background(), artistID)
		require.NoError(t, err)
		assert.False(t, granted)
	})

	t.Run("no feed registered", func(t *testing.T) {
		provider := NewFeedProvider(Config{CacheDir: t.TempDir()}, slog.New(slog.DiscardHandler))

		granted, err := provider.RequestAccess(context.Background(), artistID)
		require.NoError(t, err)
		assert.False(t, granted)
	})
}

func TestFeedProvider_FallsBackToCacheWhenHostDown(t *testing.T) {
	artistID := uuid.New()
	srv := feedServer(t, http.StatusOK, sampleFeed)
	provider := newTestProvider(t, artistID, srv.URL)

	start := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	// Warm the cache, then take the host down.
	_, err := provider.EventsInRange(context.Background(), artistID, start, end)
	require.NoError(t, err)
	srv.Close()

	events, err := provider.EventsInRange(context.Background(), artistID, start, end)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Flight to Berlin", events[0].Title)
}
