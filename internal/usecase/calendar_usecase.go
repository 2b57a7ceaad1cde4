// Package usecase defines the application-layer contracts consumed by the
// delivery layer, decoupled from their implementations in usecase/impl.
package usecase

import (
	"context"
	"time"

	"tattooer/internal/domain/entity"

	"github.com/google/uuid"
)

// EventsInRangeInput is the query for one calendar aggregation call.
// Start and End are absolute instants; Start must not be after End.
type EventsInRangeInput struct {
	ArtistID uuid.UUID
	Start    time.Time
	End      time.Time
}

// EventsInRangeOutput carries the merged, time-ordered entries.
// Events is never nil; "no data" and "every source failed" both
// produce an empty list.
type EventsInRangeOutput struct {
	Events []entity.CalendarEntry
}

// CalendarUsecase aggregates heterogeneous schedule records into one
// render-ready calendar entry sequence. The operation is stateless and
// idempotent: identical inputs against unchanged backing data yield
// list-equal results.
type CalendarUsecase interface {
	EventsInRange(ctx context.Context, input *EventsInRangeInput) (*EventsInRangeOutput, error)

	// RequestDeviceCalendarAccess probes the artist's device-calendar
	// provider once and reports whether its events are available. A denial
	// is a result, not an error.
	RequestDeviceCalendarAccess(ctx context.Context, artistID uuid.UUID) (bool, error)
}
