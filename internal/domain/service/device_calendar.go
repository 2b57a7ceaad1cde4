// Package service defines domain service contracts implemented by the
// infrastructure layer.
package service

import (
	"context"
	"errors"
	"time"

	"tattooer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCalendarPermissionDenied is returned when the artist's device calendar
// cannot be read because access has not been granted (no feed configured, or
// the feed rejects our credentials). Callers degrade to an empty result.
var ErrCalendarPermissionDenied = errors.New("device calendar permission denied")

// DeviceCalendarService reads events from the artist's device calendar.
//
// EventsInRange is the silent variant: it never triggers an authorization
// probe and returns ErrCalendarPermissionDenied when access is missing.
// RequestAccess is the interactive variant: it probes the provider once and
// reports whether access is available afterwards.
type DeviceCalendarService interface {
	EventsInRange(ctx context.Context, artistID uuid.UUID, start, end time.Time) ([]*entity.DeviceEvent, error)
	RequestAccess(ctx context.Context, artistID uuid.UUID) (bool, error)
}
