// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"tattooer/internal/domain/entity"

	"github.com/google/uuid"
)

// The per-source fetchers below are the remote query primitives the calendar
// aggregation service composes. Each is keyed by artist and a time range and
// has no awareness of the other sources.
//
// Range semantics: implementations must return every record whose own span
// intersects [start, end], plus recurring templates whose base occurrence
// starts before end (the aggregator expands and filters occurrences itself).

// BlockTimeRepository fetches manual block-time records.
type BlockTimeRepository interface {
	FindInRange(ctx context.Context, artistID uuid.UUID, start, end time.Time) ([]*entity.BlockTime, error)
}

// ScheduleRepository fetches whole-day schedule records
// (book-off days and temporary schedule changes).
type ScheduleRepository interface {
	FindInRange(ctx context.Context, artistID uuid.UUID, start, end time.Time) ([]*entity.ScheduleChange, error)
}

// ConventionRepository fetches convention and guest-spot records.
type ConventionRepository interface {
	FindInRange(ctx context.Context, artistID uuid.UUID, start, end time.Time) ([]*entity.Convention, error)
}

// SessionRepository fetches booked sessions.
type SessionRepository interface {
	FindInRange(ctx context.Context, artistID uuid.UUID, start, end time.Time) ([]*entity.Session, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
}
