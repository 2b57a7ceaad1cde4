// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EntrySource identifies the kind of record a calendar entry was produced from.
// The aggregator tags every entry with its source so the caller can route
// "view details" navigation back to the originating record.
type EntrySource string

const (
	SourceBlockTime  EntrySource = "block_time"
	SourceConvention EntrySource = "spot_convention"
	SourceTempChange EntrySource = "temp_change"
	SourceBookOff    EntrySource = "book_off"
	SourceSession    EntrySource = "session"
	SourceDevice     EntrySource = "device"
)

// EntryType controls how an entry is rendered on the calendar.
type EntryType string

const (
	// EntryTypeItem is a regular timed (or all-day) block.
	EntryTypeItem EntryType = "item"
	// EntryTypeBackground renders as a full-day indicator behind timed items.
	EntryTypeBackground EntryType = "background"
)

// CalendarEntry is a single render-ready calendar item produced by the
// aggregation service. Entries are ephemeral: constructed fresh per query,
// never persisted. Recurring records are always expanded into concrete
// per-occurrence entries before they reach this type.
//
// Invariant: StartDate <= EndDate.
type CalendarEntry struct {
	ID        string      // Globally unique within one query result, namespaced by source (e.g. "device:<nativeId>").
	Source    EntrySource // Which kind of record this entry came from.
	SourceID  string      // Identifier of the originating record, used for detail navigation.
	Title     string
	StartDate time.Time
	EndDate   time.Time
	AllDay    bool      // True for day-range entries rendered without a time of day.
	Type      EntryType // Background entries render as full-day indicators.
	Color     string    // Semantic color tag for the rendering category.
}

// RepeatCadence is the unit a recurring record repeats on.
type RepeatCadence string

const (
	RepeatDaily   RepeatCadence = "daily"
	RepeatWeekly  RepeatCadence = "weekly"
	RepeatMonthly RepeatCadence = "monthly"
)

// Repeat describes the recurrence rule attached to a source record.
// Count bounds the series; expansion is additionally bounded by the
// query range, so a Repeat never produces unbounded output.
type Repeat struct {
	Cadence RepeatCadence
	Count   int
}

// BlockTime is a manual block-time record: a timed range during which the
// artist is unavailable for booking. May carry a recurrence rule.
type BlockTime struct {
	ID       uuid.UUID
	ArtistID uuid.UUID
	Title    string
	Start    time.Time
	End      time.Time
	Repeat   *Repeat // nil for one-off blocks
}

// ScheduleChangeKind distinguishes the two whole-day schedule record kinds.
type ScheduleChangeKind string

const (
	// ScheduleBookOff marks whole days the artist does not work.
	ScheduleBookOff ScheduleChangeKind = "book_off"
	// ScheduleTempChange marks whole days with temporarily different hours.
	ScheduleTempChange ScheduleChangeKind = "temp_change"
)

// ScheduleChange is a whole-day schedule record (book-off days or temporary
// schedule changes). StartDay/EndDay are inclusive day boundaries; the
// aggregator expands them midnight-to-midnight. May carry a recurrence rule
// (e.g. every Monday off).
type ScheduleChange struct {
	ID       uuid.UUID
	ArtistID uuid.UUID
	Kind     ScheduleChangeKind
	Title    string
	StartDay time.Time
	EndDay   time.Time
	Repeat   *Repeat
}

// Convention is a guest-spot or convention booking: the artist works away
// from the studio for an inclusive day range.
type Convention struct {
	ID       uuid.UUID
	ArtistID uuid.UUID
	Name     string
	City     string
	StartDay time.Time
	EndDay   time.Time
}

// SessionStatus is the lifecycle state of a booked tattoo session.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Session is a booked appointment between an artist and a client.
type Session struct {
	ID         uuid.UUID
	ArtistID   uuid.UUID
	ClientName string
	Title      string
	Start      time.Time
	End        time.Time
	Status     SessionStatus
}

// DeviceEvent is an event read from the artist's device calendar
// (realized as an external calendar feed subscription).
type DeviceEvent struct {
	NativeID   string // The provider's own identifier for the event.
	CalendarID string
	Title      string
	Start      time.Time
	End        time.Time
	AllDay     bool
}

// EntryID builds the namespaced calendar-entry id for a source record.
func EntryID(source EntrySource, sourceID string) string {
	prefix := map[EntrySource]string{
		SourceBlockTime:  "block",
		SourceConvention: "convention",
		SourceTempChange: "change",
		SourceBookOff:    "bookoff",
		SourceSession:    "session",
		SourceDevice:     "device",
	}[source]

	return fmt.Sprintf("%s:%s", prefix, sourceID)
}

// OccurrenceID builds the per-occurrence id for an expanded recurring record,
// keeping ids unique across occurrences of the same template.
func OccurrenceID(source EntrySource, sourceID string, occurrence time.Time) string {
	return fmt.Sprintf("%s:%s", EntryID(source, sourceID), occurrence.Format("2006-01-02"))
}
