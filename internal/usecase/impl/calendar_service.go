// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "tattooer/internal/delivery/context"
	"tattooer/internal/domain/entity"
	domainerrors "tattooer/internal/domain/errors"
	"tattooer/internal/domain/repository"
	"tattooer/internal/domain/service"
	"tattooer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/teambition/rrule-go"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Rendering category tags per source. Purely presentational; the UI maps
// them to actual colors.
const (
	colorBlockTime  = "block"
	colorBookOff    = "off-day"
	colorTempChange = "temp-change"
	colorConvention = "travel"
	colorSession    = "booking"
	colorDevice     = "external"
)

// Fixed fetch order of the calendar sources. Entries with identical start
// times keep this order after the stable merge sort, which makes query
// output deterministic.
const (
	slotBlockTime = iota
	slotSchedule
	slotDevice
	slotConvention
	slotSession
	slotCount
)

// calendarService implements the CalendarUsecase interface.
type calendarService struct {
	blockTimeRepo  repository.BlockTimeRepository
	scheduleRepo   repository.ScheduleRepository
	conventionRepo repository.ConventionRepository
	sessionRepo    repository.SessionRepository
	deviceCalendar service.DeviceCalendarService
	logger         *slog.Logger
}

// CalendarServiceParams holds dependencies for the calendar service, injected by Fx.
type CalendarServiceParams struct {
	fx.In

	BlockTimeRepo  repository.BlockTimeRepository
	ScheduleRepo   repository.ScheduleRepository
	ConventionRepo repository.ConventionRepository
	SessionRepo    repository.SessionRepository
	DeviceCalendar service.DeviceCalendarService
	Logger         *slog.Logger
}

// NewCalendarService is the constructor for calendarService.
func NewCalendarService(params CalendarServiceParams) usecase.CalendarUsecase {
	return &calendarService{
		blockTimeRepo:  params.BlockTimeRepo,
		scheduleRepo:   params.ScheduleRepo,
		conventionRepo: params.ConventionRepo,
		sessionRepo:    params.SessionRepo,
		deviceCalendar: params.DeviceCalendar,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *calendarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EventsInRange fetches every calendar source for the artist concurrently,
// expands recurring records into concrete occurrences and merges everything
// into one time-ordered list.
//
// A failing source is replaced by an empty result and logged; it never blocks
// entries from the other sources. The only errors returned are argument
// errors, so the caller can treat "no data" and "fetch failed" identically.
func (srv *calendarService) EventsInRange(ctx context.Context, input *usecase.EventsInRangeInput) (*usecase.EventsInRangeOutput, error) {
	if input == nil || input.ArtistID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "artist id is required")
	}
	if input.Start.After(input.End) {
		return nil, errors.WithStack(domainerrors.ErrInvalidRange)
	}

	artistID := input.ArtistID
	start, end := input.Start, input.End

	// One slot per source in fetch order; slots of failed sources stay empty.
	slots := make([][]entity.CalendarEntry, slotCount)

	fetchers := map[int]func(context.Context) ([]entity.CalendarEntry, error){
		slotBlockTime: func(ctx context.Context) ([]entity.CalendarEntry, error) {
			records, err := srv.blockTimeRepo.FindInRange(ctx, artistID, start, end)
			if err != nil {
				return nil, err
			}

			return blockTimeEntries(records, start, end), nil
		},
		slotSchedule: func(ctx context.Context) ([]entity.CalendarEntry, error) {
			records, err := srv.scheduleRepo.FindInRange(ctx, artistID, start, end)
			if err != nil {
				return nil, err
			}

			return scheduleEntries(records, start, end), nil
		},
		slotDevice: func(ctx context.Context) ([]entity.CalendarEntry, error) {
			events, err := srv.deviceCalendar.EventsInRange(ctx, artistID, start, end)
			if err != nil {
				return nil, err
			}

			return deviceEntries(events, start, end), nil
		},
		slotConvention: func(ctx context.Context) ([]entity.CalendarEntry, error) {
			records, err := srv.conventionRepo.FindInRange(ctx, artistID, start, end)
			if err != nil {
				return nil, err
			}

			return conventionEntries(records, start, end), nil
		},
		slotSession: func(ctx context.Context) ([]entity.CalendarEntry, error) {
			records, err := srv.sessionRepo.FindInRange(ctx, artistID, start, end)
			if err != nil {
				return nil, err
			}

			return sessionEntries(records, start, end), nil
		},
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for slot, fetch := range fetchers {
		group.Go(func() error {
			entries, err := fetch(groupCtx)
			if err != nil {
				// Fault isolation: a failed source resolves to empty
				// instead of aborting the aggregation.
				if errors.Is(err, service.ErrCalendarPermissionDenied) {
					srv.log(ctx).Debug("Device calendar not accessible, skipping source",
						slog.Any("artistID", artistID))
				} else {
					srv.log(ctx).Warn("Calendar source fetch failed, substituting empty result",
						slog.Int("slot", slot), slog.Any("artistID", artistID), slog.Any("error", err))
				}

				return nil
			}
			slots[slot] = entries

			return nil
		})
	}
	// Fetchers always return nil; Wait only synchronizes the merge step.
	_ = group.Wait()

	merged := make([]entity.CalendarEntry, 0)
	for _, entries := range slots {
		merged = append(merged, entries...)
	}

	// Stable: equal start times preserve the source fetch order.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartDate.Before(merged[j].StartDate)
	})

	return &usecase.EventsInRangeOutput{Events: merged}, nil
}

// RequestDeviceCalendarAccess triggers the interactive provider probe.
func (srv *calendarService) RequestDeviceCalendarAccess(ctx context.Context, artistID uuid.UUID) (bool, error) {
	if artistID == uuid.Nil {
		return false, errors.Wrap(domainerrors.ErrValidationFailed, "artist id is required")
	}

	granted, err := srv.deviceCalendar.RequestAccess(ctx, artistID)
	if err != nil {
		return false, errors.Wrap(err, "device calendar access probe failed")
	}

	return granted, nil
}

// blockTimeEntries converts block-time records into timed item entries,
// expanding recurrence rules against the query range.
func blockTimeEntries(records []*entity.BlockTime, start, end time.Time) []entity.CalendarEntry {
	out := make([]entity.CalendarEntry, 0, len(records))
	for _, record := range records {
		if record.Repeat == nil {
			if !rangesIntersect(record.Start, record.End, start, end) {
				continue
			}
			out = append(out, entity.CalendarEntry{
				ID:        entity.EntryID(entity.SourceBlockTime, record.ID.String()),
				Source:    entity.SourceBlockTime,
				SourceID:  record.ID.String(),
				Title:     record.Title,
				StartDate: record.Start,
				EndDate:   record.End,
				Type:      entity.EntryTypeItem,
				Color:     colorBlockTime,
			})

			continue
		}

		duration := record.End.Sub(record.Start)
		for _, occurrence := range expandRepeat(record.Repeat, record.Start, start, end) {
			out = append(out, entity.CalendarEntry{
				ID:        entity.OccurrenceID(entity.SourceBlockTime, record.ID.String(), occurrence),
				Source:    entity.SourceBlockTime,
				SourceID:  record.ID.String(),
				Title:     record.Title,
				StartDate: occurrence,
				EndDate:   occurrence.Add(duration),
				Type:      entity.EntryTypeItem,
				Color:     colorBlockTime,
			})
		}
	}

	return out
}

// scheduleEntries converts whole-day schedule records (book-off days and
// temporary schedule changes) into all-day background entries, expanded
// midnight-to-midnight.
func scheduleEntries(records []*entity.ScheduleChange, start, end time.Time) []entity.CalendarEntry {
	out := make([]entity.CalendarEntry, 0, len(records))
	for _, record := range records {
		source := entity.SourceBookOff
		color := colorBookOff
		if record.Kind == entity.ScheduleTempChange {
			source = entity.SourceTempChange
			color = colorTempChange
		}

		dayStart := startOfDay(record.StartDay)
		dayEnd := startOfDay(record.EndDay).Add(24 * time.Hour)

		if record.Repeat == nil {
			if !rangesIntersect(dayStart, dayEnd, start, end) {
				continue
			}
			out = append(out, entity.CalendarEntry{
				ID:        entity.EntryID(source, record.ID.String()),
				Source:    source,
				SourceID:  record.ID.String(),
				Title:     record.Title,
				StartDate: dayStart,
				EndDate:   dayEnd,
				AllDay:    true,
				Type:      entity.EntryTypeBackground,
				Color:     color,
			})

			continue
		}

		// Recurring day ranges keep their original span per occurrence.
		span := dayEnd.Sub(dayStart)
		for _, occurrence := range expandRepeat(record.Repeat, dayStart, start, end) {
			out = append(out, entity.CalendarEntry{
				ID:        entity.OccurrenceID(source, record.ID.String(), occurrence),
				Source:    source,
				SourceID:  record.ID.String(),
				Title:     record.Title,
				StartDate: occurrence,
				EndDate:   occurrence.Add(span),
				AllDay:    true,
				Type:      entity.EntryTypeBackground,
				Color:     color,
			})
		}
	}

	return out
}

// conventionEntries converts convention/guest-spot records into all-day item entries.
func conventionEntries(records []*entity.Convention, start, end time.Time) []entity.CalendarEntry {
	out := make([]entity.CalendarEntry, 0, len(records))
	for _, record := range records {
		dayStart := startOfDay(record.StartDay)
		dayEnd := startOfDay(record.EndDay).Add(24 * time.Hour)
		if !rangesIntersect(dayStart, dayEnd, start, end) {
			continue
		}

		title := record.Name
		if record.City != "" {
			title = record.Name + " · " + record.City
		}

		out = append(out, entity.CalendarEntry{
			ID:        entity.EntryID(entity.SourceConvention, record.ID.String()),
			Source:    entity.SourceConvention,
			SourceID:  record.ID.String(),
			Title:     title,
			StartDate: dayStart,
			EndDate:   dayEnd,
			AllDay:    true,
			Type:      entity.EntryTypeItem,
			Color:     colorConvention,
		})
	}

	return out
}

// sessionEntries converts booked sessions into timed item entries.
// Cancelled sessions never reach the calendar.
func sessionEntries(records []*entity.Session, start, end time.Time) []entity.CalendarEntry {
	out := make([]entity.CalendarEntry, 0, len(records))
	for _, record := range records {
		if record.Status == entity.SessionCancelled {
			continue
		}
		if !rangesIntersect(record.Start, record.End, start, end) {
			continue
		}

		title := record.Title
		if title == "" {
			title = record.ClientName
		}

		out = append(out, entity.CalendarEntry{
			ID:        entity.EntryID(entity.SourceSession, record.ID.String()),
			Source:    entity.SourceSession,
			SourceID:  record.ID.String(),
			Title:     title,
			StartDate: record.Start,
			EndDate:   record.End,
			Type:      entity.EntryTypeItem,
			Color:     colorSession,
		})
	}

	return out
}

// deviceEntries converts device-calendar events into entries, namespacing ids
// by the provider's native event id.
func deviceEntries(events []*entity.DeviceEvent, start, end time.Time) []entity.CalendarEntry {
	out := make([]entity.CalendarEntry, 0, len(events))
	for _, event := range events {
		if !rangesIntersect(event.Start, event.End, start, end) {
			continue
		}
		out = append(out, entity.CalendarEntry{
			ID:        entity.EntryID(entity.SourceDevice, event.NativeID),
			Source:    entity.SourceDevice,
			SourceID:  event.NativeID,
			Title:     event.Title,
			StartDate: event.Start,
			EndDate:   event.End,
			AllDay:    event.AllDay,
			Type:      entity.EntryTypeItem,
			Color:     colorDevice,
		})
	}

	return out
}

// expandRepeat walks a recurrence rule forward from its base occurrence and
// returns the occurrence start times that fall inside [rangeStart, rangeEnd].
// Occurrences before the range are skipped, never clipped; the walk stops once
// the count is exhausted or the occurrences pass the range end. A series that
// never intersects the range yields no occurrences.
func expandRepeat(repeat *entity.Repeat, base, rangeStart, rangeEnd time.Time) []time.Time {
	freq, ok := map[entity.RepeatCadence]rrule.Frequency{
		entity.RepeatDaily:   rrule.DAILY,
		entity.RepeatWeekly:  rrule.WEEKLY,
		entity.RepeatMonthly: rrule.MONTHLY,
	}[repeat.Cadence]
	if !ok {
		return nil
	}

	count := repeat.Count
	if count <= 0 {
		count = 1
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    freq,
		Count:   count,
		Dtstart: base,
	})
	if err != nil {
		return nil
	}

	return rule.Between(rangeStart, rangeEnd, true)
}

// startOfDay truncates an instant to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// rangesIntersect reports whether [aStart, aEnd] and [bStart, bEnd] overlap,
// boundaries inclusive.
func rangesIntersect(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aEnd.Before(bStart) {
		return false
	}
	if bEnd.Before(aStart) {
		return false
	}

	return true
}
