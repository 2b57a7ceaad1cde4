package devicecal

import (
	"bytes"
	"log/slog"
	"strings"
	"time"

	"tattooer/internal/domain/entity"

	ical "github.com/arran4/golang-ical"
	"github.com/pkg/errors"
	"github.com/teambition/rrule-go"
)

// Safety cap so a pathological RRULE can never blow up a single query.
const maxOccurrencesPerEvent = 1000

// feedEvent is a parsed VEVENT before recurrence expansion.
type feedEvent struct {
	uid      string
	summary  string
	start    time.Time
	end      time.Time
	allDay   bool
	rawRRule string
	exDates  []time.Time
}

// parseFeed parses an ICS payload into feed events. A malformed VEVENT is
// logged and skipped; the rest of the feed still parses.
func parseFeed(body []byte, logger *slog.Logger) ([]feedEvent, error) {
	if len(body) == 0 {
		return nil, errors.New("empty feed body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "invalid ICS payload")
	}

	events := make([]feedEvent, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		ev, err := parseVEvent(ve)
		if err != nil {
			logger.Warn("Skipping malformed feed event", "error", err)
			continue
		}
		events = append(events, ev)
	}

	return events, nil
}

func parseVEvent(ve *ical.VEvent) (feedEvent, error) {
	var out feedEvent

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return out, errors.New("event is missing UID")
	}
	out.uid = uidProp.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.summary = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, errors.Wrap(err, "event has no usable DTSTART")
	}
	out.start = start

	if end, err := ve.GetEndAt(); err == nil {
		out.end = end
	} else {
		out.end = start
	}

	// All-day events carry a date-valued DTSTART (VALUE=DATE or no time part).
	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			out.allDay = true
		}
		if !strings.Contains(p.Value, "T") {
			out.allDay = true
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.rawRRule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseFeedTime(part); err == nil {
				out.exDates = append(out.exDates, t)
			}
		}
	}

	return out, nil
}

func parseFeedTime(v string) (time.Time, error) {
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, time.Local)
	}

	return time.ParseInLocation("20060102", v, time.Local)
}

// expandFeedEvents turns parsed events into concrete device events inside
// [rangeStart, rangeEnd], expanding recurrences and dropping everything that
// does not intersect the range.
func expandFeedEvents(events []feedEvent, rangeStart, rangeEnd time.Time) []*entity.DeviceEvent {
	out := make([]*entity.DeviceEvent, 0, len(events))

	for _, ev := range events {
		if ev.rawRRule == "" {
			if overlaps(ev.start, ev.end, rangeStart, rangeEnd) {
				out = append(out, deviceEvent(ev, ev.uid, ev.start, ev.end))
			}
			continue
		}

		for _, occStart := range occurrencesBetween(ev, rangeStart, rangeEnd) {
			occEnd := occStart.Add(ev.end.Sub(ev.start))
			if ev.allDay {
				day := time.Date(occStart.Year(), occStart.Month(), occStart.Day(), 0, 0, 0, 0, occStart.Location())
				occStart, occEnd = day, day.Add(24*time.Hour)
			}
			nativeID := ev.uid + "/" + occStart.Format(time.RFC3339)
			out = append(out, deviceEvent(ev, nativeID, occStart, occEnd))
		}
	}

	return out
}

func occurrencesBetween(ev feedEvent, rangeStart, rangeEnd time.Time) []time.Time {
	rule, err := rrule.StrToRRule(ev.rawRRule)
	if err != nil {
		return nil
	}
	rule.DTStart(ev.start)

	var set rrule.Set
	set.RRule(rule)
	for _, ex := range ev.exDates {
		set.ExDate(ex.In(ev.start.Location()))
	}

	occurrences := set.Between(rangeStart.In(ev.start.Location()), rangeEnd.In(ev.start.Location()), true)
	if len(occurrences) > maxOccurrencesPerEvent {
		occurrences = occurrences[:maxOccurrencesPerEvent]
	}

	return occurrences
}

func deviceEvent(ev feedEvent, nativeID string, start, end time.Time) *entity.DeviceEvent {
	return &entity.DeviceEvent{
		NativeID:   nativeID,
		CalendarID: ev.uid,
		Title:      ev.summary,
		Start:      start,
		End:        end,
		AllDay:     ev.allDay,
	}
}

func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !bEnd.Before(aStart)
}
