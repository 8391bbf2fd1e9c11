package ics

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/schedule"
)

// ParseBusyIntervals extracts busy intervals from an iCalendar payload.
// Each VEVENT becomes one interval; all-day events block the whole day in the
// given fallback location. Events the library cannot resolve times for are
// skipped, not fatal: a single malformed VEVENT must not hide the rest of an
// attendee's calendar.
func ParseBusyIntervals(body []byte, fallback *time.Location, logger *slog.Logger) (schedule.BusySet, error) {
	if len(body) == 0 {
		return nil, errors.New("empty iCalendar body")
	}
	if fallback == nil {
		fallback = time.UTC
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var raw []schedule.Interval
	for _, ve := range cal.Events() {
		iv, ok := eventInterval(ve, fallback)
		if !ok {
			if logger != nil {
				logger.Warn("skipping unparseable vevent", "uid", eventUID(ve))
			}
			continue
		}
		// Cancelled events do not block.
		if p := ve.GetProperty(ical.ComponentPropertyStatus); p != nil && strings.EqualFold(p.Value, "CANCELLED") {
			continue
		}
		raw = append(raw, iv)
	}
	return schedule.NewBusySet(raw), nil
}

func eventInterval(ve *ical.VEvent, fallback *time.Location) (schedule.Interval, bool) {
	if isAllDay(ve) {
		start, err := ve.GetStartAt()
		if err != nil {
			return schedule.Interval{}, false
		}
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, fallback)
		return schedule.Interval{Start: day, End: day.AddDate(0, 0, 1)}, true
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return schedule.Interval{}, false
	}
	end, err := ve.GetEndAt()
	if err != nil || !end.After(start) {
		return schedule.Interval{}, false
	}
	return schedule.Interval{Start: start, End: end}, true
}

// isAllDay detects VALUE=DATE or date-only DTSTART values.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}

func eventUID(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		return p.Value
	}
	return ""
}
