package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidWindow is returned when a scan window violates ordering or span bounds.
	ErrInvalidWindow = errors.New("invalid scan window")
	// ErrInvalidPreference is returned for malformed preference records.
	ErrInvalidPreference = errors.New("invalid preference")
)

const (
	DefaultMaxWindowDays = 7
	DefaultMinWindow     = 2 * time.Hour

	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// WindowLimits bounds the size of an acceptable scan window. Zero values fall
// back to the defaults (7 days max, 2 hours min).
type WindowLimits struct {
	MaxDays   int
	MinWindow time.Duration
}

func (l WindowLimits) maxDays() int {
	if l.MaxDays <= 0 {
		return DefaultMaxWindowDays
	}
	return l.MaxDays
}

func (l WindowLimits) minWindow() time.Duration {
	if l.MinWindow <= 0 {
		return DefaultMinWindow
	}
	return l.MinWindow
}

// TimeWindow is a validated multi-day scan window. Start and End are the first
// and last offerable instants (first day at the daily open time, last day at the
// daily close time), both in the window's zone.
type TimeWindow struct {
	Start time.Time
	End   time.Time
	Loc   *time.Location

	firstDay time.Time
	lastDay  time.Time
}

// NewTimeWindow builds a window from scan dates (YYYY-MM-DD), an IANA zone and
// the daily open/close clock times (minutes from midnight). It fails with
// ErrInvalidWindow when the end date precedes the start date, the span exceeds
// limits.MaxDays, or the window is shorter than limits.MinWindow.
func NewTimeWindow(startDate, endDate, zone string, openMinute, closeMinute int, limits WindowLimits) (TimeWindow, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalidWindow, zone)
	}
	firstDay, err := time.ParseInLocation(dateLayout, startDate, loc)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: bad start date %q", ErrInvalidWindow, startDate)
	}
	lastDay, err := time.ParseInLocation(dateLayout, endDate, loc)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: bad end date %q", ErrInvalidWindow, endDate)
	}
	if lastDay.Before(firstDay) {
		return TimeWindow{}, fmt.Errorf("%w: end date %s before start date %s", ErrInvalidWindow, endDate, startDate)
	}
	// Close may fall earlier in the day than open on multi-day windows (start
	// mid-afternoon, end mid-morning); overall ordering is checked on the
	// resolved instants below.
	if openMinute < 0 || openMinute >= 24*60 || closeMinute <= 0 || closeMinute > 24*60 {
		return TimeWindow{}, fmt.Errorf("%w: daily open/close out of range", ErrInvalidWindow)
	}

	spanDays := daysBetween(firstDay, lastDay) + 1
	if spanDays > limits.maxDays() {
		return TimeWindow{}, fmt.Errorf("%w: span %d days exceeds maximum %d", ErrInvalidWindow, spanDays, limits.maxDays())
	}

	w := TimeWindow{
		Start:    clockOnDay(firstDay, openMinute, loc),
		End:      clockOnDay(lastDay, closeMinute, loc),
		Loc:      loc,
		firstDay: firstDay,
		lastDay:  lastDay,
	}
	if !w.End.After(w.Start) {
		return TimeWindow{}, fmt.Errorf("%w: window end not after start", ErrInvalidWindow)
	}
	if w.End.Sub(w.Start) < limits.minWindow() {
		return TimeWindow{}, fmt.Errorf("%w: window shorter than minimum %s", ErrInvalidWindow, limits.minWindow())
	}
	return w, nil
}

// Days returns the calendar dates of the window, inclusive, as midnights in the
// window's zone. The slice is freshly built on every call.
func (w TimeWindow) Days() []time.Time {
	var days []time.Time
	for d := w.firstDay; !d.After(w.lastDay); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Shift returns a copy of the window moved so that it starts at the given
// instant, preserving the span and zone. Used by recurrence expansion.
func (w TimeWindow) Shift(newStart time.Time) TimeWindow {
	delta := newStart.Sub(w.Start)
	return TimeWindow{
		Start:    w.Start.Add(delta),
		End:      w.End.Add(delta),
		Loc:      w.Loc,
		firstDay: midnightOf(w.Start.Add(delta).In(w.Loc)),
		lastDay:  midnightOf(w.End.Add(delta).In(w.Loc)),
	}
}

// ParseClock parses a HH:MM clock string into minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("bad clock time %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// clockOnDay resolves a minute-of-day on a calendar day as local wall-clock
// time, which stays correct across DST transitions inside the window.
func clockOnDay(day time.Time, minute int, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minute/60, minute%60, 0, 0, loc)
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(a, b time.Time) int {
	n := 0
	for d := a; d.Before(b); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}
