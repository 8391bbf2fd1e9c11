package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// occurrence cap so a malformed rule cannot expand without bound.
const maxOccurrences = 366

// Recurrence describes how a meeting-assist window repeats. Until is the last
// calendar date (inclusive) on which an occurrence may start.
type Recurrence struct {
	Frequency string // daily, weekly, monthly or yearly
	Interval  int
	Until     time.Time
}

func (r Recurrence) frequency() (rrule.Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(r.Frequency)) {
	case "daily":
		return rrule.DAILY, nil
	case "weekly":
		return rrule.WEEKLY, nil
	case "monthly":
		return rrule.MONTHLY, nil
	case "yearly":
		return rrule.YEARLY, nil
	default:
		return 0, fmt.Errorf("%w: unknown recurrence frequency %q", ErrInvalidWindow, r.Frequency)
	}
}

// ExpandWindows expands a base window into one window per occurrence, each
// shifted by the recurrence step and truncated at Until. The base window is
// always the first occurrence. Every produced window is independent; callers
// feed each one through slot generation with whatever busy data is current at
// that point.
func ExpandWindows(base TimeWindow, rec Recurrence) ([]TimeWindow, error) {
	freq, err := rec.frequency()
	if err != nil {
		return nil, err
	}
	if rec.Until.IsZero() {
		return nil, fmt.Errorf("%w: recurrence end date required", ErrInvalidWindow)
	}
	if !rec.Until.After(base.Start) {
		return nil, fmt.Errorf("%w: recurrence ends before the window starts", ErrInvalidWindow)
	}
	interval := rec.Interval
	if interval <= 0 {
		interval = 1
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  base.Start,
		Until:    rec.Until,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	starts := rule.All()
	if len(starts) > maxOccurrences {
		starts = starts[:maxOccurrences]
	}
	windows := make([]TimeWindow, 0, len(starts))
	for _, start := range starts {
		windows = append(windows, base.Shift(start.In(base.Loc)))
	}
	return windows, nil
}
