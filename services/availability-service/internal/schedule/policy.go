package schedule

import (
	"fmt"
	"time"
)

// Policy is a user's scheduling preference record, loaded once per request and
// immutable during slot generation.
type Policy struct {
	SlotDuration time.Duration
	WorkDays     [7]bool // indexed by time.Weekday
	WorkStart    int     // minutes from midnight, policy zone
	WorkEnd      int
	BufferBefore time.Duration
	BufferAfter  time.Duration
	Loc          *time.Location
}

// DefaultPolicy is the fallback for users without a stored preference record:
// Mon-Fri 09:00-17:00, 30 minute slots, no buffers.
func DefaultPolicy(loc *time.Location) Policy {
	if loc == nil {
		loc = time.UTC
	}
	var days [7]bool
	for wd := time.Monday; wd <= time.Friday; wd++ {
		days[wd] = true
	}
	return Policy{
		SlotDuration: 30 * time.Minute,
		WorkDays:     days,
		WorkStart:    9 * 60,
		WorkEnd:      17 * 60,
		Loc:          loc,
	}
}

func (p Policy) Validate() error {
	if p.SlotDuration <= 0 {
		return fmt.Errorf("%w: non-positive slot duration", ErrInvalidPreference)
	}
	if p.WorkStart < 0 || p.WorkEnd > 24*60 || p.WorkEnd <= p.WorkStart {
		return fmt.Errorf("%w: work start %d not before work end %d", ErrInvalidPreference, p.WorkStart, p.WorkEnd)
	}
	if p.BufferBefore < 0 || p.BufferAfter < 0 {
		return fmt.Errorf("%w: negative buffer", ErrInvalidPreference)
	}
	if p.Loc == nil {
		return fmt.Errorf("%w: missing timezone", ErrInvalidPreference)
	}
	anyDay := false
	for _, worked := range p.WorkDays {
		anyDay = anyDay || worked
	}
	if !anyDay {
		return fmt.Errorf("%w: no work days", ErrInvalidPreference)
	}
	return nil
}

// OpenInterval returns the work-hours interval for a calendar day, or false
// when the weekday is not worked. The day's calendar date is re-anchored in the
// policy zone, so a window scanning dates in one zone evaluates each date
// against the same-named date of the policy's zone.
func (p Policy) OpenInterval(day time.Time) (Interval, bool) {
	local := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, p.Loc)
	if !p.WorkDays[local.Weekday()] {
		return Interval{}, false
	}
	open := Interval{
		Start: clockOnDay(local, p.WorkStart, p.Loc),
		End:   clockOnDay(local, p.WorkEnd, p.Loc),
	}
	if !open.IsValid() {
		return Interval{}, false
	}
	return open, true
}
