package schedule

import (
	"sort"
	"time"
)

// CandidateSlot is a single offerable meeting time. Score reflects alignment
// with attendees' preferred time ranges; 0 when no preference data applies.
type CandidateSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Score float64   `json:"score"`
}

// SlotsByDate maps a calendar date (YYYY-MM-DD in the receiver zone) to that
// day's candidate slots in chronological order. Non-work days have no key;
// worked days with zero availability keep an empty entry.
type SlotsByDate map[string][]CandidateSlot

// Dates returns the map keys in chronological order.
func (s SlotsByDate) Dates() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// TotalSlots counts slots across all dates.
func (s SlotsByDate) TotalSlots() int {
	n := 0
	for _, slots := range s {
		n += len(slots)
	}
	return n
}

// dayAvailability is one scanned day: whether the policy works it, the clipped
// open interval and the free gaps left after busy subtraction, all in the
// policy zone. Slices of dayAvailability stay index-aligned with win.Days() so
// the aggregator can intersect attendees date by date.
type dayAvailability struct {
	worked bool
	open   Interval
	gaps   []Interval
}

// freeGapsByDay walks the window's days, applies the policy's work hours,
// clips each day's open interval to the requested window bounds and subtracts
// the (already buffer-expanded) busy set. Clipping every day matters when the
// window zone and policy zone are far apart: a day in the middle of the scan
// can still resolve to work hours that spill past the window edges.
func freeGapsByDay(win TimeWindow, busy BusySet, pol Policy) []dayAvailability {
	days := win.Days()
	out := make([]dayAvailability, len(days))
	for i, day := range days {
		open, ok := pol.OpenInterval(day)
		if !ok {
			continue
		}
		if win.Start.After(open.Start) {
			open.Start = win.Start
		}
		if win.End.Before(open.End) {
			open.End = win.End
		}
		if !open.IsValid() {
			continue
		}
		out[i] = dayAvailability{worked: true, open: open, gaps: SubtractBusy(open, busy)}
	}
	return out
}

// GenerateSlots computes a single attendee's availability over the window.
// slotDuration overrides the policy default when positive (the requested
// meeting length may differ from the user's default). Slot boundaries are
// converted to the receiver zone per instant, so DST transitions inside the
// window resolve correctly day by day. An empty result is success, not an
// error; the caller decides how to surface "no availability".
func GenerateSlots(win TimeWindow, busy BusySet, pol Policy, slotDuration time.Duration, receiver *time.Location) (SlotsByDate, error) {
	if err := pol.Validate(); err != nil {
		return nil, err
	}
	if slotDuration <= 0 {
		slotDuration = pol.SlotDuration
	}
	if receiver == nil {
		receiver = win.Loc
	}

	expanded := busy.Expand(pol.BufferBefore, pol.BufferAfter)
	out := SlotsByDate{}
	for _, da := range freeGapsByDay(win, expanded, pol) {
		if !da.worked {
			continue
		}
		key := da.open.Start.In(receiver).Format(dateLayout)
		slots := out[key]
		if slots == nil {
			slots = []CandidateSlot{}
		}
		for _, gap := range da.gaps {
			for _, s := range TileSlots(gap, slotDuration) {
				slots = append(slots, CandidateSlot{Start: s.Start.In(receiver), End: s.End.In(receiver)})
			}
		}
		out[key] = slots
	}
	return out, nil
}
