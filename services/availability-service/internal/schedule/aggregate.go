package schedule

import (
	"context"
	"sort"
	"time"
)

// Attendee bundles one participant's inputs for a meeting-assist request.
// Preferred ranges influence ranking only, never eligibility. DataMissing marks
// an attendee whose busy set could not be obtained; per the fail-closed
// contract they contribute zero availability, emptying the whole aggregate.
type Attendee struct {
	ID          string
	Busy        BusySet
	Policy      Policy
	Preferred   []Interval
	DataMissing bool
}

// IntersectAvailability computes the mutually available slots for all
// attendees over a shared window. Per-attendee free gaps are evaluated in
// parallel and joined before aggregation; the context cancels the whole
// computation between per-attendee units. A slot is offered only when every
// attendee is free for its full span. If any attendee has no availability
// anywhere in the window the result is empty.
func IntersectAvailability(ctx context.Context, win TimeWindow, attendees []Attendee, slotDuration time.Duration, receiver *time.Location) (SlotsByDate, error) {
	if len(attendees) == 0 {
		return SlotsByDate{}, nil
	}
	if receiver == nil {
		receiver = win.Loc
	}
	for _, a := range attendees {
		if err := a.Policy.Validate(); err != nil {
			return nil, err
		}
		if slotDuration <= 0 {
			slotDuration = a.Policy.SlotDuration
		}
	}

	perAttendee := make([][]dayAvailability, len(attendees))
	results := make(chan attendeeGaps, len(attendees))
	for i, a := range attendees {
		go func(i int, a Attendee) {
			expanded := a.Busy.Expand(a.Policy.BufferBefore, a.Policy.BufferAfter)
			results <- attendeeGaps{idx: i, days: freeGapsByDay(win, expanded, a.Policy)}
		}(i, a)
	}
	for range attendees {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case r := <-results:
			perAttendee[r.idx] = r.days
		}
	}

	// Fail closed: an attendee with zero free time (or missing data) empties
	// the aggregate for the whole window.
	for i, a := range attendees {
		if a.DataMissing || !hasAnyGap(perAttendee[i]) {
			return SlotsByDate{}, nil
		}
	}

	out := SlotsByDate{}
	numDays := len(win.Days())
	for d := 0; d < numDays; d++ {
		allWorked := true
		for i := range attendees {
			if !perAttendee[i][d].worked {
				allWorked = false
				break
			}
		}
		if !allWorked {
			continue
		}

		mutual := perAttendee[0][d].gaps
		openStart := perAttendee[0][d].open.Start
		for i := 1; i < len(attendees); i++ {
			mutual = IntersectGaps(mutual, perAttendee[i][d].gaps)
			openStart = maxTime(openStart, perAttendee[i][d].open.Start)
		}

		key := openStart.In(receiver).Format(dateLayout)
		slots := out[key]
		if slots == nil {
			slots = []CandidateSlot{}
		}
		for _, gap := range mutual {
			for _, s := range TileSlots(gap, slotDuration) {
				slots = append(slots, CandidateSlot{
					Start: s.Start.In(receiver),
					End:   s.End.In(receiver),
					Score: preferenceScore(s, attendees),
				})
			}
		}
		out[key] = slots
	}
	return out, nil
}

type attendeeGaps struct {
	idx  int
	days []dayAvailability
}

func hasAnyGap(days []dayAvailability) bool {
	for _, d := range days {
		if d.worked && len(d.gaps) > 0 {
			return true
		}
	}
	return false
}

// preferenceScore is the fraction of attendees whose declared preferred ranges
// fully or partially cover the slot.
func preferenceScore(slot Interval, attendees []Attendee) float64 {
	covered := 0
	for _, a := range attendees {
		for _, pref := range a.Preferred {
			if pref.Overlaps(slot) {
				covered++
				break
			}
		}
	}
	if covered == 0 {
		return 0
	}
	return float64(covered) / float64(len(attendees))
}

// TopK keeps the k highest-scoring slots across the whole result, breaking
// score ties by earliest start. Chronological order within each date is
// preserved; dates left with no surviving slots keep an empty entry.
func (s SlotsByDate) TopK(k int) SlotsByDate {
	if k <= 0 || s.TotalSlots() <= k {
		return s
	}
	type ranked struct {
		date string
		slot CandidateSlot
	}
	all := make([]ranked, 0, s.TotalSlots())
	for _, date := range s.Dates() {
		for _, slot := range s[date] {
			all = append(all, ranked{date: date, slot: slot})
		}
	}
	sort.SliceStable(all, func(a, b int) bool {
		if all[a].slot.Score != all[b].slot.Score {
			return all[a].slot.Score > all[b].slot.Score
		}
		return all[a].slot.Start.Before(all[b].slot.Start)
	})
	// Keyed by instant, not time.Time, so equal instants match regardless of
	// which location the value carries.
	keep := make(map[string]map[int64]bool, len(s))
	for _, r := range all[:k] {
		if keep[r.date] == nil {
			keep[r.date] = map[int64]bool{}
		}
		keep[r.date][r.slot.Start.UnixNano()] = true
	}

	out := SlotsByDate{}
	for date, slots := range s {
		kept := []CandidateSlot{}
		for _, slot := range slots {
			if keep[date][slot.Start.UnixNano()] {
				kept = append(kept, slot)
			}
		}
		out[date] = kept
	}
	return out
}
