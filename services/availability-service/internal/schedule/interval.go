package schedule

import (
	"sort"
	"time"
)

// Interval is a half-open time range [Start, End). Instants are stored UTC-backed;
// callers convert to a display location only at the boundary.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether the two half-open intervals share any instant:
// [a.Start,a.End) overlaps [b.Start,b.End) iff a.Start < b.End && b.Start < a.End.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Contains reports whether o lies fully within i.
func (i Interval) Contains(o Interval) bool {
	return !o.Start.Before(i.Start) && !o.End.After(i.End)
}

// BusySet is an ordered, non-overlapping sequence of busy intervals.
// Construct via NewBusySet; direct slices may violate the invariant.
type BusySet []Interval

// NewBusySet normalizes raw source intervals (calendar events) into a BusySet:
// invalid intervals are dropped, the rest sorted by start and merged where
// overlapping or exactly adjacent.
func NewBusySet(raw []Interval) BusySet {
	valid := make([]Interval, 0, len(raw))
	for _, iv := range raw {
		if iv.IsValid() {
			valid = append(valid, iv)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	sort.Slice(valid, func(a, b int) bool { return valid[a].Start.Before(valid[b].Start) })

	merged := BusySet{valid[0]}
	for _, cur := range valid[1:] {
		last := &merged[len(merged)-1]
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// Expand grows every busy interval outward by the given buffers and re-normalizes.
// Buffers are applied to the busy side rather than shrinking open intervals, so
// slots that abut the edge of the work day are not rejected.
func (s BusySet) Expand(before, after time.Duration) BusySet {
	if before <= 0 && after <= 0 {
		return s
	}
	expanded := make([]Interval, 0, len(s))
	for _, iv := range s {
		expanded = append(expanded, Interval{Start: iv.Start.Add(-before), End: iv.End.Add(after)})
	}
	return NewBusySet(expanded)
}

// SubtractBusy removes every busy interval from the open interval, returning the
// disjoint free gaps in chronological order. busy must be normalized (sorted,
// non-overlapping); intervals outside open are ignored.
func SubtractBusy(open Interval, busy BusySet) []Interval {
	if !open.IsValid() {
		return nil
	}
	var gaps []Interval
	cursor := open.Start
	for _, b := range busy {
		if !b.Start.Before(open.End) {
			break
		}
		if !b.End.After(cursor) {
			continue
		}
		if b.Start.After(cursor) {
			gaps = append(gaps, Interval{Start: cursor, End: minTime(b.Start, open.End)})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(open.End) {
		gaps = append(gaps, Interval{Start: cursor, End: open.End})
	}
	return gaps
}

// IntersectGaps intersects two chronological gap lists with a two-pointer sweep.
func IntersectGaps(a, b []Interval) []Interval {
	var out []Interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := maxTime(a[i].Start, b[j].Start)
		end := minTime(a[i].End, b[j].End)
		if end.After(start) {
			out = append(out, Interval{Start: start, End: end})
		}
		if a[i].End.Before(b[j].End) {
			i++
		} else {
			j++
		}
	}
	return out
}

// TileSlots splits a free gap into consecutive slots of the given duration.
// A trailing remainder shorter than one slot is discarded; no partial slots.
func TileSlots(gap Interval, slotDuration time.Duration) []Interval {
	if slotDuration <= 0 || !gap.IsValid() {
		return nil
	}
	var slots []Interval
	for t := gap.Start; !t.Add(slotDuration).After(gap.End); t = t.Add(slotDuration) {
		slots = append(slots, Interval{Start: t, End: t.Add(slotDuration)})
	}
	return slots
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
