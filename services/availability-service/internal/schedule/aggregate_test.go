package schedule

import (
	"context"
	"testing"
	"time"
)

func fullDayPolicy(loc *time.Location) Policy {
	p := DefaultPolicy(loc)
	p.WorkStart = 0
	p.WorkEnd = 24 * 60
	return p
}

func busyExcept(t *testing.T, freeStartH, freeEndH int) BusySet {
	t.Helper()
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return NewBusySet([]Interval{
		{Start: day, End: day.Add(time.Duration(freeStartH) * time.Hour)},
		{Start: day.Add(time.Duration(freeEndH) * time.Hour), End: day.AddDate(0, 0, 1)},
	})
}

func TestIntersectAvailability_TwoAttendees(t *testing.T) {
	// Attendee A free 09:00-12:00, attendee B free 11:00-15:00, 60 minute
	// slots: only 11:00-12:00 is mutually available.
	win := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 0, 23*60+59)
	attendees := []Attendee{
		{ID: "a", Busy: busyExcept(t, 9, 12), Policy: fullDayPolicy(time.UTC)},
		{ID: "b", Busy: busyExcept(t, 11, 15), Policy: fullDayPolicy(time.UTC)},
	}

	out, err := IntersectAvailability(context.Background(), win, attendees, time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("IntersectAvailability: %v", err)
	}
	slots := out["2026-06-01"]
	if len(slots) != 1 {
		t.Fatalf("expected exactly 1 mutual slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(time.Date(2026, 6, 1, 11, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 11:00 start, got %s", slots[0].Start)
	}
	if !slots[0].End.Equal(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 12:00 end, got %s", slots[0].End)
	}
}

func TestIntersectAvailability_AddingAttendeeNeverAddsSlots(t *testing.T) {
	win := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 0, 23*60+59)
	a := Attendee{ID: "a", Busy: busyExcept(t, 9, 17), Policy: fullDayPolicy(time.UTC)}
	b := Attendee{ID: "b", Busy: busyExcept(t, 10, 14), Policy: fullDayPolicy(time.UTC)}
	c := Attendee{ID: "c", Busy: busyExcept(t, 13, 16), Policy: fullDayPolicy(time.UTC)}

	ctx := context.Background()
	prev := -1
	for _, group := range [][]Attendee{{a}, {a, b}, {a, b, c}} {
		out, err := IntersectAvailability(ctx, win, group, time.Hour, time.UTC)
		if err != nil {
			t.Fatalf("IntersectAvailability: %v", err)
		}
		n := out.TotalSlots()
		if prev >= 0 && n > prev {
			t.Fatalf("adding an attendee increased slots from %d to %d", prev, n)
		}
		prev = n
	}
}

func TestIntersectAvailability_FailsClosedOnEmptyAttendee(t *testing.T) {
	win := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 0, 23*60+59)
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	attendees := []Attendee{
		{ID: "a", Policy: fullDayPolicy(time.UTC)},
		{ID: "b", Busy: NewBusySet([]Interval{{Start: day, End: day.AddDate(0, 0, 1)}}), Policy: fullDayPolicy(time.UTC)},
	}
	out, err := IntersectAvailability(context.Background(), win, attendees, time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("IntersectAvailability: %v", err)
	}
	if out.TotalSlots() != 0 || len(out) != 0 {
		t.Fatalf("expected empty aggregate, got %v", out)
	}
}

func TestIntersectAvailability_FailsClosedOnMissingData(t *testing.T) {
	win := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 0, 23*60+59)
	attendees := []Attendee{
		{ID: "a", Policy: fullDayPolicy(time.UTC)},
		{ID: "b", Policy: fullDayPolicy(time.UTC), DataMissing: true},
	}
	out, err := IntersectAvailability(context.Background(), win, attendees, time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("IntersectAvailability: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("missing attendee data must empty the aggregate, got %v", out)
	}
}

func TestIntersectAvailability_PreferredRangesScoreSlots(t *testing.T) {
	win := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 0, 23*60+59)
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	morning := Interval{Start: day.Add(9 * time.Hour), End: day.Add(12 * time.Hour)}
	attendees := []Attendee{
		{ID: "a", Busy: busyExcept(t, 9, 17), Policy: fullDayPolicy(time.UTC), Preferred: []Interval{morning}},
		{ID: "b", Busy: busyExcept(t, 9, 17), Policy: fullDayPolicy(time.UTC)},
	}

	out, err := IntersectAvailability(context.Background(), win, attendees, time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("IntersectAvailability: %v", err)
	}
	slots := out["2026-06-01"]
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	if slots[0].Score != 0.5 {
		t.Fatalf("09:00 slot should score 0.5, got %v", slots[0].Score)
	}
	last := slots[len(slots)-1]
	if last.Score != 0 {
		t.Fatalf("16:00 slot should score 0, got %v", last.Score)
	}
}

func TestIntersectAvailability_Cancellation(t *testing.T) {
	win := mustWindow(t, "2026-06-01", "2026-06-05", "UTC", 0, 23*60+59)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	attendees := []Attendee{{ID: "a", Policy: fullDayPolicy(time.UTC)}}
	if _, err := IntersectAvailability(ctx, win, attendees, time.Hour, time.UTC); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestSlotsByDate_TopK(t *testing.T) {
	win := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 0, 23*60+59)
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	pref := Interval{Start: day.Add(14 * time.Hour), End: day.Add(16 * time.Hour)}
	attendees := []Attendee{
		{ID: "a", Busy: busyExcept(t, 9, 17), Policy: fullDayPolicy(time.UTC), Preferred: []Interval{pref}},
	}
	out, err := IntersectAvailability(context.Background(), win, attendees, time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("IntersectAvailability: %v", err)
	}

	top := out.TopK(2)
	if top.TotalSlots() != 2 {
		t.Fatalf("expected 2 slots after TopK, got %d", top.TotalSlots())
	}
	for _, s := range top["2026-06-01"] {
		if s.Score != 1 {
			t.Fatalf("TopK should keep the preferred afternoon slots, got %s score %v", s.Start, s.Score)
		}
	}
}

func TestSlotsByDate_TopKRanksByInstantNotTimeRepresentation(t *testing.T) {
	// Slot times may carry whatever location the receiver zone resolved to;
	// ranking and filtering must compare instants, never time.Time equality.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	s := SlotsByDate{
		"2026-06-01": {
			{Start: day.Add(9 * time.Hour).In(ny), End: day.Add(10 * time.Hour).In(ny), Score: 1},
			{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
			{Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour)},
		},
	}

	top := s.TopK(1)
	slots := top["2026-06-01"]
	if len(slots) != 1 {
		t.Fatalf("expected 1 surviving slot, got %d", len(slots))
	}
	if !slots[0].Start.Equal(day.Add(9 * time.Hour)) {
		t.Fatalf("expected the scored 09:00 slot to survive, got %s", slots[0].Start)
	}
	if slots[0].Score != 1 {
		t.Fatalf("expected score 1, got %v", slots[0].Score)
	}
}
