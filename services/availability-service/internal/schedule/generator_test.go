package schedule

import (
	"testing"
	"time"
)

func mustWindow(t *testing.T, start, end, zone string, openMin, closeMin int) TimeWindow {
	t.Helper()
	w, err := NewTimeWindow(start, end, zone, openMin, closeMin, WindowLimits{})
	if err != nil {
		t.Fatalf("NewTimeWindow: %v", err)
	}
	return w
}

func TestGenerateSlots_SingleDayAroundBusyHour(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// Monday June 1 2026, full-day window, Mon-Fri 09:00-17:00 policy,
	// one 10:00-11:00 meeting already on the calendar.
	win := mustWindow(t, "2026-06-01", "2026-06-01", "America/New_York", 0, 23*60+59)
	busy := NewBusySet([]Interval{{
		Start: time.Date(2026, 6, 1, 10, 0, 0, 0, ny),
		End:   time.Date(2026, 6, 1, 11, 0, 0, 0, ny),
	}})

	out, err := GenerateSlots(win, busy, DefaultPolicy(ny), 30*time.Minute, ny)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}

	slots, ok := out["2026-06-01"]
	if !ok {
		t.Fatalf("expected a 2026-06-01 entry, got dates %v", out.Dates())
	}
	// 09:00-10:00 gives 2 slots, 11:00-17:00 gives 12.
	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(time.Date(2026, 6, 1, 9, 0, 0, 0, ny)) {
		t.Fatalf("first slot should start 09:00, got %s", slots[0].Start)
	}
	if !slots[2].Start.Equal(time.Date(2026, 6, 1, 11, 0, 0, 0, ny)) {
		t.Fatalf("slot after the busy hour should start 11:00, got %s", slots[2].Start)
	}
	if !slots[len(slots)-1].End.Equal(time.Date(2026, 6, 1, 17, 0, 0, 0, ny)) {
		t.Fatalf("last slot should end 17:00, got %s", slots[len(slots)-1].End)
	}
	meeting := Interval{Start: time.Date(2026, 6, 1, 10, 0, 0, 0, ny), End: time.Date(2026, 6, 1, 11, 0, 0, 0, ny)}
	for _, s := range slots {
		if (Interval{Start: s.Start, End: s.End}).Overlaps(meeting) {
			t.Fatalf("slot %s overlaps the busy hour", s.Start)
		}
	}
}

func TestGenerateSlots_FirstAndLastDayClipping(t *testing.T) {
	// Window opens 14:00 on the first day and closes 11:00 on the last:
	// morning slots on day one and afternoon slots on the final day must not
	// be offered.
	win := mustWindow(t, "2026-06-01", "2026-06-02", "UTC", 14*60, 11*60)
	out, err := GenerateSlots(win, nil, DefaultPolicy(time.UTC), time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}

	day1 := out["2026-06-01"]
	if len(day1) != 3 { // 14:00-17:00
		t.Fatalf("expected 3 slots on day 1, got %d", len(day1))
	}
	if !day1[0].Start.Equal(time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)) {
		t.Fatalf("day 1 should start 14:00, got %s", day1[0].Start)
	}

	day2 := out["2026-06-02"]
	if len(day2) != 2 { // 09:00-11:00
		t.Fatalf("expected 2 slots on day 2, got %d", len(day2))
	}
	if !day2[1].End.Equal(time.Date(2026, 6, 2, 11, 0, 0, 0, time.UTC)) {
		t.Fatalf("day 2 should end 11:00, got %s", day2[1].End)
	}
}

func TestGenerateSlots_SkipsNonWorkDays(t *testing.T) {
	// Friday June 5 through Monday June 8: the weekend gets no map entry.
	win := mustWindow(t, "2026-06-05", "2026-06-08", "UTC", 0, 23*60+59)
	out, err := GenerateSlots(win, nil, DefaultPolicy(time.UTC), time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	dates := out.Dates()
	if len(dates) != 2 || dates[0] != "2026-06-05" || dates[1] != "2026-06-08" {
		t.Fatalf("expected entries for Friday and Monday only, got %v", dates)
	}
}

func TestGenerateSlots_WorkedDayFullyBookedKeepsEmptyEntry(t *testing.T) {
	win := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 0, 23*60+59)
	busy := NewBusySet([]Interval{{
		Start: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
	}})
	out, err := GenerateSlots(win, busy, DefaultPolicy(time.UTC), time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	slots, ok := out["2026-06-01"]
	if !ok {
		t.Fatalf("worked day should keep its entry")
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestGenerateSlots_BuffersShrinkGapsNotWorkDayEdges(t *testing.T) {
	ny, _ := time.LoadLocation("America/New_York")
	win := mustWindow(t, "2026-06-01", "2026-06-01", "America/New_York", 0, 23*60+59)
	pol := DefaultPolicy(ny)
	pol.BufferBefore = 30 * time.Minute
	pol.BufferAfter = 30 * time.Minute
	busy := NewBusySet([]Interval{{
		Start: time.Date(2026, 6, 1, 12, 0, 0, 0, ny),
		End:   time.Date(2026, 6, 1, 13, 0, 0, 0, ny),
	}})

	out, err := GenerateSlots(win, busy, pol, 30*time.Minute, ny)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	slots := out["2026-06-01"]
	// The 09:00 edge slot must survive: buffers expand the busy interval to
	// 11:30-13:30, they never shrink the work day itself.
	if !slots[0].Start.Equal(time.Date(2026, 6, 1, 9, 0, 0, 0, ny)) {
		t.Fatalf("expected first slot at 09:00, got %s", slots[0].Start)
	}
	blocked := Interval{Start: time.Date(2026, 6, 1, 11, 30, 0, 0, ny), End: time.Date(2026, 6, 1, 13, 30, 0, 0, ny)}
	for _, s := range slots {
		if (Interval{Start: s.Start, End: s.End}).Overlaps(blocked) {
			t.Fatalf("slot %s intrudes into the buffered interval", s.Start)
		}
	}
}

func TestGenerateSlots_ReceiverZoneAcrossDSTBoundary(t *testing.T) {
	ny, _ := time.LoadLocation("America/New_York")
	// US DST starts Sunday 2026-03-08. Friday before and Monday after must
	// convert with different UTC offsets.
	win := mustWindow(t, "2026-03-06", "2026-03-09", "America/New_York", 0, 23*60+59)
	out, err := GenerateSlots(win, nil, DefaultPolicy(ny), time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}

	fri := out["2026-03-06"]
	if len(fri) == 0 {
		t.Fatalf("expected Friday slots")
	}
	if !fri[0].Start.Equal(time.Date(2026, 3, 6, 14, 0, 0, 0, time.UTC)) {
		t.Fatalf("Friday 09:00 EST should be 14:00 UTC, got %s", fri[0].Start)
	}

	mon := out["2026-03-09"]
	if len(mon) == 0 {
		t.Fatalf("expected Monday slots")
	}
	if !mon[0].Start.Equal(time.Date(2026, 3, 9, 13, 0, 0, 0, time.UTC)) {
		t.Fatalf("Monday 09:00 EDT should be 13:00 UTC, got %s", mon[0].Start)
	}

	// Round trip: the receiver-zone instant converted back to the policy zone
	// is the original wall-clock time.
	back := mon[0].Start.In(ny)
	if back.Hour() != 9 || back.Minute() != 0 {
		t.Fatalf("round trip expected 09:00, got %02d:%02d", back.Hour(), back.Minute())
	}
}

func TestGenerateSlots_EveryDayClippedWhenZonesFarApart(t *testing.T) {
	// Window in Niue (UTC-11) opening 23:00, policy in Kiritimati (UTC+14):
	// the work hours of days in the middle of the scan resolve to instants
	// before the window even opens, so clipping cannot be a first/last-day
	// special case.
	kir, err := time.LoadLocation("Pacific/Kiritimati")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	win := mustWindow(t, "2026-06-01", "2026-06-03", "Pacific/Niue", 23*60, 24*60)
	out, err := GenerateSlots(win, nil, DefaultPolicy(kir), time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}

	if out.TotalSlots() == 0 {
		t.Fatalf("expected some slots inside the window")
	}
	for _, date := range out.Dates() {
		for _, s := range out[date] {
			if s.Start.Before(win.Start) {
				t.Fatalf("slot %s starts before the window opens at %s", s.Start, win.Start)
			}
			if s.End.After(win.End) {
				t.Fatalf("slot %s ends after the window closes at %s", s.End, win.End)
			}
		}
	}
}

func TestGenerateSlots_SlotLongerThanEveryOpenIntervalYieldsEmptyResult(t *testing.T) {
	win := mustWindow(t, "2026-06-01", "2026-06-02", "UTC", 0, 23*60+59)
	pol := DefaultPolicy(time.UTC) // 8h work day
	out, err := GenerateSlots(win, nil, pol, 9*time.Hour, time.UTC)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if out.TotalSlots() != 0 {
		t.Fatalf("expected zero slots, got %d", out.TotalSlots())
	}
}

func TestGenerateSlots_InvalidPolicyFailsBeforeComputation(t *testing.T) {
	win := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 0, 23*60+59)
	pol := DefaultPolicy(time.UTC)
	pol.SlotDuration = 0
	if _, err := GenerateSlots(win, nil, pol, 0, time.UTC); err == nil {
		t.Fatalf("expected validation error")
	}
}
