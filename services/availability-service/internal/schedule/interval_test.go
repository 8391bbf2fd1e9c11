package schedule

import (
	"testing"
	"time"
)

func at(t *testing.T, h, m int) time.Time {
	t.Helper()
	return time.Date(2026, 6, 1, h, m, 0, 0, time.UTC)
}

func TestNewBusySet_MergesOverlappingAndAdjacent(t *testing.T) {
	set := NewBusySet([]Interval{
		{Start: at(t, 13, 0), End: at(t, 14, 0)},
		{Start: at(t, 9, 0), End: at(t, 10, 0)},
		{Start: at(t, 9, 30), End: at(t, 10, 30)},
		{Start: at(t, 10, 30), End: at(t, 11, 0)},
		{Start: at(t, 12, 0), End: at(t, 12, 0)}, // zero-length, dropped
	})
	if len(set) != 2 {
		t.Fatalf("expected 2 merged intervals, got %d", len(set))
	}
	if !set[0].Start.Equal(at(t, 9, 0)) || !set[0].End.Equal(at(t, 11, 0)) {
		t.Fatalf("unexpected first interval: %v", set[0])
	}
	if !set[1].Start.Equal(at(t, 13, 0)) {
		t.Fatalf("unexpected second interval: %v", set[1])
	}
}

func TestBusySet_ExpandAppliesBuffers(t *testing.T) {
	set := NewBusySet([]Interval{{Start: at(t, 10, 0), End: at(t, 11, 0)}})
	expanded := set.Expand(15*time.Minute, 30*time.Minute)
	if len(expanded) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(expanded))
	}
	if !expanded[0].Start.Equal(at(t, 9, 45)) || !expanded[0].End.Equal(at(t, 11, 30)) {
		t.Fatalf("buffers not applied: %v", expanded[0])
	}
}

func TestSubtractBusy_ReconstructsOpenInterval(t *testing.T) {
	open := Interval{Start: at(t, 9, 0), End: at(t, 17, 0)}
	busy := NewBusySet([]Interval{
		{Start: at(t, 8, 0), End: at(t, 9, 30)},  // overlaps the left edge
		{Start: at(t, 11, 0), End: at(t, 12, 0)},
		{Start: at(t, 16, 30), End: at(t, 18, 0)}, // overlaps the right edge
	})

	gaps := SubtractBusy(open, busy)
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d: %v", len(gaps), gaps)
	}
	for _, g := range gaps {
		for _, b := range busy {
			if g.Overlaps(b) {
				t.Fatalf("gap %v overlaps busy %v", g, b)
			}
		}
	}

	// Gaps plus busy time clipped to the open interval must cover it exactly.
	var covered time.Duration
	for _, g := range gaps {
		covered += g.Duration()
	}
	for _, b := range busy {
		s, e := maxTime(b.Start, open.Start), minTime(b.End, open.End)
		if e.After(s) {
			covered += e.Sub(s)
		}
	}
	if covered != open.Duration() {
		t.Fatalf("gaps+busy cover %s, want %s", covered, open.Duration())
	}
}

func TestSubtractBusy_FullyBooked(t *testing.T) {
	open := Interval{Start: at(t, 9, 0), End: at(t, 17, 0)}
	busy := NewBusySet([]Interval{{Start: at(t, 8, 0), End: at(t, 18, 0)}})
	if gaps := SubtractBusy(open, busy); len(gaps) != 0 {
		t.Fatalf("expected no gaps, got %v", gaps)
	}
}

func TestIntersectGaps(t *testing.T) {
	// Attendee A free 09:00-12:00, attendee B free 11:00-15:00.
	a := []Interval{{Start: at(t, 9, 0), End: at(t, 12, 0)}}
	b := []Interval{{Start: at(t, 11, 0), End: at(t, 15, 0)}}
	got := IntersectGaps(a, b)
	if len(got) != 1 {
		t.Fatalf("expected 1 intersection, got %d", len(got))
	}
	if !got[0].Start.Equal(at(t, 11, 0)) || !got[0].End.Equal(at(t, 12, 0)) {
		t.Fatalf("expected 11:00-12:00, got %v", got[0])
	}
}

func TestTileSlots_DiscardsPartialRemainder(t *testing.T) {
	gap := Interval{Start: at(t, 9, 0), End: at(t, 10, 50)}
	slots := TileSlots(gap, 30*time.Minute)
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	if !slots[2].End.Equal(at(t, 10, 30)) {
		t.Fatalf("expected last slot to end 10:30, got %s", slots[2].End)
	}

	// Deterministic: retiling yields identical boundaries.
	again := TileSlots(gap, 30*time.Minute)
	for i := range slots {
		if !slots[i].Start.Equal(again[i].Start) || !slots[i].End.Equal(again[i].End) {
			t.Fatalf("tiling not deterministic at %d", i)
		}
	}
}
