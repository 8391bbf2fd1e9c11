package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestExpandWindows_Weekly(t *testing.T) {
	base := mustWindow(t, "2026-06-01", "2026-06-03", "UTC", 9*60, 17*60)
	rec := Recurrence{
		Frequency: "weekly",
		Interval:  1,
		Until:     time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
	}

	windows, err := ExpandWindows(base, rec)
	if err != nil {
		t.Fatalf("ExpandWindows: %v", err)
	}
	if len(windows) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(windows))
	}
	if !windows[0].Start.Equal(base.Start) {
		t.Fatalf("first occurrence must be the base window")
	}
	for i, w := range windows {
		wantStart := base.Start.AddDate(0, 0, 7*i)
		if !w.Start.Equal(wantStart) {
			t.Fatalf("occurrence %d starts %s, want %s", i, w.Start, wantStart)
		}
		if w.End.Sub(w.Start) != base.End.Sub(base.Start) {
			t.Fatalf("occurrence %d changed span", i)
		}
		if len(w.Days()) != 3 {
			t.Fatalf("occurrence %d has %d days, want 3", i, len(w.Days()))
		}
	}
}

func TestExpandWindows_DailyWithInterval(t *testing.T) {
	base := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 9*60, 17*60)
	rec := Recurrence{
		Frequency: "daily",
		Interval:  2,
		Until:     time.Date(2026, 6, 7, 23, 0, 0, 0, time.UTC),
	}
	windows, err := ExpandWindows(base, rec)
	if err != nil {
		t.Fatalf("ExpandWindows: %v", err)
	}
	// June 1, 3, 5, 7.
	if len(windows) != 4 {
		t.Fatalf("expected 4 occurrences, got %d", len(windows))
	}
	if windows[1].Days()[0].Format("2006-01-02") != "2026-06-03" {
		t.Fatalf("unexpected second occurrence day %s", windows[1].Days()[0])
	}
}

func TestExpandWindows_RejectsUnknownFrequency(t *testing.T) {
	base := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 9*60, 17*60)
	_, err := ExpandWindows(base, Recurrence{Frequency: "fortnightly", Until: base.End.AddDate(0, 1, 0)})
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestExpandWindows_RequiresEndDate(t *testing.T) {
	base := mustWindow(t, "2026-06-01", "2026-06-01", "UTC", 9*60, 17*60)
	if _, err := ExpandWindows(base, Recurrence{Frequency: "daily"}); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}
