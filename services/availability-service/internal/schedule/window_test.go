package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestNewTimeWindow_Valid(t *testing.T) {
	w, err := NewTimeWindow("2026-06-01", "2026-06-05", "America/New_York", 9*60, 17*60, WindowLimits{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	days := w.Days()
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	if days[0].Format("2006-01-02") != "2026-06-01" {
		t.Fatalf("unexpected first day %s", days[0])
	}
	// Days must be restartable: a second call yields the same sequence.
	again := w.Days()
	if len(again) != 5 || !again[4].Equal(days[4]) {
		t.Fatalf("Days not restartable")
	}
}

func TestNewTimeWindow_RejectsReversedDates(t *testing.T) {
	_, err := NewTimeWindow("2026-06-05", "2026-06-01", "UTC", 9*60, 17*60, WindowLimits{})
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestNewTimeWindow_RejectsSpanOverMaximum(t *testing.T) {
	_, err := NewTimeWindow("2026-06-01", "2026-06-10", "UTC", 9*60, 17*60, WindowLimits{})
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow for 10-day span, got %v", err)
	}
}

func TestNewTimeWindow_RejectsWindowUnderMinimum(t *testing.T) {
	// One hour against the default two-hour minimum.
	_, err := NewTimeWindow("2026-06-01", "2026-06-01", "UTC", 9*60, 10*60, WindowLimits{})
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow for 1h window, got %v", err)
	}
}

func TestNewTimeWindow_RejectsUnknownZone(t *testing.T) {
	_, err := NewTimeWindow("2026-06-01", "2026-06-02", "Mars/Olympus", 9*60, 17*60, WindowLimits{})
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestTimeWindow_Shift(t *testing.T) {
	w, err := NewTimeWindow("2026-06-01", "2026-06-03", "UTC", 9*60, 17*60, WindowLimits{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shifted := w.Shift(w.Start.AddDate(0, 0, 7))
	if shifted.End.Sub(shifted.Start) != w.End.Sub(w.Start) {
		t.Fatalf("shift changed the span")
	}
	if len(shifted.Days()) != 3 {
		t.Fatalf("expected 3 days after shift, got %d", len(shifted.Days()))
	}
	if shifted.Days()[0].Format("2006-01-02") != "2026-06-08" {
		t.Fatalf("unexpected first day %s", shifted.Days()[0])
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	if err != nil || m != 9*60+30 {
		t.Fatalf("ParseClock(09:30) = %d, %v", m, err)
	}
	if _, err := ParseClock("25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
}

func TestWindowLimits_Override(t *testing.T) {
	_, err := NewTimeWindow("2026-06-01", "2026-06-10", "UTC", 9*60, 17*60, WindowLimits{MaxDays: 14})
	if err != nil {
		t.Fatalf("10-day span should pass with MaxDays=14: %v", err)
	}
	_, err = NewTimeWindow("2026-06-01", "2026-06-01", "UTC", 9*60, 10*60, WindowLimits{MinWindow: 30 * time.Minute})
	if err != nil {
		t.Fatalf("1h window should pass with 30m minimum: %v", err)
	}
}
