package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestPolicy_ValidateRejectsBadRecords(t *testing.T) {
	base := DefaultPolicy(time.UTC)

	p := base
	p.SlotDuration = 0
	if err := p.Validate(); !errors.Is(err, ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference for zero slot duration, got %v", err)
	}

	p = base
	p.WorkStart, p.WorkEnd = 17*60, 9*60
	if err := p.Validate(); !errors.Is(err, ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference for reversed work hours, got %v", err)
	}

	p = base
	p.WorkDays = [7]bool{}
	if err := p.Validate(); !errors.Is(err, ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference for empty work days, got %v", err)
	}

	p = base
	p.BufferBefore = -time.Minute
	if err := p.Validate(); !errors.Is(err, ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference for negative buffer, got %v", err)
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("default policy should validate: %v", err)
	}
}

func TestPolicy_OpenInterval(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	p := DefaultPolicy(loc)

	monday := time.Date(2026, 6, 1, 0, 0, 0, 0, loc)
	open, ok := p.OpenInterval(monday)
	if !ok {
		t.Fatalf("Monday should be a work day")
	}
	if open.Start.Hour() != 9 || open.End.Hour() != 17 {
		t.Fatalf("expected 09:00-17:00, got %s-%s", open.Start, open.End)
	}

	saturday := time.Date(2026, 6, 6, 0, 0, 0, 0, loc)
	if _, ok := p.OpenInterval(saturday); ok {
		t.Fatalf("Saturday should not be a work day")
	}
}

func TestPolicy_OpenIntervalAnchorsDateInPolicyZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	p := DefaultPolicy(tokyo)

	// A UTC midnight for June 1 must evaluate as June 1 in Tokyo, even though
	// that instant is already 09:00 June 1 in Tokyo.
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	open, ok := p.OpenInterval(day)
	if !ok {
		t.Fatalf("expected a work day")
	}
	want := time.Date(2026, 6, 1, 9, 0, 0, 0, tokyo)
	if !open.Start.Equal(want) {
		t.Fatalf("expected open start %s, got %s", want, open.Start)
	}
}
