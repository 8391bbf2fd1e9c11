package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tahmid-rahman/slotmind/libs/db"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/schedule"
)

type PreferenceRepository struct {
	pool *db.Pool
}

func NewPreferenceRepository(pool *db.Pool) *PreferenceRepository {
	return &PreferenceRepository{pool: pool}
}

// PreferenceRecord is the stored shape of a user's scheduling preferences.
type PreferenceRecord struct {
	UserID              string
	Timezone            string
	SlotDurationMinutes int
	WorkDays            []int // time.Weekday values
	WorkStartMinute     int
	WorkEndMinute       int
	BufferBeforeMinutes int
	BufferAfterMinutes  int
}

// Policy converts the record into an engine policy, resolving the zone.
func (rec PreferenceRecord) Policy() (schedule.Policy, error) {
	loc, err := time.LoadLocation(rec.Timezone)
	if err != nil {
		return schedule.Policy{}, fmt.Errorf("%w: unknown timezone %q", schedule.ErrInvalidPreference, rec.Timezone)
	}
	var days [7]bool
	for _, wd := range rec.WorkDays {
		if wd >= 0 && wd <= 6 {
			days[wd] = true
		}
	}
	p := schedule.Policy{
		SlotDuration: time.Duration(rec.SlotDurationMinutes) * time.Minute,
		WorkDays:     days,
		WorkStart:    rec.WorkStartMinute,
		WorkEnd:      rec.WorkEndMinute,
		BufferBefore: time.Duration(rec.BufferBeforeMinutes) * time.Minute,
		BufferAfter:  time.Duration(rec.BufferAfterMinutes) * time.Minute,
		Loc:          loc,
	}
	return p, p.Validate()
}

func (r *PreferenceRepository) Get(ctx context.Context, userID string) (PreferenceRecord, error) {
	var rec PreferenceRecord
	err := r.pool.QueryRow(ctx, `
		SELECT user_id::text, timezone, slot_duration_minutes, work_days,
			work_start_minute, work_end_minute, buffer_before_minutes, buffer_after_minutes
		FROM user_preferences
		WHERE user_id = $1
	`, userID).Scan(
		&rec.UserID,
		&rec.Timezone,
		&rec.SlotDurationMinutes,
		&rec.WorkDays,
		&rec.WorkStartMinute,
		&rec.WorkEndMinute,
		&rec.BufferBeforeMinutes,
		&rec.BufferAfterMinutes,
	)
	if err != nil {
		return PreferenceRecord{}, err
	}
	return rec, nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, rec PreferenceRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_preferences
			(user_id, timezone, slot_duration_minutes, work_days,
			 work_start_minute, work_end_minute, buffer_before_minutes, buffer_after_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE
		SET timezone = EXCLUDED.timezone,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			work_days = EXCLUDED.work_days,
			work_start_minute = EXCLUDED.work_start_minute,
			work_end_minute = EXCLUDED.work_end_minute,
			buffer_before_minutes = EXCLUDED.buffer_before_minutes,
			buffer_after_minutes = EXCLUDED.buffer_after_minutes,
			updated_at = now()
	`, rec.UserID, rec.Timezone, rec.SlotDurationMinutes, rec.WorkDays,
		rec.WorkStartMinute, rec.WorkEndMinute, rec.BufferBeforeMinutes, rec.BufferAfterMinutes)
	return err
}

// ListPreferredRanges returns the user's declared preferred time ranges that
// overlap [from, to). Used for ranking only.
func (r *PreferenceRepository) ListPreferredRanges(ctx context.Context, userID string, from, to time.Time) ([]schedule.Interval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time
		FROM preferred_time_ranges
		WHERE user_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
