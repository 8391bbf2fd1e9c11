package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tahmid-rahman/slotmind/libs/db"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/schedule"
)

// CalendarRepository stores the busy intervals the calendar-sync feed has
// reported for each user. The engine never reads it directly; handlers resolve
// busy sets here before computing slots.
type CalendarRepository struct {
	pool *db.Pool
}

func NewCalendarRepository(pool *db.Pool) *CalendarRepository {
	return &CalendarRepository{pool: pool}
}

type CalendarEvent struct {
	ID         string
	UserID     string
	ExternalID string
	StartTime  time.Time
	EndTime    time.Time
}

// UpsertEvent records or updates a calendar event keyed by its external id
// (the id the upstream calendar provider assigned).
func (r *CalendarRepository) UpsertEvent(ctx context.Context, ev CalendarEvent) (string, error) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO calendar_events (id, user_id, external_id, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, external_id) DO UPDATE
		SET start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			updated_at = now()
		RETURNING id::text
	`, ev.ID, ev.UserID, ev.ExternalID, ev.StartTime, ev.EndTime).Scan(&id)
	return id, err
}

func (r *CalendarRepository) DeleteEvent(ctx context.Context, userID, externalID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM calendar_events
		WHERE user_id = $1 AND external_id = $2
	`, userID, externalID)
	return err
}

// ListBusyIntervals loads a user's events overlapping [from, to) as a
// normalized busy set.
func (r *CalendarRepository) ListBusyIntervals(ctx context.Context, userID string, from, to time.Time) (schedule.BusySet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time
		FROM calendar_events
		WHERE user_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var raw []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, err
		}
		raw = append(raw, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return schedule.NewBusySet(raw), nil
}
