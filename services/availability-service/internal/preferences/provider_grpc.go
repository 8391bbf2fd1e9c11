//go:build protogen

package preferences

import (
	"context"
	"log/slog"
	"time"

	"github.com/tahmid-rahman/slotmind/libs/grpcx"
	prefsv1 "github.com/tahmid-rahman/slotmind/protos/gen/preferences/v1"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/schedule"
)

type grpcProvider struct {
	client   prefsv1.PreferenceServiceClient
	fallback schedule.Policy
}

// NewRemoteProvider dials the user-preference service. When the address is
// empty or the dial fails, the static fallback is used instead so availability
// computation stays up.
func NewRemoteProvider(logger *slog.Logger, fallback schedule.Policy, addr string) (Provider, error) {
	if addr == "" {
		return NewStaticProvider(fallback), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := grpcx.Dial(ctx, addr, grpcx.DialOptions{Timeout: 5 * time.Second})
	if err != nil {
		logger.Warn("grpc preference provider unavailable, using fallback", "err", err)
		return NewStaticProvider(fallback), nil
	}
	return &grpcProvider{client: prefsv1.NewPreferenceServiceClient(conn), fallback: fallback}, nil
}

func (p *grpcProvider) Load(ctx context.Context, userID string, from, to time.Time) (schedule.Policy, []schedule.Interval, error) {
	resp, err := p.client.GetPreferences(ctx, &prefsv1.PreferencesRequest{
		UserId:  userID,
		FromUtc: from.Unix(),
		ToUtc:   to.Unix(),
	})
	if err != nil {
		return schedule.Policy{}, nil, err
	}

	loc, err := time.LoadLocation(resp.GetTimezone())
	if err != nil {
		return p.fallback, nil, nil
	}
	var days [7]bool
	for _, wd := range resp.GetWorkDays() {
		if wd >= 0 && wd <= 6 {
			days[wd] = true
		}
	}
	pol := schedule.Policy{
		SlotDuration: time.Duration(resp.GetSlotDurationMinutes()) * time.Minute,
		WorkDays:     days,
		WorkStart:    int(resp.GetWorkStartMinute()),
		WorkEnd:      int(resp.GetWorkEndMinute()),
		BufferBefore: time.Duration(resp.GetBufferBeforeMinutes()) * time.Minute,
		BufferAfter:  time.Duration(resp.GetBufferAfterMinutes()) * time.Minute,
		Loc:          loc,
	}
	if err := pol.Validate(); err != nil {
		return schedule.Policy{}, nil, err
	}

	var preferred []schedule.Interval
	for _, pr := range resp.GetPreferredRanges() {
		iv := schedule.Interval{Start: time.Unix(pr.GetStartUtc(), 0).UTC(), End: time.Unix(pr.GetEndUtc(), 0).UTC()}
		if iv.IsValid() {
			preferred = append(preferred, iv)
		}
	}
	return pol, preferred, nil
}
