package preferences

import (
	"context"
	"time"

	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/schedule"
)

// Provider resolves a user's scheduling preferences for one computation.
// Preferred ranges are clipped to [from, to) by implementations.
type Provider interface {
	Load(ctx context.Context, userID string, from, to time.Time) (schedule.Policy, []schedule.Interval, error)
}

type staticProvider struct {
	policy schedule.Policy
}

// NewStaticProvider always answers with the given policy and no preferred
// ranges. Used as a fallback when no preference store is configured.
func NewStaticProvider(policy schedule.Policy) Provider {
	return &staticProvider{policy: policy}
}

func (p *staticProvider) Load(_ context.Context, _ string, _, _ time.Time) (schedule.Policy, []schedule.Interval, error) {
	return p.policy, nil, nil
}
