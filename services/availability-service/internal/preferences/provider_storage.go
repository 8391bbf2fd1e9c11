package preferences

import (
	"context"
	"log/slog"
	"time"

	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/schedule"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/storage"
)

type storageProvider struct {
	repo     *storage.PreferenceRepository
	logger   *slog.Logger
	fallback schedule.Policy
}

// NewStorageProvider loads preference records from the preference store. Users
// without a stored record get the fallback policy; a malformed stored record
// is surfaced as an error rather than silently replaced.
func NewStorageProvider(repo *storage.PreferenceRepository, logger *slog.Logger, fallback schedule.Policy) Provider {
	return &storageProvider{repo: repo, logger: logger, fallback: fallback}
}

func (p *storageProvider) Load(ctx context.Context, userID string, from, to time.Time) (schedule.Policy, []schedule.Interval, error) {
	rec, err := p.repo.Get(ctx, userID)
	if err != nil {
		if storage.IsNotFound(err) {
			p.logger.Info("no stored preferences, using fallback", "user_id", userID)
			return p.fallback, nil, nil
		}
		return schedule.Policy{}, nil, err
	}

	pol, err := rec.Policy()
	if err != nil {
		return schedule.Policy{}, nil, err
	}

	preferred, err := p.repo.ListPreferredRanges(ctx, userID, from, to)
	if err != nil {
		// Preferred ranges only affect ranking; degrade rather than fail.
		p.logger.Warn("preferred ranges fetch failed", "err", err, "user_id", userID)
		preferred = nil
	}
	return pol, preferred, nil
}
