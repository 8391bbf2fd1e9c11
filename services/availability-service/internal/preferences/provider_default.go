//go:build !protogen

package preferences

import (
	"log/slog"

	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/schedule"
)

func NewRemoteProvider(_ *slog.Logger, fallback schedule.Policy, _ string) (Provider, error) {
	return NewStaticProvider(fallback), nil
}
