package out

import (
	"context"

	"notehub/internal/modules/prefs/domain"
)

type SettingsStore interface {
	// Load returns defaults when no settings have been saved yet.
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}
