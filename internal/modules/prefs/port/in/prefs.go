package in

import (
	"context"

	"notehub/internal/modules/prefs/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SettingsOutput, error)
	ToggleVimMode(ctx context.Context) (dto.SettingsOutput, error)
	ToggleDarkMode(ctx context.Context) (dto.SettingsOutput, error)
}
