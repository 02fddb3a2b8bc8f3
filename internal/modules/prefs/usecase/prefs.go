package usecase

import (
	"context"

	"notehub/internal/modules/prefs/domain"
	"notehub/internal/modules/prefs/dto"
	prefsin "notehub/internal/modules/prefs/port/in"
	prefsout "notehub/internal/modules/prefs/port/out"
)

type Interactor struct {
	store prefsout.SettingsStore
}

func NewInteractor(store prefsout.SettingsStore) prefsin.Usecase {
	return &Interactor{store: store}
}

func (i *Interactor) Get(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.store.Load(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) ToggleVimMode(ctx context.Context) (dto.SettingsOutput, error) {
	return i.mutate(ctx, func(s *domain.Settings) { s.VimMode = !s.VimMode })
}

func (i *Interactor) ToggleDarkMode(ctx context.Context) (dto.SettingsOutput, error) {
	return i.mutate(ctx, func(s *domain.Settings) { s.DarkMode = !s.DarkMode })
}

func (i *Interactor) mutate(ctx context.Context, apply func(*domain.Settings)) (dto.SettingsOutput, error) {
	settings, err := i.store.Load(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	apply(&settings)
	if err := i.store.Save(ctx, settings); err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func toOutput(s domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{VimMode: s.VimMode, DarkMode: s.DarkMode}
}
