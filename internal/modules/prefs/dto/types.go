package dto

type SettingsOutput struct {
	VimMode  bool
	DarkMode bool
}
