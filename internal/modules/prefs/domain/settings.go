package domain

// Settings holds UI-only preferences. Documents and sessions are never
// persisted here.
type Settings struct {
	VimMode  bool `yaml:"vim_mode"`
	DarkMode bool `yaml:"dark_mode"`
}

func Defaults() Settings {
	return Settings{VimMode: false, DarkMode: true}
}
