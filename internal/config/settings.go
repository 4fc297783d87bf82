package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyGameDir       = "game_directory"
	KeyDebugMode     = "debug_mode"
	KeyUIScale       = "ui_scale"
	KeyWindowWidth   = "window_width"
	KeyWindowHeight  = "window_height"
	KeyLanguage      = "app_language"
	KeyInstalledMods = "installed_mods"
)

// Default values
const (
	DefaultDebugMode    = false
	DefaultUIScale      = 1.0
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultLanguage     = "system"

	MinUIScale = 0.8
	MaxUIScale = 2.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetGameDirectory returns the remembered game binary directory, empty if
// the user has not selected one yet.
func (s *Settings) GetGameDirectory() string {
	return s.app.Preferences().String(KeyGameDir)
}

// SetGameDirectory remembers the game binary directory
func (s *Settings) SetGameDirectory(dir string) {
	s.app.Preferences().SetString(KeyGameDir, dir)
}

// GetDebugMode returns whether verbose debug output is enabled
func (s *Settings) GetDebugMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyDebugMode, DefaultDebugMode)
}

// SetDebugMode sets the debug output flag
func (s *Settings) SetDebugMode(enabled bool) {
	s.app.Preferences().SetBool(KeyDebugMode, enabled)
}

// GetUIScale returns the configured UI scale factor
func (s *Settings) GetUIScale() float64 {
	scale := s.app.Preferences().FloatWithFallback(KeyUIScale, DefaultUIScale)
	if scale < MinUIScale || scale > MaxUIScale {
		return DefaultUIScale
	}
	return scale
}

// SetUIScale sets the UI scale factor, clamped to the supported range
func (s *Settings) SetUIScale(scale float64) {
	if scale < MinUIScale {
		scale = MinUIScale
	}
	if scale > MaxUIScale {
		scale = MaxUIScale
	}
	s.app.Preferences().SetFloat(KeyUIScale, scale)
}

// GetWindowSize returns the persisted window size
func (s *Settings) GetWindowSize() (width, height int) {
	width = s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height = s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	if width <= 0 {
		width = DefaultWindowWidth
	}
	if height <= 0 {
		height = DefaultWindowHeight
	}
	return width, height
}

// SetWindowSize persists the window size for the next start
func (s *Settings) SetWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.app.Preferences().SetInt(KeyWindowWidth, width)
	s.app.Preferences().SetInt(KeyWindowHeight, height)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetInstalledMods returns the cached list of installed mod names shown
// before the first directory scan completes.
func (s *Settings) GetInstalledMods() []string {
	return s.app.Preferences().StringList(KeyInstalledMods)
}

// SetInstalledMods caches the installed mod names
func (s *Settings) SetInstalledMods(names []string) {
	s.app.Preferences().SetStringList(KeyInstalledMods, names)
}
