package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestGameDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// No directory remembered initially
	if dir := settings.GetGameDirectory(); dir != "" {
		t.Errorf("Expected empty game directory, got %s", dir)
	}

	customDir := "/games/Expedition 33/Sandfall/Binaries/Win64"
	settings.SetGameDirectory(customDir)

	if dir := settings.GetGameDirectory(); dir != customDir {
		t.Errorf("Expected game directory %s, got %s", customDir, dir)
	}
}

func TestDebugMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetDebugMode() != DefaultDebugMode {
		t.Errorf("Expected default debug mode %v", DefaultDebugMode)
	}

	settings.SetDebugMode(true)
	if !settings.GetDebugMode() {
		t.Error("Expected debug mode to be enabled")
	}
}

func TestUIScale(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if scale := settings.GetUIScale(); scale != DefaultUIScale {
		t.Errorf("Expected default UI scale %v, got %v", DefaultUIScale, scale)
	}

	settings.SetUIScale(1.5)
	if scale := settings.GetUIScale(); scale != 1.5 {
		t.Errorf("Expected UI scale 1.5, got %v", scale)
	}

	// Clamped to bounds
	settings.SetUIScale(0.1)
	if scale := settings.GetUIScale(); scale != MinUIScale {
		t.Errorf("Expected UI scale clamped to %v, got %v", MinUIScale, scale)
	}

	settings.SetUIScale(5.0)
	if scale := settings.GetUIScale(); scale != MaxUIScale {
		t.Errorf("Expected UI scale clamped to %v, got %v", MaxUIScale, scale)
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	width, height := settings.GetWindowSize()
	if width != DefaultWindowWidth || height != DefaultWindowHeight {
		t.Errorf("Expected default window size %dx%d, got %dx%d",
			DefaultWindowWidth, DefaultWindowHeight, width, height)
	}

	settings.SetWindowSize(1024, 768)
	width, height = settings.GetWindowSize()
	if width != 1024 || height != 768 {
		t.Errorf("Expected window size 1024x768, got %dx%d", width, height)
	}

	// Invalid sizes are ignored
	settings.SetWindowSize(0, -1)
	width, height = settings.GetWindowSize()
	if width != 1024 || height != 768 {
		t.Errorf("Invalid size should be ignored, got %dx%d", width, height)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}
}

func TestInstalledMods(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if mods := settings.GetInstalledMods(); len(mods) != 0 {
		t.Errorf("Expected no cached mods, got %v", mods)
	}

	names := []string{"BetterCamera", "SprintFix"}
	settings.SetInstalledMods(names)

	cached := settings.GetInstalledMods()
	if len(cached) != 2 || cached[0] != "BetterCamera" || cached[1] != "SprintFix" {
		t.Errorf("Expected cached mods %v, got %v", names, cached)
	}
}
