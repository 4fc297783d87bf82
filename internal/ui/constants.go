package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconDelete   = "🗑"
)

// Text fragments
const (
	DashPlaceholder     = "—"
	ModCountLabelFormat = "%d installed"
)

// Layout sizing
const (
	SidePanelMinWidth float32 = 280
	ConsoleMinHeight  float32 = 120

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420
)

// Debug console behavior
const (
	ConsoleMaxLines = 500
)

// Progress panel behavior
const (
	ProgressHideDelay = 3 * time.Second
)
