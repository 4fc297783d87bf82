package model

import "time"

// Mod represents an installed mod: a subdirectory of the game's Mods folder.
type Mod struct {
	Name        string
	Path        string
	FileCount   int
	SizeBytes   int64
	InstalledAt time.Time
}
