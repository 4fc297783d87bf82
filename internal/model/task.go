package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// TaskKind identifies what an install task installs.
type TaskKind string

const (
	// TaskKindRuntime installs the UE4SS runtime into the game directory
	TaskKindRuntime TaskKind = "runtime"

	// TaskKindMod installs a mod zip into the Mods folder
	TaskKindMod TaskKind = "mod"
)

// InstallTask represents a single runtime or mod install
type InstallTask struct {
	ID            string
	Kind          TaskKind
	Source        string // download URL or local zip path
	TargetDir     string // game binary directory (e.g. .../Binaries/Win64)
	Status        TaskStatus
	Progress      float64   // 0.0 to 1.0
	Percent       int       // 0 to 100
	Speed         string    // human readable download speed (e.g., "1.2MB/s")
	LastError     string    // last error message if any
	InstalledName string    // mod folder name once known
	StartedAt     time.Time // when install started
	FinishedAt    time.Time // when install finished
	BytesTotal    int64     // archive size in bytes, 0 if unknown
	BytesDone     int64     // bytes downloaded so far
}

// GetDisplayTitle returns the mod name, source file name, or URL in order of preference
func (it *InstallTask) GetDisplayTitle() string {
	if it.InstalledName != "" {
		return it.InstalledName
	}

	if it.Kind == TaskKindRuntime {
		return "UE4SS"
	}

	if it.Source != "" && !strings.HasPrefix(it.Source, "http") {
		name := filepath.Base(it.Source)
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		return name
	}

	return it.Source
}

// GetProgressLabel returns the percent formatted for UI display
func (it *InstallTask) GetProgressLabel() string {
	if it.Status == TaskStatusDownloading && it.BytesTotal <= 0 {
		// Unknown content length, percent would be meaningless
		return "…"
	}
	return fmt.Sprintf("%d%%", it.Percent)
}
