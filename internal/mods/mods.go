// Package mods manages the game's Mods folder: enumeration of installed
// mods, recursive tree scans, and mod removal.
package mods

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/unniemods/unnie-mod-manager/internal/model"
	"github.com/unniemods/unnie-mod-manager/internal/platform"
)

// ModsFolderName is the UE4SS mods folder inside the game binary directory.
const ModsFolderName = "Mods"

// Dir returns the Mods folder path for the given game directory.
func Dir(targetDir string) string {
	return filepath.Join(targetDir, ModsFolderName)
}

// EnsureDir creates the Mods folder if missing and returns its path.
func EnsureDir(targetDir string) (string, error) {
	dir := Dir(targetDir)
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create Mods folder: %w", err)
	}
	return dir, nil
}

// ListInstalled returns the installed mods: one entry per subdirectory of
// the Mods folder, sorted by name. A missing Mods folder yields an empty
// list, not an error.
func ListInstalled(targetDir string) ([]model.Mod, error) {
	dir := Dir(targetDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read Mods folder: %w", err)
	}

	var installed []model.Mod
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		modPath := filepath.Join(dir, entry.Name())
		mod := model.Mod{
			Name: entry.Name(),
			Path: modPath,
		}

		if info, err := entry.Info(); err == nil {
			mod.InstalledAt = info.ModTime()
		}
		mod.FileCount, mod.SizeBytes = statTree(modPath)

		installed = append(installed, mod)
	}

	sort.Slice(installed, func(i, j int) bool {
		return installed[i].Name < installed[j].Name
	})

	return installed, nil
}

// Remove deletes an installed mod folder. The name must be a bare folder
// name, not a path.
func Remove(targetDir, name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("invalid mod name: %q", name)
	}

	modPath := filepath.Join(Dir(targetDir), name)
	info, err := os.Stat(modPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("mod not installed: %s", name)
		}
		return fmt.Errorf("failed to stat mod %s: %w", name, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a mod folder: %s", name)
	}

	if err := os.RemoveAll(modPath); err != nil {
		return fmt.Errorf("failed to remove mod %s: %w", name, err)
	}
	return nil
}

// ScanTree recursively lists all directories under root as slash-separated
// paths relative to root. A missing root yields an empty list.
func ScanTree(root string) ([]string, error) {
	if !platform.DirectoryExists(root) {
		return nil, nil
	}

	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		dirs = append(dirs, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return dirs, nil
}

// InstalledNames returns just the mod folder names, for preference caching.
func InstalledNames(installed []model.Mod) []string {
	names := make([]string, 0, len(installed))
	for _, mod := range installed {
		names = append(names, mod.Name)
	}
	return names
}

// statTree totals the files and bytes under a mod folder.
func statTree(root string) (int, int64) {
	var count int
	var size int64

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		count++
		if info, err := d.Info(); err == nil {
			size += info.Size()
		}
		return nil
	})

	return count, size
}
