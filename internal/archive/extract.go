package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File permissions for extracted entries
const (
	DirPermissions  = 0755
	FilePermissions = 0644
)

// Options controls how an archive is extracted.
type Options struct {
	// StripPrefix limits extraction to entries under the given top-level
	// folder (compared case-insensitively) and removes that folder from the
	// destination path. Empty means extract everything.
	StripPrefix string

	// OnEntry, if set, is called after each extracted entry with the number
	// of entries processed so far and the total entry count.
	OnEntry func(done, total int)
}

// ExtractFile extracts the zip archive at zipPath into destDir.
// It returns the number of file entries written.
func ExtractFile(ctx context.Context, zipPath, destDir string, opts Options) (int, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open zip archive %s: %w", zipPath, err)
	}
	defer reader.Close()

	return extract(ctx, &reader.Reader, destDir, opts)
}

// Extract extracts a zip archive from an in-memory or seekable source.
func Extract(ctx context.Context, r io.ReaderAt, size int64, destDir string, opts Options) (int, error) {
	reader, err := zip.NewReader(r, size)
	if err != nil {
		return 0, fmt.Errorf("failed to read zip archive: %w", err)
	}

	return extract(ctx, reader, destDir, opts)
}

func extract(ctx context.Context, reader *zip.Reader, destDir string, opts Options) (int, error) {
	total := len(reader.File)
	written := 0

	for i, entry := range reader.File {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		relPath, ok := entryDestination(entry.Name, opts.StripPrefix)
		if !ok {
			continue
		}

		destPath := filepath.Join(destDir, relPath)

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, DirPermissions); err != nil {
				return written, fmt.Errorf("failed to create directory %s: %w", destPath, err)
			}
		} else {
			if err := writeEntry(entry, destPath); err != nil {
				return written, err
			}
			written++
		}

		if opts.OnEntry != nil {
			opts.OnEntry(i+1, total)
		}
	}

	return written, nil
}

// writeEntry writes a single zip file entry to destPath, creating parents.
func writeEntry(entry *zip.File, destPath string) error {
	if parent := filepath.Dir(destPath); parent != "" {
		if err := os.MkdirAll(parent, DirPermissions); err != nil {
			return fmt.Errorf("failed to create parent directory %s: %w", parent, err)
		}
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open zip entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file %s: %w", destPath, err)
	}

	return nil
}

// TopLevelDirs returns the unique top-level directory names in the archive,
// in order of first appearance. Used to report which mod folder a zip
// created.
func TopLevelDirs(zipPath string) ([]string, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive %s: %w", zipPath, err)
	}
	defer reader.Close()

	seen := make(map[string]bool)
	var names []string

	for _, entry := range reader.File {
		clean, ok := sanitizeEntryName(entry.Name)
		if !ok {
			continue
		}

		idx := strings.Index(clean, "/")
		if idx <= 0 {
			// Loose top-level file, or a bare top-level dir entry
			if entry.FileInfo().IsDir() {
				idx = len(clean)
			} else {
				continue
			}
		}

		name := clean[:idx]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names, nil
}

// entryDestination sanitizes a zip entry name and applies the prefix filter.
// It returns the relative destination path and whether the entry should be
// extracted at all. Absolute paths and paths escaping the destination are
// rejected.
func entryDestination(name, stripPrefix string) (string, bool) {
	clean, ok := sanitizeEntryName(name)
	if !ok {
		return "", false
	}

	if stripPrefix == "" {
		return clean, true
	}

	parts := strings.Split(clean, "/")
	if len(parts) < 2 {
		// Top-level entry itself, or nothing left after stripping
		return "", false
	}
	if !strings.EqualFold(parts[0], stripPrefix) {
		return "", false
	}

	return strings.Join(parts[1:], "/"), true
}

// sanitizeEntryName normalizes a zip entry name to a safe slash-separated
// relative path. Entries with absolute paths, drive letters, or parent
// traversal are rejected.
func sanitizeEntryName(name string) (string, bool) {
	clean := strings.ReplaceAll(name, "\\", "/")
	clean = strings.TrimPrefix(clean, "./")

	if clean == "" || strings.HasPrefix(clean, "/") {
		return "", false
	}
	// Windows drive letters (C:) and UNC-ish names
	if strings.Contains(clean, ":") {
		return "", false
	}

	clean = strings.TrimSuffix(clean, "/")
	if clean == "" {
		return "", false
	}

	for _, part := range strings.Split(clean, "/") {
		if part == ".." {
			return "", false
		}
	}

	return clean, true
}
