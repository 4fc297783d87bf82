package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()

	if !DirectoryExists(tempDir) {
		t.Errorf("DirectoryExists(%s) = false, expected true", tempDir)
	}

	if DirectoryExists(filepath.Join(tempDir, "missing")) {
		t.Error("DirectoryExists for missing path = true, expected false")
	}

	// A file is not a directory
	file := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if DirectoryExists(file) {
		t.Error("DirectoryExists for a file = true, expected false")
	}
}

func TestOpenFolderInManager_NonExistentDirectory(t *testing.T) {
	tempDir := t.TempDir()
	missing := filepath.Join(tempDir, "missing")

	err := OpenFolderInManager(missing)
	if err == nil {
		t.Fatal("Expected error for non-existent directory, got nil")
	}

	if !strings.Contains(err.Error(), "directory does not exist:") {
		t.Errorf("Error message should contain 'directory does not exist:', got: %v", err)
	}
}
