package install

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unniemods/unnie-mod-manager/internal/download"
	"github.com/unniemods/unnie-mod-manager/internal/model"
)

// fakeFetcher serves a prepared zip payload instead of hitting the network.
type fakeFetcher struct {
	payload []byte
	err     error
}

func (f *fakeFetcher) FetchArchive(ctx context.Context, url string, progress download.ProgressFunc) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	tmp, err := os.CreateTemp("", "fake-fetch-*.zip")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(f.payload); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if progress != nil {
		progress(int64(len(f.payload)), int64(len(f.payload)))
	}
	return tmp.Name(), nil
}

// blockingFetcher signals when the download starts and then blocks until
// its context is cancelled, so a stop request can land mid-install.
type blockingFetcher struct {
	started chan struct{}
}

func (f *blockingFetcher) FetchArchive(ctx context.Context, url string, progress download.ProgressFunc) (string, error) {
	close(f.started)
	<-ctx.Done()
	return "", ctx.Err()
}

// zipBytes builds an in-memory zip from name -> content.
func zipBytes(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func writeZipFile(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mod.zip")
	require.NoError(t, os.WriteFile(path, zipBytes(t, entries), 0644))
	return path
}

func TestInstallRuntime(t *testing.T) {
	payload := zipBytes(t, map[string]string{
		"UE4SS/UE4SS.dll":          "binary",
		"UE4SS/UE4SS-settings.ini": "[General]",
		"UE4SS/Mods/shared.lua":    "lua",
		"Docs/readme.md":           "outside payload",
	})

	svc := NewService(&fakeFetcher{payload: payload})
	targetDir := t.TempDir()

	task, err := svc.InstallRuntime(targetDir, "https://example.com/ue4ss.zip")
	require.NoError(t, err)
	assert.Equal(t, model.TaskKindRuntime, task.Kind)

	finished, err := svc.Wait(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, finished.Status)
	assert.Equal(t, 100, finished.Percent)

	assert.FileExists(t, filepath.Join(targetDir, "UE4SS.dll"))
	assert.FileExists(t, filepath.Join(targetDir, "UE4SS-settings.ini"))
	assert.FileExists(t, filepath.Join(targetDir, "Mods", "shared.lua"))
	assert.NoFileExists(t, filepath.Join(targetDir, "Docs", "readme.md"))
}

func TestInstallRuntimeMissingTargetDir(t *testing.T) {
	svc := NewService(&fakeFetcher{})

	_, err := svc.InstallRuntime(filepath.Join(t.TempDir(), "missing"), "https://example.com/a.zip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target directory does not exist")

	_, err = svc.InstallRuntime("", "https://example.com/a.zip")
	require.Error(t, err)
}

func TestInstallRuntimeNoPayload(t *testing.T) {
	payload := zipBytes(t, map[string]string{"Docs/readme.md": "no runtime here"})
	svc := NewService(&fakeFetcher{payload: payload})

	task, err := svc.InstallRuntime(t.TempDir(), "https://example.com/bad.zip")
	require.NoError(t, err)

	finished, err := svc.Wait(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusError, finished.Status)
	assert.Contains(t, finished.LastError, "no UE4SS payload")
}

func TestInstallRuntimeDownloadError(t *testing.T) {
	svc := NewService(&fakeFetcher{err: fmt.Errorf("download failed: HTTP 503")})

	task, err := svc.InstallRuntime(t.TempDir(), "https://example.com/a.zip")
	require.NoError(t, err)

	finished, err := svc.Wait(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusError, finished.Status)
	assert.Contains(t, finished.LastError, "HTTP 503")
}

func TestInstallMod(t *testing.T) {
	zipPath := writeZipFile(t, map[string]string{
		"SprintFix/Scripts/main.lua": "print('sprint')",
		"SprintFix/enabled.txt":      "",
	})

	svc := NewService(&fakeFetcher{})
	targetDir := t.TempDir()

	task, err := svc.InstallMod(zipPath, targetDir)
	require.NoError(t, err)
	assert.Equal(t, model.TaskKindMod, task.Kind)

	finished, err := svc.Wait(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, finished.Status)
	assert.Equal(t, "SprintFix", finished.InstalledName)

	assert.FileExists(t, filepath.Join(targetDir, "Mods", "SprintFix", "Scripts", "main.lua"))
	assert.FileExists(t, filepath.Join(targetDir, "Mods", "SprintFix", "enabled.txt"))
}

func TestInstallModMissingZip(t *testing.T) {
	svc := NewService(&fakeFetcher{})

	_, err := svc.InstallMod(filepath.Join(t.TempDir(), "nope.zip"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mod zip does not exist")
}

func TestInstallModDuplicate(t *testing.T) {
	// A zip large enough that the first install is still pending when the
	// duplicate arrives is hard to arrange; instead reject based on the
	// unfinished task entry itself.
	zipPath := writeZipFile(t, map[string]string{"M/a.lua": "x"})

	svc := NewService(&fakeFetcher{})
	targetDir := t.TempDir()

	// Seed an unfinished task directly
	seeded, err := svc.addTask(model.TaskKindMod, zipPath, targetDir)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, seeded.Status)

	_, err = svc.InstallMod(zipPath, targetDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in progress")
}

func TestStopTask(t *testing.T) {
	fetcher := &blockingFetcher{started: make(chan struct{})}
	svc := NewService(fetcher)

	task, err := svc.InstallRuntime(t.TempDir(), "https://example.com/a.zip")
	require.NoError(t, err)

	// Wait until the download is underway before requesting the stop
	<-fetcher.started
	require.NoError(t, svc.StopTask(task.ID))

	finished, err := svc.Wait(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusStopped, finished.Status)
	assert.Empty(t, finished.LastError)
	assert.False(t, finished.FinishedAt.IsZero())
}

func TestStopTaskNotFound(t *testing.T) {
	svc := NewService(&fakeFetcher{})

	err := svc.StopTask("install-unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task not found")
}

func TestStopTaskNotActive(t *testing.T) {
	zipPath := writeZipFile(t, map[string]string{"M/a.lua": "x"})
	svc := NewService(&fakeFetcher{})

	task, err := svc.InstallMod(zipPath, t.TempDir())
	require.NoError(t, err)

	_, err = svc.Wait(task.ID)
	require.NoError(t, err)

	err = svc.StopTask(task.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func TestUpdateCallback(t *testing.T) {
	zipPath := writeZipFile(t, map[string]string{"M/a.lua": "x"})
	svc := NewService(&fakeFetcher{})

	var mu sync.Mutex
	var statuses []model.TaskStatus
	svc.SetUpdateCallback(func(task *model.InstallTask) {
		mu.Lock()
		statuses = append(statuses, task.Status)
		mu.Unlock()
	})

	task, err := svc.InstallMod(zipPath, t.TempDir())
	require.NoError(t, err)

	_, err = svc.Wait(task.ID)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, statuses)
	assert.Equal(t, model.TaskStatusCompleted, statuses[len(statuses)-1])
	assert.Contains(t, statuses, model.TaskStatusExtracting)
}

func TestGetAllTasks(t *testing.T) {
	zipPath := writeZipFile(t, map[string]string{"M/a.lua": "x"})
	svc := NewService(&fakeFetcher{})

	task, err := svc.InstallMod(zipPath, t.TempDir())
	require.NoError(t, err)
	_, err = svc.Wait(task.ID)
	require.NoError(t, err)

	all := svc.GetAllTasks()
	require.Len(t, all, 1)
	assert.Equal(t, task.ID, all[0].ID)

	got, ok := svc.GetTask(task.ID)
	assert.True(t, ok)
	assert.Equal(t, task.ID, got.ID)

	_, ok = svc.GetTask("missing")
	assert.False(t, ok)
}
