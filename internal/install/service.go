package install

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unniemods/unnie-mod-manager/internal/applog"
	"github.com/unniemods/unnie-mod-manager/internal/archive"
	"github.com/unniemods/unnie-mod-manager/internal/download"
	"github.com/unniemods/unnie-mod-manager/internal/model"
	"github.com/unniemods/unnie-mod-manager/internal/mods"
	"github.com/unniemods/unnie-mod-manager/internal/platform"
)

// Task constants
const (
	TaskIDPrefix   = "install-"
	StopPollPeriod = 100 * time.Millisecond
	WaitPollPeriod = 100 * time.Millisecond
	RuntimeZipRoot = "UE4SS" // top-level folder inside UE4SS release archives
)

// Service handles install operations
type Service struct {
	tasks      map[string]*model.InstallTask
	tasksMutex sync.RWMutex
	fetcher    download.Fetcher
	onUpdate   func(*model.InstallTask) // callback for UI updates
}

// NewService creates a new install service
func NewService(fetcher download.Fetcher) *Service {
	return &Service{
		tasks:   make(map[string]*model.InstallTask),
		fetcher: fetcher,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.InstallTask)) {
	s.onUpdate = callback
}

// InstallRuntime starts installing the UE4SS runtime archive at url into
// targetDir. Only archive entries under the top-level UE4SS folder are
// extracted, with that folder stripped.
func (s *Service) InstallRuntime(targetDir, url string) (*model.InstallTask, error) {
	if targetDir == "" {
		return nil, fmt.Errorf("target directory is empty")
	}
	if !platform.DirectoryExists(targetDir) {
		return nil, fmt.Errorf("target directory does not exist: %s", targetDir)
	}

	task, err := s.addTask(model.TaskKindRuntime, url, targetDir)
	if err != nil {
		return nil, err
	}

	go s.runTask(task, func(ctx context.Context) error {
		return s.runRuntimeInstall(ctx, task)
	})

	return task, nil
}

// InstallMod starts extracting the given mod zip into targetDir/Mods.
func (s *Service) InstallMod(zipPath, targetDir string) (*model.InstallTask, error) {
	if targetDir == "" {
		return nil, fmt.Errorf("target directory is empty")
	}
	if _, err := os.Stat(zipPath); err != nil {
		return nil, fmt.Errorf("mod zip does not exist: %s", zipPath)
	}

	task, err := s.addTask(model.TaskKindMod, zipPath, targetDir)
	if err != nil {
		return nil, err
	}

	go s.runTask(task, func(ctx context.Context) error {
		return s.runModInstall(ctx, task)
	})

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.InstallTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.InstallTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.InstallTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// StopTask requests a running task to stop
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}

	if !task.Status.IsActive() {
		return fmt.Errorf("task is not active: %s", task.Status)
	}

	task.Status = model.TaskStatusStopping
	s.notifyUpdate(task)

	// The run goroutine observes the status change and cancels
	return nil
}

// Wait blocks until the task reaches a finished state and returns it.
func (s *Service) Wait(id string) (*model.InstallTask, error) {
	for {
		s.tasksMutex.RLock()
		task, exists := s.tasks[id]
		var status model.TaskStatus
		if exists {
			status = task.Status
		}
		s.tasksMutex.RUnlock()

		if !exists {
			return nil, fmt.Errorf("task not found: %s", id)
		}
		if status.IsFinished() {
			return task, nil
		}

		time.Sleep(WaitPollPeriod)
	}
}

// addTask registers a new pending task, rejecting duplicates for the same
// source while one is still running.
func (s *Service) addTask(kind model.TaskKind, source, targetDir string) (*model.InstallTask, error) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	for _, task := range s.tasks {
		if task.Source == source && task.TargetDir == targetDir && !task.Status.IsFinished() {
			return nil, fmt.Errorf("install already in progress for: %s", source)
		}
	}

	task := &model.InstallTask{
		ID:        generateTaskID(),
		Kind:      kind,
		Source:    source,
		TargetDir: targetDir,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task

	return task, nil
}

// runTask drives a task through its lifecycle with stop monitoring.
func (s *Service) runTask(task *model.InstallTask, run func(ctx context.Context) error) {
	s.setStatus(task, model.TaskStatusStarting)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Monitor for stop requests
	go func() {
		for {
			s.tasksMutex.RLock()
			status := task.Status
			s.tasksMutex.RUnlock()

			if status == model.TaskStatusStopping {
				cancel()
				return
			}
			if status.IsFinished() {
				return
			}
			time.Sleep(StopPollPeriod)
		}
	}()

	err := run(ctx)

	s.tasksMutex.Lock()
	if ctx.Err() == context.Canceled {
		task.Status = model.TaskStatusStopped
	} else if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// runRuntimeInstall downloads the UE4SS archive and unpacks it into the
// target directory.
func (s *Service) runRuntimeInstall(ctx context.Context, task *model.InstallTask) error {
	s.setStatus(task, model.TaskStatusDownloading)
	applog.Info("downloading UE4SS", "url", task.Source)

	started := time.Now()
	archivePath, err := s.fetcher.FetchArchive(ctx, task.Source, func(done, total int64) {
		s.updateDownloadProgress(task, done, total, started)
	})
	if err != nil {
		return err
	}
	defer os.Remove(archivePath)

	s.setStatus(task, model.TaskStatusExtracting)
	applog.Info("extracting UE4SS", "target", task.TargetDir)

	written, err := archive.ExtractFile(ctx, archivePath, task.TargetDir, archive.Options{
		StripPrefix: RuntimeZipRoot,
		OnEntry: func(done, total int) {
			s.updateExtractProgress(task, done, total)
		},
	})
	if err != nil {
		return err
	}
	if written == 0 {
		return fmt.Errorf("archive contains no %s payload", RuntimeZipRoot)
	}

	applog.Info("UE4SS installed", "target", task.TargetDir, "files", written)
	return nil
}

// runModInstall extracts a mod zip into the Mods folder.
func (s *Service) runModInstall(ctx context.Context, task *model.InstallTask) error {
	modsDir, err := mods.EnsureDir(task.TargetDir)
	if err != nil {
		return err
	}

	s.setStatus(task, model.TaskStatusExtracting)
	applog.Info("installing mod", "zip", task.Source, "mods_dir", modsDir)

	written, err := archive.ExtractFile(ctx, task.Source, modsDir, archive.Options{
		OnEntry: func(done, total int) {
			s.updateExtractProgress(task, done, total)
		},
	})
	if err != nil {
		return err
	}
	if written == 0 {
		return fmt.Errorf("mod zip is empty: %s", task.Source)
	}

	if names, err := archive.TopLevelDirs(task.Source); err == nil && len(names) > 0 {
		s.tasksMutex.Lock()
		task.InstalledName = names[0]
		s.tasksMutex.Unlock()
	}

	applog.Info("mod installed", "zip", task.Source, "files", written)
	return nil
}

// setStatus transitions a task and notifies listeners
func (s *Service) setStatus(task *model.InstallTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	// Never overwrite a stop request with a forward transition
	if task.Status == model.TaskStatusStopping {
		s.tasksMutex.Unlock()
		return
	}
	task.Status = status
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// updateDownloadProgress maps downloaded bytes onto task progress
func (s *Service) updateDownloadProgress(task *model.InstallTask, done, total int64, started time.Time) {
	s.tasksMutex.Lock()
	task.BytesDone = done
	task.BytesTotal = total
	if total > 0 {
		task.Progress = float64(done) / float64(total)
		task.Percent = int(task.Progress * 100)
	}
	if elapsed := time.Since(started).Seconds(); elapsed > 0 {
		task.Speed = fmt.Sprintf("%.1fMB/s", float64(done)/elapsed/1024/1024)
	}
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// updateExtractProgress maps processed archive entries onto task progress
func (s *Service) updateExtractProgress(task *model.InstallTask, done, total int) {
	s.tasksMutex.Lock()
	if total > 0 {
		task.Progress = float64(done) / float64(total)
		task.Percent = int(task.Progress * 100)
	}
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.InstallTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
