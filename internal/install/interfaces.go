package install

import (
	"github.com/unniemods/unnie-mod-manager/internal/model"
)

// Installer defines the interface for the install service.
type Installer interface {
	SetUpdateCallback(func(*model.InstallTask))
	InstallRuntime(targetDir, url string) (*model.InstallTask, error)
	InstallMod(zipPath, targetDir string) (*model.InstallTask, error)
	GetTask(id string) (*model.InstallTask, bool)
	GetAllTasks() []*model.InstallTask
	StopTask(id string) error
	Wait(id string) (*model.InstallTask, error)
}
