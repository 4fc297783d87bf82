package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/unniemods/unnie-mod-manager/internal/download"
	"github.com/unniemods/unnie-mod-manager/internal/install"
	"github.com/unniemods/unnie-mod-manager/internal/model"
	"github.com/unniemods/unnie-mod-manager/internal/platform"
)

// newInstaller wires the download and install services for CLI use
func newInstaller() install.Installer {
	return install.NewService(download.NewService(nil))
}

// requireDirectory exits when the target directory does not exist
func requireDirectory(dir string) {
	if !platform.DirectoryExists(dir) {
		fmt.Printf("%s target directory does not exist: %s\n", errMsg("Error:"), dir)
		os.Exit(1)
	}
}

// progressLine formats one progress line, e.g. "   50%  1.2MB/s"
func progressLine(percent int, speed string) string {
	if speed != "" {
		return fmt.Sprintf("  %3d%%  %s\n", percent, muted(speed))
	}
	return fmt.Sprintf("  %3d%%\n", percent)
}

// runInstall starts an install through the service, streams progress to
// stdout, and blocks until the task finishes. Exits non-zero on failure.
func runInstall(svc install.Installer, start func() (*model.InstallTask, error)) {
	var mu sync.Mutex
	lastStatus := model.TaskStatusPending
	lastStep := -1

	svc.SetUpdateCallback(func(task *model.InstallTask) {
		mu.Lock()
		defer mu.Unlock()

		if task.Status != lastStatus {
			lastStatus = task.Status
			lastStep = -1
			switch task.Status {
			case model.TaskStatusDownloading:
				fmt.Println(bold("Downloading..."))
			case model.TaskStatusExtracting:
				fmt.Println(bold("Extracting..."))
			}
		}

		// Percent arrives continuously, keep the output to 10% steps
		step := task.Percent / 10
		if task.Percent > 0 && step > lastStep {
			lastStep = step
			fmt.Print(progressLine(task.Percent, task.Speed))
		}
	})

	task, err := start()
	if err != nil {
		fmt.Printf("%s %v\n", errMsg("Error:"), err)
		os.Exit(1)
	}

	done, err := svc.Wait(task.ID)
	if err != nil {
		fmt.Printf("%s %v\n", errMsg("Error:"), err)
		os.Exit(1)
	}

	if done.Status != model.TaskStatusCompleted {
		fmt.Printf("%s install failed: %s\n", errMsg("Error:"), done.LastError)
		os.Exit(1)
	}

	fmt.Printf("%s %s\n", success("Done:"), done.GetDisplayTitle())
}
