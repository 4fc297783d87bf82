package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/unniemods/unnie-mod-manager/internal/model"
)

// ProgressPanel shows the currently running install under the action
// buttons: title, status, progress bar, and a stop button. It is hidden
// while no install is running.
type ProgressPanel struct {
	container   *fyne.Container
	titleLabel  *widget.Label
	statusLabel *widget.Label
	bar         *widget.ProgressBar
	stopBtn     *widget.Button

	localization *Localization
	onStop       func(taskID string)
	taskID       string
}

// NewProgressPanel creates the install progress panel
func NewProgressPanel(localization *Localization, onStop func(taskID string)) *ProgressPanel {
	pp := &ProgressPanel{
		localization: localization,
		onStop:       onStop,
	}

	pp.titleLabel = widget.NewLabel("")
	pp.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	pp.titleLabel.Truncation = fyne.TextTruncateEllipsis

	pp.statusLabel = widget.NewLabel(DashPlaceholder)

	pp.bar = widget.NewProgressBar()

	pp.stopBtn = widget.NewButton(localization.GetText(KeyStop), func() {
		if pp.onStop != nil && pp.taskID != "" {
			pp.onStop(pp.taskID)
		}
	})
	pp.stopBtn.Importance = widget.DangerImportance

	header := container.NewBorder(nil, nil, nil, pp.statusLabel, pp.titleLabel)
	pp.container = container.NewVBox(header, container.NewBorder(nil, nil, nil, pp.stopBtn, pp.bar))
	pp.container.Hide()

	return pp
}

// Container returns the panel container
func (pp *ProgressPanel) Container() fyne.CanvasObject {
	return pp.container
}

// Update reflects the given task state. Must be called on the UI thread.
func (pp *ProgressPanel) Update(task *model.InstallTask) {
	pp.taskID = task.ID
	pp.titleLabel.SetText(task.GetDisplayTitle())

	status := task.Status.String()
	if task.Status == model.TaskStatusDownloading && task.Speed != "" {
		status = fmt.Sprintf("%s %s", status, task.Speed)
	}
	pp.statusLabel.SetText(status)

	pp.bar.SetValue(task.Progress)

	if task.Status.IsFinished() {
		pp.stopBtn.Disable()
	} else {
		pp.stopBtn.Enable()
	}

	pp.container.Show()
	pp.container.Refresh()
}

// HideWhenMatching hides the panel if it is still showing the given task.
// Used to clear finished installs after a short delay.
func (pp *ProgressPanel) HideWhenMatching(taskID string) {
	if pp.taskID != taskID {
		return
	}
	pp.taskID = ""
	pp.container.Hide()
}
