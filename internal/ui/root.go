package ui

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/unniemods/unnie-mod-manager/internal/applog"
	"github.com/unniemods/unnie-mod-manager/internal/config"
	"github.com/unniemods/unnie-mod-manager/internal/download"
	"github.com/unniemods/unnie-mod-manager/internal/install"
	"github.com/unniemods/unnie-mod-manager/internal/model"
	"github.com/unniemods/unnie-mod-manager/internal/mods"
	"github.com/unniemods/unnie-mod-manager/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	installSvc   install.Installer

	dirEntry          *widget.Entry
	selectDirBtn      *widget.Button
	hintLabel         *widget.Label
	installRuntimeBtn *widget.Button
	installModBtn     *widget.Button
	openModsBtn       *widget.Button

	modsHeading   *widget.Label
	modCountLabel *widget.Label
	modList       *widget.List
	installedMods []model.Mod
	modsMutex     sync.RWMutex

	progress       *ProgressPanel
	console        *DebugConsole
	consoleHeading *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, installSvc install.Installer) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		installSvc:   installSvc,
		console:      NewDebugConsole(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Route log output into the debug console
	applog.SetOutput(ui.console)
	applog.Init(settings.GetDebugMode())

	ui.installSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	ui.restoreState()

	// Persist window size for next start
	window.SetCloseIntercept(func() {
		size := window.Canvas().Size()
		settings.SetWindowSize(int(size.Width), int(size.Height))
		window.Close()
	})

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Game directory group
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetPlaceHolder(ui.localization.GetText(KeyGameDirectory))
	ui.dirEntry.OnChanged = func(string) { ui.onDirChanged() }

	ui.selectDirBtn = widget.NewButton(ui.localization.GetText(KeySelectDirectory), ui.onSelectDirectory)

	ui.hintLabel = widget.NewLabel(ui.localization.GetText(KeyGameDirHint))
	ui.hintLabel.TextStyle = fyne.TextStyle{Italic: true}
	ui.hintLabel.Wrapping = fyne.TextWrapWord

	dirGroup := container.NewVBox(
		widget.NewLabelWithStyle(ui.localization.GetText(KeyGameDirectory), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.dirEntry,
		ui.selectDirBtn,
		ui.hintLabel,
	)

	// Mod management group
	ui.installRuntimeBtn = widget.NewButton(ui.localization.GetText(KeyInstallUE4SS), ui.onInstallRuntime)
	ui.installRuntimeBtn.Importance = widget.HighImportance
	ui.installModBtn = widget.NewButton(ui.localization.GetText(KeyInstallMod), ui.onInstallMod)
	ui.installModBtn.Importance = widget.HighImportance
	ui.openModsBtn = widget.NewButton(ui.localization.GetText(KeyOpenModsFolder), ui.onOpenModsFolder)

	ui.progress = NewProgressPanel(ui.localization, ui.onStopTask)

	actionsGroup := container.NewVBox(
		widget.NewLabelWithStyle(ui.localization.GetText(KeyModManagement), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.installRuntimeBtn,
		ui.installModBtn,
		ui.openModsBtn,
		ui.progress.Container(),
	)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	sidePanel := container.NewVBox(
		dirGroup,
		widget.NewSeparator(),
		actionsGroup,
		widget.NewSeparator(),
		settingsBtn,
	)

	// Installed mods list
	ui.modsHeading = widget.NewLabelWithStyle(ui.localization.GetText(KeyInstalledMods), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.modCountLabel = widget.NewLabel(ui.localization.GetText(KeyNoModsDetected))

	ui.modList = widget.NewList(
		func() int {
			ui.modsMutex.RLock()
			defer ui.modsMutex.RUnlock()
			return len(ui.installedMods)
		},
		func() fyne.CanvasObject { return ui.createModRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateModRow(id, obj) },
	)

	modsHeader := container.NewBorder(nil, nil, ui.modsHeading, ui.modCountLabel)

	// Debug console
	ui.consoleHeading = widget.NewLabelWithStyle(ui.localization.GetText(KeyDebugOutput), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	consolePanel := container.NewBorder(ui.consoleHeading, nil, nil, nil, ui.console.Container())

	center := container.NewBorder(
		modsHeader,   // top
		consolePanel, // bottom
		nil,
		nil,
		ui.modList,
	)

	sideScroll := container.NewVScroll(container.NewPadded(sidePanel))
	sideScroll.SetMinSize(fyne.NewSize(SidePanelMinWidth, 0))

	content := container.NewBorder(nil, nil, sideScroll, nil, container.NewPadded(center))
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// restoreState loads the remembered directory and cached mod list
func (ui *RootUI) restoreState() {
	if dir := ui.settings.GetGameDirectory(); dir != "" {
		ui.dirEntry.SetText(dir)
		ui.refreshModList()
		return
	}

	// Show the cached names until a directory is selected
	cached := ui.settings.GetInstalledMods()
	if len(cached) > 0 {
		installed := make([]model.Mod, 0, len(cached))
		for _, name := range cached {
			installed = append(installed, model.Mod{Name: name})
		}
		ui.setInstalledMods(installed)
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.dirEntry.SetPlaceHolder(ui.localization.GetText(KeyGameDirectory))
	ui.selectDirBtn.SetText(ui.localization.GetText(KeySelectDirectory))
	ui.hintLabel.SetText(ui.localization.GetText(KeyGameDirHint))
	ui.installRuntimeBtn.SetText(ui.localization.GetText(KeyInstallUE4SS))
	ui.installModBtn.SetText(ui.localization.GetText(KeyInstallMod))
	ui.openModsBtn.SetText(ui.localization.GetText(KeyOpenModsFolder))
	ui.modsHeading.SetText(ui.localization.GetText(KeyInstalledMods))
	ui.consoleHeading.SetText(ui.localization.GetText(KeyDebugOutput))
	ui.updateModCountLabel()
	ui.modList.Refresh()
}

// targetDir returns the currently selected game directory
func (ui *RootUI) targetDir() string {
	return ui.dirEntry.Text
}

// requireTargetDir shows a popup when no directory is selected
func (ui *RootUI) requireTargetDir() (string, bool) {
	dir := ui.targetDir()
	if dir == "" {
		msg := ui.localization.GetText(KeySelectDirFirst)
		applog.Error(msg)
		widget.ShowPopUp(widget.NewLabel(msg), ui.window.Canvas())
		return "", false
	}
	return dir, true
}

// onSelectDirectory opens the folder picker
func (ui *RootUI) onSelectDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.dirEntry.SetText(uri.Path())
		applog.Info("selected game directory", "dir", uri.Path())
	}, ui.window)
}

// onDirChanged persists the directory and rescans mods
func (ui *RootUI) onDirChanged() {
	ui.settings.SetGameDirectory(ui.targetDir())
	ui.refreshModList()
}

// onInstallRuntime starts a UE4SS install into the selected directory
func (ui *RootUI) onInstallRuntime() {
	dir, ok := ui.requireTargetDir()
	if !ok {
		return
	}

	task, err := ui.installSvc.InstallRuntime(dir, download.PinnedUE4SSURL)
	if err != nil {
		applog.Error("failed to start UE4SS install", "err", err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInstallFailed)+": "+err.Error()), ui.window.Canvas())
		return
	}

	applog.Info("UE4SS install started", "task", task.ID)
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInstallStarted)), ui.window.Canvas())
}

// onInstallMod opens the zip picker and starts a mod install
func (ui *RootUI) onInstallMod() {
	dir, ok := ui.requireTargetDir()
	if !ok {
		return
	}

	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		zipPath := reader.URI().Path()
		_ = reader.Close()

		task, err := ui.installSvc.InstallMod(zipPath, dir)
		if err != nil {
			applog.Error("failed to start mod install", "zip", zipPath, "err", err)
			widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInstallFailed)+": "+err.Error()), ui.window.Canvas())
			return
		}

		applog.Info("mod install started", "task", task.ID, "zip", zipPath)
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".zip"}))
	fileDialog.Show()
}

// onOpenModsFolder opens the Mods folder in the system file manager
func (ui *RootUI) onOpenModsFolder() {
	dir, ok := ui.requireTargetDir()
	if !ok {
		return
	}

	modsDir, err := mods.EnsureDir(dir)
	if err != nil {
		applog.Error("failed to create Mods folder", "err", err)
		return
	}

	if err := platform.OpenFolderInManager(modsDir); err != nil {
		applog.Error("failed to open Mods folder", "err", err)
	}
}

// onStopTask requests the running install to stop
func (ui *RootUI) onStopTask(taskID string) {
	if err := ui.installSvc.StopTask(taskID); err != nil {
		applog.Error("failed to stop install", "task", taskID, "err", err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		applog.Init(ui.settings.GetDebugMode())
		if dir := ui.settings.GetGameDirectory(); dir != ui.targetDir() {
			ui.dirEntry.SetText(dir)
		}
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// onTaskUpdate handles install task updates from the service
func (ui *RootUI) onTaskUpdate(task *model.InstallTask) {
	fyne.Do(func() {
		ui.progress.Update(task)
	})

	if !task.Status.IsFinished() {
		return
	}

	switch task.Status {
	case model.TaskStatusCompleted:
		ui.notifyCompleted(task)
		ui.refreshModList()
		if task.Kind == model.TaskKindRuntime && ui.settings.GetDebugMode() {
			ui.logInstalledTree(task.TargetDir)
		}
	case model.TaskStatusError:
		applog.Error("install failed", "task", task.ID, "err", task.LastError)
	case model.TaskStatusStopped:
		applog.Info("install stopped", "task", task.ID)
	}

	// Clear the progress panel once the result has been visible for a moment
	go func(id string) {
		time.Sleep(ProgressHideDelay)
		fyne.Do(func() {
			ui.progress.HideWhenMatching(id)
		})
	}(task.ID)
}

// notifyCompleted sends a system notification for a finished install
func (ui *RootUI) notifyCompleted(task *model.InstallTask) {
	applog.Info("install completed", "task", task.ID, "name", task.GetDisplayTitle())
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyInstallCompleted),
		Content: task.GetDisplayTitle(),
	})
}

// logInstalledTree dumps the directory tree after a runtime install
func (ui *RootUI) logInstalledTree(dir string) {
	entries, err := mods.ScanTree(dir)
	if err != nil {
		applog.Debug("tree scan failed", "err", err)
		return
	}
	for _, entry := range entries {
		applog.Debug("tree", "dir", entry)
	}
}

// onRemoveMod deletes an installed mod folder
func (ui *RootUI) onRemoveMod(name string) {
	dir, ok := ui.requireTargetDir()
	if !ok {
		return
	}

	if err := mods.Remove(dir, name); err != nil {
		applog.Error("failed to remove mod", "mod", name, "err", err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyRemoveFailed)+": "+err.Error()), ui.window.Canvas())
		return
	}

	applog.Info("mod removed", "mod", name)
	ui.refreshModList()
}

// createModRow creates a row widget for the installed mods list
func (ui *RootUI) createModRow() fyne.CanvasObject {
	nameLabel := widget.NewLabel("")
	nameLabel.Truncation = fyne.TextTruncateEllipsis

	removeBtn := widget.NewButton(IconDelete, nil)
	removeBtn.Importance = widget.LowImportance

	return container.NewBorder(nil, nil, nil, removeBtn, nameLabel)
}

// updateModRow binds a list row to a mod entry
func (ui *RootUI) updateModRow(id widget.ListItemID, obj fyne.CanvasObject) {
	ui.modsMutex.RLock()
	if id >= len(ui.installedMods) {
		ui.modsMutex.RUnlock()
		return
	}
	mod := ui.installedMods[id]
	ui.modsMutex.RUnlock()

	row, ok := obj.(*fyne.Container)
	if !ok {
		return
	}

	for _, child := range row.Objects {
		switch w := child.(type) {
		case *widget.Label:
			label := mod.Name
			if mod.FileCount > 0 {
				label = fmt.Sprintf("%s (%d files)", mod.Name, mod.FileCount)
			}
			w.SetText(label)
		case *widget.Button:
			name := mod.Name
			w.OnTapped = func() { ui.onRemoveMod(name) }
		}
	}
}

// refreshModList rescans the Mods folder and updates the list
func (ui *RootUI) refreshModList() {
	dir := ui.targetDir()
	if dir == "" {
		ui.setInstalledMods(nil)
		return
	}

	installed, err := mods.ListInstalled(dir)
	if err != nil {
		applog.Error("failed to list mods", "err", err)
		ui.setInstalledMods(nil)
		return
	}

	ui.setInstalledMods(installed)
	ui.settings.SetInstalledMods(mods.InstalledNames(installed))
}

// setInstalledMods swaps the mod list contents and refreshes the UI
func (ui *RootUI) setInstalledMods(installed []model.Mod) {
	ui.modsMutex.Lock()
	ui.installedMods = installed
	ui.modsMutex.Unlock()

	fyne.Do(func() {
		ui.updateModCountLabel()
		ui.modList.Refresh()
	})
}

// updateModCountLabel reflects the number of installed mods
func (ui *RootUI) updateModCountLabel() {
	ui.modsMutex.RLock()
	count := len(ui.installedMods)
	ui.modsMutex.RUnlock()

	if count == 0 {
		ui.modCountLabel.SetText(ui.localization.GetText(KeyNoModsDetected))
		return
	}
	ui.modCountLabel.SetText(fmt.Sprintf(ModCountLabelFormat, count))
}
