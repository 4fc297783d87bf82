package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/unniemods/unnie-mod-manager/internal/config"
)

// ShowSettingsDialog shows the application settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	// Game directory
	dirEntry := widget.NewEntry()
	dirEntry.SetText(settings.GetGameDirectory())
	dirEntry.SetPlaceHolder(localization.GetText(KeyGameDirHint))

	browseBtn := widget.NewButton(localization.GetText(KeyBrowse), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			dirEntry.SetText(uri.Path())
		}, window)
	})

	dirRow := container.NewBorder(nil, nil, nil, browseBtn, dirEntry)

	// UI scale
	scaleValueLabel := widget.NewLabel(fmt.Sprintf("%.1f", settings.GetUIScale()))
	scaleSlider := widget.NewSlider(config.MinUIScale, config.MaxUIScale)
	scaleSlider.Step = 0.1
	scaleSlider.SetValue(settings.GetUIScale())
	scaleSlider.OnChanged = func(value float64) {
		scaleValueLabel.SetText(fmt.Sprintf("%.1f", value))
	}

	scaleNote := widget.NewLabel(localization.GetText(KeyScaleRestartNote))
	scaleNote.TextStyle = fyne.TextStyle{Italic: true}

	scaleRow := container.NewBorder(nil, nil, nil, scaleValueLabel, scaleSlider)

	// Debug mode
	debugCheck := widget.NewCheck(localization.GetText(KeyDebugMode), nil)
	debugCheck.SetChecked(settings.GetDebugMode())

	// Language
	languages := localization.GetAvailableLanguages()
	languageNames := make([]string, 0, len(languages))
	nameToCode := make(map[string]string, len(languages))
	for code, name := range languages {
		languageNames = append(languageNames, name)
		nameToCode[name] = code
	}

	languageSelect := widget.NewSelect(languageNames, nil)
	if current, ok := languages[localization.GetCurrentLanguage()]; ok {
		languageSelect.SetSelected(current)
	}

	content := container.NewVBox(
		widget.NewLabelWithStyle(localization.GetText(KeyGameDirectory), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		dirRow,
		widget.NewSeparator(),
		widget.NewLabelWithStyle(localization.GetText(KeyUIScale), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		scaleRow,
		scaleNote,
		widget.NewSeparator(),
		debugCheck,
		widget.NewSeparator(),
		widget.NewLabelWithStyle(localization.GetText(KeyLanguage), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		languageSelect,
	)

	settingsDialog := dialog.NewCustomConfirm(
		localization.GetText(KeySettings),
		localization.GetText(KeySave),
		localization.GetText(KeyCancel),
		content,
		func(save bool) {
			if !save {
				return
			}

			settings.SetGameDirectory(dirEntry.Text)
			settings.SetUIScale(scaleSlider.Value)
			settings.SetDebugMode(debugCheck.Checked)

			if code, ok := nameToCode[languageSelect.Selected]; ok {
				settings.SetLanguage(code)
				localization.SetLanguage(code)
			}

			if onSaved != nil {
				onSaved()
			}
		},
		window,
	)

	settingsDialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
	settingsDialog.Show()
}
