package cmd

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/unniemods/unnie-mod-manager/internal/config"
	"github.com/unniemods/unnie-mod-manager/internal/download"
	"github.com/unniemods/unnie-mod-manager/internal/install"
	"github.com/unniemods/unnie-mod-manager/internal/ui"
)

const appID = "com.unniemods.unnie-mod-manager"

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the graphical interface",
	Run: func(cmd *cobra.Command, args []string) {
		runGUI()
	},
}

// runGUI bootstraps the Fyne application and blocks until the window closes
func runGUI() {
	fyneApp := app.NewWithID(appID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(fyneApp)

	// The Fyne driver reads FYNE_SCALE when the canvas is created, so the
	// configured scale has to be exported before the window is shown.
	if scale := settings.GetUIScale(); scale != config.DefaultUIScale {
		os.Setenv("FYNE_SCALE", fmt.Sprintf("%.1f", scale))
	}

	window := fyneApp.NewWindow("")
	width, height := settings.GetWindowSize()
	window.Resize(fyne.NewSize(float32(width), float32(height)))

	installSvc := install.NewService(download.NewService(nil))
	ui.NewRootUI(window, fyneApp, installSvc)

	window.ShowAndRun()
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
