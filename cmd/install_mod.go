package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unniemods/unnie-mod-manager/internal/model"
)

var (
	modZipPath   string
	modTargetDir string
)

var installModCmd = &cobra.Command{
	Use:   "install-mod",
	Short: "Install a mod zip into the game's Mods folder",
	Run: func(cmd *cobra.Command, args []string) {
		requireDirectory(modTargetDir)

		if _, err := os.Stat(modZipPath); err != nil {
			fmt.Printf("%s mod archive not found: %s\n", errMsg("Error:"), modZipPath)
			os.Exit(1)
		}

		svc := newInstaller()
		runInstall(svc, func() (*model.InstallTask, error) {
			return svc.InstallMod(modZipPath, modTargetDir)
		})
	},
}

func init() {
	installModCmd.Flags().StringVar(&modZipPath, "zip-path", "", "Path to the mod zip archive")
	installModCmd.Flags().StringVar(&modTargetDir, "target-dir", "", "Game Win64 directory")
	_ = installModCmd.MarkFlagRequired("zip-path")
	_ = installModCmd.MarkFlagRequired("target-dir")
	rootCmd.AddCommand(installModCmd)
}
