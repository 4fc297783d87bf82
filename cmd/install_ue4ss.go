package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unniemods/unnie-mod-manager/internal/download"
	"github.com/unniemods/unnie-mod-manager/internal/model"
)

var (
	ue4ssTargetDir string
	ue4ssLatest    bool
)

var installUE4SSCmd = &cobra.Command{
	Use:   "install-ue4ss",
	Short: "Install the UE4SS runtime into a game's Win64 directory",
	Long: `Downloads the UE4SS release archive and extracts its payload into the
target directory. By default the known-good pinned build is used; pass
--latest to resolve the newest release from GitHub instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		requireDirectory(ue4ssTargetDir)

		url := download.PinnedUE4SSURL
		if ue4ssLatest {
			resolver := download.NewResolver(download.LatestReleaseAPIURL, nil)
			asset, err := resolver.LatestAsset(context.Background())
			if err != nil {
				fmt.Printf("%s failed to resolve latest release: %v\n", errMsg("Error:"), err)
				os.Exit(1)
			}
			fmt.Printf("%s %s (%s)\n", bold("Latest release:"), asset.Tag, muted(asset.Name))
			url = asset.URL
		}

		svc := newInstaller()
		runInstall(svc, func() (*model.InstallTask, error) {
			return svc.InstallRuntime(ue4ssTargetDir, url)
		})
	},
}

func init() {
	installUE4SSCmd.Flags().StringVar(&ue4ssTargetDir, "target-dir", "", "Game Win64 directory to install into")
	installUE4SSCmd.Flags().BoolVar(&ue4ssLatest, "latest", false, "Resolve the newest release instead of the pinned build")
	_ = installUE4SSCmd.MarkFlagRequired("target-dir")
	rootCmd.AddCommand(installUE4SSCmd)
}
