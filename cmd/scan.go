package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unniemods/unnie-mod-manager/internal/mods"
)

var scanTargetDir string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Print the directory tree under the game's Win64 directory",
	Long: `Walks the target directory and prints every subdirectory. Useful for
checking what a UE4SS install actually placed on disk.`,
	Run: func(cmd *cobra.Command, args []string) {
		requireDirectory(scanTargetDir)

		entries, err := mods.ScanTree(scanTargetDir)
		if err != nil {
			fmt.Printf("%s scan failed: %v\n", errMsg("Error:"), err)
			os.Exit(1)
		}

		if len(entries) == 0 {
			fmt.Println(muted("No subdirectories found"))
			return
		}

		fmt.Println(bold(scanTargetDir))
		for _, entry := range entries {
			fmt.Printf("  %s\n", entry)
		}
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanTargetDir, "target-dir", "", "Game Win64 directory")
	_ = scanCmd.MarkFlagRequired("target-dir")
	rootCmd.AddCommand(scanCmd)
}
