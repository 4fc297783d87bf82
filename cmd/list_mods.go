package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unniemods/unnie-mod-manager/internal/mods"
)

var listModsTargetDir string

var listModsCmd = &cobra.Command{
	Use:   "list-mods",
	Short: "List mods installed in the game's Mods folder",
	Run: func(cmd *cobra.Command, args []string) {
		requireDirectory(listModsTargetDir)

		installed, err := mods.ListInstalled(listModsTargetDir)
		if err != nil {
			fmt.Printf("%s failed to list mods: %v\n", errMsg("Error:"), err)
			os.Exit(1)
		}

		if len(installed) == 0 {
			fmt.Println(muted("No mods installed"))
			return
		}

		fmt.Println(bold("Installed Mods"))
		fmt.Println()
		fmt.Printf("  %-40s %8s %12s\n",
			headerStyle.Render("NAME"),
			headerStyle.Render("FILES"),
			headerStyle.Render("SIZE"),
		)

		var totalSize int64
		for _, mod := range installed {
			fmt.Printf("  %-40s %8d %12s\n", mod.Name, mod.FileCount, formatBytes(mod.SizeBytes))
			totalSize += mod.SizeBytes
		}

		fmt.Println()
		fmt.Printf("%s %d mods, %s\n", bold("Total:"), len(installed), formatBytes(totalSize))
	},
}

func init() {
	listModsCmd.Flags().StringVar(&listModsTargetDir, "target-dir", "", "Game Win64 directory")
	_ = listModsCmd.MarkFlagRequired("target-dir")
	rootCmd.AddCommand(listModsCmd)
}
