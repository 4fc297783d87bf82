package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unniemods/unnie-mod-manager/internal/mods"
)

var (
	removeModName      string
	removeModTargetDir string
)

var removeModCmd = &cobra.Command{
	Use:   "remove-mod",
	Short: "Remove an installed mod from the Mods folder",
	Run: func(cmd *cobra.Command, args []string) {
		requireDirectory(removeModTargetDir)

		if err := mods.Remove(removeModTargetDir, removeModName); err != nil {
			fmt.Printf("%s %v\n", errMsg("Error:"), err)
			os.Exit(1)
		}

		fmt.Printf("%s %s\n", success("Removed:"), removeModName)
	},
}

func init() {
	removeModCmd.Flags().StringVar(&removeModName, "name", "", "Name of the installed mod folder")
	removeModCmd.Flags().StringVar(&removeModTargetDir, "target-dir", "", "Game Win64 directory")
	_ = removeModCmd.MarkFlagRequired("name")
	_ = removeModCmd.MarkFlagRequired("target-dir")
	rootCmd.AddCommand(removeModCmd)
}
