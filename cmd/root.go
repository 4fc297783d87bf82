package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/unniemods/unnie-mod-manager/internal/applog"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "unnie-mod-manager",
	Short: "Install UE4SS and manage game mods",
	Long: `Unnie Mod Manager installs the UE4SS scripting runtime into a game's
Win64 directory and manages the mods living under its Mods folder. Run
without arguments to open the graphical interface, or use the subcommands
for scripted installs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applog.Init(verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		runGUI()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
