package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uikit",
	Short: "Utility class resolver and conflict linter for Go/templ projects",
	Long: `Flatten and merge Tailwind-style utility class lists with
last-write-wins conflict resolution, and lint templates for
class lists where one utility silently overrides another.`,
	// Default behavior: run lint when no subcommand is given.
	// We must call loadConfig here because PreRunE of lintCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runLint()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".uikit.yaml", "Config file path")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
