package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .uikit.yaml config file",
	Long:  `Create a .uikit.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".uikit.yaml"); err == nil && !force {
			return fmt.Errorf(".uikit.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".uikit.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .uikit.yaml")
		return nil
	},
}

const defaultConfig = `# uikit configuration
# Docs: https://github.com/yacobolo/uikit

# Shared settings
quiet: false

# Linting settings
lint:
  paths:
    - "**/*.templ"
    - "**/*.go"
    - "**/*.html"
  strict: false
  output-format: issues    # issues | json | markdown
  max-issues: 0            # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
