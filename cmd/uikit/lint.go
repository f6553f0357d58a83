package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/uikit/lint"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint utility class lists in templ, Go and HTML files",
	Long: `Scan templates for class lists where one utility class silently
overrides another, and report the losing class golangci-lint style.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{
		"**/*.templ",
		"**/*.go",
		"**/*.html",
	}, "File patterns to scan for class lists")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|json|markdown")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (classmerge) suffix on issues")
}

// runLint is shared between `uikit lint` and the bare `uikit` invocation.
func runLint() error {
	lintConfig := buildLintConfig()

	result, err := lint.Run(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := lint.DetermineOutputFormat(outputFormat)

	if !quiet {
		if err := lint.WriteOutput(os.Stdout, result, format, lintConfig); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	// Exit code logic - "Soft Gate" approach
	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 || result.TruncatedCount > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount() > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
