package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/uikit"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [classes...]",
	Short: "Flatten and merge a utility class list",
	Long: `Merge a class list with last-write-wins conflict resolution and
print the result. Classes are read from the arguments, or from
stdin when no arguments are given (one list per line).

  uikit resolve p-2 bg-red-500 p-4
  echo "flex block text-sm" | uikit resolve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), uikit.Resolve(strings.Join(args, " ")))
			return nil
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			fmt.Fprintln(cmd.OutOrStdout(), uikit.Resolve(scanner.Text()))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return nil
	},
}
