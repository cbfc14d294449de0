// File: cmd/flexgrow/commands/root.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package commands

import "github.com/spf13/cobra"

// Execute runs the flexgrow root command.
func Execute() error {
	root := &cobra.Command{
		Use:           "flexgrow",
		Short:         "Demonstrations of the flexgrow growable containers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEchoCommand(), newSumCommand())
	return root.Execute()
}
