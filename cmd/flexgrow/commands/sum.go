// File: cmd/flexgrow/commands/sum.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package commands

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/momentics/flexgrow/api"
	"github.com/momentics/flexgrow/flexslice"
)

// newSumCommand reads integers from stdin into a Slice of references
// and folds them with Reduce.
func newSumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sum",
		Short: "Sum whitespace-separated integers from stdin through a growable slice",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := flexslice.New[*int](100)
			defer values.Free() // slot storage only; the ints stay ours

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Split(bufio.ScanWords)
			for sc.Scan() {
				n, err := strconv.Atoi(sc.Text())
				if err != nil {
					return fmt.Errorf("not an integer: %q", sc.Text())
				}
				values.Append(&n)
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}

			var sum int
			flexslice.Reduce(values, &sum, func(acc *int, _ int, v *int) api.Step {
				*acc += *v
				return api.Continue
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Sum of %d integers is %d.\n", values.Len(), sum)
			return nil
		},
	}
}
