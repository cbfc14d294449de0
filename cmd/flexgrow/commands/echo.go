// File: cmd/flexgrow/commands/echo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"

	"github.com/momentics/flexgrow/alloc"
	"github.com/momentics/flexgrow/api"
	"github.com/momentics/flexgrow/flexbuf"
)

// newEchoCommand assembles its arguments (and optionally stdin) in a
// FlexBuf and prints the finalized string.
func newEchoCommand() *cobra.Command {
	var readStdin bool
	var useMmap bool

	cmd := &cobra.Command{
		Use:   "echo [args...]",
		Short: "Assemble arguments into a growable byte buffer and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			strat := alloc.Default()
			if useMmap {
				strat = alloc.NewMmap()
			}
			buf := flexbuf.NewWith(0, strat, api.Options{
				AutoAllocOnGrow: true,
				FreeOnFinalize:  true,
			})

			for i, arg := range args {
				if i > 0 {
					buf.Append(' ')
				}
				buf.AppendString(arg)
			}

			if readStdin {
				// Drain stdin through a pooled scratch buffer before
				// appending, so short reads never land in the FlexBuf.
				scratch := bytebufferpool.Get()
				defer func() {
					scratch.Reset()
					bytebufferpool.Put(scratch)
				}()
				if _, err := scratch.ReadFrom(os.Stdin); err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				if buf.Len() > 0 && len(scratch.B) > 0 {
					buf.Append(' ')
				}
				buf.AppendN(scratch.B, len(scratch.B))
			}

			buf.Shrink()
			out := make([]byte, buf.Len()+1)
			n := buf.Finalize(out) // FreeOnFinalize releases storage here
			fmt.Fprintln(cmd.OutOrStdout(), string(out[:n]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&readStdin, "stdin", "i", false, "append stdin after the arguments")
	cmd.Flags().BoolVar(&useMmap, "mmap", false, "back the buffer with anonymous mappings")
	return cmd
}
