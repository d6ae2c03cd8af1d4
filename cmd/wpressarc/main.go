// Command wpressarc converts between wpress archives and tar streams.
//
// The wpress format records no permissions or ownership, so the to-tar
// direction takes them as flags and applies them uniformly to every
// produced tar entry.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wpressarc:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wpressarc",
		Short: "Convert between wpress and tar archives",
		Long: `wpressarc converts the sequential wpress archive container used by
WordPress site migration tools to and from conventional tar streams.

Commands read from a file argument or stdin and write to --output or
stdout, so they compose with shell pipelines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newFromTarCmd(), newToTarCmd(), newListCmd())
	return cmd
}
