// Package cli wires the model and its text boundary into a command tree.
// Every command reads descriptor blocks from standard input and renders
// to standard output; model errors propagate out of RunE unmodified and
// cobra reports them on the error stream.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the slate CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "slate",
		Short:         "slate - immutable tabular data from the command line",
		Long:          "Read index, column, and table blocks from stdin and apply relational operations on them.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(newIndexCommand())
	cmd.AddCommand(newColumnCommand())
	cmd.AddCommand(newTableCommand())

	return cmd
}
