package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarrydata/slate/internal/frame"
	"github.com/quarrydata/slate/internal/textio"
)

func newTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Operations on table blocks",
	}
	cmd.AddCommand(
		newTablePrintCommand(),
		newTableStackCommand(),
		newTableJuxtaposeCommand(),
		newTableSumCommand(),
		newTableValueCommand(),
		newTableScaleCommand(),
		newTableHeadersCommand(),
		newTableReindexCommand(),
	)
	return cmd
}

func newTablePrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Read a table block and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := textio.NewReader(cmd.InOrStdin()).ReadTable()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatTable(t))
			return nil
		},
	}
}

func newTableStackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stack",
		Short: "Stack one table block on top of another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := textio.NewReader(cmd.InOrStdin())
			top, err := r.ReadTable()
			if err != nil {
				return err
			}
			bottom, err := r.ReadTable()
			if err != nil {
				return err
			}
			stacked, err := top.Stack(bottom)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatTable(stacked))
			return nil
		},
	}
}

func newTableJuxtaposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "juxtapose",
		Short: "Join two table blocks side by side over their fused row index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := textio.NewReader(cmd.InOrStdin())
			left, err := r.ReadTable()
			if err != nil {
				return err
			}
			right, err := r.ReadTable()
			if err != nil {
				return err
			}
			joined, err := left.Juxtapose(right)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatTable(joined))
			return nil
		},
	}
}

func newTableSumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sum",
		Short: "Total each column of a table block into a single row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := textio.NewReader(cmd.InOrStdin()).ReadTable()
			if err != nil {
				return err
			}
			totals := frame.MapTable(frame.Sum(t), func(v int64) frame.Label {
				return frame.Int(v)
			})
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatTable(totals))
			return nil
		},
	}
}

func newTableValueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "value <label> <column>",
		Short: "Print the cell at a row label and column name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := textio.NewReader(cmd.InOrStdin()).ReadTable()
			if err != nil {
				return err
			}
			v, err := t.CellValue(textio.ParseToken(args[0]), args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), valueText(v, v != nil))
			return nil
		},
	}
}

func newTableScaleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <k>",
		Short: "Multiply every integer value of a table block by k",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid factor %q: %w", args[0], err)
			}
			t, err := textio.NewReader(cmd.InOrStdin()).ReadTable()
			if err != nil {
				return err
			}
			var mapErr error
			scaled := frame.MapTable(t, func(v frame.Label) frame.Label {
				n, err := strconv.ParseInt(strings.TrimSpace(frame.LabelString(v)), 10, 64)
				if err != nil {
					if mapErr == nil {
						mapErr = fmt.Errorf("value %q is not an integer", frame.LabelString(v))
					}
					return v
				}
				return frame.Int(n * k)
			})
			if mapErr != nil {
				return mapErr
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatTable(scaled))
			return nil
		},
	}
}

func newTableHeadersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "headers <name>...",
		Short: "Rename a table block's columns positionally",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := textio.NewReader(cmd.InOrStdin()).ReadTable()
			if err != nil {
				return err
			}
			renamed, err := t.WithHeaders(indexFromArgs(args))
			if err != nil {
				return err
			}
			return printTableWithColumns(cmd, renamed)
		},
	}
}

func newTableReindexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex <label>...",
		Short: "Replace a table block's row index with labels parsed from the arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := textio.NewReader(cmd.InOrStdin()).ReadTable()
			if err != nil {
				return err
			}
			reindexed, err := t.WithRowIndex(indexFromArgs(args))
			if err != nil {
				return err
			}
			return printTableWithColumns(cmd, reindexed)
		},
	}
}

// indexFromArgs builds an unnamed explicit index from type-inferred
// argument tokens.
func indexFromArgs(args []string) *frame.Index {
	labels := make([]frame.Label, len(args))
	for i, arg := range args {
		labels[i] = textio.ParseToken(arg)
	}
	return frame.NewIndex("", labels)
}

// printTableWithColumns renders the table, then each of its columns as a
// standalone block separated by blank lines.
func printTableWithColumns(cmd *cobra.Command, t *textio.Table) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, textio.FormatTable(t))
	for _, header := range t.Headers() {
		c, _ := t.Column(header)
		fmt.Fprintln(out)
		fmt.Fprint(out, textio.FormatColumn(c))
	}
	return nil
}
