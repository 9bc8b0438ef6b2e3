package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarrydata/slate/internal/frame"
	"github.com/quarrydata/slate/internal/textio"
)

func newColumnCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Operations on column blocks",
	}
	cmd.AddCommand(
		newColumnPrintCommand(),
		newColumnStackCommand(),
		newColumnRealignCommand(),
		newColumnReindexCommand(),
		newColumnValueCommand(),
		newColumnScaleCommand(),
		newColumnClockCommand(),
	)
	return cmd
}

func newColumnPrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Read a column block and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := textio.NewReader(cmd.InOrStdin()).ReadColumn()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatColumn(c))
			return nil
		},
	}
}

func newColumnStackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stack",
		Short: "Stack pairs of column blocks until end of input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := textio.NewReader(cmd.InOrStdin())
			for r.More() {
				top, err := r.ReadColumn()
				if err != nil {
					return err
				}
				if !r.More() {
					break
				}
				bottom, err := r.ReadColumn()
				if err != nil {
					return err
				}
				stacked, err := top.Stack(bottom)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), textio.FormatColumn(stacked))
			}
			return nil
		},
	}
}

func newColumnRealignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "realign",
		Short: "Realign a column block onto a following index block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := textio.NewReader(cmd.InOrStdin())
			c, err := r.ReadColumn()
			if err != nil {
				return err
			}
			idx, err := r.ReadIndex()
			if err != nil {
				return err
			}
			realigned, err := c.Realign(idx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatColumn(realigned))
			return nil
		},
	}
}

func newColumnReindexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Replace a column block's index with a following index block",
		Long: "Replace the index when the lengths agree; otherwise the column falls back " +
			"to a default zero-based index and the supplied block is ignored.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := textio.NewReader(cmd.InOrStdin())
			c, err := r.ReadColumn()
			if err != nil {
				return err
			}
			idx, err := r.ReadIndex()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatColumn(c.WithIndex(idx)))
			return nil
		},
	}
}

func newColumnValueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "value <label>",
		Short: "Print the value a label maps to in a column block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := textio.NewReader(cmd.InOrStdin()).ReadColumn()
			if err != nil {
				return err
			}
			v, ok := c.ValueAt(textio.ParseToken(args[0]))
			fmt.Fprintln(cmd.OutOrStdout(), valueText(v, ok))
			return nil
		},
	}
}

func newColumnScaleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <k>",
		Short: "Multiply every integer value of a column block by k",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid factor %q: %w", args[0], err)
			}
			c, err := textio.NewReader(cmd.InOrStdin()).ReadColumn()
			if err != nil {
				return err
			}
			scaled, err := scaleColumn(c, k)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatColumn(scaled))
			return nil
		},
	}
}

func newColumnClockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Reduce every timestamp value of a column block to its time of day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := textio.NewReader(cmd.InOrStdin()).ReadColumn()
			if err != nil {
				return err
			}
			var mapErr error
			clocked := frame.MapColumn(c, func(v frame.Label) frame.Label {
				ts, ok := v.(frame.Timestamp)
				if !ok {
					if mapErr == nil {
						mapErr = fmt.Errorf("value %q is not a timestamp", frame.LabelString(v))
					}
					return v
				}
				return frame.Text(timeOfDay(time.Time(ts)))
			})
			if mapErr != nil {
				return mapErr
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatColumn(clocked))
			return nil
		},
	}
}

// scaleColumn multiplies every value by k, parsing each value's text form
// as an integer. Unlike Sum, an unparseable value aborts the operation.
func scaleColumn(c *textio.Column, k int64) (*textio.Column, error) {
	var mapErr error
	scaled := frame.MapColumn(c, func(v frame.Label) frame.Label {
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
		return nil, mapErr
	}
	return scaled, nil
}

func timeOfDay(t time.Time) string {
	if t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("15:04")
	}
	return t.Format("15:04:05")
}

// valueText renders a looked-up cell: a miss or an absent value prints as
// the word "null", everything else as its text form.
func valueText(v frame.Label, ok bool) string {
	if !ok || v == nil {
		return "null"
	}
	if _, absent := v.(frame.Absent); absent {
		return "null"
	}
	return frame.LabelString(v)
}
