package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarrydata/slate/internal/frame"
	"github.com/quarrydata/slate/internal/textio"
)

func newIndexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Operations on index blocks",
	}
	cmd.AddCommand(
		newIndexPrintCommand(),
		newIndexNumericCommand(),
		newIndexFuseCommand(),
		newIndexLastCommand(),
		newIndexPositionCommand(),
		newIndexEqualCommand(),
		newIndexFuseLastCommand(),
		newIndexFuseSkipCommand(),
	)
	return cmd
}

func newIndexPrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Read an index block and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := textio.NewReader(cmd.InOrStdin()).ReadIndex()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatIndex(idx))
			return nil
		},
	}
}

func newIndexNumericCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numeric <start> <end> [step]",
		Short: "Render the arithmetic index over [start, end)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, step, err := numericArgs(args)
			if err != nil {
				return err
			}
			idx, err := frame.Numeric("", start, end, step)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), textio.FormatIndex(idx))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newIndexFuseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fuse",
		Short: "Fuse pairs of index blocks until end of input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := textio.NewReader(cmd.InOrStdin())
			for r.More() {
				left, err := r.ReadIndex()
				if err != nil {
					return err
				}
				if !r.More() {
					break
				}
				right, err := r.ReadIndex()
				if err != nil {
					return err
				}
				fused, err := left.Fuse(right)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), textio.FormatIndex(fused))
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newIndexLastCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "last <n>",
		Short: "Print the last n labels of an index block, comma separated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}
			idx, err := textio.NewReader(cmd.InOrStdin()).ReadIndex()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinLabels(idx.LastLabels(n)))
			return nil
		},
	}
}

func newIndexPositionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "position <label>",
		Short: "Print the position of a label in an index block, or -1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := textio.NewReader(cmd.InOrStdin()).ReadIndex()
			if err != nil {
				return err
			}
			pos, ok := idx.PositionOf(textio.ParseToken(args[0]))
			if !ok {
				pos = -1
			}
			fmt.Fprintln(cmd.OutOrStdout(), pos)
			return nil
		},
	}
}

func newIndexEqualCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "equal",
		Short: "Compare pairs of index blocks structurally until end of input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := textio.NewReader(cmd.InOrStdin())
			for r.More() {
				left, err := r.ReadIndex()
				if err != nil {
					return err
				}
				if !r.More() {
					break
				}
				right, err := r.ReadIndex()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), left.Equal(right))
			}
			return nil
		},
	}
}

func newIndexFuseLastCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fuse-last <start> <end> <step> [n]",
		Short: "Fuse an arithmetic index with an index block and print the last n labels",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, step, err := numericArgs(args[:3])
			if err != nil {
				return err
			}
			n := 10
			if len(args) == 4 {
				if n, err = strconv.Atoi(args[3]); err != nil {
					return fmt.Errorf("invalid count %q: %w", args[3], err)
				}
			}
			idx, err := frame.Numeric("", start, end, step)
			if err != nil {
				return err
			}
			other, err := textio.NewReader(cmd.InOrStdin()).ReadIndex()
			if err != nil {
				return err
			}
			labels, err := idx.FuseAndLast(other, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinLabels(labels))
			return nil
		},
	}
}

func newIndexFuseSkipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fuse-skip <start> <end> <step> <stride>",
		Short: "Fuse an arithmetic index with an index block and sample every stride-th label",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, step, err := numericArgs(args[:3])
			if err != nil {
				return err
			}
			stride, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid stride %q: %w", args[3], err)
			}
			if stride <= 0 {
				return fmt.Errorf("stride must be positive, got %d", stride)
			}
			idx, err := frame.Numeric("", start, end, step)
			if err != nil {
				return err
			}
			other, err := textio.NewReader(cmd.InOrStdin()).ReadIndex()
			if err != nil {
				return err
			}
			fused, err := idx.Fuse(other)
			if err != nil {
				return err
			}
			var sampled []frame.Label
			for i := 0; i < fused.Length(); i += stride {
				l, err := fused.LabelAt(i)
				if err != nil {
					return err
				}
				sampled = append(sampled, l)
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinLabels(sampled))
			return nil
		},
	}
}

func numericArgs(args []string) (start, end, step int64, err error) {
	step = 1
	if start, err = strconv.ParseInt(args[0], 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid start %q: %w", args[0], err)
	}
	if end, err = strconv.ParseInt(args[1], 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid end %q: %w", args[1], err)
	}
	if len(args) > 2 {
		if step, err = strconv.ParseInt(args[2], 10, 64); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid step %q: %w", args[2], err)
		}
	}
	return start, end, step, nil
}

func joinLabels(labels []frame.Label) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = frame.LabelString(l)
	}
	return strings.Join(parts, ", ")
}
