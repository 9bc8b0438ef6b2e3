package textio

import (
	"fmt"
	"strings"

	"github.com/quarrydata/slate/internal/frame"
)

// displayName maps the renderer's blank-name conventions: the literal
// strings "null" and "Unnamed" display as empty.
func displayName(name string) string {
	if name == "null" || name == "Unnamed" {
		return ""
	}
	return name
}

// FormatIndex renders an index: the name line and a dash rule when named,
// a dash rule alone when unnamed and non-empty, then one right-aligned
// label per line, all sized to the widest rendered field.
func FormatIndex(idx *frame.Index) string {
	name := displayName(idx.Name())
	labels := idx.Labels()
	width := len(name)
	for _, l := range labels {
		if w := len(frame.LabelString(l)); w > width {
			width = w
		}
	}
	var b strings.Builder
	if name != "" {
		b.WriteString(name)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("-", width))
		b.WriteByte('\n')
	} else if len(labels) > 0 {
		b.WriteString(strings.Repeat("-", width))
		b.WriteByte('\n')
	}
	for _, l := range labels {
		fmt.Fprintf(&b, "%*s\n", width, frame.LabelString(l))
	}
	return b.String()
}

// FormatColumn renders a column as an index gutter and a value column
// separated by a pipe rule. The row loop runs over the value count, so a
// stacked column whose values outrun its fused index still renders; the
// index cell goes empty past the index length.
func FormatColumn(c *Column) string {
	idx := c.Index()
	indexName := displayName(idx.Name())
	indexLabels := idx.Labels()
	iw := len(indexName)
	for _, l := range indexLabels {
		if w := len(frame.LabelString(l)); w > iw {
			iw = w
		}
	}
	colName := displayName(c.Name())
	values := c.Values()
	cw := len(colName)
	for _, v := range values {
		if w := len(frame.LabelString(v)); w > cw {
			cw = w
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%*s | %s\n", iw, indexName, colName)
	b.WriteString(strings.Repeat("-", iw) + "-+-" + strings.Repeat("-", cw))
	b.WriteByte('\n')
	for i := range values {
		indexText := ""
		if i < len(indexLabels) {
			indexText = frame.LabelString(indexLabels[i])
		}
		fmt.Fprintf(&b, "%*s | %-*s\n", iw, indexText, cw, frame.LabelString(values[i]))
	}
	return b.String()
}

// FormatTable renders a table: an index gutter then one pipe-separated
// column per header, each sized to its widest rendered field. Headers and
// values align left, index labels right.
func FormatTable(t *Table) string {
	headers := t.Headers()
	widths := make(map[string]int, len(headers))
	columnValues := make(map[string][]frame.Label, len(headers))
	for _, header := range headers {
		c, _ := t.Column(header)
		values := c.Values()
		w := len(header)
		for _, v := range values {
			if lw := len(frame.LabelString(v)); lw > w {
				w = lw
			}
		}
		widths[header] = w
		columnValues[header] = values
	}

	idx := t.RowIndex()
	indexName := displayName(idx.Name())
	indexLabels := idx.Labels()
	iw := len(indexName)
	for _, l := range indexLabels {
		if w := len(frame.LabelString(l)); w > iw {
			iw = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s", iw, indexName)
	for _, header := range headers {
		fmt.Fprintf(&b, " | %-*s", widths[header], header)
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", iw))
	for _, header := range headers {
		b.WriteString("-+-" + strings.Repeat("-", widths[header]))
	}
	b.WriteByte('\n')
	for i := 0; i < t.RowCount(); i++ {
		fmt.Fprintf(&b, "%*s", iw, frame.LabelString(indexLabels[i]))
		for _, header := range headers {
			value := ""
			if values := columnValues[header]; i < len(values) {
				value = frame.LabelString(values[i])
			}
			fmt.Fprintf(&b, " | %-*s", widths[header], value)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
