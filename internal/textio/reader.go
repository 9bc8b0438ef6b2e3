package textio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/quarrydata/slate/internal/frame"
)

// Concrete model instantiations carried by the text boundary. The core
// stays generic; everything read from text is label-valued.
type (
	Column = frame.Column[frame.Label]
	Table  = frame.Table[frame.Label]
)

// Reader reads descriptor blocks from line-oriented input.
type Reader struct {
	s      *bufio.Scanner
	peeked *string
}

// NewReader creates a block reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

// More reports whether another line is available.
func (r *Reader) More() bool {
	_, ok := r.peek()
	return ok
}

func (r *Reader) peek() (string, bool) {
	if r.peeked != nil {
		return *r.peeked, true
	}
	if !r.s.Scan() {
		return "", false
	}
	line := r.s.Text()
	r.peeked = &line
	return line, true
}

func (r *Reader) readLine() (string, error) {
	line, ok := r.peek()
	if !ok {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("unexpected end of input")
	}
	r.peeked = nil
	return line, nil
}

// ReadIndex reads an index block: an index descriptor line followed by
// one value line.
func (r *Reader) ReadIndex() (*frame.Index, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}
	d, err := ParseDescriptor(line)
	if err != nil {
		return nil, err
	}
	id, ok := d.(IndexDescriptor)
	if !ok {
		return nil, fmt.Errorf("expected an index descriptor, got %q", line)
	}
	valuesLine, err := r.readLine()
	if err != nil {
		return nil, err
	}
	return frame.NewIndex(id.Name, ParseValues(valuesLine, id.Len)), nil
}

// ReadColumn reads a column block: a column descriptor, an optional
// embedded index block (a default zero-based index is synthesized when
// absent), and one value line.
func (r *Reader) ReadColumn() (*Column, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}
	d, err := ParseDescriptor(line)
	if err != nil {
		return nil, err
	}
	cd, ok := d.(ColumnDescriptor)
	if !ok {
		return nil, fmt.Errorf("expected a column descriptor, got %q", line)
	}

	var index *frame.Index
	if next, ok := r.peek(); ok && strings.HasPrefix(strings.TrimSpace(next), "#index") {
		index, err = r.ReadIndex()
		if err != nil {
			return nil, err
		}
	} else {
		labels := make([]frame.Label, cd.Rows)
		for i := range labels {
			labels[i] = frame.Int(i)
		}
		index = frame.NewIndex("", labels)
	}

	valuesLine, err := r.readLine()
	if err != nil {
		return nil, err
	}
	return frame.NewColumn(cd.Name, index, ParseValues(valuesLine, cd.Rows))
}

// ReadTable reads a table block: a table descriptor followed by that many
// column blocks. The first column's index becomes the row index; a table
// of zero columns is empty.
func (r *Reader) ReadTable() (*Table, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}
	d, err := ParseDescriptor(line)
	if err != nil {
		return nil, err
	}
	td, ok := d.(TableDescriptor)
	if !ok {
		return nil, fmt.Errorf("expected a table descriptor, got %q", line)
	}
	columns := make([]*Column, 0, td.Cols)
	for i := 0; i < td.Cols; i++ {
		c, err := r.ReadColumn()
		if err != nil {
			return nil, fmt.Errorf("reading column %d: %w", i, err)
		}
		columns = append(columns, c)
	}
	if len(columns) == 0 {
		return frame.NewTable(frame.NewIndex("", nil), columns)
	}
	return frame.NewTable(columns[0].Index(), columns)
}
