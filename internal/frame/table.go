package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// placeholderName marks a column that was never given a real name by the
// descriptor layer. It triggers default naming like a blank name does.
const placeholderName = "Unnamed"

// Table is an immutable collection of uniquely named columns sharing one
// row index, in insertion order.
type Table[V any] struct {
	rowIndex *Index
	columns  orderedColumns[V]
}

// orderedColumns is an insertion-ordered name-to-column container with
// key uniqueness enforced at insertion.
type orderedColumns[V any] struct {
	names  []string
	byName map[string]*Column[V]
}

func newOrderedColumns[V any](capacity int) orderedColumns[V] {
	return orderedColumns[V]{
		names:  make([]string, 0, capacity),
		byName: make(map[string]*Column[V], capacity),
	}
}

// add inserts a column under name, reporting false on a duplicate.
func (o *orderedColumns[V]) add(name string, c *Column[V]) bool {
	if _, dup := o.byName[name]; dup {
		return false
	}
	o.names = append(o.names, name)
	o.byName[name] = c
	return true
}

// NewTable creates a table from a row index and a column list. Columns
// with a blank, whitespace-only, or placeholder name are assigned
// "Column_<i>" where i is their zero-based position in the supplied list.
// Every column's index must be structurally equal to the row index, and
// the resulting names must be unique.
func NewTable[V any](rowIndex *Index, columns []*Column[V]) (*Table[V], error) {
	if rowIndex == nil {
		return nil, newNullArgument("row index")
	}
	if columns == nil {
		return nil, newNullArgument("column list")
	}
	ordered := newOrderedColumns[V](len(columns))
	for i, c := range columns {
		if c == nil {
			return nil, newNullArgument(fmt.Sprintf("column %d", i))
		}
		if !c.index.Equal(rowIndex) {
			return nil, newLengthMismatch(fmt.Sprintf(
				"column %d index does not match the row index", i))
		}
		name := c.name
		if strings.TrimSpace(name) == "" || name == placeholderName {
			name = fmt.Sprintf("Column_%d", i)
		}
		if !ordered.add(name, c.WithName(name)) {
			return nil, newDuplicateColumn(name)
		}
	}
	return &Table[V]{rowIndex: rowIndex, columns: ordered}, nil
}

// MustTable is like NewTable but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustTable[V any](rowIndex *Index, columns []*Column[V]) *Table[V] {
	t, err := NewTable(rowIndex, columns)
	if err != nil {
		panic(err)
	}
	return t
}

// newTableRaw builds a table from already named, deduplicated columns.
func newTableRaw[V any](rowIndex *Index, columns orderedColumns[V]) *Table[V] {
	return &Table[V]{rowIndex: rowIndex, columns: columns}
}

func emptyTable[V any]() *Table[V] {
	return newTableRaw(NewIndex("", nil), newOrderedColumns[V](0))
}

// RowIndex returns the shared row index.
func (t *Table[V]) RowIndex() *Index { return t.rowIndex }

// Headers returns the column names in insertion order.
func (t *Table[V]) Headers() []string {
	out := make([]string, len(t.columns.names))
	copy(out, t.columns.names)
	return out
}

// ColumnCount returns the number of columns.
func (t *Table[V]) ColumnCount() int { return len(t.columns.names) }

// RowCount returns the row index length.
func (t *Table[V]) RowCount() int { return t.rowIndex.Length() }

// Column returns the named column.
func (t *Table[V]) Column(name string) (*Column[V], bool) {
	c, ok := t.columns.byName[name]
	return c, ok
}

// CellValue returns the value at (rowLabel, columnName). An unknown
// column fails; an unmatched row label does not and yields the zero
// value.
func (t *Table[V]) CellValue(rowLabel Label, columnName string) (V, error) {
	c, ok := t.Column(columnName)
	if !ok {
		var zero V
		return zero, newUnknownColumn(columnName)
	}
	v, _ := c.ValueAt(rowLabel)
	return v, nil
}

// Stack unions other below this table. The row index is the fusion of
// the two row indices; the header set is this table's headers followed by
// other's new ones. A column missing on either side contributes that
// side's row count of zero values. Value sequences concatenate by
// position, with the same overlap caveat as Column.Stack.
func (t *Table[V]) Stack(other *Table[V]) (*Table[V], error) {
	if other == nil {
		return nil, newNullArgument("other table")
	}
	fused, err := t.rowIndex.Fuse(other.rowIndex)
	if err != nil {
		return nil, err
	}
	names := t.Headers()
	for _, name := range other.columns.names {
		if _, seen := t.columns.byName[name]; !seen {
			names = append(names, name)
		}
	}
	ordered := newOrderedColumns[V](len(names))
	for _, name := range names {
		values := make([]V, 0, t.RowCount()+other.RowCount())
		if c, ok := t.columns.byName[name]; ok {
			values = append(values, c.values...)
		} else {
			values = append(values, make([]V, t.RowCount())...)
		}
		if c, ok := other.columns.byName[name]; ok {
			values = append(values, c.values...)
		} else {
			values = append(values, make([]V, other.RowCount())...)
		}
		ordered.add(name, newColumnRaw(name, fused, values))
	}
	return newTableRaw(fused, ordered), nil
}

// Juxtapose unions other to the right of this table. Every column of both
// tables is realigned onto the fused row index. Column names must not
// collide across the two tables.
func (t *Table[V]) Juxtapose(other *Table[V]) (*Table[V], error) {
	if other == nil {
		return nil, newNullArgument("other table")
	}
	fused, err := t.rowIndex.Fuse(other.rowIndex)
	if err != nil {
		return nil, err
	}
	ordered := newOrderedColumns[V](t.ColumnCount() + other.ColumnCount())
	for _, name := range t.columns.names {
		realigned, err := t.columns.byName[name].Realign(fused)
		if err != nil {
			return nil, err
		}
		ordered.add(name, realigned)
	}
	for _, name := range other.columns.names {
		realigned, err := other.columns.byName[name].Realign(fused)
		if err != nil {
			return nil, err
		}
		if !ordered.add(name, realigned) {
			return nil, newDuplicateColumn(name)
		}
	}
	return newTableRaw(fused, ordered), nil
}

// WithRowIndex returns the table re-labeled by newIndex, which must have
// exactly RowCount labels. Columns adopt newIndex verbatim.
func (t *Table[V]) WithRowIndex(newIndex *Index) (*Table[V], error) {
	if newIndex == nil {
		return nil, newNullArgument("new row index")
	}
	if newIndex.Length() != t.RowCount() {
		return nil, newLengthMismatch(fmt.Sprintf(
			"new row index length %d does not match row count %d", newIndex.Length(), t.RowCount()))
	}
	columns := make([]*Column[V], 0, t.ColumnCount())
	for _, name := range t.columns.names {
		c := t.columns.byName[name]
		columns = append(columns, newColumnRaw(name, newIndex, c.values))
	}
	return NewTable(newIndex, columns)
}

// WithHeaders renames columns positionally: the i-th column takes the
// stringified i-th label of newNames. The renamed set passes through
// construction again, so blank names re-default and collisions fail.
func (t *Table[V]) WithHeaders(newNames *Index) (*Table[V], error) {
	if newNames == nil {
		return nil, newNullArgument("new headers")
	}
	if newNames.Length() != t.ColumnCount() {
		return nil, newLengthMismatch(fmt.Sprintf(
			"%d headers supplied for %d columns", newNames.Length(), t.ColumnCount()))
	}
	columns := make([]*Column[V], 0, t.ColumnCount())
	for i, name := range t.columns.names {
		c := t.columns.byName[name]
		columns = append(columns, c.WithName(LabelString(newNames.at(i))))
	}
	return NewTable(t.rowIndex, columns)
}

// MapTable applies f to every value of every column, keeping the row
// index.
func MapTable[V, U any](t *Table[V], f func(V) U) *Table[U] {
	ordered := newOrderedColumns[U](t.ColumnCount())
	for _, name := range t.columns.names {
		ordered.add(name, MapColumn(t.columns.byName[name], f))
	}
	return newTableRaw(t.rowIndex, ordered)
}

// MapColumns applies transform per column, re-tagging each result with
// its original name. All transformed columns must agree on one resulting
// index, which becomes the new row index. Mapping an empty table yields a
// fresh empty table.
func MapColumns[V, U any](t *Table[V], transform func(*Column[V]) *Column[U]) (*Table[U], error) {
	if t.ColumnCount() == 0 {
		return emptyTable[U](), nil
	}
	var rowIndex *Index
	ordered := newOrderedColumns[U](t.ColumnCount())
	for _, name := range t.columns.names {
		transformed := transform(t.columns.byName[name]).WithName(name)
		if rowIndex == nil {
			rowIndex = transformed.index
		} else if !rowIndex.Equal(transformed.index) {
			return nil, newInconsistentIndex(name)
		}
		ordered.add(name, transformed)
	}
	return newTableRaw(rowIndex, ordered), nil
}

// Sum totals each column into a single row under a fresh one-element
// numeric index. Numeric values add directly (floats truncate toward
// zero); any other value contributes its rendered text parsed as an
// integer, and values that do not parse are skipped without error.
func Sum[V any](t *Table[V]) *Table[int64] {
	if t.ColumnCount() == 0 {
		return emptyTable[int64]()
	}
	resultIndex := MustNumeric("", 0, 1, 1)
	ordered := newOrderedColumns[int64](t.ColumnCount())
	for _, name := range t.columns.names {
		var sum int64
		for _, v := range t.columns.byName[name].values {
			sum = addToSum(sum, v)
		}
		ordered.add(name, newColumnRaw(name, resultIndex, []int64{sum}))
	}
	return newTableRaw(resultIndex, ordered)
}

func addToSum[V any](sum int64, v V) int64 {
	switch av := any(v).(type) {
	case nil:
		return sum
	case Int:
		return sum + int64(av)
	case Float:
		return sum + int64(av)
	case int:
		return sum + int64(av)
	case int64:
		return sum + av
	case float64:
		return sum + int64(av)
	default:
		var text string
		if l, ok := any(v).(Label); ok {
			text = l.String()
		} else {
			text = fmt.Sprint(v)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return sum
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return sum
		}
		return sum + n
	}
}
