package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intColumn(name string, index *Index, vs ...int64) *Column[Label] {
	values := make([]Label, len(vs))
	for i, v := range vs {
		values[i] = Int(v)
	}
	return MustColumn(name, index, values)
}

func TestNewTable(t *testing.T) {
	idx := NewIndex("rows", labels(0, 1))

	tbl, err := NewTable(idx, []*Column[Label]{
		intColumn("x", idx, 1, 2),
		intColumn("y", idx, 3, 4),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, tbl.Headers())
	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, 2, tbl.ColumnCount())
}

func TestNewTableValidation(t *testing.T) {
	idx := NewIndex("", labels(0, 1))

	_, err := NewTable[Label](nil, []*Column[Label]{intColumn("x", idx, 1, 2)})
	assert.True(t, HasCode(err, ErrCodeNullArgument))

	_, err = NewTable[Label](idx, nil)
	assert.True(t, HasCode(err, ErrCodeNullArgument))

	_, err = NewTable(idx, []*Column[Label]{nil})
	assert.True(t, HasCode(err, ErrCodeNullArgument))

	other := NewIndex("", labels(0, 1, 2))
	_, err = NewTable(idx, []*Column[Label]{intColumn("x", other, 1, 2, 3)})
	assert.True(t, HasCode(err, ErrCodeLengthMismatch))

	_, err = NewTable(idx, []*Column[Label]{
		intColumn("x", idx, 1, 2),
		intColumn("x", idx, 3, 4),
	})
	assert.True(t, HasCode(err, ErrCodeDuplicateColumn))
}

func TestNewTableDefaultNaming(t *testing.T) {
	idx := NewIndex("", labels(0))

	tbl, err := NewTable(idx, []*Column[Label]{
		intColumn("", idx, 1),
		intColumn("x", idx, 2),
		intColumn("  ", idx, 3),
		intColumn("Unnamed", idx, 4),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Column_0", "x", "Column_2", "Column_3"}, tbl.Headers())

	c, ok := tbl.Column("Column_2")
	require.True(t, ok)
	assert.Equal(t, "Column_2", c.Name(), "the stored column carries the assigned name")

	// A defaulted name can collide with an explicit one.
	_, err = NewTable(idx, []*Column[Label]{
		intColumn("Column_1", idx, 1),
		intColumn("", idx, 2),
	})
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeDuplicateColumn))
}

func TestTableIndexEqualityIsStructural(t *testing.T) {
	// A column indexed 0..2 explicitly attaches to a numeric row index
	// with the same labels.
	explicit := NewIndex("", labels(0, 1, 2))
	numeric := MustNumeric("rows", 0, 3, 1)

	tbl, err := NewTable(numeric, []*Column[Label]{intColumn("x", explicit, 1, 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.RowCount())
}

func TestCellValue(t *testing.T) {
	idx := NewIndex("", []Label{Text("a"), Text("b")})
	tbl := MustTable(idx, []*Column[Label]{intColumn("x", idx, 1, 2)})

	v, err := tbl.CellValue(Text("b"), "x")
	require.NoError(t, err)
	assert.Equal(t, Label(Int(2)), v)

	// Unmatched row label is not an error.
	v, err = tbl.CellValue(Text("z"), "x")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = tbl.CellValue(Text("a"), "nope")
	require.Error(t, err)
	assert.True(t, IsUnknownColumn(err))
}

func TestTableStack(t *testing.T) {
	topIdx := NewIndex("rows", []Label{Text("a"), Text("b")})
	top := MustTable(topIdx, []*Column[Label]{intColumn("X", topIdx, 1, 2)})

	bottomIdx := NewIndex("rows", []Label{Text("c")})
	bottom := MustTable(bottomIdx, []*Column[Label]{intColumn("Y", bottomIdx, 9)})

	stacked, err := top.Stack(bottom)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, stacked.Headers())
	assert.Equal(t, 3, stacked.RowCount())
	assert.Equal(t,
		[]Label{Text("a"), Text("b"), Text("c")},
		stacked.RowIndex().Labels())

	x, ok := stacked.Column("X")
	require.True(t, ok)
	assert.Equal(t, []Label{Int(1), Int(2), nil}, x.Values())

	y, ok := stacked.Column("Y")
	require.True(t, ok)
	assert.Equal(t, []Label{nil, nil, Int(9)}, y.Values())

	_, err = top.Stack(nil)
	assert.True(t, HasCode(err, ErrCodeNullArgument))
}

func TestTableStackSharedColumn(t *testing.T) {
	topIdx := NewIndex("", labels(0, 1))
	top := MustTable(topIdx, []*Column[Label]{intColumn("X", topIdx, 1, 2)})
	bottomIdx := NewIndex("", labels(2))
	bottom := MustTable(bottomIdx, []*Column[Label]{intColumn("X", bottomIdx, 3)})

	stacked, err := top.Stack(bottom)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, stacked.Headers())

	x, _ := stacked.Column("X")
	assert.Equal(t, []Label{Int(1), Int(2), Int(3)}, x.Values())
}

func TestJuxtapose(t *testing.T) {
	leftIdx := NewIndex("", []Label{Text("a"), Text("b")})
	left := MustTable(leftIdx, []*Column[Label]{intColumn("X", leftIdx, 1, 2)})

	rightIdx := NewIndex("", []Label{Text("b"), Text("c")})
	right := MustTable(rightIdx, []*Column[Label]{intColumn("Y", rightIdx, 8, 9)})

	joined, err := left.Juxtapose(right)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, joined.Headers())
	assert.Equal(t,
		[]Label{Text("a"), Text("b"), Text("c")},
		joined.RowIndex().Labels())

	// Both sides realign by label onto the fused index.
	x, _ := joined.Column("X")
	assert.Equal(t, []Label{Int(1), Int(2), nil}, x.Values())
	y, _ := joined.Column("Y")
	assert.Equal(t, []Label{nil, Int(8), Int(9)}, y.Values())
}

func TestJuxtaposeDuplicateColumn(t *testing.T) {
	idx := NewIndex("", labels(0))
	a := MustTable(idx, []*Column[Label]{intColumn("X", idx, 1)})
	b := MustTable(idx, []*Column[Label]{intColumn("X", idx, 2)})

	_, err := a.Juxtapose(b)
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeDuplicateColumn))

	_, err = a.Juxtapose(nil)
	assert.True(t, HasCode(err, ErrCodeNullArgument))
}

func TestWithRowIndex(t *testing.T) {
	idx := NewIndex("", labels(0, 1))
	tbl := MustTable(idx, []*Column[Label]{intColumn("X", idx, 1, 2)})

	renamed, err := tbl.WithRowIndex(NewIndex("k", []Label{Text("a"), Text("b")}))
	require.NoError(t, err)
	v, err := renamed.CellValue(Text("b"), "X")
	require.NoError(t, err)
	assert.Equal(t, Label(Int(2)), v)

	_, err = tbl.WithRowIndex(NewIndex("k", []Label{Text("a")}))
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeLengthMismatch))

	_, err = tbl.WithRowIndex(nil)
	assert.True(t, HasCode(err, ErrCodeNullArgument))
}

func TestWithHeaders(t *testing.T) {
	idx := NewIndex("", labels(0))
	tbl := MustTable(idx, []*Column[Label]{
		intColumn("a", idx, 1),
		intColumn("b", idx, 2),
	})

	renamed, err := tbl.WithHeaders(NewIndex("", []Label{Text("P"), Text("Q")}))
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "Q"}, renamed.Headers())

	// Blank replacement names re-default positionally.
	renamed, err = tbl.WithHeaders(NewIndex("", []Label{Text(""), Text("Q")}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Column_0", "Q"}, renamed.Headers())

	_, err = tbl.WithHeaders(NewIndex("", []Label{Text("P")}))
	assert.True(t, HasCode(err, ErrCodeLengthMismatch))

	_, err = tbl.WithHeaders(NewIndex("", []Label{Text("same"), Text("same")}))
	assert.True(t, HasCode(err, ErrCodeDuplicateColumn))

	_, err = tbl.WithHeaders(nil)
	assert.True(t, HasCode(err, ErrCodeNullArgument))
}

func TestMapTable(t *testing.T) {
	idx := NewIndex("", labels(0, 1))
	tbl := MustTable(idx, []*Column[Label]{intColumn("X", idx, 1, 2)})

	strs := MapTable(tbl, func(v Label) string { return LabelString(v) })
	c, ok := strs.Column("X")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, c.Values())
	assert.True(t, strs.RowIndex().Equal(idx))
}

func TestMapColumns(t *testing.T) {
	idx := NewIndex("", labels(0, 1, 2))
	tbl := MustTable(idx, []*Column[Label]{
		intColumn("X", idx, 1, 2, 3),
		intColumn("Y", idx, 4, 5, 6),
	})

	shrunk := NewIndex("", labels(0, 1))
	out, err := MapColumns(tbl, func(c *Column[Label]) *Column[Label] {
		return MustColumn("ignored", shrunk, c.Values()[:2])
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, out.Headers(), "original names are kept")
	assert.Equal(t, 2, out.RowCount())

	// Diverging result indices are rejected.
	calls := 0
	_, err = MapColumns(tbl, func(c *Column[Label]) *Column[Label] {
		calls++
		if calls == 1 {
			return c
		}
		return MustColumn("", shrunk, c.Values()[:2])
	})
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeInconsistentIndex))
}

func TestMapColumnsEmptyTable(t *testing.T) {
	tbl := MustTable(NewIndex("", []Label{}), []*Column[Label]{})
	out, err := MapColumns(tbl, func(c *Column[Label]) *Column[Label] { return c })
	require.NoError(t, err)
	assert.Equal(t, 0, out.ColumnCount())
	assert.Equal(t, 0, out.RowCount())
}

func TestSum(t *testing.T) {
	idx := NewIndex("", labels(0, 1, 2, 3))
	tbl := MustTable(idx, []*Column[Label]{
		MustColumn("mixed", idx, []Label{Int(1), Text("2"), Text("x"), Text("3")}),
		MustColumn("odd", idx, []Label{Float(2.9), Bool(true), nil, Text(" 4 ")}),
	})

	summed := Sum(tbl)
	assert.Equal(t, 1, summed.RowCount())
	assert.Equal(t, []Label{Int(0)}, summed.RowIndex().Labels())

	mixed, _ := summed.Column("mixed")
	assert.Equal(t, []int64{6}, mixed.Values(), "unparseable text is skipped")

	// Floats truncate; booleans and absent values are skipped; text is
	// trimmed before parsing.
	odd, _ := summed.Column("odd")
	assert.Equal(t, []int64{6}, odd.Values())
}

func TestSumPlainValues(t *testing.T) {
	idx := NewIndex("", labels(0, 1))
	tbl := MustTable(idx, []*Column[int64]{MustColumn("n", idx, []int64{3, 4})})

	summed := Sum(tbl)
	c, _ := summed.Column("n")
	assert.Equal(t, []int64{7}, c.Values())
}
