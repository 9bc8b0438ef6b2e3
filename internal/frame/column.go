package frame

import "fmt"

// Column is an immutable named value sequence paired with an index. The
// checked constructor guarantees index length and value count agree;
// Stack is the single documented exception (see its comment).
type Column[V any] struct {
	name   string
	index  *Index
	values []V
}

// NewColumn creates a column over a copy of values. The index length must
// equal the value count.
func NewColumn[V any](name string, index *Index, values []V) (*Column[V], error) {
	if index == nil {
		return nil, newNullArgument("column index")
	}
	if index.Length() != len(values) {
		return nil, newLengthMismatch(fmt.Sprintf(
			"index length %d does not match value count %d", index.Length(), len(values)))
	}
	copied := make([]V, len(values))
	copy(copied, values)
	return &Column[V]{name: name, index: index, values: copied}, nil
}

// MustColumn is like NewColumn but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustColumn[V any](name string, index *Index, values []V) *Column[V] {
	c, err := NewColumn(name, index, values)
	if err != nil {
		panic(err)
	}
	return c
}

// newColumnRaw builds a column without copying or length checking.
// Callers own the values slice exclusively.
func newColumnRaw[V any](name string, index *Index, values []V) *Column[V] {
	return &Column[V]{name: name, index: index, values: values}
}

// Name returns the column name. Never absent; may be empty.
func (c *Column[V]) Name() string { return c.name }

// Index returns the column's index.
func (c *Column[V]) Index() *Index { return c.index }

// Size returns the number of values.
func (c *Column[V]) Size() int { return len(c.values) }

// Values returns a copy of the value sequence.
func (c *Column[V]) Values() []V {
	out := make([]V, len(c.values))
	copy(out, c.values)
	return out
}

// ValueAt returns the value labeled by label. A label not present in the
// index is not an error: the zero value and false are returned.
func (c *Column[V]) ValueAt(label Label) (V, bool) {
	pos, ok := c.index.PositionOf(label)
	if !ok || pos >= len(c.values) {
		var zero V
		return zero, false
	}
	return c.values[pos], true
}

// WithName returns the same column under a new name.
func (c *Column[V]) WithName(name string) *Column[V] {
	return newColumnRaw(name, c.index, c.values)
}

// WithIndex returns the column re-labeled by newIndex when its length
// matches. On any length mismatch the column instead falls back to a
// default zero-based explicit index of the original size, ignoring
// newIndex entirely. This fallback is long-standing behavior: it does not
// fail and it does not partially apply the new index.
func (c *Column[V]) WithIndex(newIndex *Index) *Column[V] {
	if newIndex != nil && newIndex.Length() == c.Size() {
		return newColumnRaw(c.name, newIndex, c.values)
	}
	labels := make([]Label, c.Size())
	for i := range labels {
		labels[i] = Int(i)
	}
	return newColumnRaw(c.name, NewIndex("", labels), c.values)
}

// Realign rebuilds the column against newIndex by label: every label of
// newIndex takes the value it maps to here, or the zero value when
// unmatched. When this column's index repeats a label, the later value
// wins. The result's index is exactly newIndex.
func (c *Column[V]) Realign(newIndex *Index) (*Column[V], error) {
	if newIndex == nil {
		return nil, newNullArgument("new index")
	}
	byLabel := make(map[string]V, len(c.values))
	length := c.index.Length()
	for i := 0; i < length && i < len(c.values); i++ {
		byLabel[labelKey(c.index.at(i))] = c.values[i]
	}
	values := make([]V, 0, newIndex.Length())
	for _, l := range newIndex.Labels() {
		values = append(values, byLabel[labelKey(l)])
	}
	return newColumnRaw(c.name, newIndex, values), nil
}

// Stack appends other below this column. The index is the fusion of the
// two indices; the values are the two value sequences concatenated by
// position, not by label. When other's index overlaps this one's, the
// fused index is shorter than the concatenated values and the result
// deliberately violates the length invariant; the rendering layer
// tolerates the divergence.
func (c *Column[V]) Stack(other *Column[V]) (*Column[V], error) {
	if other == nil {
		return nil, newNullArgument("other column")
	}
	fused, err := c.index.Fuse(other.index)
	if err != nil {
		return nil, err
	}
	values := make([]V, 0, len(c.values)+len(other.values))
	values = append(values, c.values...)
	values = append(values, other.values...)
	return newColumnRaw(c.name, fused, values), nil
}

// MapColumn applies f to every value in order, keeping the index. It is a
// package function because Go methods cannot introduce a type parameter.
func MapColumn[V, U any](c *Column[V], f func(V) U) *Column[U] {
	values := make([]U, len(c.values))
	for i, v := range c.values {
		values[i] = f(v)
	}
	return newColumnRaw(c.name, c.index, values)
}
