package frame

import "math"

// Index is an immutable, possibly lazy, ordered sequence of labels with
// O(1) length and positional lookup. Exactly one representation backs an
// Index:
//
//   - explicit: a materialized label slice
//   - numeric: an arithmetic range over a half-open interval
//   - fused: two sub-indices composed at Fuse time, the right one already
//     deduplicated against the left
//
// Two indices are equal when their label sequences are equal pairwise,
// regardless of representation.
type Index struct {
	name string
	repr indexRepr
}

// indexRepr is the sealed representation variant. Only explicitRepr,
// numericRepr, and fusedRepr implement it.
type indexRepr interface {
	repr()
}

type explicitRepr struct {
	labels []Label
}

func (explicitRepr) repr() {}

type numericRepr struct {
	start, end, step int64
	length           int
}

func (numericRepr) repr() {}

type fusedRepr struct {
	left, right *Index
}

func (fusedRepr) repr() {}

// NewIndex creates an explicit index over a copy of labels. A nil slice
// yields an empty index.
func NewIndex(name string, labels []Label) *Index {
	copied := make([]Label, len(labels))
	copy(copied, labels)
	return &Index{name: name, repr: explicitRepr{labels: copied}}
}

// Numeric creates an arithmetic index over the half-open interval
// [start, end) advancing by step. A zero step is rejected. The range may
// be empty.
func Numeric(name string, start, end, step int64) (*Index, error) {
	if step == 0 {
		return nil, newInvalidStep()
	}
	return &Index{
		name: name,
		repr: numericRepr{start: start, end: end, step: step, length: numericLength(start, end, step)},
	}, nil
}

// MustNumeric is like Numeric but panics on a zero step.
// Use only in tests or when the step is known to be valid.
func MustNumeric(name string, start, end, step int64) *Index {
	idx, err := Numeric(name, start, end, step)
	if err != nil {
		panic(err)
	}
	return idx
}

func numericLength(start, end, step int64) int {
	if step > 0 {
		if start >= end {
			return 0
		}
		return int((end-1-start)/step + 1)
	}
	if start <= end {
		return 0
	}
	return int((start-1-end)/(-step) + 1)
}

// Name returns the index name. May be empty.
func (x *Index) Name() string { return x.name }

// Length returns the number of labels.
func (x *Index) Length() int {
	switch r := x.repr.(type) {
	case explicitRepr:
		return len(r.labels)
	case numericRepr:
		return r.length
	case fusedRepr:
		return r.left.Length() + r.right.Length()
	default:
		return 0
	}
}

// LabelAt returns the label at position, or an out-of-range error when
// position is not in [0, Length).
func (x *Index) LabelAt(position int) (Label, error) {
	if position < 0 || position >= x.Length() {
		return nil, newIndexOutOfRange(position, x.Length())
	}
	return x.at(position), nil
}

// at assumes position is in bounds.
func (x *Index) at(position int) Label {
	switch r := x.repr.(type) {
	case explicitRepr:
		return r.labels[position]
	case numericRepr:
		return Int(r.start + int64(position)*r.step)
	case fusedRepr:
		if n := r.left.Length(); position < n {
			return r.left.at(position)
		} else {
			return r.right.at(position - n)
		}
	}
	return nil
}

// PositionOf returns the position of the first occurrence of label.
//
// A numeric index never scans: it accepts Int labels and Float labels
// with an integral value, checks range and congruence with the step, and
// computes the position arithmetically. An explicit index scans linearly.
// A fused index tries its left side, then its right side with the left
// length as offset. Nil and Absent labels are never found.
func (x *Index) PositionOf(label Label) (int, bool) {
	if label == nil {
		return 0, false
	}
	if _, absent := label.(Absent); absent {
		return 0, false
	}
	switch r := x.repr.(type) {
	case explicitRepr:
		for i, l := range r.labels {
			if LabelsEqual(l, label) {
				return i, true
			}
		}
		return 0, false
	case numericRepr:
		return r.positionOf(label)
	case fusedRepr:
		if pos, ok := r.left.PositionOf(label); ok {
			return pos, true
		}
		if pos, ok := r.right.PositionOf(label); ok {
			return r.left.Length() + pos, true
		}
		return 0, false
	}
	return 0, false
}

func (r numericRepr) positionOf(label Label) (int, bool) {
	var v int64
	switch lv := label.(type) {
	case Int:
		v = int64(lv)
	case Float:
		f := float64(lv)
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false
		}
		v = int64(f)
	default:
		return 0, false
	}
	if r.step > 0 {
		if v < r.start || v >= r.end {
			return 0, false
		}
	} else {
		if v > r.start || v <= r.end {
			return 0, false
		}
	}
	if (v-r.start)%r.step != 0 {
		return 0, false
	}
	return int((v - r.start) / r.step), true
}

// Contains reports whether label occurs in the index.
func (x *Index) Contains(label Label) bool {
	_, ok := x.PositionOf(label)
	return ok
}

// Fuse composes this index with other. The result keeps this index's
// labels followed by the labels of other not already present here, in
// their original order. The composition is structural: both operands are
// retained, not flattened, so fusing never materializes this index.
//
// Fuse is not commutative, and regrouping fuses changes the tree shape
// (though not the label content), because deduplication always runs
// against the left operand's content at fuse time.
func (x *Index) Fuse(other *Index) (*Index, error) {
	unique, err := x.uniqueFrom(other)
	if err != nil {
		return nil, err
	}
	return &Index{
		name: x.name,
		repr: fusedRepr{left: x, right: NewIndex(other.name, unique)},
	}, nil
}

// uniqueFrom collects other's labels not contained in x, preserving
// order.
func (x *Index) uniqueFrom(other *Index) ([]Label, error) {
	if other == nil {
		return nil, newNullArgument("other index")
	}
	var unique []Label
	for _, l := range other.Labels() {
		if !x.Contains(l) {
			unique = append(unique, l)
		}
	}
	return unique, nil
}

// LastLabels returns the last min(n, Length) labels in order. A
// non-positive n yields an empty slice. A fused index pulls from its
// right side first and borrows the remainder from the left.
func (x *Index) LastLabels(n int) []Label {
	if n <= 0 {
		return []Label{}
	}
	take := n
	if length := x.Length(); take > length {
		take = length
	}
	switch r := x.repr.(type) {
	case explicitRepr:
		out := make([]Label, take)
		copy(out, r.labels[len(r.labels)-take:])
		return out
	case numericRepr:
		out := make([]Label, 0, take)
		for i := r.length - take; i < r.length; i++ {
			out = append(out, Int(r.start+int64(i)*r.step))
		}
		return out
	case fusedRepr:
		out := r.right.LastLabels(take)
		if len(out) < take {
			out = append(r.left.LastLabels(take-len(out)), out...)
		}
		return out
	}
	return []Label{}
}

// FuseAndLast returns the labels that fusing with other would produce,
// restricted to the last n entries, without materializing the fused
// sequence. When other contributes at least n unique labels the result is
// the last n of those; otherwise the unique labels are preceded by enough
// of this index's last labels to reach n.
func (x *Index) FuseAndLast(other *Index, n int) ([]Label, error) {
	unique, err := x.uniqueFrom(other)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []Label{}, nil
	}
	if len(unique) >= n {
		out := make([]Label, n)
		copy(out, unique[len(unique)-n:])
		return out, nil
	}
	return append(x.LastLabels(n-len(unique)), unique...), nil
}

// Labels materializes the full label sequence. This is the only index
// operation guaranteed to allocate proportionally to Length; for numeric
// and fused indices every label is synthesized.
func (x *Index) Labels() []Label {
	if r, ok := x.repr.(explicitRepr); ok {
		out := make([]Label, len(r.labels))
		copy(out, r.labels)
		return out
	}
	length := x.Length()
	out := make([]Label, length)
	for i := 0; i < length; i++ {
		out[i] = x.at(i)
	}
	return out
}

// Equal reports structural equality over the label sequence, independent
// of representation. The name does not participate.
func (x *Index) Equal(other *Index) bool {
	if other == nil {
		return false
	}
	if x == other {
		return true
	}
	length := x.Length()
	if length != other.Length() {
		return false
	}
	for i := 0; i < length; i++ {
		if !LabelsEqual(x.at(i), other.at(i)) {
			return false
		}
	}
	return true
}
