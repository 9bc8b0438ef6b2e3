package frame

import (
	"math"
	"strconv"
	"time"
)

// Label is a sealed interface representing the scalar kinds an index or
// cell may carry. Only Absent, Bool, Int, Float, Timestamp, and Text
// implement it. String returns the rendered text form of the label; it is
// the form used for fixed-width output and for text-based aggregation.
type Label interface {
	label() // Sealed - only these types implement it
	String() string
}

// Absent represents a missing value. It renders as the empty string.
type Absent struct{}

func (Absent) label() {}

func (Absent) String() string { return "" }

// Bool represents a boolean label.
type Bool bool

func (Bool) label() {}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Int represents an integer label. Always int64.
type Int int64

func (Int) label() {}

func (n Int) String() string { return strconv.FormatInt(int64(n), 10) }

// Float represents a floating point label.
type Float float64

func (Float) label() {}

// String keeps a trailing ".0" on integral values so that Float(4) and
// Int(4) remain distinguishable in rendered output.
func (f Float) String() string {
	v := float64(f)
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Timestamp represents a date-time label. Comparison is by instant.
type Timestamp time.Time

func (Timestamp) label() {}

// String renders in ISO form, omitting the seconds component when it is
// zero, e.g. "2023-01-02T10:15" or "2023-01-02T10:15:30".
func (ts Timestamp) String() string {
	t := time.Time(ts)
	if t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02T15:04")
	}
	return t.Format("2006-01-02T15:04:05")
}

// Text represents a string label. The empty string is a valid label and
// is distinct from Absent.
type Text string

func (Text) label() {}

func (s Text) String() string { return string(s) }

// LabelsEqual reports structural equality over tag and payload. A nil
// Label is treated as Absent. Kinds never compare equal across tags:
// Int(3) and Float(3.0) are distinct (numeric-range lookup is the single
// deliberate exception, see Index.PositionOf). Timestamps compare by
// instant.
func LabelsEqual(a, b Label) bool {
	if a == nil {
		a = Absent{}
	}
	if b == nil {
		b = Absent{}
	}
	switch av := a.(type) {
	case Absent:
		_, ok := b.(Absent)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Timestamp:
		bv, ok := b.(Timestamp)
		return ok && time.Time(av).Equal(time.Time(bv))
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	default:
		return false
	}
}

// LabelString renders a label, mapping nil to the empty string.
func LabelString(l Label) string {
	if l == nil {
		return ""
	}
	return l.String()
}
