package textio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// descriptorRE matches a full descriptor line. Group 1 is the kind,
// group 2 the first count, groups 3 and 4 the optional trailing fields.
var descriptorRE = regexp.MustCompile(`^#(\w+)\[(\d+)(?:\s*,\s*([^,\]]+))?(?:\s*,\s*([^\]]+))?\]$`)

// ValueType is the closed set of declared column value types.
type ValueType string

const (
	TypeAny      ValueType = "any"
	TypeString   ValueType = "string"
	TypeBool     ValueType = "boolean"
	TypeNumber   ValueType = "number"
	TypeInt      ValueType = "integer"
	TypeDouble   ValueType = "double"
	TypeDateTime ValueType = "datetime"
)

// ParseValueType maps a declared type name, case-insensitively, onto the
// closed ValueType set. Unknown or empty names fall back to TypeAny.
func ParseValueType(name string) ValueType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string":
		return TypeString
	case "boolean":
		return TypeBool
	case "number":
		return TypeNumber
	case "integer":
		return TypeInt
	case "double":
		return TypeDouble
	case "datetime":
		return TypeDateTime
	default:
		return TypeAny
	}
}

// Descriptor is a sealed interface over the three block descriptors.
type Descriptor interface {
	descriptor()
}

// IndexDescriptor announces an index block: one value line of Len labels.
type IndexDescriptor struct {
	Len  int
	Name string
}

func (IndexDescriptor) descriptor() {}

// ColumnDescriptor announces a column block: an optional index block then
// one value line of Rows values. Name is "Unnamed" when the descriptor
// carries none; table construction default-names it.
type ColumnDescriptor struct {
	Rows int
	Type ValueType
	Name string
}

func (ColumnDescriptor) descriptor() {}

// TableDescriptor announces a table block of Cols column blocks.
type TableDescriptor struct {
	Rows int
	Cols int
	Type ValueType
}

func (TableDescriptor) descriptor() {}

// ParseDescriptor parses a descriptor line. A line that is not shaped
// like a descriptor at all returns (nil, nil); a malformed descriptor
// returns an error.
func ParseDescriptor(line string) (Descriptor, error) {
	m := descriptorRE.FindStringSubmatch(line)
	if m == nil {
		return nil, nil
	}
	kind, first, second, third := m[1], m[2], m[3], m[4]
	n, err := strconv.Atoi(first)
	if err != nil {
		return nil, fmt.Errorf("parsing descriptor %q: %w", line, err)
	}
	switch kind {
	case "index":
		if n <= 0 {
			return nil, fmt.Errorf("parsing descriptor %q: index length must be positive", line)
		}
		return IndexDescriptor{Len: n, Name: strings.TrimSpace(second)}, nil
	case "column":
		if n <= 0 {
			return nil, fmt.Errorf("parsing descriptor %q: row count must be positive", line)
		}
		name := "Unnamed"
		if third != "" {
			name = strings.TrimSpace(third)
		}
		return ColumnDescriptor{Rows: n, Type: ParseValueType(second), Name: name}, nil
	case "table":
		cols, err := strconv.Atoi(strings.TrimSpace(second))
		if err != nil {
			return nil, fmt.Errorf("parsing descriptor %q: %w", line, err)
		}
		if n <= 0 || cols <= 0 {
			return nil, fmt.Errorf("parsing descriptor %q: row and column counts must be positive", line)
		}
		return TableDescriptor{Rows: n, Cols: cols, Type: ParseValueType(third)}, nil
	default:
		return nil, fmt.Errorf("unknown descriptor type: %s", kind)
	}
}
