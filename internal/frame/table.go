package frame

import (
	"fmt"
	"math"
)

// Kind is the value type of a column.
type Kind int

// Column kinds.
const (
	Numeric Kind = iota
	Nominal
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Nominal:
		return "nominal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field describes one column.
type Field struct {
	Name   string
	Kind   Kind
	Levels []string // Nominal only; value v encodes Levels[int(v)].
}

// Schema is the ordered list of columns of a table.
type Schema []Field

// Index returns the position of the named column, or -1.
func (s Schema) Index(name string) int {
	for i, f := range s {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Table is the read interface every root table and view implements.
//
// Values are float64. Nominal columns store the level index; a missing value
// in any column is NaN. Row and column arguments outside range panic.
type Table interface {
	RowCount() int
	ColumnCount() int
	Schema() Schema
	Value(row, col int) float64
}

// Missing is the encoding of an absent value.
var Missing = math.NaN()

// IsMissing reports whether v encodes an absent value.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// ColumnIndex resolves a column name against t's schema.
func ColumnIndex(t Table, name string) (int, error) {
	idx := t.Schema().Index(name)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return idx, nil
}

// Nominal returns the level index stored at (row, col). ok is false when the
// value is missing.
func Nominal(t Table, row, col int) (level int, ok bool) {
	v := t.Value(row, col)
	if IsMissing(v) {
		return -1, false
	}
	return int(v), true
}

// RowIDs returns the root row ids of every row of t in order. For a root table
// this is 0..RowCount()-1.
func RowIDs(t Table) []int {
	if v, ok := t.(*MappedFrame); ok {
		return v.rows.IDs()
	}
	return Identity(t.RowCount()).ids
}
