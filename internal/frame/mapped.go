package frame

// MappedFrame is a read-only view of a root table through a Mapping.
//
// The view holds a plain reference to its root and never copies column data.
// The root must not be mutated while views over it are in use.
type MappedFrame struct {
	root Table
	rows Mapping
}

// NewMappedFrame wraps t with mapping m. When t is itself a MappedFrame the
// result is a view directly over t's root whose mapping is t's mapping
// composed with m, so no chain of views is ever formed.
//
// Precondition: every id in m is a valid row position of t.
func NewMappedFrame(t Table, m Mapping) *MappedFrame {
	if v, ok := t.(*MappedFrame); ok {
		return &MappedFrame{root: v.root, rows: v.rows.Sub(m)}
	}
	return &MappedFrame{root: t, rows: m}
}

// RowCount equals the mapping length.
func (f *MappedFrame) RowCount() int { return f.rows.Len() }

// ColumnCount delegates to the root.
func (f *MappedFrame) ColumnCount() int { return f.root.ColumnCount() }

// Schema delegates to the root.
func (f *MappedFrame) Schema() Schema { return f.root.Schema() }

// Value returns the root value of row RowID(row).
func (f *MappedFrame) Value(row, col int) float64 {
	id, err := f.rows.Get(row)
	if err != nil {
		panic(&IndexError{What: "row", Index: row, Len: f.rows.Len()})
	}
	return f.root.Value(id, col)
}

// RowID returns the root row id behind view row i.
func (f *MappedFrame) RowID(i int) int {
	return f.rows.At(i)
}

// Source returns the root table. It is never a MappedFrame.
func (f *MappedFrame) Source() Table { return f.root }

// Mapping returns a copy of the view's mapping.
func (f *MappedFrame) Mapping() Mapping {
	return MappingOf(f.rows.ids)
}
