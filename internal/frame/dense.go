package frame

import "fmt"

// Dense is an in-memory columnar root table.
type Dense struct {
	schema  Schema
	columns [][]float64
	rows    int
}

// NewDense builds a table from per-column value slices. All columns must have
// the same length and match the schema.
func NewDense(schema Schema, columns [][]float64) (*Dense, error) {
	if len(columns) != len(schema) {
		return nil, fmt.Errorf("%w: %d columns for %d fields", ErrInvalidArgument, len(columns), len(schema))
	}
	rows := 0
	for i, col := range columns {
		if i == 0 {
			rows = len(col)
		} else if len(col) != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d",
				ErrInvalidArgument, schema[i].Name, len(col), rows)
		}
	}
	return &Dense{schema: schema, columns: columns, rows: rows}, nil
}

// RowCount returns the number of rows.
func (d *Dense) RowCount() int { return d.rows }

// ColumnCount returns the number of columns.
func (d *Dense) ColumnCount() int { return len(d.schema) }

// Schema returns the column descriptions.
func (d *Dense) Schema() Schema { return d.schema }

// Value returns the value at (row, col).
func (d *Dense) Value(row, col int) float64 {
	if row < 0 || row >= d.rows {
		panic(&IndexError{What: "row", Index: row, Len: d.rows})
	}
	return d.columns[col][row]
}

// Column returns the backing slice of column col. Callers must not modify it.
func (d *Dense) Column(col int) []float64 {
	return d.columns[col]
}

// Builder accumulates rows for a Dense table.
type Builder struct {
	schema  Schema
	columns [][]float64
}

// NewBuilder returns a builder for the given schema.
func NewBuilder(schema Schema) *Builder {
	return &Builder{schema: schema, columns: make([][]float64, len(schema))}
}

// Append adds one row. It panics if the value count does not match the schema.
func (b *Builder) Append(values ...float64) {
	if len(values) != len(b.schema) {
		panic(fmt.Sprintf("frame: Append got %d values, schema has %d fields", len(values), len(b.schema)))
	}
	for i, v := range values {
		b.columns[i] = append(b.columns[i], v)
	}
}

// Len returns the number of rows appended so far.
func (b *Builder) Len() int {
	if len(b.columns) == 0 {
		return 0
	}
	return len(b.columns[0])
}

// Build returns the accumulated table. The builder must not be used afterwards.
func (b *Builder) Build() *Dense {
	return &Dense{schema: b.schema, columns: b.columns, rows: b.Len()}
}
