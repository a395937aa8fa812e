package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/crossval/internal/frame"
)

// Options controls kind inference.
type Options struct {
	// Nominal lists columns that are always nominal.
	Nominal []string
}

func (o Options) forceNominal(name string) bool {
	for _, n := range o.Nominal {
		if n == name {
			return true
		}
	}
	return false
}

func isMissing(cell string) bool {
	cell = strings.TrimSpace(cell)
	return cell == "" || cell == "?"
}

// build turns a header and string cells into a Dense table.
func build(header []string, records [][]string, opts Options) (*frame.Dense, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: no columns", frame.ErrInvalidArgument)
	}
	schema := make(frame.Schema, len(header))
	columns := make([][]float64, len(header))

	for c, name := range header {
		name = strings.TrimSpace(name)
		values, numeric := parseNumeric(records, c)
		if numeric && !opts.forceNominal(name) {
			schema[c] = frame.Field{Name: name, Kind: frame.Numeric}
			columns[c] = values
			continue
		}
		levels, values := parseNominal(records, c)
		schema[c] = frame.Field{Name: name, Kind: frame.Nominal, Levels: levels}
		columns[c] = values
	}

	for _, n := range opts.Nominal {
		if schema.Index(n) < 0 {
			return nil, fmt.Errorf("%w: %q", frame.ErrUnknownColumn, n)
		}
	}
	return frame.NewDense(schema, columns)
}

func parseNumeric(records [][]string, c int) ([]float64, bool) {
	values := make([]float64, len(records))
	for i, rec := range records {
		cell := rec[c]
		if isMissing(cell) {
			values[i] = frame.Missing
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

func parseNominal(records [][]string, c int) ([]string, []float64) {
	index := make(map[string]int)
	levels := make([]string, 0)
	values := make([]float64, len(records))
	for i, rec := range records {
		cell := strings.TrimSpace(rec[c])
		if isMissing(cell) {
			values[i] = frame.Missing
			continue
		}
		idx, ok := index[cell]
		if !ok {
			idx = len(levels)
			index[cell] = idx
			levels = append(levels, cell)
		}
		values[i] = float64(idx)
	}
	return levels, values
}
