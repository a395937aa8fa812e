package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/crossval/internal/frame"
)

// ReadCSV loads a table from CSV with a header row.
func ReadCSV(r io.Reader, opts Options) (*frame.Dense, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: CSV is missing a header", frame.ErrInvalidArgument)
	}
	return build(records[0], records[1:], opts)
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string, opts Options) (*frame.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, opts)
}
