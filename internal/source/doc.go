// Package source loads root tables for evaluation from CSV files and
// PostgreSQL queries.
//
// Column kinds are inferred from the data: a column whose every non-missing
// cell parses as a number is numeric, anything else is nominal with levels in
// first-seen order. Empty cells and "?" are missing. Options.Nominal forces
// named columns to be nominal, which is how integer class labels are kept
// categorical.
package source
