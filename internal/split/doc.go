// Package split generates train/test partitions of a table.
//
// Every strategy returns Splits whose Train and Test members are
// frame.MappedFrame views over the input's root table: no column data is
// copied, and each view's RowID traces back to the original rows.
//
// Strategies take the random source explicitly. Calling Splits twice with the
// same seeded source yields the same partitions; calling it twice with one
// source yields fresh shuffles.
package split
