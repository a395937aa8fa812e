// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package frame provides the public API for zero-copy table views.
//
// The package exposes:
//   - Table: the read interface of root tables and views
//   - Dense, Builder: an in-memory columnar root table
//   - Mapping: an ordered sequence of root row ids
//   - MappedFrame: a read-only view of a root table through a Mapping
//
// Example:
//
//	root := b.Build()
//	view := frame.NewMappedFrame(root, frame.MappingOf([]int{3, 1}))
//	sub := frame.NewMappedFrame(view, frame.MappingOf([]int{1}))
//	sub.RowID(0)  // 1
//	sub.Source()  // root, not view
package frame

import (
	"github.com/born-ml/crossval/internal/frame"
)

// Type aliases for public API

// Table is the read interface every root table and view implements.
type Table = frame.Table

// Schema is the ordered list of columns of a table.
type Schema = frame.Schema

// Field describes one column.
type Field = frame.Field

// Kind is the value type of a column.
type Kind = frame.Kind

// Column kinds.
const (
	Numeric Kind = frame.Numeric
	Nominal Kind = frame.Nominal
)

// Mapping is an ordered sequence of row ids referencing a root table.
type Mapping = frame.Mapping

// MappedFrame is a read-only view of a root table through a Mapping.
type MappedFrame = frame.MappedFrame

// Dense is an in-memory columnar root table.
type Dense = frame.Dense

// Builder accumulates rows for a Dense table.
type Builder = frame.Builder

// Rand is the random source consumed by shuffling and split generation.
type Rand = frame.Rand

// IndexError reports an access outside [0, Len).
type IndexError = frame.IndexError

// Errors.
var (
	ErrInvalidArgument = frame.ErrInvalidArgument
	ErrIndexOutOfRange = frame.ErrIndexOutOfRange
	ErrEmptyTable      = frame.ErrEmptyTable
	ErrUnknownColumn   = frame.ErrUnknownColumn
)

// Missing is the encoding of an absent value.
var Missing = frame.Missing

// NewMapping returns an empty mapping with room for capacity ids.
func NewMapping(capacity int) Mapping { return frame.NewMapping(capacity) }

// MappingOf imports an ordered id sequence. The slice is copied.
func MappingOf(ids []int) Mapping { return frame.MappingOf(ids) }

// Identity returns the mapping 0, 1, ..., n-1.
func Identity(n int) Mapping { return frame.Identity(n) }

// NewMappedFrame wraps t with mapping m, flattening views of views.
func NewMappedFrame(t Table, m Mapping) *MappedFrame { return frame.NewMappedFrame(t, m) }

// NewDense builds a table from per-column value slices.
func NewDense(schema Schema, columns [][]float64) (*Dense, error) {
	return frame.NewDense(schema, columns)
}

// NewBuilder returns a builder for the given schema.
func NewBuilder(schema Schema) *Builder { return frame.NewBuilder(schema) }

// Shuffle returns a randomly permuted view over t's root.
func Shuffle(t Table, rng Rand) *MappedFrame { return frame.Shuffle(t, rng) }

// RowIDs returns the root row ids of every row of t in order.
func RowIDs(t Table) []int { return frame.RowIDs(t) }

// ColumnIndex resolves a column name against t's schema.
func ColumnIndex(t Table, name string) (int, error) { return frame.ColumnIndex(t, name) }

// Nominal returns the level index stored at (row, col).
func Nominal(t Table, row, col int) (int, bool) { return frame.Nominal(t, row, col) }

// IsMissing reports whether v encodes an absent value.
func IsMissing(v float64) bool { return frame.IsMissing(v) }
