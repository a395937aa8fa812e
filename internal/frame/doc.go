// Package frame implements the zero-copy table model used by split strategies.
//
// A root Table holds column data. A MappedFrame is a read-only projection of a
// root table through a Mapping of row ids: it never copies column values, and
// a view built over another view is flattened at construction so every lookup
// is a single index translation regardless of nesting depth.
//
// Row identity survives every projection. MappedFrame.RowID returns the id of a
// row in the root table, which lets predictions made on a shuffled or folded
// view be traced back to ground truth.
//
// Example:
//
//	schema := frame.Schema{
//	    {Name: "x", Kind: frame.Numeric},
//	    {Name: "class", Kind: frame.Nominal, Levels: []string{"A", "B"}},
//	}
//	b := frame.NewBuilder(schema)
//	b.Append(1.5, 0)
//	b.Append(2.5, 1)
//	root := b.Build()
//
//	rng := rand.New(rand.NewSource(42))
//	shuffled := frame.Shuffle(root, rng)
//	first := shuffled.RowID(0) // id of a row in root
package frame
