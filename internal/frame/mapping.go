package frame

// Mapping is an ordered sequence of row ids referencing a root table.
//
// The order of ids defines the row order of the view that wraps the mapping.
// Duplicates are permitted. Ids are not validated against any table: callers
// must only wrap a mapping around a table in which every id is a valid row.
//
// A Mapping is built by appending and then handed to NewMappedFrame, after
// which it must not be modified.
type Mapping struct {
	ids []int
}

// NewMapping returns an empty mapping with room for capacity ids.
func NewMapping(capacity int) Mapping {
	return Mapping{ids: make([]int, 0, max(capacity, 0))}
}

// MappingOf imports an ordered id sequence. The slice is copied.
func MappingOf(ids []int) Mapping {
	m := NewMapping(len(ids))
	m.ids = append(m.ids, ids...)
	return m
}

// Identity returns the mapping 0, 1, ..., n-1.
func Identity(n int) Mapping {
	m := NewMapping(n)
	for i := 0; i < n; i++ {
		m.ids = append(m.ids, i)
	}
	return m
}

// Append adds one id to the end of the mapping.
func (m *Mapping) Append(id int) {
	m.ids = append(m.ids, id)
}

// Len returns the number of ids.
func (m Mapping) Len() int {
	return len(m.ids)
}

// At returns the i-th id. It panics with an *IndexError wrapping
// ErrIndexOutOfRange when i is outside [0, Len()).
func (m Mapping) At(i int) int {
	id, err := m.Get(i)
	if err != nil {
		panic(err)
	}
	return id
}

// Get is the non-panicking form of At.
func (m Mapping) Get(i int) (int, error) {
	if i < 0 || i >= len(m.ids) {
		return 0, &IndexError{What: "mapping", Index: i, Len: len(m.ids)}
	}
	return m.ids[i], nil
}

// IDs returns a copy of the ids.
func (m Mapping) IDs() []int {
	out := make([]int, len(m.ids))
	copy(out, m.ids)
	return out
}

// Sub derives the mapping m∘positions: element k is m.At(positions[k]).
// It panics if any position is out of range.
func (m Mapping) Sub(positions Mapping) Mapping {
	out := NewMapping(positions.Len())
	for _, p := range positions.ids {
		out.ids = append(out.ids, m.At(p))
	}
	return out
}
