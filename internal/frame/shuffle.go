package frame

// Rand is the random source consumed by shuffling and split generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Perm(n int) []int
	Intn(n int) int
	Float64() float64
}

// Shuffle returns a view over t's root whose rows are a uniform random
// permutation of t's rows. Row ids are permuted, not positions, so every row
// of the result still traces back to the root. t is not modified.
func Shuffle(t Table, rng Rand) *MappedFrame {
	perm := rng.Perm(t.RowCount())
	return NewMappedFrame(t, MappingOf(perm))
}
