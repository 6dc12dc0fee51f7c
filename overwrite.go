package rangeio

// OverwritePolicy replaces existing elements in place, from the cursor to the
// end of the slice. It never grows or shrinks the slice.
type OverwritePolicy[T any] struct{}

// Prepare starts at the first element and refuses an empty slice.
func (*OverwritePolicy[T]) Prepare(seq *[]T, _ int) (bool, int) {
	return len(*seq) > 0, 0
}

// ReadOne scans directly into the element at cursor.
func (*OverwritePolicy[T]) ReadOne(r *Reader, seq *[]T, cursor int) Step {
	if cursor < 0 || cursor >= len(*seq) {
		return stop(cursor)
	}
	if !r.Scan(&(*seq)[cursor]) {
		return stop(cursor)
	}
	cursor++
	return Step{Continue: cursor != len(*seq), Next: cursor, Read: true, Stored: true}
}

func (*OverwritePolicy[T]) policy() {}

// Overwrite reads len(*seq) values into the existing elements of *seq.
func Overwrite[T any](seq *[]T) *RangeReader[T] {
	return NewRangeReader(seq, 0, &OverwritePolicy[T]{})
}

// Discard reads n values of type T and throws them away. The stream state
// afterwards tells whether all n parsed.
func Discard[T any](n int) *RangeReader[T] {
	scratch := make([]T, max(n, 0))
	return Overwrite(&scratch)
}
