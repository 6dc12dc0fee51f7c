package rangeio

import "slices"

// InsertPolicy inserts parsed values at a moving insertion point. Each value
// goes before the cursor and the cursor moves past it, so the values keep
// their reading order at the original position.
type InsertPolicy[T any] struct {
	limiter
}

// NewInsertPolicy returns a policy that inserts at most n values per read.
// Use [Unbounded] for no limit.
func NewInsertPolicy[T any](n int) *InsertPolicy[T] {
	return &InsertPolicy[T]{limiter: newLimiter(n)}
}

// Prepare resets the per-read counter and keeps the caller's cursor.
func (p *InsertPolicy[T]) Prepare(_ *[]T, cursor int) (bool, int) {
	p.reset()
	return true, cursor
}

// ReadOne scans into a fresh value and inserts it before cursor.
// Reaching the limit stops the read with the cursor just past the last
// inserted value.
func (p *InsertPolicy[T]) ReadOne(r *Reader, seq *[]T, cursor int) Step {
	if cursor < 0 || cursor > len(*seq) {
		return stop(cursor)
	}
	if !p.open() {
		return stop(cursor)
	}
	var v T
	if !r.Scan(&v) {
		return stop(cursor)
	}
	*seq = slices.Insert(*seq, cursor, v)
	return Step{Continue: p.take(), Next: cursor + 1, Read: true, Stored: true}
}

func (*InsertPolicy[T]) policy() {}

// InsertAt reads values until the stream fails and inserts them into *seq
// starting before index pos.
func InsertAt[T any](seq *[]T, pos int) *RangeReader[T] {
	return InsertAtN(seq, pos, Unbounded)
}

// InsertAtN is like InsertAt but stops after n values.
func InsertAtN[T any](seq *[]T, pos, n int) *RangeReader[T] {
	return NewRangeReader(seq, pos, NewInsertPolicy[T](n))
}
