package rangeio

import "slices"

// AppendFrontPolicy puts each parsed value at the front of the slice, up to a
// per-read limit. Every value becomes the new first element, so the values
// read end up in reverse order.
type AppendFrontPolicy[T any] struct {
	limiter
}

// NewAppendFrontPolicy returns a policy that prepends at most n values per
// read. Use [Unbounded] for no limit.
func NewAppendFrontPolicy[T any](n int) *AppendFrontPolicy[T] {
	return &AppendFrontPolicy[T]{limiter: newLimiter(n)}
}

// Prepare resets the per-read counter. The cursor is always the start.
func (p *AppendFrontPolicy[T]) Prepare(*[]T, int) (bool, int) {
	p.reset()
	return true, 0
}

// ReadOne scans into a fresh value and prepends it.
func (p *AppendFrontPolicy[T]) ReadOne(r *Reader, seq *[]T, cursor int) Step {
	if !p.open() {
		return stop(cursor)
	}
	var v T
	if !r.Scan(&v) {
		return stop(cursor)
	}
	*seq = slices.Insert(*seq, 0, v)
	return Step{Continue: p.take(), Next: 0, Read: true, Stored: true}
}

func (*AppendFrontPolicy[T]) policy() {}

// AppendFront reads values until the stream fails, putting each one at the
// front of *seq.
func AppendFront[T any](seq *[]T) *RangeReader[T] {
	return AppendFrontN(seq, Unbounded)
}

// AppendFrontN is like AppendFront but stops after n values.
func AppendFrontN[T any](seq *[]T, n int) *RangeReader[T] {
	return NewRangeReader(seq, 0, NewAppendFrontPolicy[T](n))
}
