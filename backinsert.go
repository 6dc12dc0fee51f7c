package rangeio

// AppendBackPolicy appends each parsed value to the end of the slice, up to
// a per-read limit.
type AppendBackPolicy[T any] struct {
	limiter
}

// NewAppendBackPolicy returns a policy that appends at most n values per read.
// Use [Unbounded] for no limit.
func NewAppendBackPolicy[T any](n int) *AppendBackPolicy[T] {
	return &AppendBackPolicy[T]{limiter: newLimiter(n)}
}

// Prepare resets the per-read counter. The cursor is always the end.
func (p *AppendBackPolicy[T]) Prepare(seq *[]T, _ int) (bool, int) {
	p.reset()
	return true, len(*seq)
}

// ReadOne scans into a fresh value and appends it.
func (p *AppendBackPolicy[T]) ReadOne(r *Reader, seq *[]T, cursor int) Step {
	if !p.open() {
		return stop(cursor)
	}
	var v T
	if !r.Scan(&v) {
		return stop(cursor)
	}
	*seq = append(*seq, v)
	return Step{Continue: p.take(), Next: len(*seq), Read: true, Stored: true}
}

func (*AppendBackPolicy[T]) policy() {}

// AppendBack reads values until the stream fails and appends them to *seq in
// reading order.
func AppendBack[T any](seq *[]T) *RangeReader[T] {
	return AppendBackN(seq, Unbounded)
}

// AppendBackN is like AppendBack but stops after n values, leaving the rest
// of the input unread.
func AppendBackN[T any](seq *[]T, n int) *RangeReader[T] {
	return NewRangeReader(seq, len(*seq), NewAppendBackPolicy[T](n))
}
