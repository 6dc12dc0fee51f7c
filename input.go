package rangeio

import (
	"context"
	"log/slog"
)

// Step is a fill policy's answer to one ReadOne call.
type Step struct {
	// Continue asks the engine for another ReadOne call.
	Continue bool

	// Next is the cursor after this step.
	Next int

	// Read reports that a value was parsed from the stream.
	Read bool

	// Stored reports that a value was placed into the sequence.
	Stored bool
}

// stop is the step of a policy that read nothing and wants to end.
func stop(cursor int) Step {
	return Step{Next: cursor}
}

// Policy decides how values parsed from a stream are placed into a sequence
// and when a range read ends. The set of policies is closed:
// [OverwritePolicy], [AppendBackPolicy], [AppendFrontPolicy] and
// [InsertPolicy].
//
// Prepare runs once per operation, performs no I/O, and returns whether
// reading should start and the initial cursor. ReadOne attempts at most one
// formatted read and must guard its own cursor.
type Policy[T any] interface {
	Prepare(seq *[]T, cursor int) (bool, int)
	ReadOne(r *Reader, seq *[]T, cursor int) Step
	policy()
}

// RangeReader reads values from a Reader into a caller's slice under a fill
// policy. Pass it to [Reader.Scan]. The slice is referenced, never copied.
// Count, Stored and Next describe the most recent read only.
type RangeReader[T any] struct {
	seq    *[]T
	policy Policy[T]
	next   int
	count  int
	stored int
}

// NewRangeReader binds seq and a starting cursor to p.
func NewRangeReader[T any](seq *[]T, cursor int, p Policy[T]) *RangeReader[T] {
	return &RangeReader[T]{seq: seq, policy: p, next: cursor}
}

// Count returns the number of values parsed during the last read.
func (rr *RangeReader[T]) Count() int { return rr.count }

// Stored returns the number of values placed into the slice during the last
// read. It never exceeds Count.
func (rr *RangeReader[T]) Stored() int { return rr.stored }

// Next returns the cursor left by the last read. Its meaning depends on the
// policy: the next slot to overwrite, the insertion point, or a fixed end.
func (rr *RangeReader[T]) Next() int { return rr.next }

// ExtractFrom runs the range read. Every element is read under the
// formatting configuration the stream had when the read started. The loop
// ends when the policy stops or the stream fails; the field width is zero
// afterwards.
func (rr *RangeReader[T]) ExtractFrom(r *Reader) {
	rr.count = 0
	rr.stored = 0

	var more bool
	more, rr.next = rr.policy.Prepare(rr.seq, rr.next)

	if more {
		formatting := saveFormat(r)
		for more && !r.Fail() {
			formatting.restore()

			step := rr.policy.ReadOne(r, rr.seq, rr.next)
			more = step.Continue
			rr.next = step.Next
			if step.Read {
				rr.count++
			}
			if step.Stored {
				rr.stored++
			}
		}
	}

	r.SetWidth(0)

	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "range read finished",
		slog.Int("read", rr.count),
		slog.Int("stored", rr.stored),
		slog.Int("next", rr.next),
		slog.String("state", r.State().String()),
	)
}

// limiter is the per-operation counter shared by the growing policies.
type limiter struct {
	limit   int
	current int
}

func newLimiter(n int) limiter {
	return limiter{limit: max(n, 0)}
}

func (l *limiter) reset() { l.current = 0 }

func (l *limiter) open() bool { return l.current < l.limit }

// take counts one stored value and reports whether more are allowed.
func (l *limiter) take() bool {
	l.current++
	return l.open()
}
