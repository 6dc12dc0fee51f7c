package rangeio

import (
	"context"
	"iter"
	"log/slog"
	"slices"
)

// RangeWriter writes every element of a sequence to a Writer, optionally
// separated by a delimiter. Pass it to [Writer.Print]. Count and Next
// describe the most recent write only.
type RangeWriter[T any] struct {
	elems func() iter.Seq[T]
	delim func(w *Writer)
	count int
	next  int
}

// WriteOption configures a RangeWriter.
type WriteOption func(*writeConfig)

type writeConfig struct {
	delim func(w *Writer)
}

// Delim separates elements with d. The writer keeps its own copy of d. If
// *D is an [Inserter], the copy renders itself, so a delimiter that changes
// between uses keeps its state inside the writer.
func Delim[D any](d D) WriteOption {
	return func(c *writeConfig) {
		c.delim = func(w *Writer) {
			if ins, ok := any(&d).(Inserter); ok {
				ins.InsertInto(w)
				return
			}
			w.Print(d)
		}
	}
}

// DelimRef separates elements with *d, read at every use. The caller keeps
// ownership of d.
func DelimRef[D any](d *D) WriteOption {
	return func(c *writeConfig) {
		c.delim = func(w *Writer) {
			if ins, ok := any(d).(Inserter); ok {
				ins.InsertInto(w)
				return
			}
			w.Print(*d)
		}
	}
}

func newRangeWriter[T any](elems func() iter.Seq[T], opts []WriteOption) *RangeWriter[T] {
	var cfg writeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RangeWriter[T]{elems: elems, delim: cfg.delim}
}

// WriteAll writes the elements of seq. The writer takes ownership of seq;
// the caller should not modify it afterwards.
func WriteAll[T any](seq []T, opts ...WriteOption) *RangeWriter[T] {
	return newRangeWriter(func() iter.Seq[T] { return slices.Values(seq) }, opts)
}

// WriteAllRef writes the elements of *seq as they are at each use. The
// caller keeps ownership; nothing is copied.
func WriteAllRef[T any](seq *[]T, opts ...WriteOption) *RangeWriter[T] {
	return newRangeWriter(func() iter.Seq[T] { return slices.Values(*seq) }, opts)
}

// WriteSeq writes the values yielded by seq, for filtered or otherwise
// adapted sequences.
func WriteSeq[T any](seq iter.Seq[T], opts ...WriteOption) *RangeWriter[T] {
	return newRangeWriter(func() iter.Seq[T] { return seq }, opts)
}

// WriteChan writes values received from ch until it is closed.
// A channel drains once, so later uses write only what arrived since.
func WriteChan[T any](ch <-chan T, opts ...WriteOption) *RangeWriter[T] {
	return WriteSeq(chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// Count returns the number of elements written during the last write.
func (rw *RangeWriter[T]) Count() int { return rw.count }

// Next returns the index of the element the last write would have written
// next; after a complete write it equals Count.
func (rw *RangeWriter[T]) Next() int { return rw.next }

// InsertInto writes the sequence. Each element starts from the formatting
// configuration the stream had at the start; a delimiter is written with
// whatever configuration the preceding element left behind. An empty
// sequence is written as one empty value, so a field width is filled.
// The field width is zero afterwards.
func (rw *RangeWriter[T]) InsertInto(w *Writer) {
	rw.count = 0
	rw.next = 0

	formatting := saveFormat(w)
	pending := false
	for v := range rw.elems() {
		if w.Fail() {
			break
		}
		if pending && rw.delim != nil {
			rw.delim(w)
			if w.Fail() {
				break
			}
		}
		formatting.restore()
		if !w.Print(v) {
			break
		}
		rw.count++
		rw.next++
		pending = true
	}

	if rw.count == 0 && w.Width() > 0 && !w.Fail() {
		w.insert("")
	}

	w.SetWidth(0)

	w.logger.LogAttrs(context.Background(), slog.LevelDebug, "range write finished",
		slog.Int("written", rw.count),
		slog.String("state", w.State().String()),
	)
}
