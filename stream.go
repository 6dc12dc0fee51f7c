package rangeio

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
)

// State is the condition of a stream.
type State uint8

const (
	// StateGood means further operations may be attempted.
	StateGood State = 0

	// StateEOF means input was exhausted.
	StateEOF State = 1 << (iota - 1)

	// StateFail means a recoverable failure, usually a conversion error.
	StateFail

	// StateBad means an unrecoverable I/O error.
	StateBad
)

// String returns "good" or the set conditions joined with "|".
func (s State) String() string {
	if s == StateGood {
		return "good"
	}
	var parts []string
	if s&StateEOF != 0 {
		parts = append(parts, "eof")
	}
	if s&StateFail != 0 {
		parts = append(parts, "fail")
	}
	if s&StateBad != 0 {
		parts = append(parts, "bad")
	}
	return strings.Join(parts, "|")
}

// stream is the state shared by Reader and Writer: formatting configuration,
// condition flags and the error behind the last non-good transition.
type stream struct {
	format Format
	state  State
	err    error
	logger *slog.Logger
}

func newStream(opts []Option) stream {
	s := stream{
		format: DefaultFormat(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Formatting returns the current formatting configuration.
func (s *stream) Formatting() Format { return s.format }

// SetFormatting replaces the formatting configuration and returns the old one.
func (s *stream) SetFormatting(f Format) Format {
	old := s.format
	s.format = f
	return old
}

// Flags returns the formatting flags.
func (s *stream) Flags() Flags { return s.format.Flags }

// SetFlags replaces all flags and returns the old set.
func (s *stream) SetFlags(f Flags) Flags {
	old := s.format.Flags
	s.format.Flags = f
	return old
}

// Setf clears the flags in mask, then sets f&mask. Use a zero mask to set f
// without clearing anything. It returns the old set.
//
//	w.Setf(rangeio.Hex, rangeio.BaseField)
func (s *stream) Setf(f, mask Flags) Flags {
	old := s.format.Flags
	if mask == 0 {
		s.format.Flags |= f
		return old
	}
	s.format.Flags = (old &^ mask) | (f & mask)
	return old
}

// Unsetf clears f and returns the old set.
func (s *stream) Unsetf(f Flags) Flags {
	old := s.format.Flags
	s.format.Flags &^= f
	return old
}

// Width returns the field width. Zero means no minimum.
func (s *stream) Width() int { return s.format.Width }

// SetWidth sets the field width for the next formatted operation and returns
// the old width. Formatted operations reset it to zero.
func (s *stream) SetWidth(n int) int {
	old := s.format.Width
	s.format.Width = max(n, 0)
	return old
}

// Precision returns the floating point precision.
func (s *stream) Precision() int { return s.format.Precision }

// SetPrecision sets the floating point precision and returns the old one.
func (s *stream) SetPrecision(n int) int {
	old := s.format.Precision
	s.format.Precision = n
	return old
}

// Fill returns the padding character.
func (s *stream) Fill() rune { return s.format.Fill }

// SetFill sets the padding character and returns the old one.
func (s *stream) SetFill(r rune) rune {
	old := s.format.Fill
	s.format.Fill = r
	return old
}

// State returns the stream condition.
func (s *stream) State() State { return s.state }

// Good reports whether no condition is set.
func (s *stream) Good() bool { return s.state == StateGood }

// EOF reports whether input was exhausted.
func (s *stream) EOF() bool { return s.state&StateEOF != 0 }

// Fail reports whether the last operation failed, recoverably or not.
func (s *stream) Fail() bool { return s.state&(StateFail|StateBad) != 0 }

// Bad reports whether an unrecoverable I/O error occurred.
func (s *stream) Bad() bool { return s.state&StateBad != 0 }

// Err returns the error behind the current condition, or nil when good.
func (s *stream) Err() error {
	if s.state == StateGood {
		return nil
	}
	if s.err == nil {
		return ErrNotGood
	}
	return s.err
}

// Clear resets the condition to good. It does not touch the formatting
// configuration or the underlying source or destination.
func (s *stream) Clear() {
	s.state = StateGood
	s.err = nil
}

func (s *stream) setState(st State, err error) {
	if st&^s.state == 0 {
		return
	}
	s.state |= st
	if s.err == nil || st&StateBad != 0 {
		s.err = err
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "stream state changed",
		slog.String("state", s.state.String()),
		slog.Any("error", err),
	)
}

// Reader is a text input stream. Formatted reads parse one value at a time
// under the current formatting configuration.
type Reader struct {
	stream
	src io.RuneScanner
}

// NewReader returns a Reader over src. Sources that are not already an
// io.RuneScanner are buffered.
func NewReader(src io.Reader, opts ...Option) *Reader {
	rs, ok := src.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(src)
	}
	return &Reader{stream: newStream(opts), src: rs}
}

// ReadRune reads one rune without formatting. End of input sets the eof
// condition; other errors set bad.
func (r *Reader) ReadRune() (rune, int, error) {
	c, size, err := r.src.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.setState(StateEOF, io.EOF)
		} else {
			r.setState(StateBad, err)
		}
	}
	return c, size, err
}

// UnreadRune pushes back the last rune read.
func (r *Reader) UnreadRune() error {
	return r.src.UnreadRune()
}

// Writer is a text output stream. Formatted writes render one value at a time
// under the current formatting configuration.
type Writer struct {
	stream
	dst io.Writer
}

// NewWriter returns a Writer over dst.
func NewWriter(dst io.Writer, opts ...Option) *Writer {
	return &Writer{stream: newStream(opts), dst: dst}
}

// Write passes p through without formatting. Errors set the bad condition.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.dst.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.setState(StateBad, err)
	}
	return n, err
}

// WriteString passes s through without formatting.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Put writes c without formatting and reports whether the stream is still
// usable.
func (w *Writer) Put(c rune) bool {
	if !w.Good() {
		w.setState(StateFail, ErrNotGood)
		return false
	}
	_, err := w.WriteString(string(c))
	return err == nil
}
