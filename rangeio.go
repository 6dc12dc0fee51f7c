package rangeio

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
)

// Sentinel errors for programmatic error handling.
var (
	ErrSyntax          = errors.New("invalid syntax")
	ErrRange           = errors.New("value out of range")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrNotGood         = errors.New("stream not good")
	ErrInvalidFlag     = errors.New("invalid flag")
	ErrInvalidFormat   = errors.New("invalid format")
)

// Unbounded is the element limit used by the unbounded fill policies.
const Unbounded = math.MaxInt

// Extractor is implemented by values that know how to read themselves from a
// Reader. Range input operations implement it, and so can caller types.
// Implementations report failure through the Reader's state.
type Extractor interface {
	ExtractFrom(r *Reader)
}

// Inserter is implemented by values that know how to write themselves to a
// Writer. Range output operations implement it. A delimiter whose rendering
// changes between uses is an Inserter with a pointer receiver.
type Inserter interface {
	InsertInto(w *Writer)
}

// Option configures a Reader or Writer.
type Option func(*stream)

// WithLogger routes stream debug records to l.
// Without it, records are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(s *stream) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFormat sets the initial formatting state. Default: [DefaultFormat].
func WithFormat(f Format) Option {
	return func(s *stream) { s.format = f }
}

// Marshal prints items under format f and returns the bytes.
func Marshal(f Format, items ...any) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WithFormat(f))
	if !w.Print(items...) {
		return nil, w.Err()
	}
	return buf.Bytes(), nil
}

// Unmarshal scans data into dst under format f. It fails if any destination
// could not be filled; data left over after the last destination is ignored.
func Unmarshal(data []byte, f Format, dst ...any) error {
	r := NewReader(bytes.NewReader(data), WithFormat(f))
	if !r.Scan(dst...) {
		return r.Err()
	}
	return nil
}
