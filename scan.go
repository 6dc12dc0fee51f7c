package rangeio

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Char is a single character for formatted I/O. Scanning a Char reads one
// rune, skipping leading whitespace when [SkipWS] is set; printing one writes
// the rune. Plain rune and byte values are integers to the stream.
type Char rune

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Scan performs a formatted read into each destination in turn and reports
// whether the stream has not failed. It stops at the first failure.
//
// Destinations are [Extractor] values (including range input operations),
// pointers to built-in integer, float, string and bool types, *[Char], or
// [encoding.TextUnmarshaler] values, which receive one whitespace-delimited
// token. Any other destination sets the bad condition.
func (r *Reader) Scan(dst ...any) bool {
	for _, d := range dst {
		if ex, ok := d.(Extractor); ok {
			ex.ExtractFrom(r)
		} else {
			r.extract(d)
		}
		if r.Fail() {
			break
		}
	}
	return !r.Fail()
}

func (r *Reader) extract(dst any) {
	if !r.Good() {
		r.setState(StateFail, r.Err())
		return
	}
	defer r.SetWidth(0)

	switch d := dst.(type) {
	case *int:
		scanSigned(r, d, strconv.IntSize)
	case *int8:
		scanSigned(r, d, 8)
	case *int16:
		scanSigned(r, d, 16)
	case *int32:
		scanSigned(r, d, 32)
	case *int64:
		scanSigned(r, d, 64)
	case *uint:
		scanUnsigned(r, d, strconv.IntSize)
	case *uint8:
		scanUnsigned(r, d, 8)
	case *uint16:
		scanUnsigned(r, d, 16)
	case *uint32:
		scanUnsigned(r, d, 32)
	case *uint64:
		scanUnsigned(r, d, 64)
	case *float32:
		scanFloat(r, d, 32)
	case *float64:
		scanFloat(r, d, 64)
	case *string:
		if tok, ok := r.word(r.Width()); ok {
			*d = tok
		}
	case *Char:
		if c, ok := r.char(); ok {
			*d = Char(c)
		}
	case *bool:
		r.scanBool(d)
	case encoding.TextUnmarshaler:
		tok, ok := r.word(r.Width())
		if !ok {
			return
		}
		if err := d.UnmarshalText([]byte(tok)); err != nil {
			r.setState(StateFail, fmt.Errorf("%w: %q: %w", ErrSyntax, tok, err))
		}
	default:
		r.setState(StateBad, fmt.Errorf("%w: %T", ErrUnsupportedType, dst))
	}
}

func scanSigned[T signed](r *Reader, dst *T, bits int) {
	neg, digits, base, ok := r.integer()
	if !ok {
		return
	}
	if neg {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, base, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			*dst = T(v)
			r.setState(StateFail, fmt.Errorf("%w: %s", ErrRange, digits))
			return
		}
		r.setState(StateFail, fmt.Errorf("%w: %s", ErrSyntax, digits))
		return
	}
	*dst = T(v)
}

func scanUnsigned[T unsigned](r *Reader, dst *T, bits int) {
	neg, digits, base, ok := r.integer()
	if !ok {
		return
	}
	v, err := strconv.ParseUint(digits, base, bits)
	switch {
	case err != nil && errors.Is(err, strconv.ErrRange):
		*dst = T(v)
		r.setState(StateFail, fmt.Errorf("%w: %s", ErrRange, digits))
	case err != nil:
		r.setState(StateFail, fmt.Errorf("%w: %s", ErrSyntax, digits))
	case neg && v != 0:
		// Rejected rather than wrapped modulo 2^bits as C's strtoul does.
		r.setState(StateFail, fmt.Errorf("%w: -%s", ErrRange, digits))
	default:
		*dst = T(v)
	}
}

func scanFloat[T ~float32 | ~float64](r *Reader, dst *T, bits int) {
	tok, ok := r.float()
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(tok, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			*dst = T(v)
			r.setState(StateFail, fmt.Errorf("%w: %s", ErrRange, tok))
			return
		}
		r.setState(StateFail, fmt.Errorf("%w: %s", ErrSyntax, tok))
		return
	}
	*dst = T(v)
}

func (r *Reader) scanBool(dst *bool) {
	if r.Flags()&BoolAlpha == 0 {
		var n int64
		scanSigned(r, &n, 64)
		if r.Fail() {
			return
		}
		switch n {
		case 0, 1:
			*dst = n == 1
		default:
			r.setState(StateFail, fmt.Errorf("%w: %d is not a bool", ErrRange, n))
		}
		return
	}
	if !r.skipSpace() {
		return
	}
	c, ok := r.next()
	if !ok {
		r.setState(StateFail, r.Err())
		return
	}
	var want string
	switch c {
	case 't':
		want = "true"
	case 'f':
		want = "false"
	default:
		_ = r.UnreadRune()
		r.setState(StateFail, fmt.Errorf("%w: %q is not a bool", ErrSyntax, c))
		return
	}
	for _, wc := range want[1:] {
		c, ok = r.next()
		if !ok {
			r.setState(StateFail, fmt.Errorf("%w: truncated %q", ErrSyntax, want))
			return
		}
		if c != wc {
			_ = r.UnreadRune()
			r.setState(StateFail, fmt.Errorf("%w: expected %q", ErrSyntax, want))
			return
		}
	}
	*dst = want == "true"
}

// next reads one rune, reporting false at end of input or on error.
func (r *Reader) next() (rune, bool) {
	c, _, err := r.ReadRune()
	return c, err == nil
}

// skipSpace consumes leading whitespace when SkipWS is set. Running out of
// input while skipping fails the stream.
func (r *Reader) skipSpace() bool {
	if r.Flags()&SkipWS == 0 {
		return true
	}
	for {
		c, ok := r.next()
		if !ok {
			r.setState(StateFail, r.Err())
			return false
		}
		if !unicode.IsSpace(c) {
			_ = r.UnreadRune()
			return true
		}
	}
}

func (r *Reader) char() (rune, bool) {
	if !r.skipSpace() {
		return 0, false
	}
	c, ok := r.next()
	if !ok {
		r.setState(StateFail, r.Err())
	}
	return c, ok
}

// word reads a run of non-space runes, at most limit of them when limit > 0.
// The terminating space is left unread.
func (r *Reader) word(limit int) (string, bool) {
	if !r.skipSpace() {
		return "", false
	}
	if limit <= 0 {
		limit = Unbounded
	}
	var sb strings.Builder
	for n := 0; n < limit; n++ {
		c, ok := r.next()
		if !ok {
			break
		}
		if unicode.IsSpace(c) {
			_ = r.UnreadRune()
			break
		}
		sb.WriteRune(c)
	}
	if sb.Len() == 0 {
		r.setState(StateFail, fmt.Errorf("%w: empty token", ErrSyntax))
		return "", false
	}
	return sb.String(), true
}

func baseOf(f Flags) int {
	switch f & BaseField {
	case Dec:
		return 10
	case Oct:
		return 8
	case Hex:
		return 16
	default:
		return 0
	}
}

func isDigit(c rune, base int) bool {
	switch {
	case c >= '0' && c <= '7':
		return true
	case c == '8' || c == '9':
		return base >= 10
	case (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F'):
		return base == 16
	default:
		return false
	}
}

// integer reads an optionally signed run of digits in the stream's base.
// In hex and auto-detect mode a 0x prefix is accepted; in auto-detect mode a
// leading 0 selects octal.
func (r *Reader) integer() (neg bool, digits string, base int, ok bool) {
	if !r.skipSpace() {
		return false, "", 0, false
	}
	base = baseOf(r.Flags())

	var sb strings.Builder
	c, more := r.next()
	if more && (c == '+' || c == '-') {
		neg = c == '-'
		c, more = r.next()
	}
	if more && c == '0' && (base == 16 || base == 0) {
		sb.WriteByte('0')
		c, more = r.next()
		switch {
		case more && (c == 'x' || c == 'X'):
			base = 16
			c, more = r.next()
		case base == 0:
			base = 8
		}
	}
	if base == 0 {
		base = 10
	}
	for more && isDigit(c, base) {
		sb.WriteRune(c)
		c, more = r.next()
	}
	if more {
		_ = r.UnreadRune()
	}
	if r.Bad() {
		return false, "", 0, false
	}
	if sb.Len() == 0 {
		if more {
			r.setState(StateFail, fmt.Errorf("%w: unexpected %q", ErrSyntax, c))
		} else {
			r.setState(StateFail, io.ErrUnexpectedEOF)
		}
		return false, "", 0, false
	}
	return neg, sb.String(), base, true
}

// float reads [sign] digits [. digits] [e [sign] digits] and returns the
// token for strconv.
func (r *Reader) float() (string, bool) {
	if !r.skipSpace() {
		return "", false
	}
	var sb strings.Builder
	c, more := r.next()
	if more && (c == '+' || c == '-') {
		sb.WriteRune(c)
		c, more = r.next()
	}
	mantissa := 0
	for more && isDigit(c, 10) {
		sb.WriteRune(c)
		mantissa++
		c, more = r.next()
	}
	if more && c == '.' {
		sb.WriteRune(c)
		c, more = r.next()
		for more && isDigit(c, 10) {
			sb.WriteRune(c)
			mantissa++
			c, more = r.next()
		}
	}
	if mantissa > 0 && more && (c == 'e' || c == 'E') {
		sb.WriteRune(c)
		c, more = r.next()
		if more && (c == '+' || c == '-') {
			sb.WriteRune(c)
			c, more = r.next()
		}
		exponent := 0
		for more && isDigit(c, 10) {
			sb.WriteRune(c)
			exponent++
			c, more = r.next()
		}
		if exponent == 0 {
			mantissa = 0
		}
	}
	if more {
		_ = r.UnreadRune()
	}
	if r.Bad() {
		return "", false
	}
	if mantissa == 0 {
		r.setState(StateFail, fmt.Errorf("%w: %q is not a number", ErrSyntax, sb.String()))
		return "", false
	}
	return sb.String(), true
}
