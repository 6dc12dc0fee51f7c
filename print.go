package rangeio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Print performs a formatted write of each value in turn and reports whether
// the stream has not failed. It stops at the first failure.
//
// [Inserter] values (including range output operations) render themselves.
// Built-in numbers, strings, bools, []byte and [Char] follow the stream's
// flags, precision, width and fill. Other values use fmt.Stringer, error, or
// fmt's default formatting, then the same padding.
func (w *Writer) Print(v ...any) bool {
	for _, x := range v {
		if ins, ok := x.(Inserter); ok {
			ins.InsertInto(w)
		} else {
			w.insert(x)
		}
		if w.Fail() {
			break
		}
	}
	return !w.Fail()
}

func (w *Writer) insert(v any) {
	if !w.Good() {
		w.setState(StateFail, w.Err())
		return
	}
	f := w.Formatting()
	s, prefix := render(v, f)
	w.SetWidth(0)
	_, _ = w.WriteString(pad(s, prefix, f))
}

// render formats v under f. prefix is the byte length of the sign or base
// prefix that internal adjustment pads after.
func render(v any, f Format) (s string, prefix int) {
	switch x := v.(type) {
	case int:
		return formatSigned(int64(x), strconv.IntSize, f)
	case int8:
		return formatSigned(int64(x), 8, f)
	case int16:
		return formatSigned(int64(x), 16, f)
	case int32:
		return formatSigned(int64(x), 32, f)
	case int64:
		return formatSigned(x, 64, f)
	case uint:
		return formatUnsigned(uint64(x), f)
	case uint8:
		return formatUnsigned(uint64(x), f)
	case uint16:
		return formatUnsigned(uint64(x), f)
	case uint32:
		return formatUnsigned(uint64(x), f)
	case uint64:
		return formatUnsigned(x, f)
	case uintptr:
		return formatUnsigned(uint64(x), f)
	case float32:
		return formatFloat(float64(x), 32, f)
	case float64:
		return formatFloat(x, 64, f)
	case string:
		return x, 0
	case Char:
		return string(rune(x)), 0
	case bool:
		return formatBool(x, f), 0
	case []byte:
		return string(x), 0
	case fmt.Stringer:
		return x.String(), 0
	case error:
		return x.Error(), 0
	default:
		return fmt.Sprint(x), 0
	}
}

func formatSigned(v int64, bits int, f Format) (string, int) {
	if base := baseOf(f.Flags); base == 8 || base == 16 {
		u := uint64(v)
		if bits < 64 {
			u &= 1<<bits - 1
		}
		return formatUnsigned(u, f)
	}
	s := strconv.FormatInt(v, 10)
	if v >= 0 && f.Flags&ShowPos != 0 {
		s = "+" + s
	}
	if s[0] == '+' || s[0] == '-' {
		return s, 1
	}
	return s, 0
}

func formatUnsigned(u uint64, f Format) (string, int) {
	base := baseOf(f.Flags)
	if base == 0 {
		base = 10
	}
	s := strconv.FormatUint(u, base)
	prefix := 0
	if f.Flags&ShowBase != 0 && u != 0 {
		switch base {
		case 16:
			s = "0x" + s
			prefix = 2
		case 8:
			s = "0" + s
		}
	}
	if f.Flags&Uppercase != 0 {
		s = strings.ToUpper(s)
	}
	return s, prefix
}

func formatFloat(v float64, bits int, f Format) (string, int) {
	var s string
	switch {
	case math.IsNaN(v):
		s = "nan"
	case math.IsInf(v, 1):
		s = "inf"
	case math.IsInf(v, -1):
		s = "-inf"
	}
	if s != "" {
		if f.Flags&ShowPos != 0 && s[0] != '-' {
			s = "+" + s
		}
		if f.Flags&Uppercase != 0 {
			s = strings.ToUpper(s)
		}
		return s, signPrefix(s)
	}

	var layout strings.Builder
	layout.WriteByte('%')
	if f.Flags&ShowPos != 0 {
		layout.WriteByte('+')
	}
	if f.Flags&ShowPoint != 0 {
		layout.WriteByte('#')
	}
	verb := byte('g')
	switch f.Flags & FloatField {
	case Fixed:
		verb = 'f'
	case Scientific:
		verb = 'e'
	case FloatField:
		verb = 'x'
	}
	if f.Flags&Uppercase != 0 {
		verb -= 'a' - 'A'
	}
	prec := f.Precision
	if prec < 0 {
		prec = 6
	}
	if verb == 'x' || verb == 'X' {
		layout.WriteByte(verb)
		s = trimExponent(sprintFloat(layout.String(), v, bits))
	} else {
		layout.WriteString(".")
		layout.WriteString(strconv.Itoa(prec))
		layout.WriteByte(verb)
		s = sprintFloat(layout.String(), v, bits)
	}
	return s, signPrefix(s)
}

func sprintFloat(layout string, v float64, bits int) string {
	if bits == 32 {
		return fmt.Sprintf(layout, float32(v))
	}
	return fmt.Sprintf(layout, v)
}

// trimExponent drops the leading zeros fmt puts in a hexfloat exponent:
// 0x1.8p+00 becomes 0x1.8p+0.
func trimExponent(s string) string {
	i := strings.LastIndexAny(s, "pP")
	if i < 0 || i+2 >= len(s) {
		return s
	}
	j := i + 2
	for j < len(s)-1 && s[j] == '0' {
		j++
	}
	return s[:i+2] + s[j:]
}

func signPrefix(s string) int {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func formatBool(b bool, f Format) string {
	switch {
	case f.Flags&BoolAlpha != 0:
		return strconv.FormatBool(b)
	case b:
		return "1"
	default:
		return "0"
	}
}

// cells measures display width under a fixed condition so padding does not
// follow the process locale. Control characters take one column, matching
// the reader, which counts runes.
var cells = &runewidth.Condition{EastAsianWidth: false}

func displayWidth(s string) int {
	n := cells.StringWidth(s)
	for _, r := range s {
		if unicode.IsControl(r) {
			n++
		}
	}
	return n
}

// pad widens s to the field width with the fill character. Left adjustment
// pads after, internal pads after the first prefix bytes, anything else pads
// before. A wide fill is repeated only as often as fits in the field.
func pad(s string, prefix int, f Format) string {
	n := f.Width - displayWidth(s)
	if n <= 0 {
		return s
	}
	fill := strings.Repeat(string(f.Fill), n/max(displayWidth(string(f.Fill)), 1))
	switch f.Flags & AdjustField {
	case Left:
		return s + fill
	case Internal:
		return s[:prefix] + fill + s[prefix:]
	default:
		return fill + s
	}
}
