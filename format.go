package rangeio

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Flags is the set of formatting flags carried by a stream.
type Flags uint32

const (
	SkipWS Flags = 1 << iota
	Left
	Right
	Internal
	Dec
	Oct
	Hex
	Fixed
	Scientific
	Uppercase
	ShowBase
	ShowPoint
	ShowPos
	BoolAlpha
)

// Masks for the mutually exclusive flag groups, for use with Setf.
const (
	AdjustField = Left | Right | Internal
	BaseField   = Dec | Oct | Hex
	FloatField  = Fixed | Scientific
)

type flagName struct {
	flag Flags
	name string
}

var flagNames = []flagName{
	{SkipWS, "skipws"},
	{Left, "left"},
	{Right, "right"},
	{Internal, "internal"},
	{Dec, "dec"},
	{Oct, "oct"},
	{Hex, "hex"},
	{Fixed, "fixed"},
	{Scientific, "scientific"},
	{Uppercase, "uppercase"},
	{ShowBase, "showbase"},
	{ShowPoint, "showpoint"},
	{ShowPos, "showpos"},
	{BoolAlpha, "boolalpha"},
}

// Names returns the names of the set flags in declaration order.
func (f Flags) Names() []string {
	var out []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			out = append(out, fn.name)
		}
	}
	return out
}

// String returns the set flags joined with "|", or "none".
func (f Flags) String() string {
	names := f.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseFlags parses a "|" or "," separated list of flag names.
// An empty string or "none" yields no flags.
func ParseFlags(s string) (Flags, error) {
	var out Flags
	for name := range strings.FieldsFuncSeq(s, func(r rune) bool { return r == '|' || r == ',' }) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || name == "none" {
			continue
		}
		i := slices.IndexFunc(flagNames, func(fn flagName) bool { return fn.name == name })
		if i < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFlag, name)
		}
		out |= flagNames[i].flag
	}
	return out, nil
}

// MarshalYAML renders the flags as a list of names.
func (f Flags) MarshalYAML() (any, error) {
	names := f.Names()
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// UnmarshalYAML accepts either a list of names or a single "|" separated string.
func (f *Flags) UnmarshalYAML(node *yaml.Node) error {
	var parts []string
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&parts); err != nil {
			return err
		}
	case yaml.ScalarNode:
		parts = []string{node.Value}
	default:
		return fmt.Errorf("%w: flags must be a list or a string", ErrInvalidFormat)
	}
	parsed, err := ParseFlags(strings.Join(parts, "|"))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Format is a snapshot of a stream's formatting configuration.
type Format struct {
	Flags     Flags
	Width     int
	Precision int
	Fill      rune
}

// DefaultFormat returns the configuration of a freshly constructed stream:
// skip whitespace, decimal, precision 6, space fill, no field width.
func DefaultFormat() Format {
	return Format{
		Flags:     SkipWS | Dec,
		Precision: 6,
		Fill:      ' ',
	}
}

type formatDoc struct {
	Flags     *Flags  `yaml:"flags,omitempty"`
	Width     *int    `yaml:"width,omitempty"`
	Precision *int    `yaml:"precision,omitempty"`
	Fill      *string `yaml:"fill,omitempty"`
}

// MarshalYAML renders the format with the fill character as a string.
func (f Format) MarshalYAML() (any, error) {
	fill := string(f.Fill)
	return formatDoc{
		Flags:     &f.Flags,
		Width:     &f.Width,
		Precision: &f.Precision,
		Fill:      &fill,
	}, nil
}

// UnmarshalYAML overlays the fields present in the document onto f.
func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var doc formatDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	if doc.Flags != nil {
		f.Flags = *doc.Flags
	}
	if doc.Width != nil {
		if *doc.Width < 0 {
			return fmt.Errorf("%w: negative width %d", ErrInvalidFormat, *doc.Width)
		}
		f.Width = *doc.Width
	}
	if doc.Precision != nil {
		f.Precision = *doc.Precision
	}
	if doc.Fill != nil {
		if utf8.RuneCountInString(*doc.Fill) != 1 {
			return fmt.Errorf("%w: fill must be one character, got %q", ErrInvalidFormat, *doc.Fill)
		}
		f.Fill, _ = utf8.DecodeRuneInString(*doc.Fill)
	}
	return nil
}

// LoadFormat parses a YAML format profile. Fields missing from the document
// keep their [DefaultFormat] values.
//
//	flags: [hex, left, uppercase, showbase]
//	width: 8
//	fill: "."
func LoadFormat(data []byte) (Format, error) {
	f := DefaultFormat()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return DefaultFormat(), fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return f, nil
}

type formatted interface {
	Formatting() Format
	SetFormatting(Format) Format
}

// formatGuard holds the formatting state of a stream at the start of a range
// operation so it can be put back before every element.
type formatGuard struct {
	s     formatted
	saved Format
}

func saveFormat(s formatted) formatGuard {
	return formatGuard{s: s, saved: s.Formatting()}
}

func (g formatGuard) restore() {
	g.s.SetFormatting(g.saved)
}
