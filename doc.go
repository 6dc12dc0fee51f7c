// Package rangeio reads and writes whole sequences of values over text
// streams.
//
// A [Reader] or [Writer] carries formatting state (flags, field width,
// precision, fill) and a condition (good, eof, fail, bad), and parses or
// renders one value at a time. The range operations chain those single-value
// operations across a slice:
//
//	r := rangeio.NewReader(strings.NewReader("3 4 5 x"))
//	nums := []int{0, 1, 2}
//	op := rangeio.AppendBack(&nums)
//	r.Scan(op)          // false: "x" is not an int
//	op.Count()          // 3
//	nums                // [0 1 2 3 4 5]
//
//	w := rangeio.NewWriter(os.Stdout)
//	w.Print(rangeio.WriteAll(nums, rangeio.Delim(", ")))
//
// # Fill Policies
//
// A range read is driven by a fill policy that decides where parsed values
// go and when to stop:
//
//   - [Overwrite]: replace existing elements in place; stops at the end.
//   - [AppendBack], [AppendBackN]: append in reading order.
//   - [AppendFront], [AppendFrontN]: prepend; values end up reversed.
//   - [InsertAt], [InsertAtN]: insert at a moving position, keeping order.
//   - [Discard]: parse n values and throw them away.
//
// The N variants stop after n values without consuming the next token. The
// others read until the stream fails, so the stream is normally left in the
// fail state (and eof too, if input ran out). Call [Reader.Clear] to keep
// reading. The slice keeps every value stored before the failure.
//
// # Counts
//
// [RangeReader.Count] is the number of values parsed and
// [RangeReader.Stored] the number placed into the slice, both for the most
// recent read only. [RangeReader.Next] is the cursor the policy ended on.
// An operation can be reused; each use starts from zero.
//
// # Formatting
//
// Each element of a range read or write starts from the formatting
// configuration the stream had when the operation began, so a field width
// applies to every element instead of only the first:
//
//	r := rangeio.NewReader(strings.NewReader("abcdefg"))
//	r.SetWidth(2)
//	var parts []string
//	r.Scan(rangeio.AppendBack(&parts)) // ["ab" "cd" "ef" "g"]
//
// Formatting profiles can be kept in YAML and loaded with [LoadFormat]:
//
//	flags: [hex, left, uppercase, showbase]
//	width: 8
//	fill: "."
//
// # Output
//
// [WriteAll] owns the slice it is given; [WriteAllRef] borrows one and
// re-reads it on every use. [WriteSeq] and [WriteChan] accept iterators and
// channels. [Delim] and [DelimRef] add a delimiter, written between
// elements only, with the formatting the preceding element left behind.
//
// # Errors
//
// Stream conditions are never returned as Go errors by range operations.
// Inspect [Reader.State] or [Writer.State], and [Reader.Err] for the cause:
//
//   - [ErrSyntax]: input could not be converted
//   - [ErrRange]: a value overflowed its type
//   - [ErrUnsupportedType]: no formatted read exists for the destination
//   - [ErrNotGood]: an operation was attempted on a stream that was not good
//
// [ParseFlags] and [LoadFormat] return [ErrInvalidFlag] and
// [ErrInvalidFormat].
package rangeio
