package rangeio_test

import (
	"testing"

	"github.com/bjaus/rangeio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverwriteInput(t *testing.T) {
	t.Parallel()

	t.Run("exact fit", func(t *testing.T) {
		t.Parallel()
		r := newReader("12.3 .34 1e5 -.1")
		s := make([]float64, 4)

		assert.True(t, r.Scan(rangeio.Overwrite(&s)))
		assert.True(t, r.EOF())
		assert.False(t, r.Fail())
		assert.False(t, r.Bad())
		assert.Equal(t, []float64{12.3, .34, 1e5, -.1}, s)
	})

	t.Run("short input", func(t *testing.T) {
		t.Parallel()
		r := newReader("42 69 57 x")
		s := make([]int, 4)

		assert.False(t, r.Scan(rangeio.Overwrite(&s)))
		assert.False(t, r.EOF())
		assert.True(t, r.Fail())
		assert.False(t, r.Bad())
		assert.Equal(t, []int{42, 69, 57, 0}, s)
		requireNext(t, r, 'x')
	})

	t.Run("leaves surplus unread", func(t *testing.T) {
		t.Parallel()
		r := newReader("1.1 2.2 3.3 4.4 5.5 6.6")
		s := make([]float64, 5)

		require.True(t, r.Scan(rangeio.Overwrite(&s)))
		assert.Equal(t, []float64{1.1, 2.2, 3.3, 4.4, 5.5}, s)

		var d float64
		require.True(t, r.Scan(&d))
		assert.Equal(t, 6.6, d)
	})
}

func TestOverwriteErrorChecking(t *testing.T) {
	t.Parallel()

	t.Run("conversion error", func(t *testing.T) {
		t.Parallel()
		r := newReader("16 32 64 x")
		s := make([]int, 5)

		op := rangeio.Overwrite(&s)
		assert.Equal(t, 0, op.Count())
		assert.Equal(t, 0, op.Next())

		assert.False(t, r.Scan(op))
		assert.False(t, r.EOF())
		assert.True(t, r.Fail())
		assert.ErrorIs(t, r.Err(), rangeio.ErrSyntax)

		assert.Equal(t, 3, op.Count())
		assert.Equal(t, 3, op.Stored())
		assert.Equal(t, 3, op.Next())
		assert.Equal(t, []int{16, 32, 64, 0, 0}, s)
		requireNext(t, r, 'x')
	})

	t.Run("stops at end of slice", func(t *testing.T) {
		t.Parallel()
		r := newReader("16 32 64 x")
		s := make([]int, 2)

		op := rangeio.Overwrite(&s)
		assert.True(t, r.Scan(op))
		assert.True(t, r.Good())

		assert.Equal(t, 2, op.Count())
		assert.Equal(t, len(s), op.Next())
		assert.Equal(t, []int{16, 32}, s)

		var n int
		require.True(t, r.Scan(&n))
		assert.Equal(t, 64, n)
	})
}

func TestOverwriteEmpty(t *testing.T) {
	t.Parallel()
	r := newReader("1 2 3")
	r.SetWidth(4)
	var s []int

	op := rangeio.Overwrite(&s)
	assert.True(t, r.Scan(op))
	assert.True(t, r.Good())
	assert.Equal(t, 0, op.Count())
	assert.Equal(t, 0, r.Width())
	assert.Empty(t, s)

	var n int
	require.True(t, r.Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOverwriteFormatting(t *testing.T) {
	t.Parallel()

	t.Run("width applies to every element", func(t *testing.T) {
		t.Parallel()
		r := newReader("abcdefg")
		r.SetWidth(2)
		s := []string{"xx", "yy", "zz"}

		assert.True(t, r.Scan(rangeio.Overwrite(&s)))
		assert.Equal(t, []string{"ab", "cd", "ef"}, s)
		assert.Equal(t, 0, r.Width())
		requireNext(t, r, 'g')
	})

	t.Run("short last token", func(t *testing.T) {
		t.Parallel()
		r := newReader("abcdefg")
		r.SetWidth(2)
		s := make([]string, 4)

		assert.True(t, r.Scan(rangeio.Overwrite(&s)))
		assert.True(t, r.EOF())
		assert.False(t, r.Fail())
		assert.Equal(t, []string{"ab", "cd", "ef", "g"}, s)
	})

	t.Run("base applies to every element", func(t *testing.T) {
		t.Parallel()
		r := newReader("10 0x10 010")
		r.Setf(rangeio.Hex, rangeio.BaseField)
		s := make([]int, 3)

		assert.True(t, r.Scan(rangeio.Overwrite(&s)))
		assert.Equal(t, []int{0x10, 0x10, 0x10}, s)
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	r := newReader("1.1 2.2 3.3 4.4 5.5 6")

	op := rangeio.Discard[float64](5)
	require.True(t, r.Scan(op))
	assert.Equal(t, 5, op.Count())

	var d float64
	require.True(t, r.Scan(&d))
	assert.Equal(t, 6.0, d)
}

func TestDiscardFailsOnShortInput(t *testing.T) {
	t.Parallel()
	r := newReader("1 2")
	op := rangeio.Discard[int](3)
	assert.False(t, r.Scan(op))
	assert.True(t, r.EOF())
	assert.Equal(t, 2, op.Count())
}

func TestOverwriteCursorGuard(t *testing.T) {
	t.Parallel()
	r := newReader("7 8")
	s := make([]int, 2)
	p := &rangeio.OverwritePolicy[int]{}

	step := p.ReadOne(r, &s, 2)
	assert.Equal(t, rangeio.Step{Next: 2}, step)
	step = p.ReadOne(r, &s, -1)
	assert.Equal(t, rangeio.Step{Next: -1}, step)
	assert.True(t, r.Good())
	assert.Equal(t, []int{0, 0}, s)
}
