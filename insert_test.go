package rangeio_test

import (
	"math/big"
	"testing"

	"github.com/bjaus/rangeio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAt(t *testing.T) {
	t.Parallel()

	t.Run("keeps reading order at position", func(t *testing.T) {
		t.Parallel()
		r := newReader("1 2 3 x")
		s := []int{0, 4, 5}

		op := rangeio.InsertAt(&s, 1)
		assert.False(t, r.Scan(op))
		assert.True(t, r.Fail())
		assert.False(t, r.EOF())
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, s)
		assert.Equal(t, 3, op.Count())
		assert.Equal(t, 4, op.Next())
		requireNext(t, r, 'x')
	})

	t.Run("at end of input", func(t *testing.T) {
		t.Parallel()
		r := newReader("12.3 .34 1e5 -.1")
		s := []float64{0, 9}

		op := rangeio.InsertAt(&s, 1)
		assert.False(t, r.Scan(op))
		assert.True(t, r.EOF())
		assert.True(t, r.Fail())
		assert.Equal(t, []float64{0, 12.3, .34, 1e5, -.1, 9}, s)
		assert.Equal(t, 5, op.Next())
	})

	t.Run("into empty slice", func(t *testing.T) {
		t.Parallel()
		r := newReader("7 8")
		var s []int

		assert.False(t, r.Scan(rangeio.InsertAt(&s, 0)))
		assert.Equal(t, []int{7, 8}, s)
	})
}

func TestInsertAtN(t *testing.T) {
	t.Parallel()

	t.Run("at end", func(t *testing.T) {
		t.Parallel()
		r := newReader("3 4 5")
		s := []int{1, 2}

		op := rangeio.InsertAtN(&s, len(s), 2)
		assert.True(t, r.Scan(op))
		assert.True(t, r.Good())
		assert.Equal(t, []int{1, 2, 3, 4}, s)
		assert.Equal(t, 4, op.Next())

		var n int
		require.True(t, r.Scan(&n))
		assert.Equal(t, 5, n)
	})

	t.Run("next is just past last inserted", func(t *testing.T) {
		t.Parallel()
		r := newReader("1 2 3")
		s := []int{0, 9, 9}

		op := rangeio.InsertAtN(&s, 1, 2)
		require.True(t, r.Scan(op))
		assert.Equal(t, []int{0, 1, 2, 9, 9}, s)
		assert.Equal(t, 3, op.Next())
		assert.Equal(t, 2, op.Count())
	})

	t.Run("limit larger than input", func(t *testing.T) {
		t.Parallel()
		r := newReader("1 2 3 x")
		s := []int{0}

		op := rangeio.InsertAtN(&s, 0, 10)
		assert.False(t, r.Scan(op))
		assert.Equal(t, []int{1, 2, 3, 0}, s)
		assert.Equal(t, 3, op.Count())
		assert.Equal(t, 3, op.Next())
	})

	t.Run("reuse continues at next", func(t *testing.T) {
		t.Parallel()
		r := newReader("1 2 3 4")
		s := []int{0, 9}

		op := rangeio.InsertAtN(&s, 1, 2)
		require.True(t, r.Scan(op))
		require.True(t, r.Scan(op))
		assert.Equal(t, []int{0, 1, 2, 3, 4, 9}, s)
		assert.Equal(t, 5, op.Next())
	})
}

func TestInsertAtFreshValues(t *testing.T) {
	t.Parallel()

	t.Run("reused buffer", func(t *testing.T) {
		t.Parallel()
		r := newReader("abc xyz")
		s := []runes{runes("end")}

		assert.False(t, r.Scan(rangeio.InsertAt(&s, 0)))
		assert.Equal(t, []runes{runes("abc"), runes("xyz"), runes("end")}, s)
	})

	t.Run("big ints", func(t *testing.T) {
		t.Parallel()
		r := newReader("123456789012345678901234567890 5")
		var s []big.Int

		assert.False(t, r.Scan(rangeio.InsertAt(&s, 0)))
		require.Len(t, s, 2)
		assert.Equal(t, "123456789012345678901234567890", s[0].String())
		assert.Equal(t, "5", s[1].String())
	})
}

func TestInsertAtOutOfRange(t *testing.T) {
	t.Parallel()

	for name, pos := range map[string]int{"past end": 5, "negative": -1} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := newReader("1 2")
			s := []int{7, 8, 9}

			op := rangeio.InsertAt(&s, pos)
			assert.True(t, r.Scan(op))
			assert.True(t, r.Good())
			assert.Equal(t, []int{7, 8, 9}, s)
			assert.Equal(t, 0, op.Count())
			assert.Equal(t, pos, op.Next())
		})
	}
}
