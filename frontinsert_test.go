package rangeio_test

import (
	"testing"

	"github.com/bjaus/rangeio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendFront(t *testing.T) {
	t.Parallel()

	t.Run("values end up reversed", func(t *testing.T) {
		t.Parallel()
		r := newReader("12.3 .34 1e5 -.1")
		var s []float64

		op := rangeio.AppendFront(&s)
		assert.False(t, r.Scan(op))
		assert.True(t, r.EOF())
		assert.True(t, r.Fail())
		assert.Equal(t, []float64{-.1, 1e5, .34, 12.3}, s)
		assert.Equal(t, 4, op.Count())
		assert.Equal(t, 0, op.Next())
	})

	t.Run("prepends to existing elements", func(t *testing.T) {
		t.Parallel()
		r := newReader("2 1 0 x")
		s := []int{3, 4, 5}

		op := rangeio.AppendFront(&s)
		assert.False(t, r.Scan(op))
		assert.False(t, r.EOF())
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, s)
		assert.Equal(t, 3, op.Stored())
		requireNext(t, r, 'x')
	})
}

func TestAppendFrontN(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		limit int
		want  []int
		good  bool
		rest  int
	}{
		"stops at limit": {
			input: "1 2 3 4",
			limit: 2,
			want:  []int{2, 1, 9},
			good:  true,
			rest:  3,
		},
		"zero limit": {
			input: "1 2 3 4",
			limit: 0,
			want:  []int{9},
			good:  true,
			rest:  1,
		},
		"limit larger than input": {
			input: "1 2",
			limit: 5,
			want:  []int{2, 1, 9},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := newReader(tc.input)
			s := []int{9}

			assert.Equal(t, tc.good, r.Scan(rangeio.AppendFrontN(&s, tc.limit)))
			assert.Equal(t, tc.want, s)
			if !tc.good {
				return
			}
			var n int
			require.True(t, r.Scan(&n))
			assert.Equal(t, tc.rest, n)
		})
	}
}

func TestAppendFrontFreshValues(t *testing.T) {
	t.Parallel()
	r := newReader("abc xyz")
	var s []runes

	assert.False(t, r.Scan(rangeio.AppendFront(&s)))
	assert.Equal(t, []runes{runes("xyz"), runes("abc")}, s)
}

func TestAppendFrontWidth(t *testing.T) {
	t.Parallel()
	r := newReader("abcdef")
	r.SetWidth(3)
	var s []string

	assert.False(t, r.Scan(rangeio.AppendFront(&s)))
	assert.Equal(t, []string{"def", "abc"}, s)
	assert.Equal(t, 0, r.Width())
}
