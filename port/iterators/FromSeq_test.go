package iterators_test

import (
	"slices"
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/lazyiter/port/iterators"
	"go.llib.dev/lazyiter/port/iterators/iteratorcontracts"
)

func TestFromSeq(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		iter := iterators.FromSeq(slices.Values([]int{1, 2, 3}))
		vs, err := iterators.Collect[int](iter)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, vs)

		_, ok := iter.Next()
		assert.False(t, ok)
	})
	t.Run("lazy", func(t *testing.T) {
		var produced int
		iter := iterators.FromSeq[int](func(yield func(int) bool) {
			for i := 0; ; i++ {
				produced++
				if !yield(i) {
					return
				}
			}
		})
		assert.Equal(t, 0, produced)

		vs, err := iterators.Collect[int](iterators.Head[int](iter, 3))
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, vs)
		assert.Equal(t, 3, produced)
		assert.NoError(t, iter.Close())
		assert.NoError(t, iter.Close())

		_, ok := iter.Next()
		assert.False(t, ok)
	})
}

func TestFromSeq_implementsIterator(t *testing.T) {
	iteratorcontracts.Iterator[string]{
		MakeSubject: func(tb testing.TB) iterators.Iterator[string] {
			iter := iterators.FromSeq(slices.Values([]string{"foo", "bar", "baz"}))
			tb.Cleanup(func() { _ = iter.Close() })
			return iter
		},
		Cloneable: false,
	}.Test(t)
}
