package iteratorcontracts

import (
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/lazyiter/port/iterators"
)

// Iterator is a contract that every iterators.Iterator implementation can use in its tests.
// MakeSubject must return a finite iterator with at least one element,
// and for a given test it must return the same sequence every time it is called.
type Iterator[V any] struct {
	MakeSubject func(tb testing.TB) iterators.Iterator[V]
	// Cloneable defines whether the subject is expected to support Clone.
	// When false, Clone must fail with iterators.ErrCloneUnsupported.
	Cloneable bool
}

func (c Iterator[V]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like an iterator", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) iterators.Iterator[V] {
			return c.MakeSubject(t)
		})

		s.Then("values can be collected from the iterator", func(t *testcase.T) {
			vs, err := iterators.Collect[V](subject.Get(t))
			t.Must.NoError(err)
			t.Must.NotEmpty(vs)
		})

		s.Then("iterating an iterator returns the iterator itself", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.True(sub.Iterate() == sub)
		})

		s.When("iterator is exhausted", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				_, err := iterators.Collect(subject.Get(t))
				t.Must.NoError(err)
			})

			s.Then("no more value is iterated, no matter how many times Next is called", func(t *testcase.T) {
				sub := subject.Get(t)
				for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
					_, ok := sub.Next()
					t.Must.False(ok)
					t.Must.NoError(sub.Err())
				}
			})
		})

		if c.Cloneable {
			c.specClone(s, subject)
		} else {
			s.Then("clone is reported as unsupported", func(t *testcase.T) {
				_, err := subject.Get(t).Clone()
				t.Must.ErrorIs(iterators.ErrCloneUnsupported, err)
			})
		}
	})
}

func (c Iterator[V]) specClone(s *testcase.Spec, subject testcase.Var[iterators.Iterator[V]]) {
	s.Context("clone", func(s *testcase.Spec) {
		expected := testcase.Let(s, func(t *testcase.T) []V {
			vs, err := iterators.Collect(c.MakeSubject(t))
			t.Must.NoError(err)
			return vs
		})
		// skip is the number of elements consumed before cloning.
		skip := testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntN(len(expected.Get(t)) + 1)
		})
		clone := testcase.Let(s, func(t *testcase.T) iterators.Iterator[V] {
			sub := subject.Get(t)
			for i := 0; i < skip.Get(t); i++ {
				_, ok := sub.Next()
				t.Must.True(ok)
			}
			cloned, err := sub.Clone()
			t.Must.NoError(err)
			t.Must.NotNil(cloned)
			return cloned
		})

		s.Then("clone yields the remaining values", func(t *testcase.T) {
			vs, err := iterators.Collect(clone.Get(t))
			t.Must.NoError(err)
			t.Must.Equal(expected.Get(t)[skip.Get(t):], vs)
		})

		s.Then("draining the original doesn't affect the clone", func(t *testcase.T) {
			cloned := clone.Get(t)
			orig, err := iterators.Collect(subject.Get(t))
			t.Must.NoError(err)
			t.Must.Equal(expected.Get(t)[skip.Get(t):], orig)

			vs, err := iterators.Collect(cloned)
			t.Must.NoError(err)
			t.Must.Equal(expected.Get(t)[skip.Get(t):], vs)
		})

		s.Then("draining the clone doesn't affect the original", func(t *testcase.T) {
			vs, err := iterators.Collect(clone.Get(t))
			t.Must.NoError(err)
			t.Must.Equal(expected.Get(t)[skip.Get(t):], vs)

			orig, err := iterators.Collect(subject.Get(t))
			t.Must.NoError(err)
			t.Must.Equal(expected.Get(t)[skip.Get(t):], orig)
		})
	})
}

func (c Iterator[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Iterator[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
