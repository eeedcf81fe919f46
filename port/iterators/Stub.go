package iterators

// Stub wraps an Iterator, and allows the replacement of its methods one by one.
// It is meant to be used in tests, where a given behaviour needs to be simulated.
func Stub[T any](i Iterator[T]) *StubIter[T] {
	return &StubIter[T]{
		Iterator:  i,
		StubNext:  i.Next,
		StubErr:   i.Err,
		StubClone: i.Clone,
	}
}

type StubIter[T any] struct {
	Iterator  Iterator[T]
	StubNext  func() (T, bool)
	StubErr   func() error
	StubClone func() (Iterator[T], error)
}

// wrapper

func (m *StubIter[T]) Iterate() Iterator[T] {
	return m
}

func (m *StubIter[T]) Next() (T, bool) {
	return m.StubNext()
}

func (m *StubIter[T]) Err() error {
	return m.StubErr()
}

func (m *StubIter[T]) Clone() (Iterator[T], error) {
	return m.StubClone()
}

// Resetting stubs

func (m *StubIter[T]) ResetNext() {
	m.StubNext = m.Iterator.Next
}

func (m *StubIter[T]) ResetErr() {
	m.StubErr = m.Iterator.Err
}

func (m *StubIter[T]) ResetClone() {
	m.StubClone = m.Iterator.Clone
}
