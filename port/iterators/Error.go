package iterators

// Error returns an Iterator that only can do is returning an Err and never have next element
func Error[T any](err error) *ErrorIter[T] {
	return &ErrorIter[T]{err: err}
}

// ErrorIter iterator can be used for returning an error wrapped with iterator interface.
// This can be used when a source encounters an unexpected non recoverable error before iteration could begin.
type ErrorIter[T any] struct {
	err error
}

func (i *ErrorIter[T]) Iterate() Iterator[T] {
	return i
}

func (i *ErrorIter[T]) Next() (T, bool) {
	var v T
	return v, false
}

func (i *ErrorIter[T]) Err() error {
	return i.err
}

func (i *ErrorIter[T]) Clone() (Iterator[T], error) {
	return &ErrorIter[T]{err: i.err}, nil
}
