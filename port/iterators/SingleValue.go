package iterators

// SingleValue creates an iterator that can return one single element.
func SingleValue[T any](v T) *SingleValueIter[T] {
	return &SingleValueIter[T]{V: v}
}

type SingleValueIter[T any] struct {
	V T

	done bool
}

func (i *SingleValueIter[T]) Iterate() Iterator[T] {
	return i
}

func (i *SingleValueIter[T]) Next() (T, bool) {
	if i.done {
		var zero T
		return zero, false
	}
	i.done = true
	return i.V, true
}

func (i *SingleValueIter[T]) Err() error {
	return nil
}

func (i *SingleValueIter[T]) Clone() (Iterator[T], error) {
	return &SingleValueIter[T]{V: i.V, done: i.done}, nil
}
