package iterators

// Head takes the first n element, similarly how the coreutils "head" app works.
// It is a convenient way to work with infinite sources.
func Head[T any](iter Iterator[T], n int) *HeadIter[T] {
	return &HeadIter[T]{iter: iter, limit: n}
}

type HeadIter[T any] struct {
	iter  Iterator[T]
	limit int
	index int
}

func (i *HeadIter[T]) Iterate() Iterator[T] {
	return i
}

func (i *HeadIter[T]) Next() (T, bool) {
	if i.limit <= i.index {
		var zero T
		return zero, false
	}
	v, ok := i.iter.Next()
	if !ok {
		i.index = i.limit
		return v, false
	}
	i.index++
	return v, true
}

func (i *HeadIter[T]) Err() error {
	return i.iter.Err()
}

func (i *HeadIter[T]) Clone() (Iterator[T], error) {
	c, err := i.iter.Clone()
	if err != nil {
		return nil, err
	}
	return &HeadIter[T]{iter: c, limit: i.limit, index: i.index}, nil
}
