package iterators

// Filter returns an Iterator that only yields the values which the filter function accepts.
// Filter supports Clone as long as the wrapped Iterator does.
func Filter[T any](iter Iterator[T], filter func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{iter: iter, filter: filter}
}

type FilterIter[T any] struct {
	iter   Iterator[T]
	filter func(T) bool
}

func (i *FilterIter[T]) Iterate() Iterator[T] {
	return i
}

func (i *FilterIter[T]) Next() (T, bool) {
	for {
		v, ok := i.iter.Next()
		if !ok {
			return v, false
		}
		if i.filter(v) {
			return v, true
		}
	}
}

func (i *FilterIter[T]) Err() error {
	return i.iter.Err()
}

func (i *FilterIter[T]) Clone() (Iterator[T], error) {
	c, err := i.iter.Clone()
	if err != nil {
		return nil, err
	}
	return &FilterIter[T]{iter: c, filter: i.filter}, nil
}
