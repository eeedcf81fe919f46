package iterators

// Slice returns an Iterator over the values of a slice.
// The slice is not copied, it must not be modified while it is iterated.
func Slice[T any](slice []T) *SliceIter[T] {
	return &SliceIter[T]{Slice: slice}
}

type SliceIter[T any] struct {
	Slice []T

	index int
}

func (i *SliceIter[T]) Iterate() Iterator[T] {
	return i
}

func (i *SliceIter[T]) Next() (T, bool) {
	if len(i.Slice) <= i.index {
		var zero T
		return zero, false
	}
	v := i.Slice[i.index]
	i.index++
	return v, true
}

func (i *SliceIter[T]) Err() error {
	return nil
}

// Clone shares the backing slice with the original, only the read cursor is copied.
func (i *SliceIter[T]) Clone() (Iterator[T], error) {
	return &SliceIter[T]{Slice: i.Slice, index: i.index}, nil
}

// List is a stateless Iterable over a fixed list of values.
// Every Iterate call starts a new traversal from the first element.
type List[T any] []T

func (l List[T]) Iterate() Iterator[T] {
	return Slice[T](l)
}

// IterableFunc allows a plain function to be used as an Iterable.
type IterableFunc[T any] func() Iterator[T]

func (fn IterableFunc[T]) Iterate() Iterator[T] {
	return fn()
}
