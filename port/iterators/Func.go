package iterators

// Func enables you to create an iterator with a lambda expression.
// Func is very useful when the values are generated on the fly,
// or when you have to deal with an iterator type that doesn't follow this protocol.
//
// Since a function's internal state can't be copied, a Func iterator doesn't support Clone.
func Func[T any](next func() (v T, ok bool, err error)) *FuncIter[T] {
	return &FuncIter[T]{NextFn: next}
}

type FuncIter[T any] struct {
	NextFn func() (v T, ok bool, err error)

	done bool
	err  error
}

func (i *FuncIter[T]) Iterate() Iterator[T] {
	return i
}

func (i *FuncIter[T]) Next() (T, bool) {
	var zero T
	if i.done {
		return zero, false
	}
	value, ok, err := i.NextFn()
	if err != nil {
		i.err = err
		i.done = true
		return zero, false
	}
	if !ok {
		i.done = true
		return zero, false
	}
	return value, true
}

func (i *FuncIter[T]) Err() error {
	return i.err
}

func (i *FuncIter[T]) Clone() (Iterator[T], error) {
	return nil, ErrCloneUnsupported.F("function based iterator")
}
