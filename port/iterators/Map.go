package iterators

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// The transformation only happens when the consumer asks for the next value.
//
// Map supports Clone as long as the wrapped Iterator does.
func Map[To any, From any](iter Iterator[From], transform func(From) To) *MapIter[From, To] {
	return &MapIter[From, To]{iter: iter, transform: transform}
}

type MapIter[From, To any] struct {
	iter      Iterator[From]
	transform func(From) To
}

func (i *MapIter[From, To]) Iterate() Iterator[To] {
	return i
}

func (i *MapIter[From, To]) Next() (To, bool) {
	v, ok := i.iter.Next()
	if !ok {
		var zero To
		return zero, false
	}
	return i.transform(v), true
}

func (i *MapIter[From, To]) Err() error {
	return i.iter.Err()
}

func (i *MapIter[From, To]) Clone() (Iterator[To], error) {
	c, err := i.iter.Clone()
	if err != nil {
		return nil, err
	}
	return &MapIter[From, To]{iter: c, transform: i.transform}, nil
}
