package iterators

import "iter"

// FromSeq turns an iter.Seq into an Iterator.
// The sequence is pulled with iter.Pull, so its resources are released
// either when the sequence is exhausted or when Close is called.
//
// The state of a running iter.Seq can't be copied, thus FromSeq doesn't support Clone.
func FromSeq[T any](seq iter.Seq[T]) *SeqIter[T] {
	next, stop := iter.Pull(seq)
	return &SeqIter[T]{next: next, stop: stop}
}

type SeqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (i *SeqIter[T]) Iterate() Iterator[T] {
	return i
}

func (i *SeqIter[T]) Next() (T, bool) {
	if i.done {
		var zero T
		return zero, false
	}
	v, ok := i.next()
	if !ok {
		i.Close()
		return v, false
	}
	return v, true
}

func (i *SeqIter[T]) Err() error {
	return nil
}

// Close stops the underlying sequence. Calling it multiple times is safe.
func (i *SeqIter[T]) Close() error {
	if i.done {
		return nil
	}
	i.done = true
	i.stop()
	return nil
}

func (i *SeqIter[T]) Clone() (Iterator[T], error) {
	return nil, ErrCloneUnsupported.F("iter.Seq based iterator")
}
