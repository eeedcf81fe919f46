// Package iterators provide a lazy, pull based iterator protocol and its implementations.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// An Iterator represents an iterable list of element,
// which length is not known until it is fully iterated, thus can range from zero to infinity.
// Values are only produced when the consumer asks for them with Next.
//
// What makes the protocol different from iter.Seq is Clone.
// A cloned iterator resumes from the exact position where its original was at the time of cloning,
// and from that point on the two iterators are independent from each other.
// This allows a consumer to take a snapshot of a traversal, and re-traverse the rest of it later.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterators

import (
	"iter"

	"go.llib.dev/lazyiter/pkg/errorkit"
)

const (
	// ErrCloneUnsupported is returned by Clone when the iterator, or something it is composed from,
	// can't produce an independent copy of itself.
	ErrCloneUnsupported errorkit.Error = "iterator does not support cloning"
	// ErrNilSource is returned when a nil Iterable is passed to a combinator.
	ErrNilSource errorkit.Error = "nil iterable source"
)

// Iterable is anything that can produce an Iterator.
// A stateless Iterable should return a fresh, independent Iterator on each Iterate call.
type Iterable[T any] interface {
	Iterate() Iterator[T]
}

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[T any] interface {
	// Iterable is implemented by returning the Iterator itself,
	// thus an Iterator can be used wherever an Iterable is expected.
	Iterable[T]
	// Next returns the next value of the sequence.
	// When the sequence has ended, Next returns false, and keeps returning false on all further calls.
	Next() (T, bool)
	// Err return the error cause, in case Next stopped because of a failure.
	// Exhaustion is not a failure, after a normal end of the sequence Err returns nil.
	Err() error
	// Clone returns an independent Iterator that yields the same remaining sequence as this Iterator would.
	// Advancing the clone must not affect the original and vice versa.
	// Iterators that can't do this must return an error that wraps ErrCloneUnsupported.
	Clone() (Iterator[T], error)
}

// Collect drains the iterator into a slice.
func Collect[T any](i Iterator[T]) ([]T, error) {
	vs := make([]T, 0)
	for {
		v, ok := i.Next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs, i.Err()
}

// Seq converts an Iterator into an iter.Seq, so it can be used with the range keyword.
// Iteration failures are still reported through the Iterator's Err method.
func Seq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := i.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
