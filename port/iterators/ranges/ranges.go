// Package ranges provide generated, cloneable sources for the iterators protocol.
package ranges

import "go.llib.dev/lazyiter/port/iterators"

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Int returns an iterator over the inclusive numeric range from begin to end.
// If end is smaller than begin, the range is empty.
func Int(begin, end int) *Range[int] {
	return &Range[int]{next: begin, end: end, bounded: true}
}

// Char returns an iterator over the inclusive character range from begin to end.
func Char(begin, end rune) *Range[rune] {
	return &Range[rune]{next: begin, end: end, bounded: true}
}

// Naturals returns an infinite iterator of the natural numbers starting from zero.
// Use it with iterators.Head, or any other consumer that stops on its own.
func Naturals() *Range[int] {
	return &Range[int]{}
}

type Range[N integer] struct {
	next    N
	end     N
	bounded bool
	done    bool
}

func (r *Range[N]) Iterate() iterators.Iterator[N] {
	return r
}

func (r *Range[N]) Next() (N, bool) {
	if r.done || (r.bounded && r.end < r.next) {
		r.done = true
		return 0, false
	}
	v := r.next
	if r.bounded && v == r.end {
		r.done = true
	} else {
		r.next++
	}
	return v, true
}

func (r *Range[N]) Err() error {
	return nil
}

func (r *Range[N]) Clone() (iterators.Iterator[N], error) {
	c := *r
	return &c, nil
}
