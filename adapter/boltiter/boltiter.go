// Package boltiter exposes the content of a bolt bucket through the iterators protocol.
package boltiter

import (
	"bytes"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"

	"go.llib.dev/lazyiter/pkg/errorkit"
	"go.llib.dev/lazyiter/port/iterators"
)

const ErrBucketNotFound errorkit.Error = "bolt bucket not found"

// KV is a key value pair of a bucket.
// Both Key and Value are copies, they stay valid after the transaction is closed.
// Value is nil when the key belongs to a nested bucket.
type KV struct {
	Key   []byte
	Value []byte
}

// Bucket returns an Iterable over the key value pairs of a bucket, in key order.
// Every Iterate call opens a new cursor, so the bucket can be traversed multiple times.
// The returned Iterable and its iterators are only valid while the transaction is open.
func Bucket(tx *bolt.Tx, name []byte) (*BucketIterable, error) {
	if tx == nil {
		return nil, errors.New("boltiter: nil transaction")
	}
	bucket := tx.Bucket(name)
	if bucket == nil {
		return nil, ErrBucketNotFound.F("%q", name)
	}
	return &BucketIterable{bucket: bucket}, nil
}

type BucketIterable struct {
	bucket *bolt.Bucket
}

func (b *BucketIterable) Iterate() iterators.Iterator[KV] {
	return &CursorIter{bucket: b.bucket}
}

// Keys returns an Iterable over the keys of the bucket.
func (b *BucketIterable) Keys() iterators.Iterable[[]byte] {
	return iterators.IterableFunc[[]byte](func() iterators.Iterator[[]byte] {
		return iterators.Map[[]byte, KV](b.Iterate(), func(kv KV) []byte { return kv.Key })
	})
}

// CursorIter iterates a bucket with a bolt cursor.
// The cursor is opened lazily on the first Next call.
type CursorIter struct {
	bucket *bolt.Bucket
	cursor *bolt.Cursor
	// last is the key of the last returned pair, nil before the first one.
	last []byte
	done bool
}

func (i *CursorIter) Iterate() iterators.Iterator[KV] {
	return i
}

func (i *CursorIter) Next() (KV, bool) {
	if i.done {
		return KV{}, false
	}
	var k, v []byte
	if i.cursor == nil {
		i.cursor = i.bucket.Cursor()
		k, v = i.seek()
	} else {
		k, v = i.cursor.Next()
	}
	if k == nil {
		i.done = true
		return KV{}, false
	}
	i.last = clone(k)
	return KV{Key: clone(k), Value: clone(v)}, true
}

// seek positions a freshly opened cursor right after the last returned key.
func (i *CursorIter) seek() ([]byte, []byte) {
	if i.last == nil {
		return i.cursor.First()
	}
	k, v := i.cursor.Seek(i.last)
	if k != nil && bytes.Equal(k, i.last) {
		return i.cursor.Next()
	}
	return k, v
}

func (i *CursorIter) Err() error {
	return nil
}

// Clone returns an iterator with its own cursor, which continues after the last returned key.
func (i *CursorIter) Clone() (iterators.Iterator[KV], error) {
	return &CursorIter{
		bucket: i.bucket,
		last:   clone(i.last),
		done:   i.done,
	}, nil
}

func clone(bs []byte) []byte {
	if bs == nil {
		return nil
	}
	return append(make([]byte, 0, len(bs)), bs...)
}
