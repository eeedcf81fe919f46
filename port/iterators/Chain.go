package iterators

import (
	"io"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go.llib.dev/lazyiter/port/option"
)

// Chain concatenates the given sources into a single Iterator.
// The returned Iterator yields every element of the first source, then every element of the second, and so on.
//
// Each source's Iterate method is called once, up front, in the order of the arguments,
// but no value is read from any of them until the chain's Next is called.
// A nil source is rejected with ErrNilSource.
//
// Sub-iterators holding resources, such as the ones made with FromSeq,
// are only released by the chain when they are drained or when ChainIter.Close is called.
func Chain[T any](sources ...Iterable[T]) (*ChainIter[T], error) {
	return ChainWithOptions[T](sources)
}

// ChainWithOptions is the configurable version of Chain.
func ChainWithOptions[T any](sources []Iterable[T], opts ...ChainOption) (*ChainIter[T], error) {
	conf := option.ToConfig[ChainConfig](opts)
	iters := make([]Iterator[T], 0, len(sources))
	for i, src := range sources {
		if isNil(src) {
			return nil, ErrNilSource.F("source #%d", i)
		}
		iter := src.Iterate()
		if isNil(iter) {
			return nil, ErrNilSource.F("source #%d returned a nil Iterator", i)
		}
		iters = append(iters, iter)
	}
	return &ChainIter[T]{
		source: Slice(iters),
		logger: conf.Logger,
	}, nil
}

type ChainConfig struct {
	// Logger receives debug level events about the chain's progress.
	Logger *zap.Logger
}

func (c *ChainConfig) Init() {
	c.Logger = zap.NewNop()
}

type ChainOption = option.Option[ChainConfig]

// ChainLogger makes the chain report its state transitions to the given logger.
func ChainLogger(l *zap.Logger) ChainOption {
	return option.Func[ChainConfig](func(c *ChainConfig) {
		if l != nil {
			c.Logger = l
		}
	})
}

// ChainIter is the Iterator returned by Chain.
//
// It holds an iterator of iterators as its source,
// and at most one active sub-iterator which is being drained.
// Once a ChainIter took part in a Clone, on either side,
// every sub-iterator it pulls from its source afterwards is cloned before use,
// so two chains never advance the same sub-iterator instance.
type ChainIter[T any] struct {
	source Iterator[Iterator[T]]
	active Iterator[T]
	cloned bool

	// position is the number of sub-iterators pulled from source so far.
	position int
	done     bool
	err      error
	logger   *zap.Logger
}

func (c *ChainIter[T]) Iterate() Iterator[T] {
	return c
}

func (c *ChainIter[T]) Next() (T, bool) {
	var zero T
	for {
		if c.err != nil {
			return zero, false
		}
		if c.active == nil {
			next, ok := c.source.Next()
			if !ok {
				if err := c.source.Err(); err != nil {
					c.err = err
					return zero, false
				}
				if !c.done {
					c.done = true
					c.logger.Debug("chain exhausted", zap.Int("sources", c.position))
				}
				return zero, false
			}
			if c.cloned {
				cloned, err := next.Clone()
				if err != nil {
					c.err = errors.Wrapf(err, "chain source #%d", c.position)
					c.logger.Debug("chain source clone failed",
						zap.Int("source", c.position), zap.Error(err))
					return zero, false
				}
				next = cloned
			}
			c.active = next
			c.logger.Debug("chain source activated",
				zap.Int("source", c.position), zap.Bool("cloned", c.cloned))
			c.position++
		}
		v, ok := c.active.Next()
		if ok {
			return v, true
		}
		if err := c.active.Err(); err != nil {
			c.err = errors.Wrapf(err, "chain source #%d", c.position-1)
			return zero, false
		}
		c.active = nil
	}
}

func (c *ChainIter[T]) Err() error {
	return c.err
}

// Clone returns an independent copy of the chain, resuming from the current position.
//
// Clone fails with ErrCloneUnsupported if the active sub-iterator,
// or any of the sub-iterators not reached yet, can't be cloned.
// In that case the chain is left untouched.
//
// To fail early, Clone checks every sub-iterator not reached yet,
// which costs one throwaway Clone call per remaining sub-iterator.
// Nested chains are checked without being cloned.
func (c *ChainIter[T]) Clone() (Iterator[T], error) {
	source, err := c.source.Clone()
	if err != nil {
		return nil, errors.Wrap(err, "chain sources")
	}
	if err := c.checkRemaining(source); err != nil {
		return nil, err
	}
	var active Iterator[T]
	if c.active != nil {
		active, err = c.active.Clone()
		if err != nil {
			return nil, errors.Wrapf(err, "chain source #%d", c.position-1)
		}
	}
	c.cloned = true
	c.logger.Debug("chain cloned", zap.Int("position", c.position))
	return &ChainIter[T]{
		source:   source,
		active:   active,
		cloned:   true,
		position: c.position,
		done:     c.done,
		err:      c.err,
		logger:   c.logger,
	}, nil
}

// checkRemaining verifies that the sub-iterators which are not pulled yet can be cloned later.
func (c *ChainIter[T]) checkRemaining(source Iterator[Iterator[T]]) error {
	remaining, err := source.Clone()
	if err != nil {
		return errors.Wrap(err, "chain sources")
	}
	for index := c.position; ; index++ {
		sub, ok := remaining.Next()
		if !ok {
			return nil
		}
		if err := checkClone(sub); err != nil {
			return errors.Wrapf(err, "chain source #%d", index)
		}
	}
}

// cloneCheck reports the error Clone would return, without changing the chain.
func (c *ChainIter[T]) cloneCheck() error {
	source, err := c.source.Clone()
	if err != nil {
		return errors.Wrap(err, "chain sources")
	}
	if err := c.checkRemaining(source); err != nil {
		return err
	}
	if c.active != nil {
		if err := checkClone(c.active); err != nil {
			return errors.Wrapf(err, "chain source #%d", c.position-1)
		}
	}
	return nil
}

type cloneChecker interface {
	cloneCheck() error
}

func checkClone[T any](i Iterator[T]) error {
	if cc, ok := i.(cloneChecker); ok {
		return cc.cloneCheck()
	}
	_, err := i.Clone()
	return err
}

// Close releases the sub-iterators that implement io.Closer, and leaves the chain exhausted.
//
// The active sub-iterator is always closed.
// The sub-iterators not reached yet are closed only if the chain never took part in a Clone,
// because until they are pulled, they are shared with the chain's clones.
func (c *ChainIter[T]) Close() error {
	var err error
	if c.active != nil {
		err = multierr.Append(err, closeIter(c.active))
		c.active = nil
	}
	if !c.cloned {
		for {
			sub, ok := c.source.Next()
			if !ok {
				break
			}
			err = multierr.Append(err, closeIter(sub))
		}
	}
	c.source = Empty[Iterator[T]]()
	c.done = true
	return err
}

func closeIter[T any](i Iterator[T]) error {
	if closer, ok := i.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
