package iterators

import "go.uber.org/zap"

// WithLogger decorates an Iterator, and reports every pulled value, the exhaustion and iteration failures
// to the logger on debug level.
// It is meant for tracing lazy pipelines, where it is otherwise hard to tell when a value is actually produced.
func WithLogger[T any](iter Iterator[T], l *zap.Logger) *LoggerIter[T] {
	if l == nil {
		l = zap.NewNop()
	}
	return &LoggerIter[T]{iter: iter, logger: l}
}

type LoggerIter[T any] struct {
	iter   Iterator[T]
	logger *zap.Logger
	index  int
	done   bool
}

func (i *LoggerIter[T]) Iterate() Iterator[T] {
	return i
}

func (i *LoggerIter[T]) Next() (T, bool) {
	v, ok := i.iter.Next()
	if ok {
		i.logger.Debug("iterator value", zap.Int("index", i.index), zap.Any("value", v))
		i.index++
		return v, true
	}
	if !i.done {
		i.done = true
		if err := i.iter.Err(); err != nil {
			i.logger.Debug("iterator failed", zap.Int("count", i.index), zap.Error(err))
		} else {
			i.logger.Debug("iterator exhausted", zap.Int("count", i.index))
		}
	}
	return v, false
}

func (i *LoggerIter[T]) Err() error {
	return i.iter.Err()
}

func (i *LoggerIter[T]) Clone() (Iterator[T], error) {
	c, err := i.iter.Clone()
	if err != nil {
		return nil, err
	}
	i.logger.Debug("iterator cloned", zap.Int("index", i.index))
	return &LoggerIter[T]{iter: c, logger: i.logger, index: i.index, done: i.done}, nil
}
