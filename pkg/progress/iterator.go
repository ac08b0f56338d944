// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"io"
	"iter"
	"slices"
)

// Iterator wraps a sequence and advances a bar for every consumed element.
// It is also the writer to print through while ranging over All.
type Iterator[T any] struct {
	b   *bar
	w   *Interceptor
	seq iter.Seq[T]
}

// NewIterator wraps seq. total <= 0 means the length is unknown.
func NewIterator[T any](w io.Writer, seq iter.Seq[T], total int, opts ...Option) *Iterator[T] {
	return newIterator(w, seq, total, false, opts)
}

func newIterator[T any](w io.Writer, seq iter.Seq[T], total int, sized bool, opts []Option) *Iterator[T] {
	b := newBar(w, int64(total), sized, opts)
	return &Iterator[T]{b: b, w: &Interceptor{b: b}, seq: seq}
}

// FromSlice iterates items. An empty slice completes at 100%.
func FromSlice[T any](w io.Writer, items []T, opts ...Option) *Iterator[T] {
	return newIterator(w, slices.Values(items), len(items), true, opts)
}

// Count iterates 0..n-1, n <= 0 completes at once at 100%.
func Count(w io.Writer, n int, opts ...Option) *Iterator[int] {
	return newIterator(w, func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}, n, true, opts)
}

// All yields the wrapped elements. The session starts with the first call of
// the loop and ends when the loop finishes, breaks or panics. An element is
// counted once the loop body returns for it.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := it.b.scope()
		defer s.Close() // nolint
		for v := range it.seq {
			if !yield(v) {
				return
			}
			it.b.add(1)
		}
	}
}

func (it *Iterator[T]) Write(p []byte) (int, error) {
	return it.w.Write(p)
}

func (it *Iterator[T]) Writer() io.Writer {
	return it.w
}

// Progress returns the stored fraction.
func (it *Iterator[T]) Progress() float64 {
	return it.b.progress()
}
