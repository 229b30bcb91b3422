/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"iter"
	"slices"

	"github.com/go-logr/logr"

	"github.com/ARM-software/safequeue/commonerrors"
	"github.com/ARM-software/safequeue/logs/logrimp"
)

var _ IBoundedQueue[int] = (*BoundedQueue[int])(nil)

// BoundedQueue is a FIFO queue holding at most a fixed number of elements.
// The capacity is set at creation and never changes.
//
// BoundedQueue is not thread safe. Use NewThreadSafeBoundedQueue when it is shared between goroutines.
type BoundedQueue[T comparable] struct {
	elements []T
	capacity int
	logger   logr.Logger
}

// NewBoundedQueue creates a queue. Option functions are applied in order to DefaultOptions.
// If any option function is provided, the resulting options are validated and an error matching ErrInvalidConfiguration is returned when they are not valid.
// Otherwise, the defaults are used as they are.
func NewBoundedQueue[T comparable](optFns ...func(*Options[T])) (*BoundedQueue[T], error) {
	opts := DefaultOptions[T]()
	if len(optFns) == 0 {
		return newBoundedQueue(opts), nil
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(opts)
		}
	}
	if err := opts.Validate(); err != nil {
		return nil, commonerrors.WrapError(ErrInvalidConfiguration, err, "")
	}
	return newBoundedQueue(opts), nil
}

func newBoundedQueue[T comparable](opts *Options[T]) *BoundedQueue[T] {
	logger := opts.Logger
	if logger.GetSink() == nil {
		logger = logrimp.NewNoopLogger()
	}
	q := &BoundedQueue[T]{
		elements: make([]T, 0, initialAllocation(len(opts.InitialValues), opts.Capacity)),
		capacity: opts.Capacity,
		logger:   logger,
	}
	q.elements = append(q.elements, opts.InitialValues...)
	if len(q.elements) > q.capacity {
		q.logger.V(1).Info("initial values exceed the queue capacity", "capacity", q.capacity, "length", len(q.elements))
	}
	return q
}

// initialAllocation avoids reserving memory for the unbounded default capacity.
func initialAllocation(length, capacity int) int {
	const maxPreallocation = 64
	return max(length, min(capacity, maxPreallocation))
}

// Peek returns the front element without removing it.
func (q *BoundedQueue[T]) Peek() (element T, ok bool) {
	if len(q.elements) == 0 {
		return
	}
	element = q.elements[0]
	ok = true
	return
}

// Enqueue adds an element at the back of the queue.
func (q *BoundedQueue[T]) Enqueue(value T) error {
	if len(q.elements) == q.capacity {
		q.logger.V(1).Info("enqueue rejected", "capacity", q.capacity)
		return ErrCapacityExceeded
	}
	q.elements = append(q.elements, value)
	return nil
}

// EnqueueSequence adds the elements of seq in order until one does not fit.
func (q *BoundedQueue[T]) EnqueueSequence(seq iter.Seq[T]) error {
	if seq == nil {
		return nil
	}
	for v := range seq {
		if err := q.Enqueue(v); err != nil {
			return err
		}
	}
	return nil
}

// Dequeue removes the front element and returns it.
func (q *BoundedQueue[T]) Dequeue() (element T, ok bool) {
	if len(q.elements) == 0 {
		return
	}
	element = q.elements[0]
	ok = true
	var zero T
	// release the reference held by the backing array
	q.elements[0] = zero
	q.elements = q.elements[1:]
	if len(q.elements) == 0 {
		q.elements = q.elements[:0:0]
	}
	return
}

// Includes states whether value is in the queue.
func (q *BoundedQueue[T]) Includes(value T) bool {
	return slices.Contains(q.elements, value)
}

// Clear removes all elements.
func (q *BoundedQueue[T]) Clear() {
	clear(q.elements)
	q.elements = q.elements[:0]
}

// ToSlice returns a copy of the elements, front first. It never returns nil.
func (q *BoundedQueue[T]) ToSlice() []T {
	values := make([]T, len(q.elements))
	copy(values, q.elements)
	return values
}

// All iterates over a snapshot of the elements, front first. The queue is not modified.
func (q *BoundedQueue[T]) All() iter.Seq[T] {
	return slices.Values(q.ToSlice())
}

// Values returns all the elements, front first, and drains the queue as they are consumed.
func (q *BoundedQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		length := q.Len()
		for i := 0; i < length; i++ {
			v, ok := q.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of elements in the queue.
func (q *BoundedQueue[T]) Len() int {
	return len(q.elements)
}

// Cap returns the maximum number of elements the queue can hold.
func (q *BoundedQueue[T]) Cap() int {
	return q.capacity
}

// IsEmpty states whether the queue holds no element.
func (q *BoundedQueue[T]) IsEmpty() bool {
	return len(q.elements) == 0
}

// IsFull states whether Enqueue would fail.
func (q *BoundedQueue[T]) IsFull() bool {
	return len(q.elements) == q.capacity
}
