/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"iter"

	"github.com/sasha-s/go-deadlock"
)

// NewThreadSafeBoundedQueue returns a queue which is safe for concurrent use.
// Option functions are handled as in NewBoundedQueue.
// This is inspired from https://github.com/hayageek/threadsafe.
func NewThreadSafeBoundedQueue[T comparable](optFns ...func(*Options[T])) (IBoundedQueue[T], error) {
	q, err := NewBoundedQueue[T](optFns...)
	if err != nil {
		return nil, err
	}
	return WrapThreadSafe[T](q), nil
}

// WrapThreadSafe guards every operation of q with a lock. q must not be used directly afterwards.
func WrapThreadSafe[T comparable](q IBoundedQueue[T]) IBoundedQueue[T] {
	if s, ok := q.(*SafeBoundedQueue[T]); ok {
		return s
	}
	return &SafeBoundedQueue[T]{
		q:  q,
		mu: deadlock.RWMutex{},
	}
}

var _ IBoundedQueue[int] = (*SafeBoundedQueue[int])(nil)

// SafeBoundedQueue guards an IBoundedQueue with a read/write lock.
type SafeBoundedQueue[T comparable] struct {
	q  IBoundedQueue[T]
	mu deadlock.RWMutex
}

func (q *SafeBoundedQueue[T]) Enqueue(value T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Enqueue(value)
}

// EnqueueSequence holds the lock while seq is consumed so that the elements are contiguous in the queue.
func (q *SafeBoundedQueue[T]) EnqueueSequence(seq iter.Seq[T]) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.EnqueueSequence(seq)
}

func (q *SafeBoundedQueue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Dequeue()
}

func (q *SafeBoundedQueue[T]) Peek() (T, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.q.Peek()
}

func (q *SafeBoundedQueue[T]) Includes(value T) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.q.Includes(value)
}

func (q *SafeBoundedQueue[T]) ToSlice() []T {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.q.ToSlice()
}

func (q *SafeBoundedQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range q.ToSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Values drains the queue one element at a time; elements enqueued concurrently may also be returned.
func (q *SafeBoundedQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (q *SafeBoundedQueue[T]) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.q.Len()
}

func (q *SafeBoundedQueue[T]) Cap() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.q.Cap()
}

func (q *SafeBoundedQueue[T]) IsEmpty() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.q.IsEmpty()
}

func (q *SafeBoundedQueue[T]) IsFull() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.q.IsFull()
}

func (q *SafeBoundedQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.q.Clear()
}
