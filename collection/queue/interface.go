/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import "iter"

// IBoundedQueue specifies the behaviour of a first-in, first-out (FIFO) collection holding at most a fixed number of elements.
// It is inspired by the work of https://github.com/hayageek/threadsafe/ and
// https://github.com/golang-collections/collections.
type IBoundedQueue[T comparable] interface {
	// Enqueue adds an element at the back of the queue. It returns ErrCapacityExceeded if the queue is full, in which case the queue is not modified.
	Enqueue(value T) error
	// EnqueueSequence adds elements in order. It stops at the first element which does not fit; elements already added remain in the queue.
	EnqueueSequence(seq iter.Seq[T]) error
	// Dequeue removes and returns the element at the front of the queue. It returns ok true if the queue is not empty.
	Dequeue() (element T, ok bool)
	// Peek returns the element at the front of the queue without removing it. It returns ok true if the queue is not empty.
	Peek() (element T, ok bool)
	// Includes states whether an element equal to value is in the queue.
	Includes(value T) bool
	// IsEmpty states whether the queue is empty.
	IsEmpty() bool
	// IsFull states whether no more elements can be enqueued.
	IsFull() bool
	// Clear removes all elements from the queue.
	Clear()
	// ToSlice returns a copy of the elements in the queue, front first.
	ToSlice() []T
	// All iterates over a snapshot of the elements, front first, without removing them.
	All() iter.Seq[T]
	// Values returns all the elements in the queue. The queue will be empty as a result.
	Values() iter.Seq[T]
	// Len returns the number of elements in the queue.
	Len() int
	// Cap returns the maximum number of elements the queue can hold.
	Cap() int
}
