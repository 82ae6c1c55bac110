// Package list implements an intrusive, generic doubly linked list.
//
// Elements can be allocated by the list (PushFront, PushBack) or embedded in
// a caller's struct and linked with InsertFront / InsertBack. Either way, an
// element handle allows O(1) removal without scanning siblings.
package list

import (
	"iter"

	"waypath/internal/container"
)

// ErrEmptyContainer is returned when popping an empty list.
var ErrEmptyContainer = container.ErrEmptyContainer

// Element is a node of a List.
type Element[T any] struct {
	next, prev *Element[T]
	list       *List[T]

	// Value is the payload of the element.
	Value T
}

// Next returns the next element or nil.
func (e *Element[T]) Next() *Element[T] {
	if e.list == nil {
		return nil
	}
	return e.next
}

// Prev returns the previous element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if e.list == nil {
		return nil
	}
	return e.prev
}

// Linked reports whether the element currently belongs to a list.
func (e *Element[T]) Linked() bool { return e.list != nil }

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head, tail *Element[T]
	len        int
}

// New returns an empty list.
func New[T any]() *List[T] { return &List[T]{} }

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.len }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.len == 0 }

// Front returns the first element or nil.
func (l *List[T]) Front() *Element[T] { return l.head }

// Back returns the last element or nil.
func (l *List[T]) Back() *Element[T] { return l.tail }

// PushFront inserts v at the front and returns its element.
func (l *List[T]) PushFront(v T) *Element[T] {
	e := &Element[T]{Value: v}
	l.InsertFront(e)
	return e
}

// PushBack inserts v at the back and returns its element.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v}
	l.InsertBack(e)
	return e
}

// InsertFront links a detached element at the front.
func (l *List[T]) InsertFront(e *Element[T]) {
	mustDetached(e)
	e.list = l
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
	l.len++
}

// InsertBack links a detached element at the back.
func (l *List[T]) InsertBack(e *Element[T]) {
	mustDetached(e)
	e.list = l
	e.next = nil
	e.prev = l.tail
	if l.tail != nil {
		l.tail.next = e
	} else {
		l.head = e
	}
	l.tail = e
	l.len++
}

// PopFront unlinks the first element and returns its value.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	e := l.head
	l.unlink(e)
	return e.Value, nil
}

// PopBack unlinks the last element and returns its value.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	e := l.tail
	l.unlink(e)
	return e.Value, nil
}

// Remove unlinks e if it belongs to l and reports whether it did.
func (l *List[T]) Remove(e *Element[T]) bool {
	if e == nil || e.list != l {
		return false
	}
	l.unlink(e)
	return true
}

// Clear unlinks every element.
func (l *List[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.next, e.prev, e.list = nil, nil, nil
		e = next
	}
	l.head, l.tail, l.len = nil, nil, 0
}

// All iterates values front to back. The list must not be modified while
// iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func (l *List[T]) unlink(e *Element[T]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.next, e.prev, e.list = nil, nil, nil
	l.len--
}

func mustDetached[T any](e *Element[T]) {
	if e.list != nil {
		panic("list: element is already linked")
	}
}
