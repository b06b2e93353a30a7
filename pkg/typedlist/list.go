// Package typedlist provides List, an ordered, growable sequence of
// comparable values with Map, ForEach, Filter and FilterOut layered on top
// of ordinary append / index / iterate access.
package typedlist

import (
	"fmt"
	"iter"
	"slices"
)

// Transform maps an item to a new item of the same type.
type Transform[T any] func(item T) (T, error)

// Action is invoked for its side effects on each item.
type Action[T any] func(item T) error

// List is not safe for concurrent use. The zero value is an empty list.
type List[T comparable] struct {
	items []T
}

func New[T comparable]() *List[T] {
	return &List[T]{}
}

// NewWithCapacity pre-sizes the backing storage. The hint never affects
// contents; a negative hint is treated as zero.
func NewWithCapacity[T comparable](capacity int) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{items: make([]T, 0, capacity)}
}

// Of returns a list holding a copy of items.
func Of[T comparable](items ...T) *List[T] {
	l := NewWithCapacity[T](len(items))
	l.items = append(l.items, items...)
	return l
}

func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
}

func (l *List[T]) AddAll(items ...T) {
	l.items = append(l.items, items...)
}

func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index, len(l.items)); err != nil {
		var zero T
		return zero, err
	}
	return l.items[index], nil
}

func (l *List[T]) Set(index int, item T) error {
	if err := l.checkIndex(index, len(l.items)); err != nil {
		return err
	}
	l.items[index] = item
	return nil
}

// Insert places item before position index. Inserting at Len() appends.
func (l *List[T]) Insert(index int, item T) error {
	if err := l.checkIndex(index, len(l.items)+1); err != nil {
		return err
	}
	l.items = slices.Insert(l.items, index, item)
	return nil
}

func (l *List[T]) RemoveAt(index int) (T, error) {
	if err := l.checkIndex(index, len(l.items)); err != nil {
		var zero T
		return zero, err
	}
	item := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return item, nil
}

// Clear drops every element but keeps the backing storage.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

func (l *List[T]) Len() int {
	return len(l.items)
}

// Cap reports the current backing capacity.
func (l *List[T]) Cap() int {
	return cap(l.items)
}

// IndexOf returns the position of the first element equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	return slices.Index(l.items, item)
}

func (l *List[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// Items returns a copy of the elements; changing it does not touch the list.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// All iterates index/element pairs in insertion order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	if l == nil {
		return "[]"
	}
	return fmt.Sprint(l.items)
}

func (l *List[T]) checkIndex(index int, limit int) error {
	if index < 0 || index >= limit {
		return &IndexOutOfRangeError{Index: index, Count: len(l.items)}
	}
	return nil
}
