// Package list implements an ordered, singly-linked list of fixed-width
// elements. Elements are copied in on insertion and addressed by their
// zero-based position from the head; every positional operation walks the
// chain, so it costs O(index).
//
// By default an element is copied by assignment. For element types that hold
// references (slices, maps, pointers) that copy shares the caller's backing
// memory; pass WithCopy to copy such elements deeply, or use Bytes for opaque
// fixed-width buffers.
//
// A List is not safe for concurrent use. Callers sharing one must guard every
// call with a single lock.
package list

import (
	"unsafe"

	"github.com/goose-lang/std"
	"github.com/pkg/errors"
)

// List is an ordered chain of nodes, each owning one copy of caller data.
type List[T any] struct {
	head      *node[T]
	count     int
	elemSize  uintptr
	alloc     Allocator
	copy      func(dst, src *T)
	destroyed bool
}

// New returns an empty list of T. It fails with ErrZeroElementSize when T
// occupies no memory.
func New[T any](opts ...Option) (*List[T], error) {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return nil, ErrZeroElementSize
	}
	c := buildConfig(opts)
	cp := assign[T]
	if c.copy != nil {
		fn, ok := c.copy.(func(dst, src *T))
		if !ok {
			return nil, errors.Errorf("copy function %T does not copy %T", c.copy, zero)
		}
		cp = fn
	}
	return newList(size, cp, c), nil
}

func assign[T any](dst, src *T) {
	*dst = *src
}

func newList[T any](size uintptr, cp func(dst, src *T), c config) *List[T] {
	return &List[T]{
		elemSize: size,
		alloc:    c.alloc,
		copy:     cp,
	}
}

func (l *List[T]) usable() error {
	if l == nil || l.destroyed {
		return ErrListNull
	}
	return nil
}

// Destroy frees every remaining node. The list cannot be used afterwards:
// every further call, including Destroy, fails with ErrListNull.
func (l *List[T]) Destroy() error {
	if err := l.usable(); err != nil {
		return err
	}
	l.drain()
	l.destroyed = true
	return nil
}

// Destroy destroys *ref and clears the caller's reference.
func Destroy[T any](ref **List[T]) error {
	if ref == nil {
		return ErrListNull
	}
	if err := (*ref).Destroy(); err != nil {
		return err
	}
	*ref = nil
	return nil
}

// ElementSize is the width in bytes of every element as stored in a node.
// For reference types this is the size of the reference itself, not of the
// memory it points to.
func (l *List[T]) ElementSize() (uintptr, error) {
	if err := l.usable(); err != nil {
		return 0, err
	}
	return l.elemSize, nil
}

func (l *List[T]) Count() (int, error) {
	if err := l.usable(); err != nil {
		return 0, err
	}
	return l.count, nil
}

// PushFront inserts a copy of *item at index 0.
func (l *List[T]) PushFront(item *T) error {
	if err := l.usable(); err != nil {
		return err
	}
	if item == nil {
		return ErrItemNull
	}
	n, err := l.newNode(item)
	if err != nil {
		return err
	}
	n.next = l.head
	l.head = n
	l.count++
	return nil
}

// PushBack appends a copy of *item after the last element.
func (l *List[T]) PushBack(item *T) error {
	if err := l.usable(); err != nil {
		return err
	}
	if item == nil {
		return ErrItemNull
	}
	if l.count == 0 {
		return l.PushFront(item)
	}
	n, err := l.newNode(item)
	if err != nil {
		return err
	}
	l.nodeAt(l.count - 1).next = n
	l.count++
	return nil
}

// PushAt inserts a copy of *item so that it ends up at index. Valid indices
// are 0 through Count; Count appends.
func (l *List[T]) PushAt(index int, item *T) error {
	if err := l.usable(); err != nil {
		return err
	}
	if index < 0 || index > l.count {
		return indexError(index, l.count)
	}
	if item == nil {
		return ErrItemNull
	}
	if index == 0 {
		return l.PushFront(item)
	}
	if index == l.count {
		return l.PushBack(item)
	}
	n, err := l.newNode(item)
	if err != nil {
		return err
	}
	prev := l.nodeAt(index - 1)
	n.next = prev.next
	prev.next = n
	l.count++
	return nil
}

func (l *List[T]) PopFront() error {
	if err := l.usable(); err != nil {
		return err
	}
	if l.count == 0 {
		return ErrListEmpty
	}
	l.popFront()
	return nil
}

func (l *List[T]) popFront() {
	n := l.head
	l.head = n.next
	l.release(n)
	l.count--
	std.Assert((l.count == 0) == (l.head == nil))
}

func (l *List[T]) PopBack() error {
	if err := l.usable(); err != nil {
		return err
	}
	if l.count == 0 {
		return ErrListEmpty
	}
	if l.count == 1 {
		l.popFront()
		return nil
	}
	prev := l.nodeAt(l.count - 2)
	last := prev.next
	prev.next = nil
	l.release(last)
	l.count--
	return nil
}

// PopAt removes the element at index; later elements shift down by one.
func (l *List[T]) PopAt(index int) error {
	if err := l.usable(); err != nil {
		return err
	}
	if l.count == 0 {
		return ErrListEmpty
	}
	if index < 0 || index >= l.count {
		return indexError(index, l.count)
	}
	if index == 0 {
		return l.PopFront()
	}
	if index == l.count-1 {
		return l.PopBack()
	}
	prev := l.nodeAt(index - 1)
	n := prev.next
	prev.next = n.next
	l.release(n)
	l.count--
	return nil
}

// Replace overwrites the element at index with a copy of *item. The node
// itself stays in place, so pointers returned by Get for that index observe
// the new value.
func (l *List[T]) Replace(index int, item *T) error {
	if err := l.usable(); err != nil {
		return err
	}
	if l.count == 0 {
		return ErrListEmpty
	}
	if index < 0 || index >= l.count {
		return indexError(index, l.count)
	}
	if item == nil {
		return ErrItemNull
	}
	l.copy(&l.nodeAt(index).data, item)
	return nil
}

// Clear removes every element. Clearing an empty list is an error
// (ErrListEmpty), not a no-op.
func (l *List[T]) Clear() error {
	if err := l.usable(); err != nil {
		return err
	}
	if l.count == 0 {
		return ErrListEmpty
	}
	l.drain()
	return nil
}

func (l *List[T]) drain() {
	for l.count > 0 {
		l.popFront()
	}
}
