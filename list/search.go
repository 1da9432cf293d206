package list

import (
	"cmp"
	"iter"

	"github.com/pkg/errors"
)

// Comparator is a three-way comparison returning 0 when a and b are equal.
// It must not modify the list.
type Comparator[T any] func(a, b *T) int

// Ordered compares values of an ordered type by their natural order.
func Ordered[T cmp.Ordered](a, b *T) int {
	return cmp.Compare(*a, *b)
}

// Get returns a pointer to the element stored at index. The pointer refers to
// the list's own storage: writes through it change the list, and it must not
// be used after the element is removed.
func (l *List[T]) Get(index int) (*T, error) {
	if err := l.usable(); err != nil {
		return nil, err
	}
	if l.count == 0 {
		return nil, ErrListEmpty
	}
	if index < 0 || index >= l.count {
		return nil, indexError(index, l.count)
	}
	return &l.nodeAt(index).data, nil
}

// GetItem is Get with the result written to *item.
func (l *List[T]) GetItem(index int, item **T) error {
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
	*item = &l.nodeAt(index).data
	return nil
}

// Index returns the position of the first element, scanning from the head,
// that compares equal to *item. It fails with ErrInvalidItem when nothing
// matches.
func (l *List[T]) Index(item *T, compar Comparator[T]) (int, error) {
	if err := l.usable(); err != nil {
		return 0, err
	}
	if l.count == 0 {
		return 0, ErrListEmpty
	}
	if item == nil {
		return 0, ErrItemNull
	}
	return l.search(item, compar)
}

// GetIndex is Index with the result written to *index.
func (l *List[T]) GetIndex(index *int, item *T, compar Comparator[T]) error {
	if err := l.usable(); err != nil {
		return err
	}
	if l.count == 0 {
		return ErrListEmpty
	}
	if index == nil {
		return ErrIndexNull
	}
	if item == nil {
		return ErrItemNull
	}
	i, err := l.search(item, compar)
	if err != nil {
		return err
	}
	*index = i
	return nil
}

func (l *List[T]) search(item *T, compar Comparator[T]) (int, error) {
	if compar == nil {
		return 0, errors.Wrap(ErrInvalidItem, "no comparator")
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		if compar(&n.data, item) == 0 {
			return i, nil
		}
		i++
	}
	return 0, ErrInvalidItem
}

// Contains reports whether some element compares equal to *item. A nil,
// destroyed or empty list contains nothing.
func (l *List[T]) Contains(item *T, compar Comparator[T]) bool {
	_, err := l.Index(item, compar)
	return err == nil
}

// All yields each index and a copy of its element, head to tail. The list
// must not be modified during iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.usable() != nil {
			return
		}
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.data) {
				return
			}
			i++
		}
	}
}
