package list

import (
	"unsafe"

	"github.com/goose-lang/std"
	"github.com/pkg/errors"
)

type node[T any] struct {
	data T
	next *node[T]
}

// linkSize is the accounted cost of a node apart from its data.
const linkSize = unsafe.Sizeof(uintptr(0))

// newNode allocates a detached node holding a copy of *item. The link and
// the data are allocated separately; if the data allocation fails the link
// is given back before returning.
func (l *List[T]) newNode(item *T) (*node[T], error) {
	if err := l.alloc.Alloc(linkSize); err != nil {
		return nil, errors.Wrapf(ErrElementNull, "node: %v", err)
	}
	if err := l.alloc.Alloc(l.elemSize); err != nil {
		l.alloc.Free(linkSize)
		return nil, errors.Wrapf(ErrElementNull, "%d-byte element: %v", l.elemSize, err)
	}
	n := &node[T]{}
	l.copy(&n.data, item)
	return n, nil
}

// release frees a node that has already been unlinked.
func (l *List[T]) release(n *node[T]) {
	var zero T
	n.data = zero
	n.next = nil
	l.alloc.Free(l.elemSize)
	l.alloc.Free(linkSize)
}

// nodeAt walks index links from the head. The caller has checked that
// index is in range.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	std.Assert(n != nil)
	return n
}
