package list

import (
	"github.com/goose-lang/std"
	"github.com/pkg/errors"
)

// Bytes is a list of opaque byte buffers that all have the same length, fixed
// when the list is created. Each stored buffer is a private copy.
type Bytes struct {
	size int
	list *List[[]byte]
}

// NewBytes returns an empty list of elementSize-byte buffers. Buffers are
// always copied deeply, so WithCopy is rejected.
func NewBytes(elementSize int, opts ...Option) (*Bytes, error) {
	if elementSize <= 0 {
		return nil, ErrZeroElementSize
	}
	c := buildConfig(opts)
	if c.copy != nil {
		return nil, errors.New("byte lists do not take a copy function")
	}
	b := &Bytes{size: elementSize}
	b.list = newList(uintptr(elementSize), b.copyElement, c)
	return b, nil
}

// copyElement copies *src into *dst, allocating dst's buffer the first time.
func (b *Bytes) copyElement(dst, src *[]byte) {
	if *dst == nil {
		*dst = make([]byte, b.size)
	}
	copySlice(*dst, *src)
}

// copySlice copies from src to dst
//
// dst must be at least as long as src
func copySlice(dst []byte, src []byte) {
	std.Assert(len(dst) >= len(src))
	copy(dst, src)
}

// checkItem validates a caller buffer; it runs after the list-level checks
// so that a nil or destroyed list reports ErrListNull first.
func (b *Bytes) checkItem(item []byte) error {
	if item == nil {
		return ErrItemNull
	}
	if len(item) != b.size {
		return errors.Wrapf(ErrInvalidItem, "item has %d bytes, elements have %d", len(item), b.size)
	}
	return nil
}

func (b *Bytes) inner() *List[[]byte] {
	if b == nil {
		return nil
	}
	return b.list
}

func (b *Bytes) ElementSize() (int, error) {
	if err := b.inner().usable(); err != nil {
		return 0, err
	}
	return b.size, nil
}

func (b *Bytes) Count() (int, error) {
	return b.inner().Count()
}

func (b *Bytes) Destroy() error {
	return b.inner().Destroy()
}

// DestroyBytes destroys *ref and clears the caller's reference.
func DestroyBytes(ref **Bytes) error {
	if ref == nil {
		return ErrListNull
	}
	if err := (*ref).Destroy(); err != nil {
		return err
	}
	*ref = nil
	return nil
}

func (b *Bytes) PushFront(item []byte) error {
	if err := b.inner().usable(); err != nil {
		return err
	}
	if err := b.checkItem(item); err != nil {
		return err
	}
	return b.list.PushFront(&item)
}

func (b *Bytes) PushBack(item []byte) error {
	if err := b.inner().usable(); err != nil {
		return err
	}
	if err := b.checkItem(item); err != nil {
		return err
	}
	return b.list.PushBack(&item)
}

func (b *Bytes) PushAt(index int, item []byte) error {
	l := b.inner()
	if err := l.usable(); err != nil {
		return err
	}
	if index < 0 || index > l.count {
		return indexError(index, l.count)
	}
	if err := b.checkItem(item); err != nil {
		return err
	}
	return l.PushAt(index, &item)
}

func (b *Bytes) PopFront() error {
	return b.inner().PopFront()
}

func (b *Bytes) PopBack() error {
	return b.inner().PopBack()
}

func (b *Bytes) PopAt(index int) error {
	return b.inner().PopAt(index)
}

// Replace copies item over the buffer at index. The buffer is reused, so a
// slice previously returned by Get sees the new contents.
func (b *Bytes) Replace(index int, item []byte) error {
	l := b.inner()
	if err := l.usable(); err != nil {
		return err
	}
	if l.count == 0 {
		return ErrListEmpty
	}
	if index < 0 || index >= l.count {
		return indexError(index, l.count)
	}
	if err := b.checkItem(item); err != nil {
		return err
	}
	return l.Replace(index, &item)
}

func (b *Bytes) Clear() error {
	return b.inner().Clear()
}

// Get returns the stored buffer at index itself, not a copy.
func (b *Bytes) Get(index int) ([]byte, error) {
	p, err := b.inner().Get(index)
	if err != nil {
		return nil, err
	}
	return *p, nil
}

// GetItem is Get with the result written to *item.
func (b *Bytes) GetItem(index int, item *[]byte) error {
	l := b.inner()
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
	*item = l.nodeAt(index).data
	return nil
}

// Index returns the position of the first buffer, from the head, for which
// compar reports 0 against item.
func (b *Bytes) Index(item []byte, compar func(x, y []byte) int) (int, error) {
	l := b.inner()
	if err := l.usable(); err != nil {
		return 0, err
	}
	if l.count == 0 {
		return 0, ErrListEmpty
	}
	if item == nil {
		return 0, ErrItemNull
	}
	return l.search(&item, bufferComparator(compar))
}

// GetIndex is Index with the result written to *index.
func (b *Bytes) GetIndex(index *int, item []byte, compar func(x, y []byte) int) error {
	l := b.inner()
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
	i, err := l.search(&item, bufferComparator(compar))
	if err != nil {
		return err
	}
	*index = i
	return nil
}

func bufferComparator(compar func(x, y []byte) int) Comparator[[]byte] {
	if compar == nil {
		return nil
	}
	return func(x, y *[]byte) int {
		return compar(*x, *y)
	}
}
