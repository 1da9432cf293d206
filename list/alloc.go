package list

import (
	"slices"

	"github.com/goose-lang/std"
	"github.com/pkg/errors"
)

// Allocator accounts for the memory backing list nodes. Alloc reports
// failure instead of panicking; Free is only called with sizes that a
// previous Alloc accepted.
type Allocator interface {
	Alloc(size uintptr) error
	Free(size uintptr)
}

type unbounded struct{}

func (unbounded) Alloc(uintptr) error { return nil }

func (unbounded) Free(uintptr) {}

// Budget is an Allocator that refuses to hand out more than a fixed number
// of bytes at once.
type Budget struct {
	limit uintptr
	used  uintptr
}

func NewBudget(limit uintptr) *Budget {
	return &Budget{limit: limit}
}

func (b *Budget) Alloc(size uintptr) error {
	if size > b.limit-b.used {
		return errors.Errorf("budget exhausted: %d of %d bytes in use, %d requested",
			b.used, b.limit, size)
	}
	b.used += size
	return nil
}

func (b *Budget) Free(size uintptr) {
	std.Assert(size <= b.used)
	b.used -= size
}

// InUse returns the number of bytes currently allocated.
func (b *Budget) InUse() uintptr {
	return b.used
}

// Option configures a list at construction.
type Option func(*config)

type config struct {
	alloc Allocator
	copy  any
}

// WithAllocator makes the list account every node against a.
func WithAllocator(a Allocator) Option {
	return func(c *config) {
		c.alloc = a
	}
}

// WithCopy replaces the default assignment used to copy items into the list,
// on push and on Replace. fn must write an independent copy of *src into
// *dst; *dst is the zero value for a new node. New fails if fn is not a copy
// function for the list's element type.
func WithCopy[T any](fn func(dst, src *T)) Option {
	return func(c *config) {
		if fn != nil {
			c.copy = fn
		}
	}
}

// CloneSlice is a copy function for slice elements, for use with WithCopy.
func CloneSlice[E any](dst, src *[]E) {
	*dst = slices.Clone(*src)
}

func buildConfig(opts []Option) config {
	c := config{alloc: unbounded{}}
	for _, o := range opts {
		o(&c)
	}
	if c.alloc == nil {
		c.alloc = unbounded{}
	}
	return c
}
