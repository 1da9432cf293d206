package list_test

import (
	"testing"
	"unsafe"

	"ordered_list/list"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const link = unsafe.Sizeof(uintptr(0))

func TestBudget(t *testing.T) {
	assert := assert.New(t)

	b := list.NewBudget(10)
	assert.NoError(b.Alloc(6))
	assert.Error(b.Alloc(5))
	assert.Equal(uintptr(6), b.InUse())
	assert.NoError(b.Alloc(4))
	b.Free(10)
	assert.Equal(uintptr(0), b.InUse())
}

func TestBudgetElementNull(t *testing.T) {
	assert := assert.New(t)

	node := link + 8
	b := list.NewBudget(2 * node)
	l, err := list.New[int64](list.WithAllocator(b))
	require.NoError(t, err)

	for i := range int64(2) {
		assert.NoError(l.PushBack(&i))
	}
	assert.Equal(2*node, b.InUse())

	v := int64(3)
	err = l.PushFront(&v)
	assert.ErrorIs(err, list.ErrElementNull)
	err = l.PushAt(1, &v)
	assert.ErrorIs(err, list.ErrElementNull)
	n, _ := l.Count()
	assert.Equal(2, n, "failed pushes leave the list alone")

	assert.NoError(l.PopBack())
	assert.Equal(node, b.InUse())
	assert.NoError(l.PushBack(&v))
	assert.NoError(l.Destroy())
	assert.Equal(uintptr(0), b.InUse(), "destroy frees every node")
}

func TestPartialNodeNotLeaked(t *testing.T) {
	assert := assert.New(t)

	// room for the link but not the data
	b := list.NewBudget(link + 4)
	l, err := list.New[int64](list.WithAllocator(b))
	require.NoError(t, err)

	v := int64(1)
	assert.ErrorIs(l.PushBack(&v), list.ErrElementNull)
	assert.Equal(uintptr(0), b.InUse())
}

func TestClearFreesNodes(t *testing.T) {
	b := list.NewBudget(1 << 20)
	l, err := list.New[[4]byte](list.WithAllocator(b))
	require.NoError(t, err)
	for range 10 {
		require.NoError(t, l.PushFront(&[4]byte{1, 2, 3, 4}))
	}
	assert.Equal(t, 10*(link+4), b.InUse())
	require.NoError(t, l.Clear())
	assert.Equal(t, uintptr(0), b.InUse())
}

func TestNilAllocatorOption(t *testing.T) {
	l, err := list.New[int](list.WithAllocator(nil))
	require.NoError(t, err)
	v := 1
	assert.NoError(t, l.PushBack(&v))
}
