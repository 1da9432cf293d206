package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setup() *List[uint64] {
	l, _ := New[uint64]()

	for _, v := range []uint64{1, 2, 3} {
		l.PushBack(&v)
	}
	l.PopFront()
	for _, v := range []uint64{4, 5} {
		l.PushBack(&v)
	}

	return l
}

// chainLen counts reachable nodes, giving up after limit links so that a
// cycle fails the test instead of hanging it.
func chainLen[T any](l *List[T], limit int) int {
	n := 0
	for p := l.head; p != nil && n <= limit; p = p.next {
		n++
	}
	return n
}

func checkChain[T any](t *testing.T, l *List[T]) {
	t.Helper()
	assert.Equal(t, l.count, chainLen(l, l.count), "count matches reachable nodes")
	assert.Equal(t, l.count == 0, l.head == nil)
}

func TestChainInvariant(t *testing.T) {
	assert := assert.New(t)

	l := setup()
	checkChain(t, l)
	assert.Equal(4, l.count)
	assert.Equal(uint64(2), l.head.data)

	v := uint64(9)
	l.PushAt(2, &v)
	checkChain(t, l)
	l.PopAt(1)
	checkChain(t, l)
	l.PopBack()
	checkChain(t, l)
	assert.Nil(l.nodeAt(l.count-1).next, "tail is terminal")

	l.Clear()
	checkChain(t, l)
	assert.Nil(l.head)
}

func TestReleaseClearsNode(t *testing.T) {
	l := setup()
	n := l.head
	l.PopFront()
	assert.Nil(t, n.next)
	assert.Equal(t, uint64(0), n.data)
}

func TestRejectedCallLeavesListUnchanged(t *testing.T) {
	assert := assert.New(t)

	l := setup()
	head, count := l.head, l.count
	v := uint64(1)
	assert.Error(l.PushAt(l.count+1, &v))
	assert.Error(l.PopAt(l.count))
	assert.Error(l.Replace(-1, &v))
	assert.Error(l.PushBack(nil))
	assert.Same(head, l.head)
	assert.Equal(count, l.count)
	checkChain(t, l)
}
