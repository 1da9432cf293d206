package list_test

import (
	"sync"
	"testing"

	"ordered_list/list"

	"github.com/stretchr/testify/assert"
)

// The list does no locking of its own; callers that share one serialize
// whole operations with a single mutex.
func TestExternalLock(t *testing.T) {
	assert := assert.New(t)

	l, err := list.New[uint64]()
	assert.NoError(err)

	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(100)
	for i := range uint64(100) {
		go func() {
			mu.Lock()
			defer mu.Unlock()
			assert.NoError(l.PushFront(&i))
			wg.Done()
		}()
	}
	wg.Wait()

	n, err := l.Count()
	assert.NoError(err)
	assert.Equal(100, n, "Count")

	var sum uint64
	for _, v := range l.All() {
		sum += v
	}
	assert.Equal(uint64(4950), sum)
}
