package frontier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_CompactionReleasesTail(t *testing.T) {
	q := NewQueue[*int]()
	for i := 0; i < 100; i++ {
		v := i
		q.Push(&v, 0)
	}
	for i := 0; i < 50; i++ {
		item, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, *item)
	}
	require.Equal(t, 0, q.head, "compacted")
	require.Len(t, q.items, 50)

	backing := q.items[:cap(q.items)]
	for i := len(q.items); i < len(backing); i++ {
		assert.Nil(t, backing[i], "slot %d", i)
	}
	item, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 50, *item)
}
