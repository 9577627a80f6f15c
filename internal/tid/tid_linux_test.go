//go:build linux

package tid

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentLocked(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	a, err := Current()
	require.NoError(t, err)
	b, err := Current()
	require.NoError(t, err)

	assert.NotZero(t, a)
	assert.Equal(t, a, b)
}

func TestCurrentDistinctLockedThreads(t *testing.T) {
	const n = 4

	var (
		wg      sync.WaitGroup
		ready   sync.WaitGroup
		release = make(chan struct{})
		ids     = make([]uint64, n)
	)
	ready.Add(n)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			id, err := Current()
			assert.NoError(t, err)
			ids[i] = id

			// Hold the thread until every goroutine has read its id.
			ready.Done()
			<-release
		}()
	}
	ready.Wait()
	close(release)
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate thread id %d", id)
		seen[id] = true
	}
}
