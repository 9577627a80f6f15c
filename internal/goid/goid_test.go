package goid

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{in: "goroutine 1 [running]:\nmain.main()", want: 1, ok: true},
		{in: "goroutine 18446744 [running]:", want: 18446744, ok: true},
		{in: "goroutine [running]:", ok: false},
		{in: "thread 3", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parse([]byte(tt.in))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentStable(t *testing.T) {
	a := Current()
	b := Current()
	assert.NotZero(t, a)
	assert.Equal(t, a, b)
}

func TestCurrentDistinct(t *testing.T) {
	const n = 16

	ids := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = Current()
		}()
	}
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for _, id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.False(t, seen[Current()])
}
