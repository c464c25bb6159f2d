package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_StartsAtZero(t *testing.T) {
	seq := NewSequence()
	assert.Equal(t, int64(0), seq.Current())
}

func TestSequence_NextIncrements(t *testing.T) {
	seq := NewSequence()

	assert.Equal(t, int64(1), seq.Next())
	assert.Equal(t, int64(2), seq.Next())
	assert.Equal(t, int64(3), seq.Next())
	assert.Equal(t, int64(3), seq.Current())
}

func TestSequence_Reset(t *testing.T) {
	seq := NewSequence()
	seq.Next()
	seq.Next()

	seq.Reset()
	assert.Equal(t, int64(0), seq.Current())
	assert.Equal(t, int64(1), seq.Next())
}

func TestSequence_ConcurrentUnique(t *testing.T) {
	seq := NewSequence()
	const goroutines = 20
	const perGoroutine = 50

	var wg sync.WaitGroup
	out := make(chan int64, goroutines*perGoroutine)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				out <- seq.Next()
			}
		}()
	}
	wg.Wait()
	close(out)

	seen := make(map[int64]bool)
	for v := range out {
		require.False(t, seen[v], "seq %d generated twice", v)
		seen[v] = true
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}
