package trade

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	const goroutines = 50
	counter := 0
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			unlock := km.Lock(42)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyedMutex_IndependentKeysDoNotBlock(t *testing.T) {
	km := NewKeyedMutex()

	unlockA := km.Lock(1)
	done := make(chan struct{})
	go func() {
		unlockB := km.Lock(2)
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
}

func TestKeyedMutex_MultiKeyOrdering(t *testing.T) {
	km := NewKeyedMutex()

	// Opposite acquisition orders must not deadlock: Lock sorts keys.
	var wg sync.WaitGroup
	wg.Add(2)
	for _, keys := range [][]int64{{1, 2, 3}, {3, 2, 1}} {
		go func() {
			defer wg.Done()
			for range 100 {
				unlock := km.Lock(keys...)
				unlock()
			}
		}()
	}
	wg.Wait()
}

func TestKeyedMutex_DuplicateKeys(t *testing.T) {
	km := NewKeyedMutex()

	// A sale can list the same product twice; the lock must not self-deadlock.
	unlock := km.Lock(7, 7, 7)
	unlock()
}

func TestKeyedMutex_CleansUpEntries(t *testing.T) {
	km := NewKeyedMutex()

	unlock := km.Lock(1, 2)
	unlock()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.entries, "released entries must not leak")
}
