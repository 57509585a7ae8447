package trade

import (
	"slices"
	"sync"
)

// KeyedMutex serializes writes per product id. Stock validation is a read of
// derived state followed by a write, so two concurrent sales of the same
// product could both pass the check against a stale read and jointly
// oversell. Holding the product's lock across the check and the commit closes
// that window. This serializes within one process; the deployment model is a
// single server instance in front of the store.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[int64]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates an empty keyed mutex
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[int64]*lockEntry)}
}

// Lock acquires the locks for all given keys and returns the matching unlock
// function. Keys are deduplicated and acquired in sorted order so that two
// multi-item sales can never deadlock each other.
func (k *KeyedMutex) Lock(keys ...int64) (unlock func()) {
	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	acquired := make([]*lockEntry, 0, len(keys))
	for _, key := range keys {
		k.mu.Lock()
		e, ok := k.entries[key]
		if !ok {
			e = &lockEntry{}
			k.entries[key] = e
		}
		e.refs++
		k.mu.Unlock()

		e.mu.Lock()
		acquired = append(acquired, e)
	}

	released := keys
	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].mu.Unlock()

			k.mu.Lock()
			acquired[i].refs--
			if acquired[i].refs == 0 {
				delete(k.entries, released[i])
			}
			k.mu.Unlock()
		}
	}
}
