// Package locker provides mutual exclusion scoped to a string key.
package locker

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// Keyed hands out one mutex per key. Entries are dropped once nobody holds
// or waits on them, so the table only grows with concurrent keys.
type Keyed struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty Keyed locker.
func New() *Keyed {
	return &Keyed{entries: make(map[string]*entry)}
}

// Lock blocks until key is held by the caller and returns its release func.
func (k *Keyed) Lock(key string) (unlock func()) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			k.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(k.entries, key)
			}
			k.mu.Unlock()
		})
	}
}

// Len reports the number of keys currently held or waited on.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
