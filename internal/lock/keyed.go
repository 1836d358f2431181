package lock

import "sync"

// Keyed is a mutex arena: Acquire serializes callers holding the same key
// while leaving other keys untouched. The booking path locks on
// (barber, calendar day) so the conflict scan and the insert cannot
// interleave for the same barber's day.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyed() *Keyed {
	return &Keyed{locks: make(map[string]*entry)}
}

// Acquire blocks until the key is held and returns the release function.
// Entries are reference-counted and removed once the last holder releases,
// so the arena does not grow with the key space.
func (k *Keyed) Acquire(key string) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
