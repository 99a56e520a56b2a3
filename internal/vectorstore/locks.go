package vectorstore

import "sync"

// lockTable hands out one mutex per store key so that all Store
// instances addressing the same key share a lock.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var keyLocks = &lockTable{locks: make(map[string]*sync.Mutex)}

func (t *lockTable) lockFor(key string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[key]
	if !ok {
		l = &sync.Mutex{}
		t.locks[key] = l
	}
	return l
}
