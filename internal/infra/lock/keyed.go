package lock

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// KeyedLocker is an in-process single-writer lock per key. Waiting for a
// key honours context cancellation. A key's entry is dropped once nobody
// holds or waits for it.
type KeyedLocker struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
}

type entry struct {
	token chan struct{}
	refs  int
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{entries: make(map[uuid.UUID]*entry)}
}

func (l *KeyedLocker) Lock(ctx context.Context, key uuid.UUID) (func(), error) {
	e := l.acquireEntry(key)

	select {
	case e.token <- struct{}{}:
	case <-ctx.Done():
		l.releaseEntry(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.token
			l.releaseEntry(key, e)
		})
	}, nil
}

// Len reports how many keys are currently held or awaited.
func (l *KeyedLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *KeyedLocker) acquireEntry(key uuid.UUID) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{token: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *KeyedLocker) releaseEntry(key uuid.UUID, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
