// Package synctable wraps hashtable.Table behind a single mutex.
package synctable

import (
	"sync"

	"github.com/LTrestka/CS351/hashtable"
)

// Table is a hashtable.Table that is safe for concurrent use. Every
// operation holds the lock for its whole duration, so Rehash is never
// observed half done by a concurrent Get or Put.
type Table[V any] struct {
	mu    *sync.Mutex
	table *hashtable.Table[V]
}

func New[V any](bucketCount uint64, opts ...hashtable.Option[V]) (*Table[V], error) {
	t, err := hashtable.New[V](bucketCount, opts...)
	if err != nil {
		return nil, err
	}
	return &Table[V]{mu: new(sync.Mutex), table: t}, nil
}

func (t *Table[V]) Get(key string) (V, bool) {
	t.mu.Lock()
	v, ok := t.table.Get(key)
	t.mu.Unlock()
	return v, ok
}

func (t *Table[V]) Put(key string, val V) {
	t.mu.Lock()
	t.table.Put(key, val)
	t.mu.Unlock()
}

func (t *Table[V]) Delete(key string) (V, bool) {
	t.mu.Lock()
	v, ok := t.table.Delete(key)
	t.mu.Unlock()
	return v, ok
}

// Iterate walks the table under the lock. visit must not call back into t;
// doing so deadlocks.
func (t *Table[V]) Iterate(visit func(key string, val V) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Iterate(visit)
}

func (t *Table[V]) Rehash(bucketCount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Rehash(bucketCount)
}

// Update atomically replaces the value under key with f(old, ok). Between
// separate Get and Put calls another goroutine could write key.
func (t *Table[V]) Update(key string, f func(old V, ok bool) V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	old, ok := t.table.Get(key)
	t.table.Put(key, f(old, ok))
}

func (t *Table[V]) Len() int {
	t.mu.Lock()
	n := t.table.Len()
	t.mu.Unlock()
	return n
}

func (t *Table[V]) Buckets() uint64 {
	t.mu.Lock()
	n := t.table.Buckets()
	t.mu.Unlock()
	return n
}

func (t *Table[V]) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Destroy()
}
