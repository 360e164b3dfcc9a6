package hashtable

import (
	"fmt"
	"iter"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
	"github.com/sirupsen/logrus"
)

// Table maps string keys to values of type V using separate chaining.
//
// The bucket array and its size are a single slice, so replacing it during
// Rehash changes both at once. A destroyed table has a nil bucket array.
type Table[V any] struct {
	buckets []*entry[V]
	count   uint64

	hash    HashFunc
	release func(key string, val V)
	log     *logrus.Logger

	// number of Iterate calls in progress
	iterating uint64
}

// New creates an empty table with bucketCount slots.
func New[V any](bucketCount uint64, opts ...Option[V]) (*Table[V], error) {
	if bucketCount == 0 {
		return nil, fmt.Errorf("create table: %w", ErrZeroBuckets)
	}
	t := &Table[V]{
		buckets: make([]*entry[V], bucketCount),
		hash:    DJB2,
		log:     discardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (t *Table[V]) mustLive() {
	if t.buckets == nil {
		panic(ErrDestroyed)
	}
}

func (t *Table[V]) mustMutate() {
	t.mustLive()
	if t.iterating > 0 {
		panic(ErrMutationDuringIteration)
	}
}

func (t *Table[V]) slot(key string) uint64 {
	return bucketIdx(t.hash, key, uint64(len(t.buckets)))
}

func (t *Table[V]) drop(key string, val V) {
	if t.release != nil {
		t.release(key, val)
	}
}

// Put stores val under key. If key is already present its value is replaced
// and the previous value is released; otherwise a new entry is linked at the
// head of the key's chain.
func (t *Table[V]) Put(key string, val V) {
	t.mustMutate()
	idx := t.slot(key)
	if t.log.IsLevelEnabled(logrus.DebugLevel) {
		t.log.WithFields(logrus.Fields{"key": key, "slot": idx}).Debug("put")
	}

	if e := t.buckets[idx].find(key); e != nil {
		old := e.val
		e.key, e.val = key, val
		t.drop(key, old)
		return
	}
	t.buckets[idx] = t.buckets[idx].push(&entry[V]{key: key, val: val})
	t.count = std.SumAssumeNoOverflow(t.count, 1)
}

// Get returns the value stored under key. The boolean is false if the key is
// absent.
func (t *Table[V]) Get(key string) (V, bool) {
	t.mustLive()
	if e := t.buckets[t.slot(key)].find(key); e != nil {
		return e.val, true
	}
	var zero V
	return zero, false
}

// Delete removes key and hands its value back to the caller. Deleting an
// absent key is a no-op that returns false.
func (t *Table[V]) Delete(key string) (V, bool) {
	t.mustMutate()
	e := unlink(&t.buckets[t.slot(key)], key)
	if e == nil {
		var zero V
		return zero, false
	}
	t.count--
	return e.val, true
}

// Iterate calls visit for every stored pair, slot by slot in index order and
// within a slot from chain head to tail. Iteration stops as soon as visit
// returns false.
//
// visit must not modify the table.
func (t *Table[V]) Iterate(visit func(key string, val V) bool) {
	t.mustLive()
	t.iterating++
	defer func() { t.iterating-- }()

	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			if !visit(e.key, e.val) {
				return
			}
		}
	}
}

// All returns an iterator over the table in Iterate order.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		t.Iterate(yield)
	}
}

// Rehash resizes the table to bucketCount slots. Existing entries are
// relinked, not copied, into a new bucket array, which then replaces the old
// one.
func (t *Table[V]) Rehash(bucketCount uint64) error {
	t.mustMutate()
	if bucketCount == 0 {
		return fmt.Errorf("rehash: %w", ErrZeroBuckets)
	}
	old := t.buckets
	t.log.WithFields(logrus.Fields{
		"from":    len(old),
		"to":      bucketCount,
		"entries": t.count,
	}).Debug("rehash start")

	buckets := make([]*entry[V], bucketCount)
	var moved = uint64(0)
	for i := range old {
		for {
			e := pop(&old[i])
			if e == nil {
				break
			}
			idx := bucketIdx(t.hash, e.key, bucketCount)
			buckets[idx] = buckets[idx].push(e)
			moved++
		}
	}
	primitive.Assert(moved == t.count)

	t.buckets = buckets
	t.log.WithField("buckets", bucketCount).Debug("rehash done")
	return nil
}

// Destroy releases every entry and the bucket array. Any later use of the
// table panics with ErrDestroyed.
func (t *Table[V]) Destroy() {
	t.mustMutate()
	for i := range t.buckets {
		for {
			e := pop(&t.buckets[i])
			if e == nil {
				break
			}
			t.drop(e.key, e.val)
			t.count--
		}
	}
	primitive.Assert(t.count == 0)
	t.buckets = nil
	t.log.Debug("destroyed")
}

// Len returns the number of stored entries.
func (t *Table[V]) Len() int {
	return int(t.count)
}

// Buckets returns the size of the bucket array; 0 after Destroy.
func (t *Table[V]) Buckets() uint64 {
	return uint64(len(t.buckets))
}

// LoadFactor returns entries per bucket.
func (t *Table[V]) LoadFactor() float64 {
	if len(t.buckets) == 0 {
		return 0
	}
	return float64(t.count) / float64(len(t.buckets))
}

// ChainLengths returns the length of each slot's chain, in slot order.
func (t *Table[V]) ChainLengths() []int {
	t.mustLive()
	lens := make([]int, len(t.buckets))
	for i, head := range t.buckets {
		lens[i] = head.len()
	}
	return lens
}
