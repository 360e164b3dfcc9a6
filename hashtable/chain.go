package hashtable

// entry is one link of a bucket chain. The bucket slot owns the head of its
// chain and every entry owns the rest of the chain through next.
type entry[V any] struct {
	key  string
	val  V
	next *entry[V]
}

// push links e in front of the chain l and returns the new head.
func (l *entry[V]) push(e *entry[V]) *entry[V] {
	e.next = l
	return e
}

// find returns the entry holding key, or nil if the chain has none.
func (l *entry[V]) find(key string) *entry[V] {
	var n = l
	for n != nil {
		if n.key == key {
			return n
		}
		n = n.next
	}
	return nil
}

func (l *entry[V]) len() int {
	var n = 0
	for e := l; e != nil; e = e.next {
		n++
	}
	return n
}

// unlink removes the entry holding key from the chain owned by *head and
// returns it detached, or nil if no entry matches. The owning link (the slot
// or the predecessor's next) is replaced by the removed entry's rest of
// chain, so an emptied slot is left nil.
func unlink[V any](head **entry[V], key string) *entry[V] {
	for link := head; *link != nil; link = &(*link).next {
		if e := *link; e.key == key {
			*link = e.next
			e.next = nil
			return e
		}
	}
	return nil
}

// pop detaches the head of the chain owned by *head, or returns nil.
func pop[V any](head **entry[V]) *entry[V] {
	e := *head
	if e == nil {
		return nil
	}
	*head = e.next
	e.next = nil
	return e
}
