/*
Package hashtable implements a string-keyed table with separate chaining.

A Table owns a fixed array of bucket slots; each slot heads a singly linked
chain of entries. A key lives in slot hash(key) % Buckets(). New entries are
linked at the head of their chain, so within a slot the most recently inserted
key is found (and iterated) first.

The table never resizes itself. Callers decide when the load factor is too
high and call Rehash, which relinks the existing entries into a new bucket
array and installs it in a single assignment.

Basic usage:

	t, err := hashtable.New[int](4)
	if err != nil {
		log.Fatal(err)
	}
	t.Put("a", 1)
	t.Put("b", 2)
	t.Put("a", 3) // replaces 1

	v, ok := t.Get("a") // 3, true
	t.Delete("b")

	if err := t.Rehash(8); err != nil {
		log.Fatal(err)
	}

	t.Iterate(func(key string, val int) bool {
		fmt.Println(key, val)
		return true // false stops the walk
	})

A Table is not safe for concurrent use; see package synctable for a locked
wrapper. Mutating a table (Put, Delete, Rehash, Destroy) from inside an
Iterate visitor panics with ErrMutationDuringIteration.
*/
package hashtable
