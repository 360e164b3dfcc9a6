package hashtable

import (
	"fmt"

	"go.uber.org/multierr"
)

// Check verifies the table's structural invariants and returns every
// violation found, combined with multierr:
//
//   - each entry sits in slot hash(key) % Buckets()
//   - no key appears twice
//   - the entry count matches the reachable entries
func (t *Table[V]) Check() error {
	t.mustLive()
	var (
		result error
		seen   = make(map[string]int, t.count)
		n      = uint64(0)
		size   = uint64(len(t.buckets))
	)
	for i, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			n++
			if n > t.count {
				// also stops on a cyclic chain
				return multierr.Append(result,
					fmt.Errorf("more than %d reachable entries", t.count))
			}
			if want := bucketIdx(t.hash, e.key, size); want != uint64(i) {
				result = multierr.Append(result,
					fmt.Errorf("key %q in slot %d, want slot %d", e.key, i, want))
			}
			if prev, ok := seen[e.key]; ok {
				result = multierr.Append(result,
					fmt.Errorf("key %q stored twice (slots %d and %d)", e.key, prev, i))
			}
			seen[e.key] = i
		}
	}
	if n != t.count {
		result = multierr.Append(result,
			fmt.Errorf("count is %d but %d entries are reachable", t.count, n))
	}
	return result
}
