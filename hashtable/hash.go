package hashtable

import "github.com/cespare/xxhash/v2"

// A HashFunc maps a key to an unsigned hash. It must be pure: Rehash places
// every entry in slot HashFunc(key) % buckets of the new array.
type HashFunc func(key string) uint64

// DJB2 is Bernstein's "times 33" string hash, accumulated byte by byte with
// wrapping unsigned arithmetic.
func DJB2(key string) uint64 {
	var h = uint64(5381)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return h
}

// XXHash is the 64-bit xxHash of key.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

func bucketIdx(h HashFunc, key string, numBuckets uint64) uint64 {
	return h(key) % numBuckets
}
