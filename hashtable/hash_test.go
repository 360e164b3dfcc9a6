package hashtable_test

import (
	"testing"

	"github.com/LTrestka/CS351/hashtable"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDJB2(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint64(5381), hashtable.DJB2(""))
	assert.Equal(uint64(5381*33+'a'), hashtable.DJB2("a"))
	assert.Equal(uint64((5381*33+'a')*33+'b'), hashtable.DJB2("ab"))

	// bytes above 0x7f are added as unsigned values
	assert.Equal(uint64(5381*33+0xff), hashtable.DJB2("\xff"))
}

func TestDJB2Wraps(t *testing.T) {
	// long keys overflow 64 bits; the hash wraps instead of failing
	var key = make([]byte, 64)
	for i := range key {
		key[i] = 'z'
	}
	h1 := hashtable.DJB2(string(key))
	h2 := hashtable.DJB2(string(key))
	assert.Equal(t, h1, h2)
}

func TestHashDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.String().Draw(t, "key")
		assert.Equal(t, hashtable.DJB2(key), hashtable.DJB2(key))
		assert.Equal(t, hashtable.XXHash(key), hashtable.XXHash(key))
	})
}
