package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keys[V any](l *entry[V]) []string {
	var ks = []string{}
	for e := l; e != nil; e = e.next {
		ks = append(ks, e.key)
	}
	return ks
}

func chainOf(ks ...string) *entry[int] {
	var l *entry[int]
	for i := len(ks) - 1; i >= 0; i-- {
		l = l.push(&entry[int]{key: ks[i], val: i})
	}
	return l
}

func TestChainPush(t *testing.T) {
	assert := assert.New(t)

	var l *entry[int]
	assert.Nil(l.find("a"))
	assert.Equal(0, l.len())

	l = l.push(&entry[int]{key: "a", val: 1})
	l = l.push(&entry[int]{key: "b", val: 2})
	assert.Equal([]string{"b", "a"}, keys(l), "new entries go to the head")
	assert.Equal(2, l.len())

	e := l.find("a")
	if assert.NotNil(e) {
		assert.Equal(1, e.val)
	}
	assert.Nil(l.find("c"))
}

func TestChainUnlink(t *testing.T) {
	assert := assert.New(t)

	l := chainOf("a", "b", "c", "d")

	e := unlink(&l, "c")
	if assert.NotNil(e) {
		assert.Equal("c", e.key)
		assert.Nil(e.next, "removed entry is detached")
	}
	assert.Equal([]string{"a", "b", "d"}, keys(l))

	e = unlink(&l, "a")
	assert.NotNil(e)
	assert.Equal([]string{"b", "d"}, keys(l), "head removal")

	e = unlink(&l, "d")
	assert.NotNil(e)
	assert.Equal([]string{"b"}, keys(l), "tail removal")

	assert.Nil(unlink(&l, "zzz"), "absent key")
	assert.Equal([]string{"b"}, keys(l))

	unlink(&l, "b")
	assert.Nil(l, "emptied chain is nil")

	assert.Nil(unlink(&l, "b"), "unlink from empty chain")
}

func TestChainPop(t *testing.T) {
	assert := assert.New(t)

	l := chainOf("a", "b")
	e := pop(&l)
	assert.Equal("a", e.key)
	assert.Nil(e.next)
	e = pop(&l)
	assert.Equal("b", e.key)
	assert.Nil(l)
	assert.Nil(pop(&l))
}
