package hashtable

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Option[V any] func(*Table[V])

// WithHash replaces the default DJB2 hash.
func WithHash[V any](h HashFunc) Option[V] {
	return func(t *Table[V]) {
		t.hash = h
	}
}

// WithLogger sets the logger used for debug tracing of table operations.
func WithLogger[V any](l *logrus.Logger) Option[V] {
	return func(t *Table[V]) {
		t.log = l
	}
}

// WithRelease registers a hook the table calls whenever it drops a value it
// owns: the previous value when Put replaces a key, and every entry on
// Destroy. Values handed back by Delete are not released.
func WithRelease[V any](release func(key string, val V)) Option[V] {
	return func(t *Table[V]) {
		t.release = release
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
