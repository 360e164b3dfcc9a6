package main

import (
	"fmt"
	"strings"

	"github.com/LTrestka/CS351/hashtable"
	"github.com/spf13/pflag"
)

// hashFlag selects the table's hash function by name.
type hashFlag string

var _ pflag.Value = (*hashFlag)(nil)

func (h *hashFlag) String() string { return string(*h) }

func (h *hashFlag) Type() string { return "hash" }

func (h *hashFlag) Set(s string) error {
	switch name := strings.ToLower(s); name {
	case "djb2", "xxhash":
		*h = hashFlag(name)
		return nil
	default:
		return fmt.Errorf("unknown hash %q, want djb2 or xxhash", s)
	}
}

func (h hashFlag) Func() hashtable.HashFunc {
	if h == "xxhash" {
		return hashtable.XXHash
	}
	return hashtable.DJB2
}
