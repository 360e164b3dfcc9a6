package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/LTrestka/CS351/hashtable"
	"github.com/emirpasic/gods/trees/redblacktree"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var help = [9][2]string{
	{"put", "stores a value under a key (key value)"},
	{"get", "prints the value stored under a key (key)"},
	{"del", "removes a key (key)"},
	{"rehash", "resizes the bucket array (buckets)"},
	{"dump", "prints every pair in table order"},
	{"sorted", "prints every pair sorted by key"},
	{"len", "prints entry count, bucket count and load factor"},
	{"check", "verifies the table invariants"},
	{"help", "print this help"},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute table commands read from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		t, err := newTable(cfg)
		if err != nil {
			return err
		}
		defer t.Destroy()

		s := &session{table: t, out: cmd.OutOrStdout()}
		in := bufio.NewScanner(cmd.InOrStdin())
		for in.Scan() {
			if err := s.exec(in.Text()); err != nil {
				log.Errorf("%v", err)
			}
		}
		return in.Err()
	},
}

var errUsage = errors.New("usage")

type session struct {
	table *hashtable.Table[string]
	out   io.Writer
}

func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch cmd, args := fields[0], fields[1:]; cmd {
	case "put":
		if len(args) < 2 {
			return fmt.Errorf("%w: put <key> <value>", errUsage)
		}
		s.table.Put(args[0], strings.Join(args[1:], " "))
	case "get":
		if len(args) != 1 {
			return fmt.Errorf("%w: get <key>", errUsage)
		}
		if v, ok := s.table.Get(args[0]); ok {
			fmt.Fprintln(s.out, v)
		} else {
			fmt.Fprintln(s.out, "not found")
		}
	case "del":
		if len(args) != 1 {
			return fmt.Errorf("%w: del <key>", errUsage)
		}
		if _, ok := s.table.Delete(args[0]); ok {
			fmt.Fprintln(s.out, "deleted")
		} else {
			fmt.Fprintln(s.out, "not found")
		}
	case "rehash":
		if len(args) != 1 {
			return fmt.Errorf("%w: rehash <buckets>", errUsage)
		}
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid bucket count: %w", err)
		}
		if err := s.table.Rehash(n); err != nil {
			return err
		}
	case "dump":
		s.table.Iterate(func(key, val string) bool {
			fmt.Fprintf(s.out, "%s=%s\n", key, val)
			return true
		})
	case "sorted":
		sortedDump(s.table, s.out)
	case "len":
		fmt.Fprintf(s.out, "entries=%d buckets=%d load=%.2f\n",
			s.table.Len(), s.table.Buckets(), s.table.LoadFactor())
	case "check":
		if err := s.table.Check(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "ok")
	case "help":
		for _, h := range help {
			fmt.Fprintf(s.out, "%-8s %s\n", h[0], h[1])
		}
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func sortedDump(t *hashtable.Table[string], w io.Writer) {
	tree := redblacktree.NewWithStringComparator()
	t.Iterate(func(key, val string) bool {
		tree.Put(key, val)
		return true
	})

	it := tree.Iterator()
	for it.Next() {
		fmt.Fprintf(w, "%s=%s\n", it.Key(), it.Value())
	}
}
