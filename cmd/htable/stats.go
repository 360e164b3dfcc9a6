package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/LTrestka/CS351/hashtable"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	statsKeys   int
	statsUUID   bool
	statsRehash uint64
	statsBins   int

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Load generated keys and report the chain length distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			t, err := newTable(cfg)
			if err != nil {
				return err
			}
			defer t.Destroy()

			for _, k := range genKeys(statsKeys, statsUUID) {
				t.Put(k, k)
			}
			log.Infof("loaded %d keys", t.Len())

			out := cmd.OutOrStdout()
			if err := printStats(out, t, statsBins); err != nil {
				return err
			}

			if statsRehash > 0 {
				if err := t.Rehash(statsRehash); err != nil {
					return fmt.Errorf("failed to rehash: %w", err)
				}
				log.Infof("rehashed to %d buckets", statsRehash)
				return printStats(out, t, statsBins)
			}
			return nil
		},
	}
)

func init() {
	statsCmd.Flags().IntVarP(&statsKeys, "keys", "n", 1000, "Number of keys to insert")
	statsCmd.Flags().BoolVarP(&statsUUID, "uuid", "u", false, "Use random UUIDs instead of sequential keys")
	statsCmd.Flags().Uint64VarP(&statsRehash, "rehash", "r", 0, "Rehash to this many buckets after loading (0 to skip)")
	statsCmd.Flags().IntVar(&statsBins, "bins", 5, "Number of histogram bins")
}

func genKeys(n int, random bool) []string {
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if random {
			keys = append(keys, uuid.NewString())
		} else {
			keys = append(keys, fmt.Sprintf("key-%d", i))
		}
	}
	return keys
}

func printStats(w io.Writer, t *hashtable.Table[string], bins int) error {
	lens := t.ChainLengths()

	var (
		empty   = 0
		samples = make([]float64, len(lens))
	)
	for i, l := range lens {
		if l == 0 {
			empty++
		}
		samples[i] = float64(l)
	}

	fmt.Fprintf(w, "entries=%d buckets=%d load=%.2f longest=%d empty=%d\n",
		t.Len(), t.Buckets(), t.LoadFactor(), slices.Max(lens), empty)
	fmt.Fprintln(w, "chain length histogram")

	h := histogram.Hist(bins, samples)
	return histogram.Fprint(w, h, histogram.Linear(40))
}
