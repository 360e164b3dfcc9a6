package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/LTrestka/CS351/hashtable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.0.1"

type config struct {
	Buckets  uint64
	Hash     hashFlag
	Loglevel string
}

var (
	cfg     = config{Hash: "djb2"}
	rootCmd = &cobra.Command{
		Use:     "htable",
		Short:   "htable",
		Long:    "Drive a chained hash table from the command line",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogLevel(cfg.Loglevel)
		},
	}
)

func init() {
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stdout)

	rootCmd.PersistentFlags().Uint64VarP(&cfg.Buckets, "buckets", "b", 16, "Initial number of bucket slots")
	rootCmd.PersistentFlags().VarP(&cfg.Hash, "hash", "H", "Hash function, djb2 or xxhash")
	rootCmd.PersistentFlags().StringVarP(&cfg.Loglevel, "loglevel", "o", "info", "Loglevel, e.g., INFO, DEBUG, . . .")

	rootCmd.AddCommand(runCmd, statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}

func newTable(c config) (*hashtable.Table[string], error) {
	t, err := hashtable.New[string](c.Buckets,
		hashtable.WithHash[string](c.Hash.Func()),
		hashtable.WithLogger[string](log.StandardLogger()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return t, nil
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "all":
		log.SetLevel(log.DebugLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
		fmt.Printf("Invalid log level '%s'. Setting log level to 'info'\n", level)
	}

	log.SetOutput(os.Stderr)
}
