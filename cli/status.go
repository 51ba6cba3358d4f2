package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/amonks/genremap/config"
	"github.com/amonks/genremap/db"
	"github.com/amonks/genremap/subcmd"
)

func status(ctx context.Context, args []string) error {
	sc := subcmd.New("status", "report what a genremap database holds")
	config.Common(sc.FlagSet)
	config.Inputs(sc.FlagSet)
	cfg, log, err := setup(sc, args)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.DB == "" {
		return errors.New("status: --db is required")
	}
	store, err := db.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	counts, err := store.Counts(ctx)
	if err != nil {
		return err
	}

	printStatus(os.Stdout, counts)
	return nil
}

type count struct {
	name string
	n    int64
}

func printStatus(w io.Writer, counts *db.Counts) {
	printSection(w, "imported", []count{
		{"tracks", counts.Tracks},
		{"genre embeddings", counts.Embeddings},
	})
	printSection(w, "graph", []count{
		{"nodes", counts.Nodes},
		{"links", counts.Links},
	})
}

func printSection(w io.Writer, name string, counts []count) {
	humanPrinter.Fprintf(w, "%s\n", strings.ToUpper(name))
	for _, c := range counts {
		humanPrinter.Fprintf(w, "  %d\t%s\n", c.n, c.name)
	}
	humanPrinter.Fprintf(w, "\n")
}
