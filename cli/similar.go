package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amonks/genremap/config"
	"github.com/amonks/genremap/graph"
	"github.com/amonks/genremap/subcmd"
)

func similar(ctx context.Context, args []string) error {
	sc := subcmd.New("similar", "list the genres whose mean audio features are closest to the given genre's\nreads the graph written by 'genremap graph'")
	sc.SetArg("genre", "string", "genre name, like 'dark clubbing' (required)")
	config.Common(sc.FlagSet)
	config.Inputs(sc.FlagSet)
	config.Document(sc.FlagSet)
	var (
		count  = sc.Int("count", 10, "number of genres to list")
		format = formatFlag(sc)
	)
	cfg, log, err := setup(sc, args)
	if err != nil {
		return err
	}
	defer log.Sync()

	genre, err := sc.RequireArg()
	if err != nil {
		return err
	}

	g, err := loadGraph(ctx, cfg)
	if err != nil {
		return err
	}

	matches, err := graph.Similar(g, genre, *count)
	if err != nil {
		return err
	}

	rows := make([][]string, len(matches))
	for i, m := range matches {
		rows[i] = []string{m.Genre, fmt.Sprintf("%f", m.Distance)}
	}
	return report{
		v:      matches,
		header: []string{"genre", "distance"},
		rows:   rows,
	}.write(os.Stdout, *format)
}
