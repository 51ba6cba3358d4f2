package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/amonks/genremap/config"
	"github.com/amonks/genremap/graph"
	"github.com/amonks/genremap/subcmd"
)

func path(ctx context.Context, args []string) error {
	sc := subcmd.New("path", "walk a straight line through feature space between two genres\nreads the graph written by 'genremap graph'")
	config.Common(sc.FlagSet)
	config.Inputs(sc.FlagSet)
	config.Document(sc.FlagSet)
	var (
		from   = sc.String("from", "", "genre to start from (required)")
		to     = sc.String("to", "", "genre to end at (required)")
		steps  = sc.Int("steps", 5, "number of steps on the path")
		format = formatFlag(sc)
	)
	cfg, log, err := setup(sc, args)
	if err != nil {
		return err
	}
	defer log.Sync()

	if *from == "" || *to == "" {
		return errors.New("path: --from and --to are required")
	}

	g, err := loadGraph(ctx, cfg)
	if err != nil {
		return err
	}

	walk, err := graph.Walk(g, *from, *to, *steps)
	if err != nil {
		return fmt.Errorf("error walking from '%s' to '%s': %w", *from, *to, err)
	}

	rows := make([][]string, 0, len(walk)+1)
	rows = append(rows, []string{"0", *from, fmt.Sprintf("%f", 0.0)})
	for i, m := range walk {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), m.Genre, fmt.Sprintf("%f", m.Distance)})
	}
	return report{
		v:      walk,
		header: []string{"step", "genre", "distance"},
		rows:   rows,
	}.write(os.Stdout, *format)
}
