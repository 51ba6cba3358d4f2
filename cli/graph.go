package main

import (
	"context"
	"fmt"

	"github.com/amonks/genremap/config"
	"github.com/amonks/genremap/graph"
	"github.com/amonks/genremap/pipeline"
	"github.com/amonks/genremap/subcmd"
)

func buildGraph(ctx context.Context, args []string) error {
	sc := subcmd.New("graph", "build the genre map document from the track and genre tables\nwith --db, the graph is also saved to the database")
	config.Common(sc.FlagSet)
	config.Inputs(sc.FlagSet)
	config.Graph(sc.FlagSet)
	cfg, log, err := setup(sc, args)
	if err != nil {
		return err
	}
	defer log.Sync()

	src, store, err := openSource(cfg, log)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	g, stats, err := pipeline.Run(ctx, src, pipeline.Options{
		K:          cfg.K,
		TopArtists: cfg.TopArtists,
		Range:      cfg.Range,
		Features:   cfg.Features,
	}, log)
	if err != nil {
		return fmt.Errorf("error building graph: %w", err)
	}

	if err := graph.Write(cfg.Output, g); err != nil {
		return err
	}
	log.Infof("wrote:\t%s", cfg.Output)

	if store != nil {
		if err := store.SaveGraph(ctx, g); err != nil {
			return fmt.Errorf("error saving graph: %w", err)
		}
		log.Infof("saved:\t%s", cfg.DB)
	}

	humanPrinter.Printf("%d tracks in %d genres\n", stats.Tracks, stats.Genres)
	humanPrinter.Printf("%d genre embeddings (%d incomplete, %d duplicate)\n", stats.Embeddings, stats.Incomplete, stats.Duplicates)
	humanPrinter.Printf("%d nodes, %d links\n", stats.Nodes, stats.Links)
	return nil
}
