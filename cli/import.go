package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/amonks/genremap/config"
	"github.com/amonks/genremap/dataset"
	"github.com/amonks/genremap/db"
	"github.com/amonks/genremap/subcmd"
)

func importTables(ctx context.Context, args []string) error {
	sc := subcmd.New("import", "load the track and genre csv tables into a sqlite3 database\nreplaces whatever the database held before")
	config.Common(sc.FlagSet)
	config.Inputs(sc.FlagSet)
	cfg, log, err := setup(sc, args)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.DB == "" {
		return errors.New("import: --db is required")
	}
	store, err := db.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	files := dataset.Files{Tracks: cfg.Tracks, Genres: cfg.Genres}

	log.Infof("start:\timporting %s", cfg.Tracks)
	tracks, err := store.ImportTracks(ctx, files.EachTrack)
	if err != nil {
		return fmt.Errorf("error importing tracks: %w", err)
	}
	log.Infof("done:\t%d tracks", tracks)

	log.Infof("start:\timporting %s", cfg.Genres)
	embeddings, err := files.Embeddings(ctx)
	if err != nil {
		return err
	}
	if err := store.ImportEmbeddings(ctx, embeddings); err != nil {
		return fmt.Errorf("error importing genre embeddings: %w", err)
	}
	log.Infof("done:\t%d genre embeddings", len(embeddings))

	humanPrinter.Printf("imported %d tracks and %d genre embeddings into %s\n", tracks, len(embeddings), cfg.DB)
	return nil
}
