package main

import (
	"context"
	"fmt"

	"github.com/amonks/genremap/config"
	"github.com/amonks/genremap/data"
	"github.com/amonks/genremap/dataset"
	"github.com/amonks/genremap/db"
	"github.com/amonks/genremap/graph"
	"github.com/amonks/genremap/logger"
	"github.com/amonks/genremap/pipeline"
	"github.com/amonks/genremap/subcmd"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var humanPrinter = message.NewPrinter(language.English)

// setup parses args, then resolves the config and builds the logger.
func setup(sc *subcmd.Subcommand, args []string) (*config.Config, *zap.SugaredLogger, error) {
	if err := sc.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("flag parsing err: %w", err)
	}
	cfg, err := config.Load(sc.FlagSet)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File != "" {
		log.Debugf("config:\t%s", cfg.File)
	}
	return cfg, log, nil
}

// openSource returns the sqlite3 store if one is configured and the csv
// files otherwise. The returned store is nil for csv files.
func openSource(cfg *config.Config, log *zap.SugaredLogger) (pipeline.Source, *db.DB, error) {
	if cfg.DB == "" {
		log.Debugf("source:\t%s, %s", cfg.Tracks, cfg.Genres)
		return dataset.Files{Tracks: cfg.Tracks, Genres: cfg.Genres}, nil, nil
	}
	log.Debugf("source:\t%s", cfg.DB)
	store, err := db.Open(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	return store, store, nil
}

// loadGraph reads the graph saved in the store if one is configured, and the
// graph document otherwise.
func loadGraph(ctx context.Context, cfg *config.Config) (*data.Graph, error) {
	if cfg.DB == "" {
		return graph.Read(cfg.Output)
	}
	store, err := db.Open(cfg.DB)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.LoadGraph(ctx)
}
