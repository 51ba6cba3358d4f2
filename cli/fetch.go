package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/amonks/genremap/config"
	"github.com/amonks/genremap/dataset"
	"github.com/amonks/genremap/db"
	"github.com/amonks/genremap/enao"
	"github.com/amonks/genremap/limiter"
	"github.com/amonks/genremap/readthrough"
	"github.com/amonks/genremap/request"
	"github.com/amonks/genremap/subcmd"
)

func fetchGenres(ctx context.Context, args []string) error {
	sc := subcmd.New("fetch-genres", "scrape the genre map from everynoise.com into the genre table\nwith --db, the embeddings are also imported")
	config.Common(sc.FlagSet)
	config.Inputs(sc.FlagSet)
	config.Fetch(sc.FlagSet)
	cfg, log, err := setup(sc, args)
	if err != nil {
		return err
	}
	defer log.Sync()

	lim := limiter.New(filepath.Join(cfg.CacheDir, "genremap-enao-next-at"), time.Second, log)
	if err := lim.Load(); err != nil {
		return err
	}
	client := request.New(readthrough.New(cfg.CacheDir, "genremap-enao"), lim, log)

	log.Infof("start:\tfetching %s", enao.URL)
	embeddings, err := enao.AllGenres(ctx, client)
	if err != nil {
		return err
	}
	log.Infof("done:\t%d genres", len(embeddings))

	if err := dataset.WriteEmbeddingsFile(cfg.Genres, embeddings); err != nil {
		return err
	}
	log.Infof("wrote:\t%s", cfg.Genres)

	if cfg.DB != "" {
		store, err := db.Open(cfg.DB)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.ImportEmbeddings(ctx, embeddings); err != nil {
			return fmt.Errorf("error importing genre embeddings: %w", err)
		}
		log.Infof("imported:\t%s", cfg.DB)
	}

	humanPrinter.Printf("fetched %d genres into %s\n", len(embeddings), cfg.Genres)
	return nil
}
