// Package pipeline runs the genre map build from source tables to graph
// document.
package pipeline

import (
	"context"
	"fmt"

	"github.com/amonks/genremap/aggregate"
	"github.com/amonks/genremap/data"
	"github.com/amonks/genremap/enao"
	"github.com/amonks/genremap/graph"
	"go.uber.org/zap"
)

// A Source provides the two input tables. Both dataset.Files and db.DB are
// sources.
type Source interface {
	EachTrack(ctx context.Context, fn func(data.Track) error) error
	Embeddings(ctx context.Context) ([]data.GenreEmbedding, error)
}

type Options struct {
	// Neighbors queried per genre, counting the genre itself.
	K int

	// Artists kept per genre.
	TopArtists int

	// Upper bound of both normalized axes.
	Range float64

	// Track-table features to average. Empty means all of them.
	Features []string
}

func DefaultOptions() Options {
	return Options{
		K:          graph.DefaultK,
		TopArtists: aggregate.DefaultOptions().TopArtists,
		Range:      1000,
	}
}

// Stats describes a finished run.
type Stats struct {
	Tracks     int
	Genres     int
	Embeddings int
	Incomplete int
	Duplicates int
	Nodes      int
	Links      int
}

// Summarize scans every track once and returns the per-genre summary.
func Summarize(ctx context.Context, src Source, opts Options) (*aggregate.Result, int, error) {
	acc := aggregate.New(aggregate.Options{
		TopArtists: opts.TopArtists,
		Features:   opts.Features,
	})
	var n int
	if err := src.EachTrack(ctx, func(track data.Track) error {
		acc.Add(track)
		n++
		return nil
	}); err != nil {
		return nil, 0, fmt.Errorf("error reading tracks: %w", err)
	}
	return acc.Result(), n, nil
}

// Usable drops embeddings that are missing a field, and every embedding
// after the first complete one for a given genre.
func Usable(embeddings []data.GenreEmbedding, log *zap.SugaredLogger) (usable []data.GenreEmbedding, incomplete, duplicates int) {
	seen := map[string]struct{}{}
	for _, e := range embeddings {
		if !e.Complete() {
			incomplete++
			continue
		}
		if _, dup := seen[e.Genre]; dup {
			log.Warnf("dropping duplicate genre embedding:\t%s", e.Genre)
			duplicates++
			continue
		}
		seen[e.Genre] = struct{}{}
		usable = append(usable, e)
	}
	return usable, incomplete, duplicates
}

// Run builds the genre graph from src.
func Run(ctx context.Context, src Source, opts Options, log *zap.SugaredLogger) (*data.Graph, *Stats, error) {
	if opts.K < 1 {
		return nil, nil, fmt.Errorf("k must be at least 1, got %d", opts.K)
	}
	if opts.TopArtists < 0 {
		return nil, nil, fmt.Errorf("top artists must not be negative, got %d", opts.TopArtists)
	}
	if opts.Range <= 0 {
		return nil, nil, fmt.Errorf("range must be positive, got %g", opts.Range)
	}

	stats := &Stats{}

	log.Infof("start:\taggregating tracks")
	summary, n, err := Summarize(ctx, src, opts)
	if err != nil {
		return nil, nil, err
	}
	stats.Tracks, stats.Genres = n, len(summary.Genres())
	log.Infof("done:\t%d tracks in %d genres", stats.Tracks, stats.Genres)

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("canceled: %w", err)
	}

	log.Infof("start:\treading genre embeddings")
	embeddings, err := src.Embeddings(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading genre embeddings: %w", err)
	}
	usable, incomplete, duplicates := Usable(embeddings, log)
	stats.Embeddings, stats.Incomplete, stats.Duplicates = len(embeddings), incomplete, duplicates
	log.Infof("done:\t%d embeddings, %d incomplete, %d duplicate", len(embeddings), incomplete, duplicates)

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("canceled: %w", err)
	}

	log.Infof("start:\tlinking %d genres", len(usable))
	points := enao.Normalize(usable, opts.Range)
	g := graph.Build(points, summary, opts.K)
	stats.Nodes, stats.Links = len(g.Nodes), len(g.Links)
	log.Infof("done:\t%d nodes, %d links", stats.Nodes, stats.Links)

	return g, stats, nil
}
