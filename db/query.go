package db

import (
	"context"
	"fmt"

	"github.com/amonks/genremap/data"
	"gorm.io/gorm"
)

// EachTrack calls fn with every imported track, in import order.
func (db *DB) EachTrack(ctx context.Context, fn func(data.Track) error) error {
	var rows []trackRow
	if err := db.WithContext(ctx).
		FindInBatches(&rows, batchSize, func(tx *gorm.DB, batch int) error {
			for _, row := range rows {
				if err := fn(row.track()); err != nil {
					return err
				}
			}
			return nil
		}).
		Error; err != nil {
		return fmt.Errorf("error reading tracks: %w", err)
	}
	return nil
}

// Embeddings returns every imported genre embedding, in import order.
func (db *DB) Embeddings(ctx context.Context) ([]data.GenreEmbedding, error) {
	var rows []embeddingRow
	if err := db.WithContext(ctx).
		Order("id").
		Find(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error reading genre embeddings: %w", err)
	}
	embeddings := make([]data.GenreEmbedding, len(rows))
	for i, row := range rows {
		embeddings[i] = row.embedding()
	}
	return embeddings, nil
}

type Counts struct {
	Tracks     int64
	Embeddings int64
	Nodes      int64
	Links      int64
}

func (db *DB) Counts(ctx context.Context) (*Counts, error) {
	var counts Counts
	for table, count := range map[string]*int64{
		"tracks":           &counts.Tracks,
		"genre_embeddings": &counts.Embeddings,
		"genre_nodes":      &counts.Nodes,
		"genre_links":      &counts.Links,
	} {
		if err := db.WithContext(ctx).
			Table(table).
			Count(count).
			Error; err != nil {
			return nil, fmt.Errorf("error counting %s: %w", table, err)
		}
	}
	return &counts, nil
}
