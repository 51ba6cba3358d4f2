package db

import (
	"context"
	"fmt"

	"github.com/amonks/genremap/data"
	"gorm.io/gorm"
)

const batchSize = 1000

// ImportTracks replaces the tracks table with every track yielded by each.
func (db *DB) ImportTracks(ctx context.Context, each func(context.Context, func(data.Track) error) error) (int, error) {
	var count int
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("delete from tracks").Error; err != nil {
			return fmt.Errorf("error clearing tracks: %w", err)
		}

		batch := make([]trackRow, 0, batchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := tx.Create(&batch).Error; err != nil {
				return fmt.Errorf("error inserting tracks: %w", err)
			}
			batch = batch[:0]
			return nil
		}

		if err := each(ctx, func(track data.Track) error {
			batch = append(batch, newTrackRow(track))
			count++
			if len(batch) == batchSize {
				return flush()
			}
			return nil
		}); err != nil {
			return err
		}
		return flush()
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ImportEmbeddings replaces the genre_embeddings table.
func (db *DB) ImportEmbeddings(ctx context.Context, embeddings []data.GenreEmbedding) error {
	rows := make([]embeddingRow, len(embeddings))
	for i, e := range embeddings {
		rows[i] = newEmbeddingRow(e)
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("delete from genre_embeddings").Error; err != nil {
			return fmt.Errorf("error clearing genre embeddings: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&rows, batchSize).Error; err != nil {
			return fmt.Errorf("error inserting genre embeddings: %w", err)
		}
		return nil
	})
}
