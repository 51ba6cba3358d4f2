package db

import (
	"github.com/amonks/genremap/data"
)

type trackRow struct {
	ID      int64
	Genre   string
	Artists string

	Danceability     *float64
	Energy           *float64
	Acousticness     *float64
	Instrumentalness *float64
	Valeance         *float64
	Tempo            *float64
	Loudness         *float64
	Speechiness      *float64
}

func (trackRow) TableName() string { return "tracks" }

func (row *trackRow) columns() map[string]**float64 {
	return map[string]**float64{
		data.FeatureDanceability:     &row.Danceability,
		data.FeatureEnergy:           &row.Energy,
		data.FeatureAcousticness:     &row.Acousticness,
		data.FeatureInstrumentalness: &row.Instrumentalness,
		data.FeatureValeance:         &row.Valeance,
		data.FeatureTempo:            &row.Tempo,
		data.FeatureLoudness:         &row.Loudness,
		data.FeatureSpeechiness:      &row.Speechiness,
	}
}

func newTrackRow(track data.Track) trackRow {
	row := trackRow{Genre: track.Genre, Artists: track.Artists}
	for feature, col := range row.columns() {
		if v, has := track.Features[feature]; has {
			*col = &v
		}
	}
	return row
}

func (row trackRow) track() data.Track {
	track := data.Track{Genre: row.Genre, Artists: row.Artists, Features: data.Vector{}}
	for feature, col := range row.columns() {
		if *col != nil {
			track.Features[feature] = **col
		}
	}
	return track
}

type embeddingRow struct {
	ID        int64
	Genre     string
	X, Y      *float64
	HexColour *string
}

func (embeddingRow) TableName() string { return "genre_embeddings" }

func newEmbeddingRow(e data.GenreEmbedding) embeddingRow {
	return embeddingRow{Genre: e.Genre, X: e.X, Y: e.Y, HexColour: e.Color}
}

func (row embeddingRow) embedding() data.GenreEmbedding {
	return data.GenreEmbedding{Genre: row.Genre, X: row.X, Y: row.Y, Color: row.HexColour}
}

type nodeRow struct {
	Position   int64 `gorm:"primaryKey;autoIncrement:false"`
	Genre      string
	X, Y       float64
	Color      string
	TopArtists []string    `gorm:"serializer:json"`
	Features   data.Vector `gorm:"serializer:json"`
}

func (nodeRow) TableName() string { return "genre_nodes" }

type linkRow struct {
	ID     int64
	Source string
	Target string
	Weight float64
}

func (linkRow) TableName() string { return "genre_links" }
