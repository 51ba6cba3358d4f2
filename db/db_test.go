package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/amonks/genremap/data"
	"github.com/amonks/genremap/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *db.DB {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "genremap.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func ptr[T any](v T) *T { return &v }

func tracks(tracks ...data.Track) func(context.Context, func(data.Track) error) error {
	return func(ctx context.Context, fn func(data.Track) error) error {
		for _, track := range tracks {
			if err := fn(track); err != nil {
				return err
			}
		}
		return nil
	}
}

func TestImportTracks(t *testing.T) {
	ctx := context.Background()
	store := open(t)

	in := []data.Track{
		{Genre: "pop", Artists: "['A', 'B']", Features: data.Vector{
			data.FeatureEnergy:   0.5,
			data.FeatureValeance: 0.25,
		}},
		{Genre: "rock", Artists: "[]", Features: data.Vector{}},
	}

	n, err := store.ImportTracks(ctx, tracks(in...))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var out []data.Track
	require.NoError(t, store.EachTrack(ctx, func(track data.Track) error {
		out = append(out, track)
		return nil
	}))
	assert.Equal(t, in, out)

	// a second import replaces the first
	n, err = store.ImportTracks(ctx, tracks(in[1]))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Tracks)
}

func TestImportEmbeddings(t *testing.T) {
	ctx := context.Background()
	store := open(t)

	in := []data.GenreEmbedding{
		{Genre: "pop", X: ptr(1.5), Y: ptr(2.0), Color: ptr("#ffffff")},
		{Genre: "rock", X: ptr(3.0)},
	}
	require.NoError(t, store.ImportEmbeddings(ctx, in))

	out, err := store.Embeddings(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestGraph(t *testing.T) {
	ctx := context.Background()
	store := open(t)

	_, err := store.LoadGraph(ctx)
	assert.ErrorIs(t, err, db.ErrNoGraph)

	g := &data.Graph{
		Nodes: []data.Node{
			{ID: "pop", X: 0, Y: 1000, Color: "#000000", TopArtists: []string{"A"}, Features: data.Vector{"Energy": 0.5}},
			{ID: "rock", X: 1000, Y: 0, Color: "#ffffff", TopArtists: []string{}, Features: data.Vector{}},
		},
		Links: []data.Link{
			{Source: "pop", Target: "rock", Weight: 0.25},
			{Source: "rock", Target: "pop", Weight: 0.25},
		},
	}
	require.NoError(t, store.SaveGraph(ctx, g))
	require.NoError(t, store.SaveGraph(ctx, g))

	out, err := store.LoadGraph(ctx)
	require.NoError(t, err)
	assert.Equal(t, g, out)

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Nodes)
	assert.Equal(t, int64(2), counts.Links)
}
