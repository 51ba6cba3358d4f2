package graph_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/amonks/genremap/aggregate"
	"github.com/amonks/genremap/data"
	"github.com/amonks/genremap/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line() []data.Point {
	points := make([]data.Point, 5)
	for i := range points {
		points[i] = data.Point{Genre: string(rune('a' + i)), X: float64(i), Color: "#000000"}
	}
	return points
}

func outgoing(links []data.Link, source string) []data.Link {
	var out []data.Link
	for _, l := range links {
		if l.Source == source {
			out = append(out, l)
		}
	}
	return out
}

func TestLinksOnALine(t *testing.T) {
	links := graph.Links(line(), graph.DefaultK)
	assert.Len(t, links, 15)

	mid := outgoing(links, "c")
	require.Len(t, mid, 3)

	targets := []string{mid[0].Target, mid[1].Target}
	sort.Strings(targets)
	assert.Equal(t, []string{"b", "d"}, targets)
	assert.Contains(t, []string{"a", "e"}, mid[2].Target)

	assert.InDelta(t, 0.5, mid[0].Weight, 1e-9)
	assert.InDelta(t, 0.5, mid[1].Weight, 1e-9)
	assert.InDelta(t, 1.0/3, mid[2].Weight, 1e-9)
	assert.Greater(t, mid[1].Weight, mid[2].Weight)
}

func TestLinksDuplicatePositions(t *testing.T) {
	points := []data.Point{
		{Genre: "a", X: 1, Y: 1},
		{Genre: "b", X: 1, Y: 1},
		{Genre: "c", X: 9, Y: 9},
	}
	links := graph.Links(points, graph.DefaultK)

	a := outgoing(links, "a")
	require.Len(t, a, 2)
	assert.Equal(t, data.Link{Source: "a", Target: "b", Weight: 1}, a[0])

	b := outgoing(links, "b")
	require.Len(t, b, 2)
	assert.Equal(t, data.Link{Source: "b", Target: "a", Weight: 1}, b[0])
}

func TestLinksFewPoints(t *testing.T) {
	assert.Empty(t, graph.Links(nil, graph.DefaultK))
	assert.Empty(t, graph.Links([]data.Point{{Genre: "solo"}}, graph.DefaultK))

	links := graph.Links([]data.Point{{Genre: "a"}, {Genre: "b", X: 3, Y: 4}}, graph.DefaultK)
	assert.Equal(t, []data.Link{
		{Source: "a", Target: "b", Weight: 1.0 / 6},
		{Source: "b", Target: "a", Weight: 1.0 / 6},
	}, links)
}

func TestBuild(t *testing.T) {
	summary := aggregate.New(aggregate.DefaultOptions()).AddAll([]data.Track{
		{Genre: "a", Artists: "['x', 'y', 'x']", Features: data.Vector{"Energy": 0.5, "Valeance": 0.1}},
	}).Result()

	g := graph.Build(line(), summary, graph.DefaultK)
	require.Len(t, g.Nodes, 5)
	assert.Equal(t, []string{"x", "y"}, g.Nodes[0].TopArtists)
	assert.Equal(t, data.Vector{"Energy": 0.5, "Valence": 0.1}, g.Nodes[0].Features)

	assert.NotNil(t, g.Nodes[1].TopArtists)
	assert.Empty(t, g.Nodes[1].TopArtists)
	assert.NotNil(t, g.Nodes[1].Features)
	assert.Empty(t, g.Nodes[1].Features)

	ids := map[string]bool{}
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	for _, l := range g.Links {
		assert.True(t, ids[l.Source], l.Source)
		assert.True(t, ids[l.Target], l.Target)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "public", "nested", "genres.json")
	summary := aggregate.New(aggregate.DefaultOptions()).Result()
	g := graph.Build(line(), summary, graph.DefaultK)

	require.NoError(t, graph.Write(filename, g))

	bs, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(bs), `"topArtists":[]`))
	assert.True(t, strings.Contains(string(bs), `"features":{}`))

	read, err := graph.Read(filename)
	require.NoError(t, err)
	assert.Equal(t, g, read)

	entries, err := os.ReadDir(filepath.Dir(filename))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := graph.Write(filepath.Join(blocker, "genres.json"), &data.Graph{})
	assert.Error(t, err)
}
