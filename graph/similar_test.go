package graph_test

import (
	"testing"

	"github.com/amonks/genremap/data"
	"github.com/amonks/genremap/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func featureGraph() *data.Graph {
	node := func(id string, energy, tempo float64) data.Node {
		return data.Node{ID: id, Features: data.Vector{"Energy": energy, "Tempo": tempo}}
	}
	return &data.Graph{Nodes: []data.Node{
		node("a", 0, 0),
		node("b", 1, 0),
		node("c", 2, 0),
		node("d", 3, 0),
		node("e", 4, 0),
		{ID: "silent", Features: data.Vector{}},
		node("b2", 1, 0),
	}}
}

func TestSimilar(t *testing.T) {
	matches, err := graph.Similar(featureGraph(), "a", 3)
	require.NoError(t, err)
	assert.Equal(t, []graph.Match{
		{Genre: "b", Distance: 1},
		{Genre: "b2", Distance: 1},
		{Genre: "c", Distance: 2},
	}, matches)

	all, err := graph.Similar(featureGraph(), "c", -1)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = graph.Similar(featureGraph(), "missing", 3)
	assert.Error(t, err)
	_, err = graph.Similar(featureGraph(), "silent", 3)
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	walk, err := graph.Walk(featureGraph(), "a", "e", 4)
	require.NoError(t, err)

	var genres []string
	for _, m := range walk {
		genres = append(genres, m.Genre)
		assert.InDelta(t, 0, m.Distance, 1e-9)
	}
	assert.Equal(t, []string{"b", "c", "d", "e"}, genres)

	_, err = graph.Walk(featureGraph(), "a", "e", 0)
	assert.Error(t, err)
	_, err = graph.Walk(featureGraph(), "a", "silent", 2)
	assert.Error(t, err)
}
