// Package graph assembles the genre map document: one node per genre and
// links from each genre to its nearest neighbors on the map.
package graph

import (
	"github.com/amonks/genremap/aggregate"
	"github.com/amonks/genremap/data"
	"github.com/amonks/genremap/kdtree"
)

// DefaultK links each genre to its three nearest neighbors; the query
// includes the genre itself.
const DefaultK = 4

// Links connects each point to its k-1 nearest other points, weighting each
// link by 1/(distance+1). Points with the same position are linked with
// weight 1. With fewer than k points, every point links to all the others.
func Links(points []data.Point, k int) []data.Link {
	coords := make([]kdtree.Point, len(points))
	for i, p := range points {
		coords[i] = kdtree.Point{X: p.X, Y: p.Y}
	}
	tree := kdtree.New(coords)

	links := make([]data.Link, 0, len(points)*max(k-1, 0))
	for i, p := range points {
		self := i
		neighbors := tree.Nearest(coords[i], k-1, func(j int) bool { return j == self })
		for _, nb := range neighbors {
			links = append(links, data.Link{
				Source: p.Genre,
				Target: points[nb.Index].Genre,
				Weight: 1 / (nb.Distance + 1),
			})
		}
	}
	return links
}

// Nodes merges each point with its genre's summary. Genres without tracks get
// empty features and artists.
func Nodes(points []data.Point, summary *aggregate.Result) []data.Node {
	nodes := make([]data.Node, len(points))
	for i, p := range points {
		nodes[i] = data.Node{
			ID:         p.Genre,
			X:          p.X,
			Y:          p.Y,
			Color:      p.Color,
			TopArtists: summary.TopArtists(p.Genre),
			Features:   summary.Features(p.Genre),
		}
	}
	return nodes
}

// Build assembles the full document.
func Build(points []data.Point, summary *aggregate.Result, k int) *data.Graph {
	return &data.Graph{
		Nodes: Nodes(points, summary),
		Links: Links(points, k),
	}
}
