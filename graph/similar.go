package graph

import (
	"fmt"
	"sort"

	"github.com/amonks/genremap/data"
)

// A Match is a genre and its distance, in feature space, from some query.
type Match struct {
	Genre    string  `json:"genre" yaml:"genre"`
	Distance float64 `json:"distance" yaml:"distance"`
}

// Find returns the node with the given id.
func Find(g *data.Graph, genre string) (*data.Node, error) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == genre {
			return &g.Nodes[i], nil
		}
	}
	return nil, fmt.Errorf("no genre '%s' in graph", genre)
}

// rank returns every node with features other than skip, closest to target
// first. Equal distances keep node order.
func rank(g *data.Graph, target data.Vector, skip string) []Match {
	var matches []Match
	for _, n := range g.Nodes {
		if n.ID == skip || len(n.Features) == 0 {
			continue
		}
		matches = append(matches, Match{Genre: n.ID, Distance: target.Distance(n.Features)})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Distance < matches[j].Distance })
	return matches
}

// Similar lists the count genres whose mean features are closest to genre's.
func Similar(g *data.Graph, genre string, count int) ([]Match, error) {
	node, err := Find(g, genre)
	if err != nil {
		return nil, err
	}
	if len(node.Features) == 0 {
		return nil, fmt.Errorf("genre '%s' has no features", genre)
	}
	matches := rank(g, node.Features, genre)
	if count >= 0 && count < len(matches) {
		matches = matches[:count]
	}
	return matches, nil
}

// Walk steps in a straight line through feature space from one genre to
// another, and returns the genre closest to each step. The last step is the
// destination itself.
func Walk(g *data.Graph, from, to string, steps int) ([]Match, error) {
	if steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1, got %d", steps)
	}
	a, err := Find(g, from)
	if err != nil {
		return nil, err
	}
	b, err := Find(g, to)
	if err != nil {
		return nil, err
	}
	if len(a.Features) == 0 || len(b.Features) == 0 {
		return nil, fmt.Errorf("'%s' and '%s' need features to walk between", from, to)
	}

	start := a.Features.Only(a.Features.Delta(b.Features).Keys()...)
	path := start.Path(start.Delta(b.Features), steps)
	walk := make([]Match, len(path))
	for i, point := range path {
		walk[i] = rank(g, point, "")[0]
	}
	return walk, nil
}
