package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/amonks/genremap/data"
	"gorm.io/gorm"
)

var ErrNoGraph = errors.New("no graph saved")

// SaveGraph replaces the stored graph with g.
func (db *DB) SaveGraph(ctx context.Context, g *data.Graph) error {
	nodes := make([]nodeRow, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = nodeRow{
			Position:   int64(i + 1),
			Genre:      n.ID,
			X:          n.X,
			Y:          n.Y,
			Color:      n.Color,
			TopArtists: n.TopArtists,
			Features:   n.Features,
		}
	}
	links := make([]linkRow, len(g.Links))
	for i, l := range g.Links {
		links[i] = linkRow{Source: l.Source, Target: l.Target, Weight: l.Weight}
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("delete from genre_links").Error; err != nil {
			return fmt.Errorf("error clearing links: %w", err)
		}
		if err := tx.Exec("delete from genre_nodes").Error; err != nil {
			return fmt.Errorf("error clearing nodes: %w", err)
		}
		if len(nodes) > 0 {
			if err := tx.CreateInBatches(&nodes, batchSize).Error; err != nil {
				return fmt.Errorf("error inserting nodes: %w", err)
			}
		}
		if len(links) > 0 {
			if err := tx.CreateInBatches(&links, batchSize).Error; err != nil {
				return fmt.Errorf("error inserting links: %w", err)
			}
		}
		return nil
	})
}

// LoadGraph reads back the graph stored by SaveGraph.
func (db *DB) LoadGraph(ctx context.Context) (*data.Graph, error) {
	var nodes []nodeRow
	if err := db.WithContext(ctx).
		Order("position").
		Find(&nodes).
		Error; err != nil {
		return nil, fmt.Errorf("error reading nodes: %w", err)
	}
	if len(nodes) == 0 {
		return nil, ErrNoGraph
	}

	var links []linkRow
	if err := db.WithContext(ctx).
		Order("id").
		Find(&links).
		Error; err != nil {
		return nil, fmt.Errorf("error reading links: %w", err)
	}

	g := &data.Graph{
		Nodes: make([]data.Node, len(nodes)),
		Links: make([]data.Link, len(links)),
	}
	for i, n := range nodes {
		g.Nodes[i] = data.Node{
			ID:         n.Genre,
			X:          n.X,
			Y:          n.Y,
			Color:      n.Color,
			TopArtists: n.TopArtists,
			Features:   n.Features,
		}
		if g.Nodes[i].TopArtists == nil {
			g.Nodes[i].TopArtists = []string{}
		}
		if g.Nodes[i].Features == nil {
			g.Nodes[i].Features = data.Vector{}
		}
	}
	for i, l := range links {
		g.Links[i] = data.Link{Source: l.Source, Target: l.Target, Weight: l.Weight}
	}
	return g, nil
}
