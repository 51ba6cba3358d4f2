package enao

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/amonks/genremap/data"
	"github.com/amonks/genremap/request"
)

// AllGenres extracts every genre's position and color from the visualization
// at everynoise.com.
func AllGenres(ctx context.Context, client *request.Client) ([]data.GenreEmbedding, error) {
	visualization, err := FetchVisualization(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("error fetching enao visualization: %w", err)
	}

	return visualization.ToEmbeddings(), nil
}

// A Visualization represents the genres placed on the everynoise.com map,
// along with the range of positions they occupy.
type Visualization struct {
	Genres []Genre

	MinTop, MaxTop   int64
	MinLeft, MaxLeft int64
}

// NewVisualization computes the position range of the given genres.
func NewVisualization(genres []Genre) *Visualization {
	vis := &Visualization{Genres: genres}

	vis.MinTop, vis.MinLeft = -1, -1
	for _, genre := range vis.Genres {
		if genre.Top < vis.MinTop || vis.MinTop < 0 {
			vis.MinTop = genre.Top
		}
		if genre.Top > vis.MaxTop {
			vis.MaxTop = genre.Top
		}
		if genre.Left < vis.MinLeft || vis.MinLeft < 0 {
			vis.MinLeft = genre.Left
		}
		if genre.Left > vis.MaxLeft {
			vis.MaxLeft = genre.Left
		}
	}

	return vis
}

// ToEmbeddings converts the visualization into rows of the genres table. The
// x coordinate is the genre's "left" offset and y is its "top" offset, in
// pixels.
func (vis *Visualization) ToEmbeddings() []data.GenreEmbedding {
	out := make([]data.GenreEmbedding, len(vis.Genres))
	for i, genre := range vis.Genres {
		x, y := float64(genre.Left), float64(genre.Top)
		color := "#" + strings.ToLower(genre.Color)
		out[i] = data.GenreEmbedding{
			Genre: genre.Name,
			X:     &x,
			Y:     &y,
			Color: &color,
		}
	}
	return out
}

// A Genre represents a genre parsed from the visualization on the ENAO website.
type Genre struct {
	// like "pop"
	Name string

	// like "3nzVSyaYk0KNrahyNQS0Ur"
	Key string

	// Like `Budapest Chorus "Let the Light Shine on Me"`
	Example string

	// From the rendering on the ENAO website. Like 389fb1.
	Color string

	// From the rendering on the ENAO website. Y-position ("top") encodes
	// organicness, X-position ("left") encodes bounciness, Font size
	// encodes popularity.
	Top, Left, FontSize int64
}

// Normalize rescales the positions of complete embeddings into
// [0, scale] on both axes, preserving their order. Incomplete embeddings are
// skipped.
//
// If every point shares the same coordinate on an axis, that axis collapses
// to 0 for every point.
func Normalize(embeddings []data.GenreEmbedding, scale float64) []data.Point {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	var complete []data.GenreEmbedding
	for _, e := range embeddings {
		if !e.Complete() {
			continue
		}
		complete = append(complete, e)
		minX, maxX = math.Min(minX, *e.X), math.Max(maxX, *e.X)
		minY, maxY = math.Min(minY, *e.Y), math.Max(maxY, *e.Y)
	}

	points := make([]data.Point, len(complete))
	for i, e := range complete {
		points[i] = data.Point{
			Genre: e.Genre,
			X:     normalize(minX, maxX, *e.X, scale),
			Y:     normalize(minY, maxY, *e.Y, scale),
			Color: *e.Color,
		}
	}
	return points
}

func normalize(min, max, value, scale float64) float64 {
	span := max - min
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 0
	}
	return (value - min) / span * scale
}
