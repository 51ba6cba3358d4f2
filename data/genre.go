package data

// A GenreEmbedding is one row of the genres table: a genre's position and
// color on the everynoise.com map.
//
// Any of the fields may be missing in the source table.
type GenreEmbedding struct {
	// like "pop"
	Genre string

	// Raw map coordinates, in whatever units the source used.
	X, Y *float64

	// like "#389fb1"
	Color *string
}

// Complete reports whether the embedding has everything needed to become a
// node in the genre graph.
func (e GenreEmbedding) Complete() bool {
	return e.Genre != "" && e.X != nil && e.Y != nil && e.Color != nil
}

// A Point is a genre's position after normalization.
type Point struct {
	Genre string
	X, Y  float64
	Color string
}
