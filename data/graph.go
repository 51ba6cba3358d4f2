package data

// A Graph is the document consumed by the force-directed genre map.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// A Node is one genre.
type Node struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`

	// Most credited artists first. Never nil.
	TopArtists []string `json:"topArtists"`

	// Mean audio features of the genre's tracks. Never nil; empty when the
	// genre has no tracks.
	Features Vector `json:"features"`
}

// A Link points from a genre to one of its nearest neighbors on the map.
type Link struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}
