// Package aggregate summarizes the songs table per genre: mean audio features
// and most credited artists.
package aggregate

import (
	"github.com/amonks/genremap/artistlist"
	"github.com/amonks/genremap/data"
)

// Renames applied to feature names once aggregation is done.
var Renames = map[string]string{
	data.FeatureValeance: data.FeatureValence,
}

// Options control what an Accumulator keeps.
type Options struct {
	// Number of artists kept per genre.
	TopArtists int

	// Features to average, by track-table column name. Empty means all of
	// them.
	Features []string
}

// DefaultOptions matches the published genre map.
func DefaultOptions() Options {
	return Options{TopArtists: 20}
}

// An Accumulator collects per-genre sums and artist counts over a single
// scan of the track table.
type Accumulator struct {
	opts   Options
	genres map[string]*genreAcc
	order  []string
}

type genreAcc struct {
	sums    map[string]float64
	counts  map[string]int
	artists Counter
	tracks  int
}

func New(opts Options) *Accumulator {
	return &Accumulator{
		opts:   opts,
		genres: map[string]*genreAcc{},
	}
}

// Add folds one track into its genre's running totals.
func (acc *Accumulator) Add(track data.Track) {
	g, has := acc.genres[track.Genre]
	if !has {
		g = &genreAcc{sums: map[string]float64{}, counts: map[string]int{}}
		acc.genres[track.Genre] = g
		acc.order = append(acc.order, track.Genre)
	}
	g.tracks++

	for k, v := range track.Features.Only(acc.opts.Features...) {
		g.sums[k] += v
		g.counts[k]++
	}

	g.artists.Add(artistlist.ParseOrEmpty(track.Artists)...)
}

// AddAll folds every track in.
func (acc *Accumulator) AddAll(tracks []data.Track) *Accumulator {
	for _, track := range tracks {
		acc.Add(track)
	}
	return acc
}

// Result computes the summaries. The accumulator can keep accepting tracks
// afterwards; earlier results are unaffected.
func (acc *Accumulator) Result() *Result {
	res := &Result{
		features: make(map[string]data.Vector, len(acc.genres)),
		artists:  make(map[string][]string, len(acc.genres)),
		tracks:   make(map[string]int, len(acc.genres)),
		genres:   append([]string(nil), acc.order...),
	}
	for name, g := range acc.genres {
		means := data.Vector{}
		for k, sum := range g.sums {
			if g.counts[k] == 0 {
				continue
			}
			means[k] = sum / float64(g.counts[k])
		}
		res.features[name] = rename(means)
		res.artists[name] = g.artists.Top(acc.opts.TopArtists)
		res.tracks[name] = g.tracks
	}
	return res
}

func rename(v data.Vector) data.Vector {
	for from, to := range Renames {
		if value, has := v[from]; has {
			delete(v, from)
			v[to] = value
		}
	}
	return v
}

// A Result holds per-genre summaries. Lookups for unknown genres return empty,
// non-nil values.
type Result struct {
	features map[string]data.Vector
	artists  map[string][]string
	tracks   map[string]int
	genres   []string
}

// Features returns a copy of the genre's mean features.
func (res *Result) Features(genre string) data.Vector {
	v, has := res.features[genre]
	if !has {
		return data.Vector{}
	}
	return v.Only()
}

// TopArtists returns a copy of the genre's most credited artists.
func (res *Result) TopArtists(genre string) []string {
	return append([]string{}, res.artists[genre]...)
}

// Tracks returns the number of tracks seen for the genre.
func (res *Result) Tracks(genre string) int { return res.tracks[genre] }

// Genres lists every genre seen, in first-seen order.
func (res *Result) Genres() []string { return append([]string(nil), res.genres...) }
