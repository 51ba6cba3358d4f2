// Package analysis ranks genres by the artists credited on their tracks.
package analysis

import (
	"context"
	"fmt"

	"github.com/amonks/genremap/aggregate"
	"github.com/amonks/genremap/artistlist"
	"github.com/amonks/genremap/data"
)

// A Tally counts artist credits over the whole track table: globally, per
// genre, and the genres each artist was credited in.
type Tally struct {
	artists       aggregate.Counter
	genres        map[string]*aggregate.Counter
	artistsGenres map[string]*aggregate.Counter
}

func NewTally() *Tally {
	return &Tally{
		genres:        map[string]*aggregate.Counter{},
		artistsGenres: map[string]*aggregate.Counter{},
	}
}

// Add counts the track's artists. Unparseable artist lists count as empty.
func (t *Tally) Add(track data.Track) {
	artists := artistlist.ParseOrEmpty(track.Artists)

	g, has := t.genres[track.Genre]
	if !has {
		g = &aggregate.Counter{}
		t.genres[track.Genre] = g
	}
	g.Add(artists...)
	t.artists.Add(artists...)

	for _, a := range artists {
		ag, has := t.artistsGenres[a]
		if !has {
			ag = &aggregate.Counter{}
			t.artistsGenres[a] = ag
		}
		ag.Add(track.Genre)
	}
}

// TallyTracks scans every track from each.
func TallyTracks(ctx context.Context, each func(context.Context, func(data.Track) error) error) (*Tally, error) {
	t := NewTally()
	if err := each(ctx, func(track data.Track) error {
		t.Add(track)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("error reading tracks: %w", err)
	}
	return t, nil
}

// Credits returns the number of tracks crediting artist.
func (t *Tally) Credits(artist string) int { return t.artists.Count(artist) }
