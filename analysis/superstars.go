package analysis

import "github.com/amonks/genremap/aggregate"

type Superstar struct {
	Artist string `json:"artist" yaml:"artist"`
	Genre  string `json:"genre" yaml:"genre"`
	Tracks int    `json:"tracks" yaml:"tracks"`
}

type Superstars struct {
	Artists []Superstar       `json:"artists" yaml:"artists"`
	Genres  []aggregate.Count `json:"genres" yaml:"genres"`
}

// Superstars takes the n most credited artists, assigns each to the genre it
// is credited in most often (the first genre it appeared in, on ties), and
// ranks genres by how many of those artists they hold. The leaderboard keeps
// at most leaders genres; leaders < 0 keeps all of them.
func (t *Tally) Superstars(n, leaders int) *Superstars {
	result := &Superstars{Artists: []Superstar{}, Genres: []aggregate.Count{}}

	var board aggregate.Counter
	for _, top := range t.artists.MostCommon(n) {
		genres := t.artistsGenres[top.Key]
		if genres == nil {
			continue
		}
		primary := genres.Top(1)[0]
		result.Artists = append(result.Artists, Superstar{
			Artist: top.Key,
			Genre:  primary,
			Tracks: top.Count,
		})
		board.Add(primary)
	}
	result.Genres = append(result.Genres, board.MostCommon(leaders)...)
	return result
}
