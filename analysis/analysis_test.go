package analysis_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/amonks/genremap/aggregate"
	"github.com/amonks/genremap/analysis"
	"github.com/amonks/genremap/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tally(tracks ...data.Track) *analysis.Tally {
	t := analysis.NewTally()
	for _, track := range tracks {
		t.Add(track)
	}
	return t
}

func track(genre, artists string) data.Track {
	return data.Track{Genre: genre, Artists: artists}
}

func TestPopularity(t *testing.T) {
	ta := tally(
		track("pop", "['A', 'B']"),
		track("pop", "['A']"),
		track("rock", "['A']"),
		track("rock", "['C']"),
		track("jazz", "['D']"),
		track("empty", "[]"),
		track("broken", "nope"),
	)

	scores := ta.Popularity(analysis.DefaultPopularityOptions())
	assert.Equal(t, []analysis.GenreScore{
		// A has 3 credits, B 1: (3+1)/2
		{Genre: "pop", Score: 2, Artists: []string{"A", "B"}},
		// (3+1)/2, tied with pop, after it by name
		{Genre: "rock", Score: 2, Artists: []string{"A", "C"}},
		{Genre: "jazz", Score: 1, Artists: []string{"D"}},
	}, scores)
}

func TestPopularityShown(t *testing.T) {
	ta := tally(track("pop", "['A', 'B', 'C']"))
	opts := analysis.DefaultPopularityOptions()
	opts.Shown = 2
	scores := ta.Popularity(opts)
	require.Len(t, scores, 1)
	assert.Equal(t, []string{"A", "B"}, scores[0].Artists)
}

func TestPopularityRefined(t *testing.T) {
	classical := fmt.Sprintf("[%q, %q, %q, %q, %q, %q]",
		analysis.Classical[0], analysis.Classical[1], analysis.Classical[2],
		analysis.Classical[3], analysis.Classical[4], analysis.Classical[5])
	almost := fmt.Sprintf("[%q, %q, %q, %q, %q, 'Someone']",
		analysis.Classical[0], analysis.Classical[1], analysis.Classical[2],
		analysis.Classical[3], analysis.Classical[4])

	ta := tally(
		track("baroque", classical),
		track("crossover", almost),
		track("pop", "['A']"),
	)

	var genres []string
	for _, s := range ta.Popularity(analysis.RefinedPopularityOptions()) {
		genres = append(genres, s.Genre)
	}
	assert.ElementsMatch(t, []string{"crossover", "pop"}, genres)

	genres = nil
	for _, s := range ta.Popularity(analysis.DefaultPopularityOptions()) {
		genres = append(genres, s.Genre)
	}
	assert.ElementsMatch(t, []string{"baroque", "crossover", "pop"}, genres)
}

func TestSuperstars(t *testing.T) {
	ta := tally(
		track("rock", "['A', 'B']"),
		track("pop", "['A']"),
		track("rock", "['A']"),
		track("pop", "['A', 'B']"),
		track("jazz", "['B', 'C']"),
		track("folk", "['D']"),
	)

	stars := ta.Superstars(3, 10)
	assert.Equal(t, []analysis.Superstar{
		{Artist: "A", Genre: "rock", Tracks: 4},
		// B is in rock, pop and jazz once each; rock came first
		{Artist: "B", Genre: "rock", Tracks: 3},
		{Artist: "C", Genre: "jazz", Tracks: 1},
	}, stars.Artists)
	assert.Equal(t, []aggregate.Count{{Key: "rock", Count: 2}, {Key: "jazz", Count: 1}}, stars.Genres)

	assert.Len(t, ta.Superstars(3, 1).Genres, 1)
	assert.Equal(t, 4, ta.Credits("A"))
}

func TestSuperstarsEmpty(t *testing.T) {
	stars := analysis.NewTally().Superstars(50, 10)
	assert.Empty(t, stars.Artists)
	assert.Empty(t, stars.Genres)
}

func TestTallyTracks(t *testing.T) {
	each := func(ctx context.Context, fn func(data.Track) error) error {
		return fn(track("pop", "['A']"))
	}
	ta, err := analysis.TallyTracks(context.Background(), each)
	require.NoError(t, err)
	assert.Equal(t, 1, ta.Credits("A"))

	boom := errors.New("boom")
	_, err = analysis.TallyTracks(context.Background(), func(context.Context, func(data.Track) error) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
