package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amonks/genremap/analysis"
	"github.com/amonks/genremap/config"
	"github.com/amonks/genremap/subcmd"
)

func superstars(ctx context.Context, args []string) error {
	sc := subcmd.New("superstars", "find the genres that the most credited artists call home")
	config.Common(sc.FlagSet)
	config.Inputs(sc.FlagSet)
	var (
		artists = sc.Int("artists", 50, "number of top artists to place")
		limit   = sc.Int("limit", 10, "number of genres on the leaderboard")
		format  = formatFlag(sc)
	)
	cfg, log, err := setup(sc, args)
	if err != nil {
		return err
	}
	defer log.Sync()

	src, store, err := openSource(cfg, log)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	log.Infof("start:\tcounting artists")
	tally, err := analysis.TallyTracks(ctx, src.EachTrack)
	if err != nil {
		return err
	}
	stars := tally.Superstars(*artists, *limit)
	log.Infof("done:\t%d artists placed", len(stars.Artists))

	if *format != "table" {
		return report{v: stars}.write(os.Stdout, *format)
	}

	rows := make([][]string, len(stars.Artists))
	for i, s := range stars.Artists {
		rows[i] = []string{s.Artist, s.Genre, humanPrinter.Sprintf("%d", s.Tracks)}
	}
	if err := (report{
		header: []string{"artist", "primary genre", "tracks"},
		rows:   rows,
	}).write(os.Stdout, *format); err != nil {
		return err
	}
	fmt.Println()

	rows = make([][]string, len(stars.Genres))
	for i, g := range stars.Genres {
		rows[i] = []string{g.Key, fmt.Sprintf("%d", g.Count)}
	}
	return report{
		header: []string{"genre", "superstars"},
		rows:   rows,
	}.write(os.Stdout, *format)
}
