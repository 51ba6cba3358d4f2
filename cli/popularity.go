package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/genremap/analysis"
	"github.com/amonks/genremap/config"
	"github.com/amonks/genremap/subcmd"
)

func popularity(ctx context.Context, args []string) error {
	sc := subcmd.New("popularity", "rank genres by how widely credited their most prominent artists are")
	config.Common(sc.FlagSet)
	config.Inputs(sc.FlagSet)
	var (
		refined = sc.Bool("refined", false, "skip genres dominated by classical composers")
		limit   = sc.Int("limit", 10, "number of genres to print")
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

	opts := analysis.DefaultPopularityOptions()
	if *refined {
		opts = analysis.RefinedPopularityOptions()
	}
	scores := tally.Popularity(opts)
	log.Infof("done:\t%d genres scored", len(scores))
	if *limit >= 0 && *limit < len(scores) {
		scores = scores[:*limit]
	}

	rows := make([][]string, len(scores))
	for i, s := range scores {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			s.Genre,
			fmt.Sprintf("%.2f", s.Score),
			strings.Join(s.Artists, ", "),
		}
	}
	return report{
		v:      scores,
		header: []string{"rank", "genre", "score", "artists"},
		rows:   rows,
	}.write(os.Stdout, *format)
}
