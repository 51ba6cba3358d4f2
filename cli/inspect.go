package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/genremap/config"
	"github.com/amonks/genremap/dataset"
	"github.com/amonks/genremap/subcmd"
)

func inspect(ctx context.Context, args []string) error {
	sc := subcmd.New("inspect", "print the columns and first rows of the track and genre tables")
	config.Common(sc.FlagSet)
	config.Inputs(sc.FlagSet)
	var (
		rows   = sc.Int("rows", 5, "number of sample rows to print")
		format = formatFlag(sc)
	)
	cfg, log, err := setup(sc, args)
	if err != nil {
		return err
	}
	defer log.Sync()

	for _, filename := range []string{cfg.Tracks, cfg.Genres} {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("canceled: %w", err)
		}

		log.Infof("start:\tinspecting %s", filename)
		summary, err := dataset.InspectFile(filename, *rows)
		if err != nil {
			return err
		}

		humanPrinter.Printf("%s: %d rows\n", filename, summary.Rows)
		humanPrinter.Printf("columns: %s\n", strings.Join(summary.Columns, ", "))
		if err := (report{
			v:      summary,
			header: summary.Columns,
			rows:   summary.Samples,
		}).write(os.Stdout, *format); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}
