// genremap builds the genre map document from the Every Noise at Once
// dataset, and runs a few exploratory analyses over the same tables.
//
// see db/schema.sql for the tables written by import and graph --db.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/genremap/sigctx"
	"github.com/spf13/pflag"
)

func main() {
	err := run()
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "canceled")
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var usage = strings.TrimSpace(`
usage: genremap $cmd
valid $cmd are 'graph', 'import', 'status', 'fetch-genres', 'inspect',
'popularity', 'superstars', 'similar', 'path'
for help: genremap $cmd --help
`)

func run() error {
	ctx := sigctx.New()

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "graph":
		return buildGraph(ctx, args)

	case "import":
		return importTables(ctx, args)

	case "status":
		return status(ctx, args)

	case "fetch-genres":
		return fetchGenres(ctx, args)

	case "inspect":
		return inspect(ctx, args)

	case "popularity":
		return popularity(ctx, args)

	case "superstars":
		return superstars(ctx, args)

	case "similar":
		return similar(ctx, args)

	case "path":
		return path(ctx, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
