// Package subcmd gives each genremap subcommand its own flag set and usage
// text.
package subcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

func New(name, doc string) *Subcommand {
	sc := &Subcommand{
		FlagSet: pflag.NewFlagSet(name, pflag.ContinueOnError),
	}
	sc.FlagSet.SortFlags = false
	sc.FlagSet.Usage = func() {
		w := sc.Output()
		var argSuffix string
		for _, a := range sc.args {
			argSuffix += fmt.Sprintf(" <%s>", a.name)
		}
		fmt.Fprintf(w, "\n%s\n\n", doc)
		fmt.Fprintf(w, "  genremap %s [flags]%s\n\n", name, argSuffix)
		fmt.Fprintf(w, "flags:\n")
		sc.FlagSet.PrintDefaults()
		for _, a := range sc.args {
			fmt.Fprintf(w, "  <%s> %s\n", a.name, a.typename)
			fmt.Fprintf(w, "  \t%s\n", a.usage)
		}
	}
	return sc
}

type Subcommand struct {
	*pflag.FlagSet
	args []arg
}

type arg struct {
	name     string
	typename string
	usage    string
}

func (sc *Subcommand) SetArg(name, typename, usage string) *Subcommand {
	sc.args = append(sc.args, arg{name, typename, usage})
	return sc
}

// Arg joins the positional arguments left after parsing, so that multi-word
// genre names need no quoting.
func (sc *Subcommand) Arg() string {
	return strings.Join(sc.Args(), " ")
}

// RequireArg is Arg, failing when nothing was given.
func (sc *Subcommand) RequireArg() (string, error) {
	a := sc.Arg()
	if a == "" {
		name := "argument"
		if len(sc.args) > 0 {
			name = "<" + sc.args[0].name + ">"
		}
		return "", fmt.Errorf("%s: missing %s", sc.Name(), name)
	}
	return a, nil
}
