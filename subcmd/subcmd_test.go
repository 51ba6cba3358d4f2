package subcmd_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/amonks/genremap/subcmd"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	sc := subcmd.New("similar", "list genres that sound like the given genre")
	sc.SetOutput(&buf)
	sc.SetArg("genre", "string", "genre name")
	sc.Int("count", 10, "number of genres to list")

	err := sc.Parse([]string{"--help"})
	assert.True(t, errors.Is(err, pflag.ErrHelp))

	out := buf.String()
	assert.Contains(t, out, "list genres that sound like the given genre")
	assert.Contains(t, out, "genremap similar [flags] <genre>")
	assert.Contains(t, out, "--count")
	assert.Contains(t, out, "genre name")
}

func TestArg(t *testing.T) {
	sc := subcmd.New("similar", "")
	sc.SetArg("genre", "string", "genre name")
	count := sc.Int("count", 10, "")

	require.NoError(t, sc.Parse([]string{"dark", "--count", "3", "clubbing"}))
	assert.Equal(t, 3, *count)
	assert.Equal(t, "dark clubbing", sc.Arg())

	a, err := sc.RequireArg()
	require.NoError(t, err)
	assert.Equal(t, "dark clubbing", a)

	empty := subcmd.New("similar", "")
	empty.SetArg("genre", "string", "genre name")
	require.NoError(t, empty.Parse(nil))
	_, err = empty.RequireArg()
	assert.ErrorContains(t, err, "<genre>")
}
