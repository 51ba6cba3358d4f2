package readthrough_test

import (
	"io"
	"strings"
	"testing"

	"github.com/amonks/genremap/readthrough"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadThrough(t *testing.T) {
	rt := readthrough.New(t.TempDir()+"/cache", "enao-")

	_, _, err := rt.Get("https://everynoise.com")
	assert.ErrorIs(t, err, readthrough.ErrMiss)

	r, hash, err := rt.Set("https://everynoise.com", io.NopCloser(strings.NewReader("<html></html>")))
	require.NoError(t, err)
	bs, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(bs))

	cached, cachedHash, err := rt.Get("https://everynoise.com")
	require.NoError(t, err)
	defer cached.Close()
	assert.Equal(t, hash, cachedHash)
	bs, err = io.ReadAll(cached)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(bs))
}
