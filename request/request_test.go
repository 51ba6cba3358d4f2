package request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amonks/genremap/limiter"
	"github.com/amonks/genremap/readthrough"
	"github.com/amonks/genremap/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const page = `<html><body><div class="canvas"><div>pop</div></div></body></html>`

func newClient(t *testing.T, cache *readthrough.ReadThrough, lim *limiter.Limiter) *request.Client {
	c := request.New(cache, lim, zaptest.NewLogger(t).Sugar())
	c.Delay = time.Millisecond
	return c
}

func TestFetchHTMLRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	doc, err := newClient(t, nil, nil).FetchHTML(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "pop", doc.Find("div.canvas > div").Text())
	assert.EqualValues(t, 2, hits.Load())
}

func TestFetchHTMLGivesUpOnClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newClient(t, nil, nil).FetchHTML(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "404")
	assert.EqualValues(t, 1, hits.Load())
}

func TestFetchHTMLRejectsNonHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newClient(t, nil, nil).FetchHTML(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "expected an html response")
}

func TestFetchHTMLUsesCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	cache := readthrough.New(t.TempDir(), "test-")
	c := newClient(t, cache, nil)
	for i := 0; i < 3; i++ {
		doc, err := c.FetchHTML(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "pop", doc.Find("div.canvas > div").Text())
	}
	assert.EqualValues(t, 1, hits.Load())
}

func TestFetchHTMLRateLimited(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	log := zaptest.NewLogger(t).Sugar()
	lim := limiter.New(filepath.Join(t.TempDir(), "next-request-at"), 0, log)
	_, err := newClient(t, nil, lim).FetchHTML(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits.Load())
}
