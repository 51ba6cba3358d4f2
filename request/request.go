package request

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/amonks/genremap/limiter"
	"github.com/amonks/genremap/readthrough"
	"github.com/avast/retry-go"
	"go.uber.org/zap"
)

// A Client fetches HTML documents. Cache and Limiter are optional.
type Client struct {
	HTTP     *http.Client
	Cache    *readthrough.ReadThrough
	Limiter  *limiter.Limiter
	Attempts uint
	Delay    time.Duration
	Log      *zap.SugaredLogger
}

// New returns a Client that tries each request three times.
func New(cache *readthrough.ReadThrough, lim *limiter.Limiter, log *zap.SugaredLogger) *Client {
	return &Client{
		HTTP:     http.DefaultClient,
		Cache:    cache,
		Limiter:  lim,
		Attempts: 3,
		Delay:    time.Second,
		Log:      log,
	}
}

// errRateLimited marks a 429; the limiter has already been told when to retry.
var errRateLimited = errors.New("rate limited")

// FetchHTML does an HTTP GET on the given URL, then parses the response as
// HTML. Cached documents are served without a request.
func (c *Client) FetchHTML(ctx context.Context, url string) (*goquery.Document, error) {
	if c.Cache != nil {
		cached, hash, err := c.Cache.Get(url)
		if err == nil {
			defer cached.Close()
			c.Log.Debugf("cache hit:\t%s\t%s", url, hash)
			return parse(url, cached)
		} else if !errors.Is(err, readthrough.ErrMiss) {
			return nil, err
		}
	}

	var body io.ReadCloser
	err := retry.Do(
		func() error {
			var err error
			body, err = c.get(ctx, url)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.Attempts),
		retry.Delay(c.Delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.Log.Warnf("retrying:\t%s\t(attempt %d failed)\t%s", url, n+1, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	if c.Cache != nil {
		body, _, err = c.Cache.Set(url, body)
		if err != nil {
			return nil, err
		}
	}
	defer body.Close()

	return parse(url, body)
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, retry.Unrecoverable(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("error building request for '%s': %w", url, err))
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching '%s': %w", url, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests && c.Limiter != nil {
		resp.Body.Close()
		if err := c.Limiter.SetNextAt(resp.Header.Get("Retry-After")); err != nil {
			return nil, retry.Unrecoverable(err)
		}
		return nil, fmt.Errorf("'%s': %w", url, errRateLimited)
	}
	if err := Error(resp); err != nil {
		resp.Body.Close()
		err = fmt.Errorf("unexpected status from '%s': %w", url, err)
		if resp.StatusCode < 500 {
			return nil, retry.Unrecoverable(err)
		}
		return nil, err
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "text/html" {
		resp.Body.Close()
		return nil, retry.Unrecoverable(fmt.Errorf("expected an html response at '%s', but got '%s'", url, mediaType))
	}

	if c.Limiter != nil {
		c.Limiter.Delay()
	}

	return resp.Body, nil
}

func parse(url string, r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing html from '%s': %w", url, err)
	}
	return doc, nil
}

// Error checks the given http response for an error code, and, if one is
// present, reads the body and returns a friendly error.
func Error(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bs, err := httputil.DumpResponse(resp, true)
		if err != nil {
			return fmt.Errorf("http status code %d; error decoding body: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("http status code %d:\n%s", resp.StatusCode, string(bs))
	}
	return nil
}
