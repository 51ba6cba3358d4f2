// Package readthrough caches fetched documents as files on disk, keyed by the
// sha256 of their URL.
package readthrough

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func New(dir, prefix string) *ReadThrough {
	return &ReadThrough{dir: dir, prefix: prefix}
}

type ReadThrough struct {
	dir, prefix string
}

var ErrMiss = errors.New("cache miss")

// Get opens the cached document for key. It returns an error wrapping ErrMiss
// if nothing is cached.
func (rt *ReadThrough) Get(key string) (io.ReadCloser, string, error) {
	hash, filename := rt.hashAndFilename(key)

	cache, err := os.Open(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, hash, fmt.Errorf("cache miss for '%s': %w", hash, ErrMiss)
	} else if err != nil {
		return nil, hash, fmt.Errorf("error opening cache file '%s' for read: %w", hash, err)
	}

	return cache, hash, nil
}

// Set drains r into the cache and returns a reader over the same bytes. r is
// closed. Nothing is cached if reading r fails.
func (rt *ReadThrough) Set(key string, r io.ReadCloser) (io.ReadCloser, string, error) {
	defer r.Close()
	hash, filename := rt.hashAndFilename(key)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, hash, fmt.Errorf("error reading document for cache file '%s': %w", hash, err)
	}

	if err := os.MkdirAll(rt.dir, 0o755); err != nil {
		return nil, hash, fmt.Errorf("error creating cache dir '%s': %w", rt.dir, err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return nil, hash, fmt.Errorf("error writing cache file '%s': %w", hash, err)
	}

	return io.NopCloser(&buf), hash, nil
}

func (rt *ReadThrough) hashAndFilename(key string) (string, string) {
	sum := sha256.Sum256([]byte(key))
	hash := hex.EncodeToString(sum[:])
	return hash, filepath.Join(rt.dir, rt.prefix+hash)
}
