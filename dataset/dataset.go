// Package dataset reads the Every Noise at Once tables: songs.csv, one row per
// track, and genres.csv, one row per genre on the map.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/amonks/genremap/data"
)

// Column names.
const (
	TrackGenre   = "Genre"
	TrackArtists = "Artists"

	EmbeddingGenre = "genre"
	EmbeddingX     = "x"
	EmbeddingY     = "y"
	EmbeddingColor = "hex_colour"
)

// Cells holding any of these are treated as missing.
var missing = map[string]bool{
	"": true, "NaN": true, "nan": true, "-NaN": true, "-nan": true,
	"NA": true, "N/A": true, "n/a": true, "#N/A": true, "<NA>": true,
	"NULL": true, "null": true, "None": true,
}

func isMissing(cell string) bool {
	return missing[strings.TrimSpace(cell)]
}

// Files reads both tables from CSV files on disk.
type Files struct {
	Tracks, Genres string
}

// EachTrack calls fn with every row of the tracks file.
func (f Files) EachTrack(ctx context.Context, fn func(data.Track) error) error {
	file, err := os.Open(f.Tracks)
	if err != nil {
		return fmt.Errorf("error opening tracks '%s': %w", f.Tracks, err)
	}
	defer file.Close()
	if err := EachTrack(ctx, file, fn); err != nil {
		return fmt.Errorf("error reading tracks '%s': %w", f.Tracks, err)
	}
	return nil
}

// Embeddings reads every row of the genres file.
func (f Files) Embeddings(ctx context.Context) ([]data.GenreEmbedding, error) {
	file, err := os.Open(f.Genres)
	if err != nil {
		return nil, fmt.Errorf("error opening genres '%s': %w", f.Genres, err)
	}
	defer file.Close()
	embeddings, err := ReadEmbeddings(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("error reading genres '%s': %w", f.Genres, err)
	}
	return embeddings, nil
}

// header maps column names to their positions.
type header map[string]int

func readHeader(r *csv.Reader, required ...string) (header, error) {
	row, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty table")
	} else if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	h := header{}
	for i, name := range row {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	for _, name := range required {
		if _, has := h[name]; !has {
			return nil, fmt.Errorf("missing column '%s'", name)
		}
	}
	return h, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	return cr
}

// checkEvery is how many rows are read between context checks.
const checkEvery = 10_000

// EachTrack parses a tracks table and calls fn with every row that has a
// genre. Missing feature values are left out of the track's Features.
func EachTrack(ctx context.Context, r io.Reader, fn func(data.Track) error) error {
	cr := newReader(r)
	h, err := readHeader(cr, append([]string{TrackGenre, TrackArtists}, data.TrackFeatures...)...)
	if err != nil {
		return err
	}

	for n := 1; ; n++ {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("canceled: %w", err)
			}
		}

		row, err := cr.Read()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("error reading row: %w", err)
		}

		genre := row[h[TrackGenre]]
		if isMissing(genre) {
			continue
		}
		track := data.Track{
			Genre:    genre,
			Artists:  row[h[TrackArtists]],
			Features: data.Vector{},
		}
		for _, feature := range data.TrackFeatures {
			v, ok, err := parseFloat(row[h[feature]])
			if err != nil {
				return fmt.Errorf("row %d, column '%s': %w", n, feature, err)
			}
			if ok {
				track.Features[feature] = v
			}
		}

		if err := fn(track); err != nil {
			return err
		}
	}
}

// ReadTracks collects every row of a tracks table.
func ReadTracks(ctx context.Context, r io.Reader) ([]data.Track, error) {
	var tracks []data.Track
	err := EachTrack(ctx, r, func(track data.Track) error {
		tracks = append(tracks, track)
		return nil
	})
	return tracks, err
}

// ReadEmbeddings parses a genres table. Rows are returned whether or not
// they are complete.
func ReadEmbeddings(ctx context.Context, r io.Reader) ([]data.GenreEmbedding, error) {
	cr := newReader(r)
	h, err := readHeader(cr, EmbeddingGenre, EmbeddingX, EmbeddingY, EmbeddingColor)
	if err != nil {
		return nil, err
	}

	var embeddings []data.GenreEmbedding
	for n := 1; ; n++ {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("canceled: %w", err)
			}
		}

		row, err := cr.Read()
		if err == io.EOF {
			return embeddings, nil
		} else if err != nil {
			return nil, fmt.Errorf("error reading row: %w", err)
		}

		var e data.GenreEmbedding
		if genre := row[h[EmbeddingGenre]]; !isMissing(genre) {
			e.Genre = genre
		}
		for _, coord := range []struct {
			column string
			dest   **float64
		}{{EmbeddingX, &e.X}, {EmbeddingY, &e.Y}} {
			v, ok, err := parseFloat(row[h[coord.column]])
			if err != nil {
				return nil, fmt.Errorf("row %d, column '%s': %w", n, coord.column, err)
			}
			if ok {
				*coord.dest = &v
			}
		}
		if color := strings.TrimSpace(row[h[EmbeddingColor]]); !isMissing(color) {
			e.Color = &color
		}
		embeddings = append(embeddings, e)
	}
}

// WriteEmbeddings writes a genres table. Missing values are written as empty
// cells.
func WriteEmbeddings(w io.Writer, embeddings []data.GenreEmbedding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{EmbeddingGenre, EmbeddingX, EmbeddingY, EmbeddingColor}); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	for _, e := range embeddings {
		row := []string{e.Genre, formatFloat(e.X), formatFloat(e.Y), ""}
		if e.Color != nil {
			row[3] = *e.Color
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("error writing genre '%s': %w", e.Genre, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEmbeddingsFile saves a genres table to filename. See WriteFile.
func WriteEmbeddingsFile(filename string, embeddings []data.GenreEmbedding) error {
	return WriteFile(filename, func(w io.Writer) error {
		return WriteEmbeddings(w, embeddings)
	})
}

// WriteFile replaces filename with whatever write produces, creating missing
// parent directories. The file is swapped in with a rename, so a failed write
// leaves any previous file in place.
func WriteFile(filename string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating dir '%s': %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("error creating temp file in '%s': %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("error writing '%s': %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing '%s': %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("error setting mode on '%s': %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("error moving '%s' into place: %w", filename, err)
	}
	return nil
}

func parseFloat(cell string) (float64, bool, error) {
	if isMissing(cell) {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, false, fmt.Errorf("error parsing number '%s': %w", cell, err)
	}
	// inf and nan spellings parse, but have no place in a mean or a layout
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false, nil
	}
	return v, true, nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
