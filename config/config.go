// Package config resolves genremap settings from flags, GENREMAP_*
// environment variables and a YAML config file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/genremap/data"
	"github.com/amonks/genremap/setflag"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyConfig     = "config"
	KeyTracks     = "tracks"
	KeyGenres     = "genres"
	KeyOutput     = "output"
	KeyK          = "k"
	KeyTopArtists = "top_artists"
	KeyRange      = "range"
	KeyDB         = "db"
	KeyFeatures   = "features"
	KeyLog        = "log"
	KeyCacheDir   = "cache_dir"
)

// Config holds every setting. Each subcommand only reads the ones it
// registered flags for.
type Config struct {
	File       string
	Tracks     string
	Genres     string
	Output     string
	K          int
	TopArtists int
	Range      float64
	DB         string
	Features   []string
	Log        string
	CacheDir   string
}

func flagName(key string) string { return strings.ReplaceAll(key, "_", "-") }

// Common registers the flags every subcommand takes.
func Common(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "config file (default is $HOME/.genremap.yaml)")
	fs.String(KeyLog, "development", "log format, 'development' or 'production'")
}

// Inputs registers the flags locating the two source tables.
func Inputs(fs *pflag.FlagSet) {
	fs.String(KeyTracks, "songs.csv", "track table (csv)")
	fs.String(KeyGenres, "genres.csv", "genre embedding table (csv)")
	fs.String(KeyDB, "", "read tables from this sqlite3 file instead of the csv files")
}

// Document registers the flag locating the graph document.
func Document(fs *pflag.FlagSet) {
	fs.StringP(KeyOutput, "o", "public/genres.json", "graph document")
}

// Graph registers the flags controlling the graph build.
func Graph(fs *pflag.FlagSet) {
	Document(fs)
	fs.Int(KeyK, 4, "neighbors per genre, counting the genre itself")
	fs.Int(flagName(KeyTopArtists), 20, "artists kept per genre")
	fs.Float64(KeyRange, 1000, "upper bound of the normalized coordinates")
	fs.Var(setflag.New(data.TrackFeatures...), KeyFeatures, "features to average (default all)")
}

// Fetch registers the flags for talking to everynoise.com.
func Fetch(fs *pflag.FlagSet) {
	fs.String(flagName(KeyCacheDir), os.TempDir(), "directory for cached pages")
}

var keys = []string{
	KeyTracks, KeyGenres, KeyOutput, KeyK, KeyTopArtists, KeyRange,
	KeyDB, KeyFeatures, KeyLog, KeyCacheDir,
}

// Load resolves the config for a parsed flag set.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("genremap")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range keys {
		if f := fs.Lookup(flagName(key)); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("error binding flag '%s': %w", f.Name, err)
			}
		}
	}

	var file string
	if f := fs.Lookup(KeyConfig); f != nil {
		file = f.Value.String()
	}
	if err := readConfigFile(v, file); err != nil {
		return nil, err
	}

	features := setflag.New(data.TrackFeatures...)
	for _, f := range v.GetStringSlice(KeyFeatures) {
		if err := features.Set(f); err != nil {
			return nil, fmt.Errorf("error reading %s: %w", KeyFeatures, err)
		}
	}

	return &Config{
		File:       v.ConfigFileUsed(),
		Tracks:     v.GetString(KeyTracks),
		Genres:     v.GetString(KeyGenres),
		Output:     v.GetString(KeyOutput),
		K:          v.GetInt(KeyK),
		TopArtists: v.GetInt(KeyTopArtists),
		Range:      v.GetFloat64(KeyRange),
		DB:         v.GetString(KeyDB),
		Features:   features.List(),
		Log:        v.GetString(KeyLog),
		CacheDir:   v.GetString(KeyCacheDir),
	}, nil
}

// readConfigFile reads file, or $HOME/.genremap.yaml if file is empty. Only
// an explicitly named file has to exist.
func readConfigFile(v *viper.Viper, file string) error {
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigName(".genremap")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file '%s': %w", file, err)
	}
	return nil
}
