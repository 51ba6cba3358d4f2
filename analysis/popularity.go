package analysis

import (
	"sort"
)

// Classical lists composers whose catalogs dominate the classical genres.
var Classical = []string{
	"Wolfgang Amadeus Mozart", "Frédéric Chopin", "Johann Sebastian Bach",
	"Franz Liszt", "Ludwig van Beethoven", "Claude Debussy", "Franz Schubert",
	"Johannes Brahms", "Pyotr Ilyich Tchaikovsky", "Sergei Rachmaninoff",
	"Antonio Vivaldi", "George Frideric Handel", "Richard Wagner",
	"Giuseppe Verdi", "Gioachino Rossini", "Antonín Dvořák",
	"Felix Mendelssohn", "Robert Schumann", "Maurice Ravel", "Joseph Haydn",
	"Franz Joseph Haydn", "Igor Stravinsky", "Sergei Prokofiev",
	"Dmitri Shostakovich", "Gustav Mahler", "Richard Strauss",
	"Jean Sibelius", "Gabriel Fauré", "Camille Saint-Saëns", "Edward Elgar",
	"Béla Bartók", "Giacomo Puccini", "Gaetano Donizetti", "Vincenzo Bellini",
	"Hector Berlioz", "Georges Bizet",
}

type PopularityOptions struct {
	// Artists per genre that enter the score.
	Prominent int

	// Artists per genre reported alongside the score.
	Shown int

	// Genres with more than MaxExcluded of their prominent artists in
	// Exclude are skipped.
	Exclude     []string
	MaxExcluded int
}

func DefaultPopularityOptions() PopularityOptions {
	return PopularityOptions{Prominent: 20, Shown: 5}
}

// RefinedPopularityOptions skips genres where classical composers make up
// more than a quarter of the prominent artists.
func RefinedPopularityOptions() PopularityOptions {
	opts := DefaultPopularityOptions()
	opts.Exclude = Classical
	opts.MaxExcluded = 5
	return opts
}

type GenreScore struct {
	Genre   string   `json:"genre" yaml:"genre"`
	Score   float64  `json:"score" yaml:"score"`
	Artists []string `json:"artists" yaml:"artists"`
}

// Popularity scores each genre by the mean global credit count of its most
// credited artists, highest first. Genres with equal scores are ordered by
// name. Genres without any artists are left out.
func (t *Tally) Popularity(opts PopularityOptions) []GenreScore {
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, a := range opts.Exclude {
		exclude[a] = struct{}{}
	}

	names := make([]string, 0, len(t.genres))
	for name := range t.genres {
		names = append(names, name)
	}
	sort.Strings(names)

	var scores []GenreScore
	for _, name := range names {
		prominent := t.genres[name].Top(opts.Prominent)
		if len(prominent) == 0 {
			continue
		}

		if len(exclude) > 0 {
			excluded := 0
			for _, a := range prominent {
				if _, has := exclude[a]; has {
					excluded++
				}
			}
			if excluded > opts.MaxExcluded {
				continue
			}
		}

		sum := 0
		for _, a := range prominent {
			sum += t.artists.Count(a)
		}
		scores = append(scores, GenreScore{
			Genre:   name,
			Score:   float64(sum) / float64(len(prominent)),
			Artists: prominent[:min(opts.Shown, len(prominent))],
		})
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores
}
