package data

// Feature column names as they appear in the track table. "Valeance" is the
// upstream spelling; aggregated output uses FeatureValence instead.
const (
	FeatureDanceability     = "Danceability"
	FeatureEnergy           = "Energy"
	FeatureAcousticness     = "Acousticness"
	FeatureInstrumentalness = "Instrumentalness"
	FeatureValeance         = "Valeance"
	FeatureTempo            = "Tempo"
	FeatureLoudness         = "Loudness"
	FeatureSpeechiness      = "Speechiness"

	FeatureValence = "Valence"
)

// TrackFeatures lists the numeric columns read from the track table, in
// column order.
var TrackFeatures = []string{
	FeatureDanceability,
	FeatureEnergy,
	FeatureAcousticness,
	FeatureInstrumentalness,
	FeatureValeance,
	FeatureTempo,
	FeatureLoudness,
	FeatureSpeechiness,
}

// A Track is one row of the songs table.
type Track struct {
	// like "dark clubbing"
	Genre string

	// The artist list as stored in the table, like `['Boris Brejcha', "Ann Clue"]`.
	// Use artistlist.ParseOrEmpty to read it.
	Artists string

	// Only features with a value in the table are present.
	Features Vector
}
