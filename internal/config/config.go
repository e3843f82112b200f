// Package config defines tool configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with compiled defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// TopK is how many of a player's best contributions count toward the
	// season totals.
	TopK int `koanf:"top_k"`

	// StartRow and EndRow bound the inclusive 1-indexed row window scanned
	// in every sheet.
	StartRow int `koanf:"start_row"`
	EndRow   int `koanf:"end_row"`

	// Column letters holding the four cells of interest.
	ColSurname   string `koanf:"col_surname"`
	ColGivenName string `koanf:"col_given_name"`
	ColScore     string `koanf:"col_score"`
	ColPoints    string `koanf:"col_points"`

	// Day is the tournament day label used in output filenames and the
	// PDF title.
	Day string `koanf:"day"`

	// OutDir is the directory exports are written to.
	OutDir string `koanf:"out_dir"`

	// CSV and PDF select the export formats. When neither is set the tool
	// produces both.
	CSV bool `koanf:"csv"`
	PDF bool `koanf:"pdf"`
}

// New creates a Config with the club's defaults: rows 4..100, columns
// C/D/I/K, top 15 contributions.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		TopK:         15,
		StartRow:     4,
		EndRow:       100,
		ColSurname:   "C",
		ColGivenName: "D",
		ColScore:     "I",
		ColPoints:    "K",
		Day:          "Mardi",
		OutDir:       ".",
	}
}
