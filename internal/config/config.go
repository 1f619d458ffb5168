// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// AllowedOrigins lists the browser origins permitted by CORS.
	AllowedOrigins []string `koanf:"allowed_origins"`

	// FactorWeights maps scoring factor names to their weights.
	FactorWeights map[string]float64 `koanf:"factor_weights"`

	// DefaultFactorWeight is used for factors missing from FactorWeights.
	DefaultFactorWeight float64 `koanf:"default_factor_weight"`

	// MaxRecommendations caps the recommendation list per prediction. 0 means unlimited.
	MaxRecommendations int `koanf:"max_recommendations"`

	// MaxDayRatingChars bounds the free-text day rating length.
	MaxDayRatingChars int `koanf:"max_day_rating_chars"`
}

// New creates a Config with production defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":8000",
		AllowedOrigins: []string{
			"http://localhost:3000",
			"https://mental-health-app-wine.vercel.app",
			"https://revibe-wine.vercel.app",
		},
		FactorWeights: map[string]float64{
			"sleep":       1.0,
			"exercise":    0.5,
			"hydration":   0.4,
			"social":      0.5,
			"outdoors":    0.5,
			"screen_time": 1.0,
			"stress":      1.0,
			"food":        1.0,
			"sentiment":   0.75,
		},
		DefaultFactorWeight: 0.5,
		MaxRecommendations:  0,
		MaxDayRatingChars:   2000,
	}
}
