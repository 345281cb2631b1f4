package config

import "time"

// Default returns the built-in configuration: a 50-star disc of radius 25
// with 5 extra lanes, info-level text logs and the API on :8080.
func Default() *Config {
	return &Config{
		Galaxy: GalaxyConfig{
			Planets:     50,
			Radius:      25,
			RandomEdges: 5,
			Flatten:     0.1,
			Seed:        1,
			Spanning:    "nearest",
		},
		Explorer: ExplorerConfig{
			StarColor: "#ffffff",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		HTTP: HTTPConfig{
			Host:         "",
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}
