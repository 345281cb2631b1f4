package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. STARPATH_HTTP_PORT.
const EnvPrefix = "STARPATH"

// Load reads the YAML file at path over the defaults, applies STARPATH_*
// environment overrides and validates the result. An empty path skips the
// file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("galaxy.planets", d.Galaxy.Planets)
	v.SetDefault("galaxy.radius", d.Galaxy.Radius)
	v.SetDefault("galaxy.random_edges", d.Galaxy.RandomEdges)
	v.SetDefault("galaxy.flatten", d.Galaxy.Flatten)
	v.SetDefault("galaxy.seed", d.Galaxy.Seed)
	v.SetDefault("galaxy.spanning", d.Galaxy.Spanning)

	v.SetDefault("explorer.endpoint_color", d.Explorer.EndpointColor)
	v.SetDefault("explorer.intermediate_color", d.Explorer.IntermediateColor)
	v.SetDefault("explorer.star_color", d.Explorer.StarColor)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.include_caller", d.Logging.IncludeCaller)

	v.SetDefault("http.host", d.HTTP.Host)
	v.SetDefault("http.port", d.HTTP.Port)
	v.SetDefault("http.read_timeout", d.HTTP.ReadTimeout)
	v.SetDefault("http.write_timeout", d.HTTP.WriteTimeout)
}
