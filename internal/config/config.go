// Package config loads starpath settings from YAML files and STARPATH_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/katalvlaran/starpath/explorer"
	"github.com/katalvlaran/starpath/galaxy"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Galaxy   GalaxyConfig   `mapstructure:"galaxy" yaml:"galaxy"`
	Explorer ExplorerConfig `mapstructure:"explorer" yaml:"explorer"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	HTTP     HTTPConfig     `mapstructure:"http" yaml:"http"`
}

// GalaxyConfig drives the map generator.
type GalaxyConfig struct {
	Planets     int     `mapstructure:"planets" yaml:"planets" validate:"min=1"`
	Radius      float64 `mapstructure:"radius" yaml:"radius" validate:"gte=0"`
	RandomEdges int     `mapstructure:"random_edges" yaml:"random_edges" validate:"min=0"`
	Flatten     float64 `mapstructure:"flatten" yaml:"flatten" validate:"gte=0,lte=1"`
	Seed        int64   `mapstructure:"seed" yaml:"seed"`
	Spanning    string  `mapstructure:"spanning" yaml:"spanning" validate:"oneof=nearest prim kruskal"`
}

// ExplorerConfig holds display colors as #rrggbb or #rrggbbaa.
// An empty highlight color keeps the explorer default.
type ExplorerConfig struct {
	EndpointColor     string `mapstructure:"endpoint_color" yaml:"endpoint_color"`
	IntermediateColor string `mapstructure:"intermediate_color" yaml:"intermediate_color"`
	StarColor         string `mapstructure:"star_color" yaml:"star_color" validate:"required"`
}

// LoggingConfig selects level and output format.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	Format        string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
	IncludeCaller bool   `mapstructure:"include_caller" yaml:"include_caller"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Host         string        `mapstructure:"host" yaml:"host"`
	Port         int           `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" validate:"min=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" validate:"min=0"`
}

// Addr returns host:port for net/http.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

// GeneratorOptions converts the galaxy section for galaxy.Generate.
func (c *Config) GeneratorOptions() (galaxy.GeneratorOptions, error) {
	star, err := explorer.ParseHexColor(c.Explorer.StarColor)
	if err != nil {
		return galaxy.GeneratorOptions{}, fmt.Errorf("%w: explorer.star_color: %v", ErrInvalidConfig, err)
	}

	return galaxy.GeneratorOptions{
		Planets:     c.Galaxy.Planets,
		Radius:      c.Galaxy.Radius,
		RandomEdges: c.Galaxy.RandomEdges,
		Flatten:     c.Galaxy.Flatten,
		Seed:        c.Galaxy.Seed,
		Spanning:    c.Galaxy.Spanning,
		StarColor:   star,
	}, nil
}

// ExplorerOptions converts the explorer section into explorer options.
func (c *Config) ExplorerOptions() ([]explorer.Option, error) {
	var opts []explorer.Option
	if c.Explorer.EndpointColor != "" {
		col, err := explorer.ParseHexColor(c.Explorer.EndpointColor)
		if err != nil {
			return nil, fmt.Errorf("%w: explorer.endpoint_color: %v", ErrInvalidConfig, err)
		}
		opts = append(opts, explorer.WithEndpointColor(col))
	}
	if c.Explorer.IntermediateColor != "" {
		col, err := explorer.ParseHexColor(c.Explorer.IntermediateColor)
		if err != nil {
			return nil, fmt.Errorf("%w: explorer.intermediate_color: %v", ErrInvalidConfig, err)
		}
		opts = append(opts, explorer.WithIntermediateColor(col))
	}

	return opts, nil
}
