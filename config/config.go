// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidParameter is returned for settings that are out of range.
var ErrInvalidParameter = errors.New("invalid parameter")

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment,
// and those available from the command line
type Config struct {
	// Length of the reference sequence
	Length int `mapstructure:"length"`

	// GCContent is the probability that a reference position is G or C
	GCContent float64 `mapstructure:"gc"`

	// Strains is the number of strains derived from the reference
	Strains int `mapstructure:"strains"`

	// MutationRate is the per-position probability of a substitution
	MutationRate float64 `mapstructure:"mutation-rate"`

	// K is the k-mer width for profiles
	K int `mapstructure:"k"`

	// Seed for the random source. 0 means seed from the clock
	Seed int64 `mapstructure:"seed"`

	// Out is the directory the results are written to
	Out string `mapstructure:"out"`

	// Verbose logs the ranking to stderr
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the default settings with viper.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("length", 1000)
	v.SetDefault("gc", 0.5)
	v.SetDefault("strains", 5)
	v.SetDefault("mutation-rate", 0.01)
	v.SetDefault("k", 3)
	v.SetDefault("seed", 0)
	v.SetDefault("out", "results")
	v.SetDefault("verbose", false)
}

// New returns a new Config struct populated by the Viper settings. If a
// settings file was set, it's read first, its fields are overridden by
// STRAINSIM_ environment variables and command line flags.
func New(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("strainsim")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every setting is within its range.
func (c *Config) Validate() error {
	switch {
	case c.Length < 0:
		return fmt.Errorf("%w: length %d is negative", ErrInvalidParameter, c.Length)
	case !probability(c.GCContent):
		return fmt.Errorf("%w: gc content %v is not in [0, 1]", ErrInvalidParameter, c.GCContent)
	case c.Strains < 0:
		return fmt.Errorf("%w: strain count %d is negative", ErrInvalidParameter, c.Strains)
	case !probability(c.MutationRate):
		return fmt.Errorf("%w: mutation rate %v is not in [0, 1]", ErrInvalidParameter, c.MutationRate)
	case c.K < 1:
		return fmt.Errorf("%w: k %d is less than 1", ErrInvalidParameter, c.K)
	case c.Out == "":
		return fmt.Errorf("%w: no output directory", ErrInvalidParameter)
	}
	return nil
}

func probability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
