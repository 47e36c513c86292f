package sketch

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the tolerances that govern curve generation and degenerate
// geometry.
type Config struct {
	// ChordTolerance is the maximum distance between a curve and the
	// polyline approximating it.
	ChordTolerance float64 `toml:"chord_tolerance" yaml:"chord_tolerance"`
	// MaxSegments bounds the number of polyline segments per Bézier segment.
	MaxSegments int `toml:"max_segments" yaml:"max_segments"`
	// LengthEpsilon is the length below which circles are considered to have
	// zero radius and points are considered to lie on an axis.
	LengthEpsilon float64 `toml:"length_epsilon" yaml:"length_epsilon"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ChordTolerance: 0.1,
		MaxSegments:    10,
		LengthEpsilon:  LengthEps,
	}
}

// Validate reports whether all tolerances are usable.
func (c Config) Validate() error {
	var errs []error
	if !(c.ChordTolerance > 0) {
		errs = append(errs, fmt.Errorf("chord tolerance must be positive, got %g", c.ChordTolerance))
	}
	if c.MaxSegments < 1 {
		errs = append(errs, fmt.Errorf("max segments must be at least 1, got %d", c.MaxSegments))
	}
	if !(c.LengthEpsilon > 0) {
		errs = append(errs, fmt.Errorf("length epsilon must be positive, got %g", c.LengthEpsilon))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("sketch: invalid config: %w", err)
	}
	return nil
}

// ParseConfig decodes a configuration in the given format, which is either
// "toml" or "yaml". Fields absent from data keep their default values.
func ParseConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(format) {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("sketch: decoding TOML config: %w", err)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; treat it as all defaults.
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) != 0 {
			return Config{}, fmt.Errorf("sketch: decoding YAML config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("sketch: unknown config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a configuration file. The format is chosen by extension:
// .toml, .yaml or .yml.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	cfg, err := ParseConfig(data, ext)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
