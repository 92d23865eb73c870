package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/fracgrid/internal/fraction"
	"github.com/danieljhkim/fracgrid/internal/fsops"
	"github.com/danieljhkim/fracgrid/internal/grid"
)

// ErrInvalidConfig indicates a config file or override that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete fracgrid configuration.
type Config struct {
	// Parse is the expression parse policy
	Parse fraction.ParsePolicy `json:"parse" yaml:"parse" toml:"parse"`

	// Grid configures the composer
	Grid grid.Options `json:"grid" yaml:"grid" toml:"grid"`

	// Theme holds the cell colors used by the terminal renderer
	Theme Theme `json:"theme" yaml:"theme" toml:"theme"`
}

// Theme holds hex colors for each cell category.
type Theme struct {
	First    string `json:"first" yaml:"first" toml:"first"`
	Second   string `json:"second" yaml:"second" toml:"second"`
	Empty    string `json:"empty" yaml:"empty" toml:"empty"`
	Overflow string `json:"overflow" yaml:"overflow" toml:"overflow"`
	Border   string `json:"border" yaml:"border" toml:"border"`
}

// Format names a config encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{FormatYAML, FormatTOML, FormatJSON}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// DefaultTheme returns the red/blue palette.
func DefaultTheme() Theme {
	return Theme{
		First:    "#f44",
		Second:   "#08f",
		Empty:    "#fff",
		Overflow: "#fa0",
		Border:   "#000",
	}
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Parse: fraction.ParseStrict,
		Grid:  grid.DefaultOptions(),
		Theme: DefaultTheme(),
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if !c.Parse.Valid() {
		return fmt.Errorf("%w: unknown parse policy %q (want one of %v)", ErrInvalidConfig, c.Parse, fraction.ParsePolicies())
	}
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	colors := map[string]string{
		"first":    c.Theme.First,
		"second":   c.Theme.Second,
		"empty":    c.Theme.Empty,
		"overflow": c.Theme.Overflow,
		"border":   c.Theme.Border,
	}
	for name, color := range colors {
		if !hexColor.MatchString(color) {
			return fmt.Errorf("%w: theme.%s %q is not a hex color", ErrInvalidConfig, name, color)
		}
	}
	return nil
}

// Load reads the configuration for paths.
// Search order:
//  1. explicit, when non-empty
//  2. paths.Config (YAML)
//  3. paths.ConfigTOML
//
// A missing explicit file is an error; missing default files yield Default().
// Environment overrides are applied last.
func Load(fs fsops.FS, paths *Paths, explicit string) (*Config, error) {
	cfg := Default()

	path := explicit
	if path == "" {
		for _, p := range []string{paths.Config, paths.ConfigTOML} {
			exists, err := fs.Exists(p)
			if err != nil {
				return nil, fmt.Errorf("failed to check config file %s: %w", p, err)
			}
			if exists {
				path = p
				break
			}
		}
	}

	if path != "" {
		data, err := fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := Decode(data, FormatFor(path), cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FormatFor picks the encoding from a file extension. Unknown extensions
// are treated as YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Decode merges data into cfg. Unknown keys are rejected.
func Decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return fmt.Errorf("%w: parse TOML: %w", ErrInvalidConfig, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("%w: parse JSON: %w", ErrInvalidConfig, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty or comment-only file decodes to io.EOF.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: parse YAML: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Encode renders cfg in the given format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// ApplyEnv overrides cfg from FRACGRID_* variables found by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("FRACGRID_PARSE"); ok && v != "" {
		cfg.Parse = fraction.ParsePolicy(v)
	}
	if v, ok := lookup("FRACGRID_RESOLUTION"); ok && v != "" {
		cfg.Grid.Resolution = grid.ResolutionMode(v)
	}
	if v, ok := lookup("FRACGRID_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: FRACGRID_SIZE: %w", ErrInvalidConfig, err)
		}
		cfg.Grid.Size = n
	}
	if v, ok := lookup("FRACGRID_IMPROPER"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: FRACGRID_IMPROPER: %w", ErrInvalidConfig, err)
		}
		cfg.Grid.AllowImproper = b
	}
	if v, ok := lookup("FRACGRID_OVERFLOW"); ok && v != "" {
		cfg.Grid.Overflow = grid.OverflowPolicy(v)
	}
	return nil
}
