package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
	"github.com/mathroadmap/mathroadmap/pkg/layout"
	"github.com/mathroadmap/mathroadmap/pkg/render"
)

// FileName is the config file looked up under the user config directory.
const FileName = "config.toml"

// EnvPrefix prefixes environment overrides, e.g. MATHROADMAP_LAYOUT_SEED.
const EnvPrefix = "MATHROADMAP_"

// Config holds the tunable parameters of a render. Zero values mean
// "use the default".
type Config struct {
	Layout layout.Options `toml:"layout"`
	Render Render         `toml:"render"`
}

// Render configures the picture and its outputs.
type Render struct {
	Width      int      `toml:"width" validate:"gte=0,lte=20000"`
	Height     int      `toml:"height" validate:"gte=0,lte=20000"`
	Title      string   `toml:"title"`
	NodeRadius float64  `toml:"node_radius" validate:"gte=0"`
	Margin     float64  `toml:"margin" validate:"gte=0"`
	Formats    []string `toml:"formats" validate:"dive,oneof=png svg dot html"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Layout: layout.DefaultOptions(),
		Render: Render{
			Width:      render.DefaultWidth,
			Height:     render.DefaultHeight,
			NodeRadius: render.DefaultNodeRadius,
			Margin:     render.DefaultMargin,
			Formats:    []string{"png"},
		},
	}
}

var validate = validator.New()

// Validate checks value ranges in every section.
func (c Config) Validate() error {
	return rmerrors.FromValidation(rmerrors.ErrCodeInvalidConfig, validate.Struct(c), "invalid config")
}

// DefaultPath returns $XDG_CONFIG_HOME/mathroadmap/config.toml, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mathroadmap", FileName), nil
}

// Load reads the config at path on top of [Default], applies environment
// overrides and validates the result. An empty path means [DefaultPath];
// a missing default file is not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return finish(Default())
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return finish(Default())
		}
		return Config{}, rmerrors.Wrap(rmerrors.ErrCodeInvalidConfig, err, "open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return finish(cfg)
}

// Parse decodes TOML from r on top of [Default]. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, rmerrors.Wrap(rmerrors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, rmerrors.New(rmerrors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

func finish(cfg Config) (Config, error) {
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	cfg.Layout.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
// Recognised names are MATHROADMAP_LAYOUT, MATHROADMAP_LAYOUT_SEED,
// MATHROADMAP_LAYOUT_ITERATIONS, MATHROADMAP_LAYOUT_K, MATHROADMAP_TITLE,
// MATHROADMAP_WIDTH and MATHROADMAP_HEIGHT.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	bad := func(name string, err error) error {
		return rmerrors.Wrap(rmerrors.ErrCodeInvalidConfig, err, "%s%s", EnvPrefix, name)
	}

	if v, ok := get("LAYOUT"); ok {
		c.Layout.Algorithm = layout.Algorithm(v)
	}
	if v, ok := get("LAYOUT_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return bad("LAYOUT_SEED", err)
		}
		c.Layout.Seed = n
	}
	if v, ok := get("LAYOUT_ITERATIONS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return bad("LAYOUT_ITERATIONS", err)
		}
		c.Layout.Iterations = n
	}
	if v, ok := get("LAYOUT_K"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return bad("LAYOUT_K", err)
		}
		c.Layout.K = f
	}
	if v, ok := get("TITLE"); ok {
		c.Render.Title = v
	}
	if v, ok := get("WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return bad("WIDTH", err)
		}
		c.Render.Width = n
	}
	if v, ok := get("HEIGHT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return bad("HEIGHT", err)
		}
		c.Render.Height = n
	}
	return nil
}
