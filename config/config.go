package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/contentkit/content"
	"github.com/randalmurphal/contentkit/platform"
)

// Config is the contentkit configuration file.
//
// YAML:
//
//	log_level: debug
//	default_platform: linkedin
//	thread:
//	  min_chars: 20
//	  max_chars: 270
//	image:
//	  max_length: 800
//	platforms:
//	  mastodon:
//	    character_limit: 500
//	    recommended_limit: 400
//
// TOML uses the same keys, with [thread], [image] and [platforms.mastodon]
// tables.
type Config struct {
	LogLevel        string `yaml:"log_level" toml:"log_level" json:"log_level,omitempty"`
	DefaultPlatform string `yaml:"default_platform" toml:"default_platform" json:"default_platform,omitempty"`

	Thread ThreadConfig `yaml:"thread" toml:"thread" json:"thread"`
	Image  ImageConfig  `yaml:"image" toml:"image" json:"image"`

	// Platforms adds platforms or overrides built-in limits, keyed by
	// platform identifier.
	Platforms map[string]platform.Limits `yaml:"platforms" toml:"platforms" json:"platforms,omitempty"`
}

// ThreadConfig bounds thread posts.
type ThreadConfig struct {
	MinChars int `yaml:"min_chars" toml:"min_chars" json:"min_chars"`

	// MaxChars of 0 uses the platform's character limit.
	MaxChars int `yaml:"max_chars" toml:"max_chars" json:"max_chars"`
}

// ImageConfig bounds image prompts.
type ImageConfig struct {
	MaxLength int `yaml:"max_length" toml:"max_length" json:"max_length"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := content.DefaultOptions()
	return Config{
		LogLevel:        "info",
		DefaultPlatform: opts.DefaultPlatform,
		Thread:          ThreadConfig{MinChars: opts.MinChars, MaxChars: opts.MaxChars},
		Image:           ImageConfig{MaxLength: opts.ImageMaxLength},
	}
}

// Load reads a YAML or TOML config file over the defaults. Keys missing
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every value.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := c.options(nil).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := platform.NewTable(c.Platforms); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Table builds the platform table: the built-in limits plus the
// configured platforms.
func (c Config) Table() (*platform.Table, error) {
	if len(c.Platforms) == 0 {
		return platform.Default(), nil
	}
	t, err := platform.NewTable(c.Platforms)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return t, nil
}

// Options converts the config to content processing options.
func (c Config) Options() (content.Options, error) {
	t, err := c.Table()
	if err != nil {
		return content.Options{}, err
	}
	return c.options(t), nil
}

func (c Config) options(t *platform.Table) content.Options {
	def := c.DefaultPlatform
	if def == "" {
		def = string(platform.DefaultID)
	}
	return content.Options{
		Table:           t,
		DefaultPlatform: def,
		MinChars:        c.Thread.MinChars,
		MaxChars:        c.Thread.MaxChars,
		ImageMaxLength:  c.Image.MaxLength,
	}
}

// Level returns the configured log level, or info if it does not parse.
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel parses a log level name: debug, info, warn or error. An empty
// name is info.
func ParseLevel(name string) (slog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, name)
	}
	return level, nil
}
