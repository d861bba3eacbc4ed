// Package config loads k90macro settings. Sources are applied in order of
// increasing precedence: built-in defaults, the TOML config file, a .env
// file, and K90MACRO_* environment variables. Command-line flags are applied
// on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the config file looked up in the working directory when no
// path is given.
const DefaultFile = "k90macro.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "K90MACRO_"

var ErrInvalid = errors.New("invalid configuration")

// Config holds all settings.
type Config struct {
	Jobs      int    `toml:"jobs"`
	Strict    bool   `toml:"strict"`
	Verbose   bool   `toml:"verbose"`
	OutputDir string `toml:"output_dir"`

	AI      AIConfig      `toml:"ai"`
	Preview PreviewConfig `toml:"preview"`
}

// AIConfig selects the script generation backend.
type AIConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
}

// PreviewConfig controls browser playback.
type PreviewConfig struct {
	URL             string `toml:"url"`
	Headless        bool   `toml:"headless"`
	Width           int    `toml:"width"`
	Height          int    `toml:"height"`
	ScreenshotWidth uint   `toml:"screenshot_width"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Jobs: runtime.NumCPU(),
		AI: AIConfig{
			Provider: "claude",
		},
		Preview: PreviewConfig{
			URL:             "about:blank",
			Headless:        true,
			Width:           1280,
			Height:          720,
			ScreenshotWidth: 800,
		},
	}
}

// Load reads the config file at path (DefaultFile when empty), the .env file
// in the working directory and the process environment. A missing config
// file or .env file is not an error.
func Load(path string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	return LoadFrom(path, explicit, os.LookupEnv)
}

// LoadFrom is Load with an explicit environment lookup. When required is
// set, a missing file is an error.
func LoadFrom(path string, required bool, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, &cfg); err != nil {
			return Config{}, err
		}
	case os.IsNotExist(err) && !required:
	default:
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := applyEnv(&cfg, lookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		perr := &ParseError{Path: path, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// applyEnv overrides cfg from K90MACRO_* variables.
func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookupEnv(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalid, EnvPrefix, name, v)
		}
		*dst = b
		return nil
	}

	if v, ok := lookupEnv(EnvPrefix + "JOBS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sJOBS=%q is not a number", ErrInvalid, EnvPrefix, v)
		}
		cfg.Jobs = n
	}
	if err := boolean("STRICT", &cfg.Strict); err != nil {
		return err
	}
	if err := boolean("VERBOSE", &cfg.Verbose); err != nil {
		return err
	}
	if err := boolean("PREVIEW_HEADLESS", &cfg.Preview.Headless); err != nil {
		return err
	}
	str("OUTPUT_DIR", &cfg.OutputDir)
	str("AI_PROVIDER", &cfg.AI.Provider)
	str("AI_MODEL", &cfg.AI.Model)
	str("PREVIEW_URL", &cfg.Preview.URL)
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalid, c.Jobs)
	}
	if c.Preview.Width < 1 || c.Preview.Height < 1 {
		return fmt.Errorf("%w: preview size %dx%d", ErrInvalid, c.Preview.Width, c.Preview.Height)
	}
	if c.Preview.URL == "" {
		return fmt.Errorf("%w: preview.url is empty", ErrInvalid)
	}
	return nil
}

// ParseError describes a malformed config file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
