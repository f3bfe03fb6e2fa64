package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/oskctl/oskctl/internal/branding"
)

// Keys recognized in the config file.
const (
	keyLayers          = "LAYERS"
	keyLandscapeLayers = "LANDSCAPE_LAYERS"
	keyHeight          = "HEIGHT"
)

// Built-in defaults, applied for every key the config file does not set.
var (
	DefaultLayers = []string{"simple", "cyrillic", "emoji"}
	DefaultHeight = 300
)

// Config holds the keyboard settings. It is constructed once at startup and
// treated as immutable afterwards; every operation that needs it receives it
// by value.
type Config struct {
	Layers          []string
	LandscapeLayers []string
	Height          int
}

// Default returns a Config carrying all built-in defaults.
func Default() Config {
	return Config{
		Layers:          append([]string(nil), DefaultLayers...),
		LandscapeLayers: append([]string(nil), DefaultLayers...),
		Height:          DefaultHeight,
	}
}

// DefaultPath returns the config file location under the user's config
// directory (e.g., ~/.config/oskctl/keyboard.conf).
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, branding.ConfigDir(), branding.ConfigFile())
}

// Load reads the KEY=value file at path and merges it over the defaults.
// A missing file is not an error: all defaults apply. Any subset of the
// recognized keys may be present.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault(keyLayers, strings.Join(DefaultLayers, ","))
	v.SetDefault(keyLandscapeLayers, strings.Join(DefaultLayers, ","))
	v.SetDefault(keyHeight, DefaultHeight)

	v.SetConfigFile(path)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := Config{
		Layers:          splitList(v.GetString(keyLayers)),
		LandscapeLayers: splitList(v.GetString(keyLandscapeLayers)),
		Height:          v.GetInt(keyHeight),
	}

	if cfg.Height <= 0 {
		return Config{}, fmt.Errorf("config file %s: %s must be a positive integer (got %q)",
			path, keyHeight, v.GetString(keyHeight))
	}
	if len(cfg.Layers) == 0 {
		return Config{}, fmt.Errorf("config file %s: %s must name at least one layer", path, keyLayers)
	}
	if len(cfg.LandscapeLayers) == 0 {
		return Config{}, fmt.Errorf("config file %s: %s must name at least one layer", path, keyLandscapeLayers)
	}

	return cfg, nil
}

// splitList splits a layer list on commas and/or whitespace. The original
// shell configs used either separator, so both keep working.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
