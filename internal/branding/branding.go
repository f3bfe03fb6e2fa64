// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so renaming the tool means editing one file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	ConfigDir   string `yaml:"config_dir"`
	ConfigFile  string `yaml:"config_file"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "oskctl",
			DisplayName: "oskctl",
			Description: "Toggle the on-screen virtual keyboard",
			ConfigDir:   "oskctl",
			ConfigFile:  "keyboard.conf",
			EnvPrefix:   "OSKCTL",
			GoModule:    "github.com/oskctl/oskctl",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "oskctl"). It is also the
// application name attached to desktop notifications.
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfigDir returns the directory name under the user config root
// (e.g., "oskctl" for ~/.config/oskctl).
func ConfigDir() string { load(); return defaults.ConfigDir }

// ConfigFile returns the config file name (e.g., "keyboard.conf").
func ConfigFile() string { load(); return defaults.ConfigFile }

// EnvPrefix returns the environment variable prefix (e.g., "OSKCTL").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts — not
// consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("CONFIG") →
// "OSKCTL_CONFIG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
