// Package config loads and represents the drift project configuration.
//
// Configuration is layered: embedded defaults, then a drift.toml or
// drift.yaml in the project root, then DRIFT_* environment variables.
package config

// Config is the active drift configuration for one project
type Config struct {
	// Scripts maps directive keys ("build:js,jsx") to command strings
	Scripts map[string]string `koanf:"scripts" toml:"scripts"`

	// Plugins lists explicitly configured plugins, each either a bare
	// specifier or a {specifier, options} table
	Plugins []PluginRef `koanf:"plugins" toml:"plugins"`

	// Dev configures the dev server collaborator
	Dev DevConfig `koanf:"dev" toml:"dev"`

	// Build configures the build collaborator
	Build BuildConfig `koanf:"build" toml:"build"`
}

// PluginRef is one entry of the explicit plugin list
type PluginRef struct {
	Specifier string                 `koanf:"specifier" toml:"specifier"`
	Options   map[string]interface{} `koanf:"options" toml:"options,omitempty"`
}

// DevConfig holds dev-server settings; drift's resolver does not interpret
// them, the dev server does
type DevConfig struct {
	Port int  `koanf:"port" toml:"port"`
	Open bool `koanf:"open" toml:"open"`
}

// BuildConfig holds build output settings
type BuildConfig struct {
	Out   string `koanf:"out" toml:"out"`
	Clean bool   `koanf:"clean" toml:"clean"`
}
