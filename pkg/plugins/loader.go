package plugins

import (
	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/errors"
	"github.com/driftbuild/drift/pkg/logging"
	"github.com/driftbuild/drift/pkg/registry"
)

// Factory creates a plugin instance from the active configuration and the
// plugin-specific options (nil when loading from a bare script string)
type Factory func(cfg *config.Config, options map[string]interface{}) (*Plugin, error)

// factories is the global registry of compiled-in plugin factories, keyed
// by specifier
var factories = registry.New[Factory]()

// RegisterFactory registers a plugin factory under the given specifier
func RegisterFactory(specifier string, factory Factory) error {
	return factories.Register(specifier, factory)
}

// MustRegisterFactory registers a plugin factory and panics on failure.
// Intended for init() registration of compiled-in plugins.
func MustRegisterFactory(specifier string, factory Factory) {
	if err := RegisterFactory(specifier, factory); err != nil {
		panic(err)
	}
}

// HasFactory reports whether a factory is registered for the specifier
func HasFactory(specifier string) bool {
	return factories.Has(specifier)
}

// ListFactories returns all registered specifiers in sorted order
func ListFactories() []string {
	return factories.List()
}

// Load resolves a specifier against the factory registry and invokes the
// factory. Resolution or invocation failure is fatal to the caller; this is
// the hard-load path used for explicitly configured plugins.
func Load(specifier string, cfg *config.Config, options map[string]interface{}) (*Plugin, error) {
	factory, err := factories.Get(specifier)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPluginLoad, "no plugin registered for %q", specifier)
	}

	plugin, err := factory(cfg, options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPluginLoad, "plugin %q failed to initialize", specifier)
	}
	if plugin == nil {
		return nil, errors.Newf(errors.ErrPluginLoad, "plugin %q factory returned nothing", specifier)
	}

	return plugin, nil
}

// TryLoad is the soft-load path used for script-derived references: any
// failure is swallowed and reported as "no plugin found" so the caller can
// fall back to treating the value as a shell command.
func TryLoad(specifier string, cfg *config.Config, options map[string]interface{}) (*Plugin, bool) {
	plugin, err := Load(specifier, cfg, options)
	if err != nil {
		logger := logging.GetLogger("plugins.loader")
		logger.Debug().Str("specifier", specifier).Err(err).Msg("no plugin found")
		return nil, false
	}
	return plugin, true
}
