package resolver

import (
	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/directives"
	"github.com/driftbuild/drift/pkg/errors"
	"github.com/driftbuild/drift/pkg/plugins"
)

// mergeConfigPlugins hard-loads the explicitly configured plugins and
// prepares them for the final plugin list. scriptIndex holds the specifiers
// already claimed by "build:" directives; declaring a specifier through both
// mechanisms is a configuration error.
func mergeConfigPlugins(cfg *config.Config, scriptIndex map[string]int) ([]*plugins.Plugin, error) {
	var merged []*plugins.Plugin

	for _, ref := range cfg.Plugins {
		if _, exists := scriptIndex[ref.Specifier]; exists {
			return nil, errors.Newf(errors.ErrPluginAmbiguous,
				"plugin %q is declared both as a build script and in the plugin list", ref.Specifier)
		}

		plugin, err := plugins.Load(ref.Specifier, cfg, ref.Options)
		if err != nil {
			return nil, err
		}

		// An explicit plugin must self-describe its applicable extensions,
		// either directly or through a default build script.
		if !plugin.HasInput() && plugin.DefaultBuildScript == "" {
			return nil, errors.Newf(errors.ErrPluginNoInput,
				"plugin %q declares neither input extensions nor a default build script", ref.Specifier)
		}
		if !plugin.HasInput() {
			script := directives.ParseScript(plugin.DefaultBuildScript)
			if len(script.Extensions) == 0 {
				return nil, errors.Newf(errors.ErrPluginNoInput,
					"plugin %q default build script %q names no extensions", ref.Specifier, plugin.DefaultBuildScript)
			}
			plugin.Input = script.Extensions
			if len(plugin.Output) == 0 {
				plugin.Output = script.Extensions
			}
		}

		if plugin.Name == "" {
			plugin.Name = ref.Specifier
		}

		merged = append(merged, plugin)
	}

	return merged, nil
}
