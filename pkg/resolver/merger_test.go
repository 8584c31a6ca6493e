package resolver

import (
	"testing"

	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/errors"
	"github.com/driftbuild/drift/pkg/plugins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAmbiguousRegistrationAborts(t *testing.T) {
	registerTestFactory(t, "fake-ambiguous", plugins.Plugin{Input: []string{".js"}})

	_, err := Resolve(&config.Config{
		Scripts: map[string]string{"build:js": "fake-ambiguous"},
		Plugins: []config.PluginRef{{Specifier: "fake-ambiguous"}},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginAmbiguous))
}

func TestMergeUnknownPluginAborts(t *testing.T) {
	_, err := Resolve(&config.Config{
		Plugins: []config.PluginRef{{Specifier: "no-such-plugin"}},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginLoad))
}

func TestMergePluginWithoutInputAborts(t *testing.T) {
	registerTestFactory(t, "fake-no-input", plugins.Plugin{Name: "no-input"})

	_, err := Resolve(&config.Config{
		Plugins: []config.PluginRef{{Specifier: "fake-no-input"}},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginNoInput))
}

func TestMergeEmptyDefaultBuildScriptAborts(t *testing.T) {
	// A default build script that classifies to zero extensions leaves the
	// plugin without an input set, which is the same failure as declaring
	// nothing at all.
	registerTestFactory(t, "fake-empty-script", plugins.Plugin{
		DefaultBuildScript: "build:",
	})

	_, err := Resolve(&config.Config{
		Plugins: []config.PluginRef{{Specifier: "fake-empty-script"}},
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginNoInput))
}

func TestMergeDerivesInputFromDefaultBuildScript(t *testing.T) {
	registerTestFactory(t, "fake-markdown", plugins.Plugin{
		DefaultBuildScript: "build:md,markdown",
	})

	result, err := Resolve(&config.Config{
		Plugins: []config.PluginRef{{Specifier: "fake-markdown"}},
	})
	require.NoError(t, err)

	require.Len(t, result.Plugins, 1)
	plugin := result.Plugins[0]
	assert.Equal(t, []string{".md", ".markdown"}, plugin.Input)
	assert.Equal(t, []string{".md", ".markdown"}, plugin.Output)
	// Name is backfilled from the specifier.
	assert.Equal(t, "fake-markdown", plugin.Name)
}

func TestMergeKeepsDeclaredOutput(t *testing.T) {
	registerTestFactory(t, "fake-declared-output", plugins.Plugin{
		DefaultBuildScript: "build:md",
		Output:             []string{".html"},
	})

	result, err := Resolve(&config.Config{
		Plugins: []config.PluginRef{{Specifier: "fake-declared-output"}},
	})
	require.NoError(t, err)

	plugin := result.Plugins[0]
	assert.Equal(t, []string{".md"}, plugin.Input)
	assert.Equal(t, []string{".html"}, plugin.Output)
}

func TestMergeConfigPluginsFollowScriptPlugins(t *testing.T) {
	registerTestFactory(t, "fake-script-side", plugins.Plugin{})
	registerTestFactory(t, "fake-config-side", plugins.Plugin{Input: []string{".vue"}})

	result, err := Resolve(&config.Config{
		Scripts: map[string]string{"build:js": "fake-script-side"},
		Plugins: []config.PluginRef{{Specifier: "fake-config-side"}},
	})
	require.NoError(t, err)

	require.Len(t, result.Plugins, 2)
	assert.Equal(t, "fake-script-side", result.Plugins[0].Name)
	assert.Equal(t, "fake-config-side", result.Plugins[1].Name)
}

func TestMergeBuiltinSassPlugin(t *testing.T) {
	result, err := Resolve(&config.Config{
		Plugins: []config.PluginRef{{Specifier: "sass", Options: map[string]interface{}{"style": "compressed"}}},
	})
	require.NoError(t, err)

	require.Len(t, result.Plugins, 1)
	plugin := result.Plugins[0]
	assert.Equal(t, "sass", plugin.Name)
	// Input derives from the builtin's default build script; its declared
	// output survives.
	assert.Equal(t, []string{".scss", ".sass"}, plugin.Input)
	assert.Equal(t, []string{".css"}, plugin.Output)
}
