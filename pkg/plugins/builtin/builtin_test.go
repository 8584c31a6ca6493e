package builtin

import (
	"testing"

	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/plugins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFactoriesRegistered(t *testing.T) {
	for _, specifier := range []string{SassPluginName, TypescriptPluginName, EsbuildPluginName} {
		assert.True(t, plugins.HasFactory(specifier), "factory %q not registered", specifier)
	}
}

func TestSassPluginSelfDescribes(t *testing.T) {
	plugin, err := NewSassPlugin(&config.Config{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "sass", plugin.Name)
	assert.Equal(t, "build:scss,sass", plugin.DefaultBuildScript)
	assert.Equal(t, []string{".css"}, plugin.Output)
	assert.Empty(t, plugin.Input, "input comes from the default build script")
	assert.NotNil(t, plugin.Hooks.Transform)
	assert.Nil(t, plugin.Hooks.Bundle)
}

func TestTypescriptPluginSelfDescribes(t *testing.T) {
	plugin, err := NewTypescriptPlugin(&config.Config{}, map[string]interface{}{"target": "es2022"})
	require.NoError(t, err)

	assert.Equal(t, "typescript", plugin.Name)
	assert.Equal(t, "build:ts,tsx", plugin.DefaultBuildScript)
	assert.NotNil(t, plugin.Hooks.Transform)
}

func TestEsbuildPluginIsABundler(t *testing.T) {
	plugin, err := NewEsbuildPlugin(&config.Config{}, map[string]interface{}{"minify": true})
	require.NoError(t, err)

	assert.Equal(t, "esbuild", plugin.Name)
	assert.Equal(t, []string{".js"}, plugin.Input)
	assert.NotNil(t, plugin.Hooks.Bundle)
	assert.Nil(t, plugin.Hooks.Transform)
}
