package plugins

import (
	"testing"

	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInvokesFactoryWithConfigAndOptions(t *testing.T) {
	var gotCfg *config.Config
	var gotOptions map[string]interface{}

	MustRegisterFactory("loader-test-echo", func(cfg *config.Config, options map[string]interface{}) (*Plugin, error) {
		gotCfg = cfg
		gotOptions = options
		return &Plugin{Name: "echo", Input: []string{".txt"}}, nil
	})

	cfg := &config.Config{}
	options := map[string]interface{}{"verbose": true}

	plugin, err := Load("loader-test-echo", cfg, options)
	require.NoError(t, err)
	assert.Equal(t, "echo", plugin.Name)
	assert.Same(t, cfg, gotCfg)
	assert.Equal(t, options, gotOptions)
}

func TestLoadUnknownSpecifier(t *testing.T) {
	_, err := Load("loader-test-missing", &config.Config{}, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginLoad))
}

func TestLoadFactoryFailure(t *testing.T) {
	MustRegisterFactory("loader-test-broken", func(cfg *config.Config, options map[string]interface{}) (*Plugin, error) {
		return nil, errors.New(errors.ErrInternal, "boom")
	})

	_, err := Load("loader-test-broken", &config.Config{}, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginLoad))
}

func TestLoadNilPlugin(t *testing.T) {
	MustRegisterFactory("loader-test-nil", func(cfg *config.Config, options map[string]interface{}) (*Plugin, error) {
		return nil, nil
	})

	_, err := Load("loader-test-nil", &config.Config{}, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginLoad))
}

func TestTryLoadSwallowsFailure(t *testing.T) {
	plugin, ok := TryLoad("loader-test-absent", &config.Config{}, nil)
	assert.False(t, ok)
	assert.Nil(t, plugin)
}

func TestTryLoadSuccess(t *testing.T) {
	MustRegisterFactory("loader-test-ok", func(cfg *config.Config, options map[string]interface{}) (*Plugin, error) {
		return &Plugin{Name: "ok", Input: []string{".md"}}, nil
	})

	plugin, ok := TryLoad("loader-test-ok", &config.Config{}, nil)
	require.True(t, ok)
	assert.Equal(t, "ok", plugin.Name)
}

func TestMustRegisterFactoryPanicsOnDuplicate(t *testing.T) {
	MustRegisterFactory("loader-test-dup", func(cfg *config.Config, options map[string]interface{}) (*Plugin, error) {
		return &Plugin{Name: "dup"}, nil
	})

	assert.Panics(t, func() {
		MustRegisterFactory("loader-test-dup", func(cfg *config.Config, options map[string]interface{}) (*Plugin, error) {
			return &Plugin{Name: "dup"}, nil
		})
	})
}
