package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/driftbuild/drift/pkg/errors"
	"github.com/driftbuild/drift/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config file names probed in the project root, in order
var configFileNames = []string{"drift.toml", "drift.yaml"}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadConfiguration loads the active configuration for the project rooted at
// projectDir, layering defaults, the project config file, and environment
// variables.
func LoadConfiguration(projectDir string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. Project config file, first match wins
	for _, name := range configFileNames {
		path := filepath.Join(projectDir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		var parser koanf.Parser = toml.Parser()
		if strings.HasSuffix(name, ".yaml") {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
		logger.Debug().Str("path", path).Msg("loaded project config")
		break
	}

	// 3. Environment variables: DRIFT_DEV_PORT -> dev.port
	if err := k.Load(env.Provider("DRIFT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DRIFT_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				pluginRefHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}

	return &cfg, nil
}

// pluginRefHookFunc decodes a plugin list entry from any of its three
// accepted shapes: a bare specifier string, a {specifier, options} table,
// or a [specifier, options] pair.
func pluginRefHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(PluginRef{}) {
			return data, nil
		}

		switch from.Kind() {
		case reflect.String:
			return PluginRef{Specifier: data.(string)}, nil
		case reflect.Slice:
			items, ok := data.([]interface{})
			if !ok || len(items) == 0 || len(items) > 2 {
				return nil, errors.Newf(errors.ErrConfigValid, "plugin entry must be [specifier] or [specifier, options], got %v", data)
			}
			specifier, ok := items[0].(string)
			if !ok {
				return nil, errors.Newf(errors.ErrConfigValid, "plugin specifier must be a string, got %v", items[0])
			}
			ref := PluginRef{Specifier: specifier}
			if len(items) == 2 {
				options, ok := items[1].(map[string]interface{})
				if !ok {
					return nil, errors.Newf(errors.ErrConfigValid, "plugin options must be a table, got %v", items[1])
				}
				ref.Options = options
			}
			return ref, nil
		default:
			return data, nil
		}
	}
}
