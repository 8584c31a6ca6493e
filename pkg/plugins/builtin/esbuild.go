package builtin

import (
	"context"
	"os/exec"
	"path/filepath"

	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/plugins"
)

// EsbuildPluginName is the specifier the esbuild bundler registers under
const EsbuildPluginName = "esbuild"

func init() {
	plugins.MustRegisterFactory(EsbuildPluginName, NewEsbuildPlugin)
}

// NewEsbuildPlugin creates the builtin esbuild bundler plugin, intended for
// the bundler slot ("bundle:*" directives).
//
// Options:
//   - entry:  entry point relative to the built output ("index.js" by default)
//   - minify: whether to minify the bundle
func NewEsbuildPlugin(cfg *config.Config, options map[string]interface{}) (*plugins.Plugin, error) {
	entry := stringOption(options, "entry", "index.js")
	minify := boolOption(options, "minify", false)

	bundle := func(ctx context.Context, in plugins.BundleInput) error {
		args := []string{
			"--bundle", filepath.Join(in.SrcDir, entry),
			"--outdir=" + in.DestDir,
		}
		if minify {
			args = append(args, "--minify")
		}

		return exec.CommandContext(ctx, "esbuild", args...).Run()
	}

	return &plugins.Plugin{
		Name:  EsbuildPluginName,
		Input: []string{".js"},
		Hooks: plugins.Hooks{Bundle: bundle},
	}, nil
}
