package builtin

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/plugins"
)

// TypescriptPluginName is the specifier the typescript plugin registers under
const TypescriptPluginName = "typescript"

func init() {
	plugins.MustRegisterFactory(TypescriptPluginName, NewTypescriptPlugin)
}

// NewTypescriptPlugin creates the builtin typescript plugin. It strips types
// from .ts and .tsx sources via the esbuild binary's single-file transform.
//
// Options:
//   - target: JavaScript language target ("es2020" by default)
func NewTypescriptPlugin(cfg *config.Config, options map[string]interface{}) (*plugins.Plugin, error) {
	target := stringOption(options, "target", "es2020")

	transform := func(ctx context.Context, in plugins.TransformInput) (*plugins.TransformResult, error) {
		loader := strings.TrimPrefix(in.Ext, ".")

		cmd := exec.CommandContext(ctx, "esbuild", "--loader="+loader, "--target="+target)
		cmd.Stdin = bytes.NewReader(in.Contents)
		out, err := cmd.Output()
		if err != nil {
			return nil, err
		}

		return &plugins.TransformResult{Contents: out, Ext: ".js"}, nil
	}

	return &plugins.Plugin{
		Name:               TypescriptPluginName,
		DefaultBuildScript: "build:ts,tsx",
		Output:             []string{".js"},
		Hooks:              plugins.Hooks{Transform: transform},
	}, nil
}
