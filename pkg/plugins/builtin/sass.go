package builtin

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/plugins"
)

// SassPluginName is the specifier the sass plugin registers under
const SassPluginName = "sass"

func init() {
	plugins.MustRegisterFactory(SassPluginName, NewSassPlugin)
}

// NewSassPlugin creates the builtin sass plugin. It compiles .scss and .sass
// sources to .css by shelling out to the dart-sass binary.
//
// Options:
//   - style: output style passed to sass ("expanded" or "compressed")
func NewSassPlugin(cfg *config.Config, options map[string]interface{}) (*plugins.Plugin, error) {
	style := stringOption(options, "style", "expanded")

	transform := func(ctx context.Context, in plugins.TransformInput) (*plugins.TransformResult, error) {
		args := []string{"--stdin", "--style=" + style}
		if in.Ext == ".sass" {
			args = append(args, "--indented")
		}

		cmd := exec.CommandContext(ctx, "sass", args...)
		cmd.Stdin = bytes.NewReader(in.Contents)
		out, err := cmd.Output()
		if err != nil {
			return nil, err
		}

		return &plugins.TransformResult{Contents: out, Ext: ".css"}, nil
	}

	return &plugins.Plugin{
		Name:               SassPluginName,
		DefaultBuildScript: "build:scss,sass",
		Output:             []string{".css"},
		Hooks:              plugins.Hooks{Transform: transform},
	}, nil
}
