package main

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter drift.toml",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(projectDir, "drift.toml")
		if _, err := os.Stat(path); err == nil && !initForce {
			return errors.Newf(errors.ErrAlreadyExists, "%s already exists (use --force to overwrite)", path)
		}

		starter := config.Config{
			Scripts: map[string]string{
				"mount:public": "mount public --to /",
				"mount:src":    "mount src --to /app",
				"run:lint":     "eslint src",
			},
			Plugins: []config.PluginRef{
				{Specifier: "sass"},
				{Specifier: "typescript"},
			},
			Dev:   config.DevConfig{Port: 8080},
			Build: config.BuildConfig{Out: "build"},
		}

		data, err := toml.Marshal(starter)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to marshal starter config")
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", path)
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing drift.toml")
}
