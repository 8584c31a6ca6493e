package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/pipeline"
	"github.com/driftbuild/drift/pkg/resolver"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved build pipeline",
	Long: `Resolve the project configuration and print the run commands, build
commands, mounted directories, plugins, and the extension-indexed pipeline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfiguration(projectDir)
		if err != nil {
			return err
		}

		result, err := resolver.Resolve(cfg)
		if err != nil {
			return err
		}

		return renderResult(result, pipeline.Index(result.Plugins))
	},
}

func renderResult(result *resolver.Result, idx pipeline.Pipeline) error {
	if len(result.RunCommands) > 0 {
		fmt.Println(formatBold("Run commands"))
		data := pterm.TableData{{"Directive", "Command"}}
		for _, rc := range result.RunCommands {
			data = append(data, []string{rc.ID, rc.Cmd})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
	}

	if len(result.BuildCommands) > 0 {
		fmt.Println(formatBold("Build commands"))
		data := pterm.TableData{{"Extension", "Command"}}
		for _, ext := range sortedKeys(result.BuildCommands) {
			data = append(data, []string{ext, result.BuildCommands[ext].Cmd})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
	}

	fmt.Println(formatBold("Mounted directories"))
	data := pterm.TableData{{"Directory", "URL"}}
	for _, mount := range result.MountedDirs {
		data = append(data, []string{mount.FromDisk, mount.ToURL})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	if len(idx) > 0 {
		fmt.Println(formatBold("Pipeline"))
		data := pterm.TableData{{"Extension", "Plugin chain"}}
		exts := make([]string, 0, len(idx))
		for ext := range idx {
			exts = append(exts, ext)
		}
		sort.Strings(exts)
		for _, ext := range exts {
			names := make([]string, 0, len(idx[ext]))
			for _, plugin := range idx[ext] {
				names = append(names, plugin.Name)
			}
			data = append(data, []string{ext, strings.Join(names, " -> ")})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
	}

	if result.Bundler != nil {
		fmt.Printf("%s %s\n", formatBold("Bundler:"), result.Bundler.Name)
	}

	return nil
}

func sortedKeys(m map[string]resolver.RunCmd) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
