package resolver

import (
	"sort"
	"strings"

	"github.com/driftbuild/drift/pkg/config"
	"github.com/driftbuild/drift/pkg/directives"
	"github.com/driftbuild/drift/pkg/errors"
	"github.com/driftbuild/drift/pkg/logging"
	"github.com/driftbuild/drift/pkg/paths"
	"github.com/driftbuild/drift/pkg/plugins"
)

// WebModulesMountID is the reserved directive key for the internal
// dependency directory. Its mount always points at paths.WebModulesDir,
// whatever directory the user's command names.
const WebModulesMountID = "mount:web_modules"

// RunCmd is a command string tagged with its originating directive key.
// drift never interprets the command; the CLI runner spawns it.
type RunCmd struct {
	ID  string
	Cmd string
}

// MountedDir maps a disk directory onto a URL prefix for the dev server
type MountedDir struct {
	ID       string
	FromDisk string
	ToURL    string
}

// Result is the normalized outcome of one configuration-resolution pass.
// It is immutable once returned; collaborators read it only.
type Result struct {
	// Plugins is the final ordered plugin list: script-derived plugins
	// first, then explicitly configured ones
	Plugins []*plugins.Plugin

	// Bundler is the single optional bundler plugin, set by the last
	// "bundle:" directive
	Bundler *plugins.Plugin

	// RunCommands are the "run:" directives in directive-key order
	RunCommands []RunCmd

	// BuildCommands maps an extension to the shell command that builds it,
	// for "build:" directives whose value is not a known plugin
	BuildCommands map[string]RunCmd

	// MountedDirs are the "mount:" directives plus, unless overridden, the
	// synthetic dependency-directory mount
	MountedDirs []MountedDir
}

// accumulator collects the per-directive buckets during the fold over the
// script configuration
type accumulator struct {
	runCommands   []RunCmd
	buildCommands map[string]RunCmd
	scriptPlugins []*plugins.Plugin
	pluginIndex   map[string]int // specifier -> index into scriptPlugins
	mounts        []MountedDir
	bundler       *plugins.Plugin
	sawDepsMount  bool
}

func newAccumulator() *accumulator {
	return &accumulator{
		buildCommands: make(map[string]RunCmd),
		pluginIndex:   make(map[string]int),
	}
}

// Resolve performs one synchronous resolution pass over the active
// configuration. Any error aborts the pass; no partial result is returned.
//
// Directives are processed in sorted key order. No directive depends on the
// order of another, so sorting only pins down plugin registration order,
// which is what makes the resulting pipeline deterministic.
func Resolve(cfg *config.Config) (*Result, error) {
	logger := logging.GetLogger("resolver")

	acc := newAccumulator()

	keys := make([]string, 0, len(cfg.Scripts))
	for key := range cfg.Scripts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := acc.step(cfg, key, cfg.Scripts[key]); err != nil {
			return nil, err
		}
	}

	if !acc.sawDepsMount {
		acc.mounts = append(acc.mounts, MountedDir{
			ID:       WebModulesMountID,
			FromDisk: paths.NormalizeMountPath(paths.WebModulesDir),
			ToURL:    paths.WebModulesURL,
		})
	}

	configPlugins, err := mergeConfigPlugins(cfg, acc.pluginIndex)
	if err != nil {
		return nil, err
	}

	finalPlugins := make([]*plugins.Plugin, 0, len(acc.scriptPlugins)+len(configPlugins))
	finalPlugins = append(finalPlugins, acc.scriptPlugins...)
	finalPlugins = append(finalPlugins, configPlugins...)

	logger.Debug().
		Int("plugins", len(finalPlugins)).
		Int("runCommands", len(acc.runCommands)).
		Int("buildCommands", len(acc.buildCommands)).
		Int("mounts", len(acc.mounts)).
		Bool("bundler", acc.bundler != nil).
		Msg("configuration resolved")

	return &Result{
		Plugins:       finalPlugins,
		Bundler:       acc.bundler,
		RunCommands:   acc.runCommands,
		BuildCommands: acc.buildCommands,
		MountedDirs:   acc.mounts,
	}, nil
}

// step processes one directive into the accumulator
func (a *accumulator) step(cfg *config.Config, key, cmd string) error {
	script := directives.ParseScript(key)

	switch script.Type {
	case directives.TypeRun:
		a.runCommands = append(a.runCommands, RunCmd{ID: key, Cmd: cmd})

	case directives.TypeBuild:
		if err := a.stepBuild(cfg, key, cmd, script.Extensions); err != nil {
			return err
		}

	case directives.TypeMount:
		spec, err := directives.ParseMountCommand(cmd)
		if err != nil {
			return err
		}
		if strings.EqualFold(key, WebModulesMountID) {
			// The directory argument is routing-only here; the dependency
			// directory itself is not user-configurable.
			spec.FromDisk = paths.NormalizeMountPath(paths.WebModulesDir)
			a.sawDepsMount = true
		}
		a.mounts = append(a.mounts, MountedDir{ID: key, FromDisk: spec.FromDisk, ToURL: spec.ToURL})

	case directives.TypeBundle:
		// Unlike "build:", a bundle directive has no shell fallback, so the
		// load failure and its cause surface.
		plugin, err := plugins.Load(cmd, cfg, nil)
		if err != nil {
			return errors.Wrapf(err, errors.ErrBundlerLoad, "bundler %q cannot be loaded", cmd)
		}
		if plugin.Name == "" {
			plugin.Name = cmd
		}
		// Only one bundler may be active; a later directive wins.
		a.bundler = plugin

	default:
		logger := logging.GetLogger("resolver")
		logger.Warn().Str("directive", key).Msg("unknown script type, skipping")
	}

	return nil
}

// stepBuild handles one "build:" directive: a known plugin specifier
// becomes a script-derived plugin, anything else is a shell build command.
// Every plugin in the final list must have a non-empty input set, so a
// directive that names no extensions is a configuration error.
func (a *accumulator) stepBuild(cfg *config.Config, key, cmd string, exts []string) error {
	if len(exts) == 0 {
		return errors.Newf(errors.ErrConfigValid, "build directive %q names no extensions", key)
	}

	plugin, ok := plugins.TryLoad(cmd, cfg, nil)
	if !ok {
		// Shell fallback: one command per extension, last directive wins.
		for _, ext := range exts {
			a.buildCommands[ext] = RunCmd{ID: key, Cmd: cmd}
		}
		return nil
	}

	if idx, exists := a.pluginIndex[cmd]; exists {
		// A second directive for the same specifier widens the registered
		// entry instead of duplicating it.
		registered := a.scriptPlugins[idx]
		registered.Input = unionExts(registered.Input, exts)
		registered.Output = unionExts(registered.Output, exts)
		return nil
	}

	// Script-derived plugins take their identity from the directive, not
	// the plugin body.
	plugin.Name = cmd
	plugin.Input = append([]string(nil), exts...)
	plugin.Output = append([]string(nil), exts...)

	a.pluginIndex[cmd] = len(a.scriptPlugins)
	a.scriptPlugins = append(a.scriptPlugins, plugin)
	return nil
}

// unionExts appends the extensions of b missing from a, preserving order
func unionExts(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	for _, ext := range a {
		seen[ext] = true
	}
	for _, ext := range b {
		if !seen[ext] {
			seen[ext] = true
			a = append(a, ext)
		}
	}
	return a
}
