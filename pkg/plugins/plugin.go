package plugins

import (
	"context"
)

// Plugin is one resolved build plugin. After configuration resolution every
// plugin in the final list has a non-empty Name and Input set.
type Plugin struct {
	// Name identifies the plugin; backfilled from the specifier or the
	// directive command when the factory does not set one
	Name string

	// Input is the set of file extensions this plugin accepts, each with
	// exactly one leading dot
	Input []string

	// Output is the set of file extensions this plugin produces
	Output []string

	// DefaultBuildScript is a script-directive string ("build:scss,sass")
	// used to backfill Input/Output when the plugin declares none
	DefaultBuildScript string

	// Hooks carries the transform and bundle callbacks. The resolver stores
	// them untouched; only the build engine invokes them.
	Hooks Hooks
}

// HasInput reports whether the plugin declares at least one input extension
func (p *Plugin) HasInput() bool {
	return len(p.Input) > 0
}

// TransformInput is the payload handed to a plugin's transform hook
type TransformInput struct {
	// Path is the source file path on disk
	Path string

	// Ext is the source file extension, with leading dot
	Ext string

	// Contents is the current file contents, possibly already transformed
	// by an earlier plugin in the chain
	Contents []byte

	// IsDev is true when transforming for the dev server
	IsDev bool
}

// TransformResult is the output of a transform hook
type TransformResult struct {
	Contents []byte

	// Ext is the output extension; empty means unchanged
	Ext string
}

// TransformFunc turns one file's contents into its built form
type TransformFunc func(ctx context.Context, in TransformInput) (*TransformResult, error)

// BundleInput is the payload handed to the bundler plugin
type BundleInput struct {
	// SrcDir is the fully built, unbundled output
	SrcDir string

	// DestDir is where the bundle is written
	DestDir string
}

// BundleFunc produces the final bundled output
type BundleFunc func(ctx context.Context, in BundleInput) error

// Hooks bundles the callbacks a plugin may provide. Any of them may be nil.
type Hooks struct {
	Transform TransformFunc
	Bundle    BundleFunc
}
