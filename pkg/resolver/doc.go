// Package resolver turns the declarative script and plugin configuration
// into a normalized build pipeline: run commands, shell build commands,
// mounted directories, the ordered plugin list, and the optional bundler.
//
// Resolution is a single synchronous pass. It classifies each directive,
// loads plugin specifiers against the compiled-in factory registry, merges
// explicitly configured plugins with script-derived ones, and hands the
// immutable result to the build and dev-server collaborators.
package resolver
