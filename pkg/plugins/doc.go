// Package plugins defines drift's plugin model and the compiled-in
// factory registry used to resolve plugin specifiers.
//
// A plugin specifier is resolved against the registry of factories that
// registered themselves at init time (see the builtin subpackage). The
// resolver loads plugins through this package but never invokes their
// transform or bundle hooks; that is the build engine's job.
package plugins
