// Package paths provides centralized path handling for drift.
// It covers the slash-normalized paths used by mount directives and the
// XDG base directories used for caches and state.
package paths

import (
	"path"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// WebModulesDir is the directory drift installs web dependencies into.
	// It is not user-configurable; the resolver forces the reserved
	// dependency mount to point here.
	WebModulesDir = "web_modules"

	// WebModulesURL is the URL prefix the dependency directory is served under
	WebModulesURL = "/web_modules/"
)

// NormalizeMountPath cleans a mount directory or URL path and guarantees a
// trailing separator. Disk paths stay relative ("src" -> "src/"), URL paths
// keep their leading slash ("/app" -> "/app/").
func NormalizeMountPath(p string) string {
	p = path.Clean(filepath.ToSlash(p))
	if p == "/" {
		return p
	}
	if p == "." || p == "" {
		return "./"
	}
	return p + "/"
}

// EnsureLeadingSlash prefixes p with "/" if it does not already start with one
func EnsureLeadingSlash(p string) string {
	if len(p) > 0 && p[0] == '/' {
		return p
	}
	return "/" + p
}

// CacheDir returns drift's cache directory under the XDG cache home
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, "drift")
}

// StateDir returns drift's state directory under the XDG state home
func StateDir() string {
	return filepath.Join(xdg.StateHome, "drift")
}
