package directives

import (
	"strings"

	"mvdan.cc/sh/v3/shell"

	"github.com/driftbuild/drift/pkg/errors"
	"github.com/driftbuild/drift/pkg/paths"
)

// MountSpec is a parsed mount directive: a disk directory served under a
// URL prefix. Both paths are normalized with a trailing separator and
// ToURL always begins with "/".
type MountSpec struct {
	FromDisk string
	ToURL    string
}

// ParseMountCommand parses a mount directive's command string:
//
//	mount <dir> [--to <urlPath>]
//
// The command is tokenized with shell word-splitting rules, so quoted
// directory names survive. Any shape violation is a configuration error.
func ParseMountCommand(cmd string) (MountSpec, error) {
	fields, err := shell.Fields(cmd, nil)
	if err != nil {
		return MountSpec{}, errors.Wrapf(err, errors.ErrMountMalformed, "cannot tokenize mount command %q", cmd)
	}

	if len(fields) == 0 || fields[0] != "mount" {
		return MountSpec{}, errors.Newf(errors.ErrMountMalformed, "mount command must start with 'mount', got %q", cmd)
	}

	var positional []string
	var to string
	var toSet bool
	rest := fields[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "--to":
			if i+1 >= len(rest) {
				return MountSpec{}, errors.Newf(errors.ErrMountMalformed, "mount option --to requires a value in %q", cmd)
			}
			i++
			to = rest[i]
			toSet = true
		case strings.HasPrefix(arg, "--to="):
			to = strings.TrimPrefix(arg, "--to=")
			toSet = true
		case strings.HasPrefix(arg, "--"):
			return MountSpec{}, errors.Newf(errors.ErrMountMalformed, "unknown mount option %q in %q", arg, cmd)
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) != 1 {
		return MountSpec{}, errors.Newf(errors.ErrMountMalformed, "mount command takes exactly one directory, got %d in %q", len(positional), cmd)
	}
	dir := positional[0]

	if toSet && !strings.HasPrefix(to, "/") {
		return MountSpec{}, errors.Newf(errors.ErrMountMalformed, "mount --to path must start with '/', got %q", to)
	}
	if !toSet {
		to = paths.EnsureLeadingSlash(dir)
	}

	return MountSpec{
		FromDisk: paths.NormalizeMountPath(dir),
		ToURL:    paths.NormalizeMountPath(to),
	}, nil
}
