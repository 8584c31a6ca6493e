package directives

import (
	"strings"
)

// ScriptType classifies a directive by its key prefix
type ScriptType string

// Script types drift understands; anything else is skipped by the resolver
const (
	TypeRun    ScriptType = "run"
	TypeBuild  ScriptType = "build"
	TypeMount  ScriptType = "mount"
	TypeBundle ScriptType = "bundle"
)

// Script is a classified directive key
type Script struct {
	// Type is the lower-cased script type
	Type ScriptType

	// Extensions is the normalized extension set: each entry has exactly
	// one leading dot, duplicates are collapsed, first-seen order is kept
	Extensions []string
}

// ParseScript classifies a directive key of the form
// "<scriptType>:<ext1,ext2,...>". Keys are assumed well-formed; validating
// their overall shape is the config layer's concern. The whole key is
// lower-cased, so "build:js,JS" yields a single ".js" entry.
func ParseScript(key string) Script {
	key = strings.ToLower(strings.TrimSpace(key))

	scriptType, extList, _ := strings.Cut(key, ":")

	script := Script{Type: ScriptType(scriptType)}
	seen := make(map[string]bool)
	for _, token := range strings.Split(extList, ",") {
		ext := normalizeExt(token)
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		script.Extensions = append(script.Extensions, ext)
	}

	return script
}

// normalizeExt trims an extension token to have exactly one leading dot,
// or returns "" for an empty token
func normalizeExt(token string) string {
	token = strings.TrimLeft(strings.TrimSpace(token), ".")
	if token == "" {
		return ""
	}
	return "." + token
}
