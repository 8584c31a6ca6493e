// Package pipeline indexes the final plugin list by file extension. The
// build engine and dev server use the index to route a file to its ordered
// transform chain.
package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/driftbuild/drift/pkg/plugins"
)

// Pipeline maps a file extension to the ordered sequence of plugins that
// process files of that extension. Order within a sequence is plugin-list
// order, which is significant: plugins sharing an extension form a chain.
type Pipeline map[string][]*plugins.Plugin

// Index builds the extension-indexed pipeline from the final plugin list.
// It is a pure function: no reordering, deduplication, or cycle detection.
func Index(list []*plugins.Plugin) Pipeline {
	p := make(Pipeline)
	for _, plugin := range list {
		for _, ext := range plugin.Input {
			p[ext] = append(p[ext], plugin)
		}
	}
	return p
}

// ForFile returns the transform chain for the given file path, or nil if
// no plugin claims its extension
func (p Pipeline) ForFile(path string) []*plugins.Plugin {
	return p[strings.ToLower(filepath.Ext(path))]
}

// Extensions returns the number of extensions with at least one plugin
func (p Pipeline) Extensions() int {
	return len(p)
}
