package pipeline

import (
	"testing"

	"github.com/driftbuild/drift/pkg/plugins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	sass := &plugins.Plugin{Name: "sass", Input: []string{".scss", ".sass"}}
	postcss := &plugins.Plugin{Name: "postcss", Input: []string{".css", ".scss"}}

	p := Index([]*plugins.Plugin{sass, postcss})

	assert.Equal(t, 3, p.Extensions())
	assert.Equal(t, []*plugins.Plugin{sass}, p[".sass"])
	assert.Equal(t, []*plugins.Plugin{postcss}, p[".css"])
	// Shared extension: plugin-list order forms the chain.
	assert.Equal(t, []*plugins.Plugin{sass, postcss}, p[".scss"])
}

func TestIndexEmptyList(t *testing.T) {
	p := Index(nil)
	assert.Equal(t, 0, p.Extensions())
	assert.Nil(t, p.ForFile("styles/site.css"))
}

func TestIndexIsIdempotent(t *testing.T) {
	list := []*plugins.Plugin{
		{Name: "a", Input: []string{".js"}},
		{Name: "b", Input: []string{".js", ".jsx"}},
	}

	first := Index(list)
	second := Index(list)
	assert.Equal(t, first, second)
}

func TestIndexKeepsDuplicates(t *testing.T) {
	// The exclusivity check upstream should prevent this, but the indexer
	// itself never deduplicates.
	twice := &plugins.Plugin{Name: "twice", Input: []string{".js"}}
	p := Index([]*plugins.Plugin{twice, twice})

	require.Len(t, p[".js"], 2)
}

func TestForFile(t *testing.T) {
	ts := &plugins.Plugin{Name: "typescript", Input: []string{".ts"}}
	p := Index([]*plugins.Plugin{ts})

	assert.Equal(t, []*plugins.Plugin{ts}, p.ForFile("src/main.ts"))
	assert.Equal(t, []*plugins.Plugin{ts}, p.ForFile("src/MAIN.TS"))
	assert.Nil(t, p.ForFile("src/main.go"))
	assert.Nil(t, p.ForFile("Makefile"))
}
