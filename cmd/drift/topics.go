package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/driftbuild/drift/pkg/errors"
)

//go:embed docs/*.md
var topicsFS embed.FS

var topicsCmd = &cobra.Command{
	Use:   "topics [topic]",
	Short: "Read guides on drift concepts",
	Long:  `Without arguments, lists the available topics. With a topic name, renders that guide.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(formatBold("Available topics"))
			for _, name := range listTopics() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		}

		content, err := topicsFS.ReadFile("docs/" + args[0] + ".md")
		if err != nil {
			return errors.Newf(errors.ErrNotFound, "no topic named %q (try 'drift topics')", args[0])
		}

		fmt.Print(renderMarkdown(string(content)))
		return nil
	},
}

func listTopics() []string {
	entries, err := topicsFS.ReadDir("docs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// renderMarkdown converts markdown to terminal output, falling back to the
// raw text when the renderer cannot be set up
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
