package main

import (
	"fmt"
	"strings"

	"github.com/atinylittleshell/pwshcomplete/internal/completion"
	"github.com/atinylittleshell/pwshcomplete/internal/render"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const maxSuggestions = 3

type previewOptions struct {
	definition string
	binName    string
}

func newPreviewCommand(a *app) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <command line>",
		Short: "Show the completions the generated script offers for a command line",
		Long: `Show the completions the generated script offers for a partially typed
command line. The cursor is assumed to be at the end of the line; end the line
with a space to complete a new word.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(a, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.definition, "definition", "d", "", "YAML command definition to read")
	cmd.Flags().StringVar(&opts.binName, "bin-name", "", "Name the program is invoked by (defaults to the definition's bin_name)")
	_ = cmd.MarkFlagRequired("definition")

	return cmd
}

func runPreview(a *app, opts *previewOptions, line string) error {
	root, err := loadDefinition(opts.definition, opts.binName)
	if err != nil {
		return err
	}

	elements, wordToComplete, err := completion.ParseLine(line)
	if err != nil {
		return err
	}

	table := completion.BuildTable(root)
	path := completion.CommandPath(root.BinName, elements, wordToComplete)
	a.logger.Debug("previewing completions",
		zap.String("path", path),
		zap.String("word", wordToComplete),
	)

	if _, ok := table.Lookup(path); !ok {
		message := fmt.Sprintf("no completions are registered for %q", path)
		if suggestions := suggestPaths(path, table.Paths()); len(suggestions) > 0 {
			message += fmt.Sprintf(", did you mean %s?", strings.Join(suggestions, " or "))
		}
		fmt.Fprintln(a.stderr, render.Hint(message))
		return nil
	}

	entries := table.Complete(path, wordToComplete)
	width := 0
	for _, entry := range entries {
		width = max(width, len(entry.ListItemText))
	}
	for _, entry := range entries {
		fmt.Fprintf(a.stdout, "%-*s  %s\n", width, entry.ListItemText, render.DimStyle.Render(entry.ToolTip))
	}

	return nil
}

// suggestPaths returns the registered paths closest to path.
func suggestPaths(path string, paths []string) []string {
	matches := fuzzy.Find(path, paths)
	return lo.Map(lo.Slice(matches, 0, maxSuggestions), func(m fuzzy.Match, _ int) string {
		return fmt.Sprintf("%q", m.Str)
	})
}
