// Package powershell generates PowerShell argument completion scripts from a
// command tree.
package powershell

import (
	"fmt"
	"io"
	"strings"

	"github.com/atinylittleshell/pwshcomplete/internal/command"
	"github.com/atinylittleshell/pwshcomplete/internal/completion"
	"go.uber.org/zap"
)

const internalErrorMsg = "fatal internal error: the root command must have a bin name before generating completions"

const entryPreamble = "\n            [CompletionResult]::new("

// FileName returns the conventional file name of the completion script for
// the program name.
func FileName(name string) string {
	return "_" + name + ".ps1"
}

// Generator writes PowerShell completion scripts.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new Generator. A nil logger disables logging.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		logger: logger,
	}
}

// Generate writes the completion script for root to w. It panics if root has
// no bin name; callers are expected to set one.
func (g *Generator) Generate(w io.Writer, root *command.Command) error {
	script := g.script(root)
	if _, err := io.WriteString(w, script); err != nil {
		return fmt.Errorf("failed to write completion script: %w", err)
	}
	return nil
}

// Script returns the completion script for root.
func Script(root *command.Command) string {
	return NewGenerator(nil).script(root)
}

func (g *Generator) script(root *command.Command) string {
	if root.BinName == "" {
		panic(internalErrorMsg)
	}

	g.logger.Debug("generating powershell completions",
		zap.String("bin_name", root.BinName),
		zap.Int("commands", root.Count()),
	)

	return renderScript(root.BinName, generateInner(root, ""))
}

// generateInner returns the switch case for cmd followed by the cases of its
// whole subtree in pre-order. An empty parentPath marks the root.
func generateInner(cmd *command.Command, parentPath string) string {
	var path string
	if parentPath == "" {
		if cmd.BinName == "" {
			panic(internalErrorMsg)
		}
		path = cmd.BinName
	} else {
		path = completion.ChildPath(parentPath, cmd)
	}

	var sb strings.Builder
	sb.WriteString("\n        '")
	sb.WriteString(escapeString(path))
	sb.WriteString("' {")
	for _, entry := range completion.Entries(cmd) {
		sb.WriteString(entryPreamble)
		sb.WriteString(formatEntry(entry))
	}
	sb.WriteString("\n            break\n        }")

	for _, sub := range cmd.Subcommands {
		sb.WriteString(generateInner(sub, path))
	}

	return sb.String()
}

func formatEntry(e completion.Entry) string {
	return fmt.Sprintf("'%s', '%s', [CompletionResultType]::%s, '%s')",
		escapeString(e.CompletionText),
		escapeString(e.ListItemText),
		e.ResultType,
		escapeString(e.ToolTip),
	)
}

// escapeString escapes s for use inside a single-quoted PowerShell string.
func escapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
