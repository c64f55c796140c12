package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/atinylittleshell/pwshcomplete/internal/command"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const (
	guideBranch = "├── "
	guideLast   = "└── "
	guidePipe   = "│   "
	guideSpace  = "    "

	minHelpWidth = 20
)

type treeItem struct {
	label    string
	help     string
	children *command.Command
}

// Tree writes an outline of the command tree rooted at root, with the help
// text of every option, flag and subcommand wrapped to fit width columns.
func Tree(w io.Writer, root *command.Command, width int) error {
	header := CommandStyle.Render(root.BinName)
	if root.Version != "" {
		header += " " + DimStyle.Render(root.Version)
	}
	if root.HasAbout() {
		header += "  " + DimStyle.Render(root.About)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	return writeChildren(w, root, "", width)
}

func writeChildren(w io.Writer, cmd *command.Command, indent string, width int) error {
	items := treeItems(cmd)

	labelWidth := 0
	for _, item := range items {
		labelWidth = max(labelWidth, ansi.PrintableRuneWidth(item.label))
	}

	for i, item := range items {
		last := i == len(items)-1
		guide, childIndent := guideBranch, indent+guidePipe
		if last {
			guide, childIndent = guideLast, indent+guideSpace
		}

		line := indent + DimStyle.Render(guide) + item.label
		if item.help != "" {
			pad := labelWidth - ansi.PrintableRuneWidth(item.label) + 2
			line += strings.Repeat(" ", pad)

			prefixWidth := ansi.PrintableRuneWidth(indent+guide) + labelWidth + 2
			helpWidth := max(width-prefixWidth, minHelpWidth)
			wrapped := strings.Split(wordwrap.String(item.help, helpWidth), "\n")

			line += DimStyle.Render(wrapped[0])
			continuation := childIndent + strings.Repeat(" ", labelWidth+2)
			for _, rest := range wrapped[1:] {
				line += "\n" + continuation + DimStyle.Render(rest)
			}
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}

		if item.children != nil {
			if err := writeChildren(w, item.children, childIndent, width); err != nil {
				return err
			}
		}
	}

	return nil
}

func treeItems(cmd *command.Command) []treeItem {
	items := make([]treeItem, 0, len(cmd.Options)+len(cmd.Flags)+len(cmd.Subcommands))
	for _, opt := range cmd.Options {
		items = append(items, treeItem{label: ArgStyle.Render(argLabel(opt) + " <value>"), help: opt.Help})
	}
	for _, flag := range cmd.Flags {
		items = append(items, treeItem{label: ArgStyle.Render(argLabel(flag)), help: flag.Help})
	}
	for _, sub := range cmd.Subcommands {
		items = append(items, treeItem{label: CommandStyle.Render(sub.Name), help: sub.About, children: sub})
	}
	return items
}

func argLabel(arg command.Arg) string {
	aliases := make([]string, 0, len(arg.Shorts)+len(arg.Longs))
	for _, short := range arg.Shorts {
		aliases = append(aliases, "-"+short)
	}
	for _, long := range arg.Longs {
		aliases = append(aliases, "--"+long)
	}
	return strings.Join(aliases, ", ")
}
