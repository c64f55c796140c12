// Package completion computes the completion entries offered for every
// command of a command tree, and simulates how a generated completion script
// looks them up while the user types.
package completion

import (
	"github.com/atinylittleshell/pwshcomplete/internal/command"
)

// ResultType classifies a completion entry.
type ResultType string

const (
	// ParameterName is the type of option and flag tokens.
	ParameterName ResultType = "ParameterName"
	// ParameterValue is the type of subcommand names.
	ParameterValue ResultType = "ParameterValue"
)

// Entry is a single suggestion offered at a command path.
type Entry struct {
	CompletionText string
	ListItemText   string
	ResultType     ResultType
	ToolTip        string
}

// Tooltip returns help when it is present, and fallback otherwise.
func Tooltip(help, fallback string) string {
	if help != "" {
		return help
	}
	return fallback
}

// Entries returns the suggestions offered while the user is inside cmd:
// options, then flags, then subcommands, each in declaration order.
func Entries(cmd *command.Command) []Entry {
	entries := make([]Entry, 0, len(cmd.Options)+len(cmd.Flags)+len(cmd.Subcommands))

	for _, opt := range cmd.Options {
		entries = appendArgEntries(entries, opt)
	}
	for _, flag := range cmd.Flags {
		entries = appendArgEntries(entries, flag)
	}
	for _, sub := range cmd.Subcommands {
		entries = append(entries, Entry{
			CompletionText: sub.Name,
			ListItemText:   sub.Name,
			ResultType:     ParameterValue,
			ToolTip:        Tooltip(sub.About, sub.Name),
		})
	}

	return entries
}

// appendArgEntries adds one entry per short alias followed by one per long
// alias. All of them share a tooltip whose fallback is the first short alias,
// or the first long alias when the arg has no short ones.
func appendArgEntries(entries []Entry, arg command.Arg) []Entry {
	tooltip := Tooltip(arg.Help, argFallback(arg))

	for _, short := range arg.Shorts {
		text := "-" + short
		entries = append(entries, Entry{
			CompletionText: text,
			ListItemText:   text,
			ResultType:     ParameterName,
			ToolTip:        tooltip,
		})
	}
	for _, long := range arg.Longs {
		text := "--" + long
		entries = append(entries, Entry{
			CompletionText: text,
			ListItemText:   text,
			ResultType:     ParameterName,
			ToolTip:        tooltip,
		})
	}

	return entries
}

func argFallback(arg command.Arg) string {
	if len(arg.Shorts) > 0 {
		return arg.Shorts[0]
	}
	if len(arg.Longs) > 0 {
		return arg.Longs[0]
	}
	return ""
}
