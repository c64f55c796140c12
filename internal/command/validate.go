package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
	"github.com/rivo/uniseg"
	"github.com/samber/lo"
)

// Validate checks the structural invariants of the tree rooted at c:
// non-empty names unique among siblings, no node reachable twice, usable
// aliases on every option and flag, and a semantic version on the root if
// one is given. All problems are reported together.
func Validate(c *Command) error {
	if c == nil {
		return errors.New("command is nil")
	}

	var errs []error
	if c.Version != "" {
		if _, err := semver.NewVersion(c.Version); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid version %q: %w", c.Name, c.Version, err))
		}
	}

	seen := make(map[*Command]bool)
	errs = append(errs, validateNode(c, c.Name, seen)...)

	return errors.Join(errs...)
}

func validateNode(c *Command, path string, seen map[*Command]bool) []error {
	var errs []error

	if seen[c] {
		return []error{fmt.Errorf("%s: command appears more than once in the tree", path)}
	}
	seen[c] = true

	if err := checkName(c.Name); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", path, err))
	}

	for i, opt := range c.Options {
		errs = append(errs, validateArg(opt, fmt.Sprintf("%s: option #%d", path, i+1))...)
	}
	for i, flag := range c.Flags {
		errs = append(errs, validateArg(flag, fmt.Sprintf("%s: flag #%d", path, i+1))...)
	}

	names := make([]string, 0, len(c.Subcommands))
	for i, sub := range c.Subcommands {
		if sub == nil {
			errs = append(errs, fmt.Errorf("%s: subcommand #%d is nil", path, i+1))
			continue
		}
		names = append(names, strings.ToLower(sub.Name))
	}
	// Completion scripts match command paths ignoring case.
	for _, dup := range lo.FindDuplicates(names) {
		errs = append(errs, fmt.Errorf("%s: duplicate subcommand %q", path, dup))
	}

	for _, sub := range c.Subcommands {
		if sub == nil {
			continue
		}
		errs = append(errs, validateNode(sub, path+" "+sub.Name, seen)...)
	}

	return errs
}

func validateArg(a Arg, where string) []error {
	var errs []error

	if a.Shorts == nil && a.Longs == nil {
		errs = append(errs, fmt.Errorf("%s has neither short nor long aliases", where))
	}

	for _, s := range a.Shorts {
		if err := checkAlias(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: short alias %q: %w", where, s, err))
			continue
		}
		if uniseg.GraphemeClusterCount(s) != 1 {
			errs = append(errs, fmt.Errorf("%s: short alias %q must be a single character", where, s))
		}
	}
	for _, l := range a.Longs {
		if err := checkAlias(l); err != nil {
			errs = append(errs, fmt.Errorf("%s: long alias %q: %w", where, l, err))
		}
	}

	return errs
}

// pathSeparator joins command names into the command path of a completion
// script.
const pathSeparator = ";"

// checkName rejects names that cannot appear in a command path: the script
// only collects bare words that do not start with a dash.
func checkName(name string) error {
	switch {
	case name == "":
		return errors.New("command name is empty")
	case strings.Contains(name, pathSeparator):
		return fmt.Errorf("command name %q contains %q", name, pathSeparator)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("command name %q starts with a dash", name)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return fmt.Errorf("command name %q contains whitespace", name)
	}
	return nil
}

func checkAlias(alias string) error {
	if alias == "" {
		return errors.New("alias is empty")
	}
	if strings.HasPrefix(alias, "-") {
		return errors.New("alias must be given without leading dashes")
	}
	if strings.IndexFunc(alias, unicode.IsSpace) >= 0 {
		return errors.New("alias contains whitespace")
	}
	return nil
}
