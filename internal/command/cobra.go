package command

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FromCobra converts a cobra command tree into a Command tree rooted at cmd.
// Boolean flags become flags and every other flag becomes an option. Hidden
// and deprecated flags and hidden commands are left out, as is cobra's
// generated help command.
func FromCobra(cmd *cobra.Command) *Command {
	root := fromCobra(cmd)
	root.BinName = cmd.Name()
	root.Version = cmd.Version
	return root
}

func fromCobra(cmd *cobra.Command) *Command {
	c := &Command{
		Name:  cmd.Name(),
		About: cmd.Short,
	}

	visit := func(f *pflag.Flag) {
		if f.Hidden || f.Deprecated != "" {
			return
		}

		arg := Arg{Help: f.Usage}
		if f.Shorthand != "" && f.ShorthandDeprecated == "" {
			arg.Shorts = []string{f.Shorthand}
		}
		if f.Name != "" {
			arg.Longs = []string{f.Name}
		}

		if f.Value.Type() == "bool" {
			c.Flags = append(c.Flags, arg)
		} else {
			c.Options = append(c.Options, arg)
		}
	}
	cmd.LocalFlags().VisitAll(visit)
	cmd.InheritedFlags().VisitAll(visit)

	for _, sub := range cmd.Commands() {
		if sub.Hidden || sub.Name() == "help" {
			continue
		}
		c.Subcommands = append(c.Subcommands, fromCobra(sub))
	}

	return c
}
