// Package command describes the grammar of a command-line program: its
// commands, subcommands, options and flags.
package command

// Arg is an option (value-taking) or a flag (boolean) of a command.
//
// Shorts and Longs are either nil or non-empty. A nil list means the arg has
// no aliases of that kind.
type Arg struct {
	Shorts []string `yaml:"short,omitempty"`
	Longs  []string `yaml:"long,omitempty"`
	Help   string   `yaml:"help,omitempty"`
}

// Command is one node of a command tree.
type Command struct {
	Name        string     `yaml:"name"`
	BinName     string     `yaml:"bin_name,omitempty"`
	About       string     `yaml:"about,omitempty"`
	Version     string     `yaml:"version,omitempty"`
	Options     []Arg      `yaml:"options,omitempty"`
	Flags       []Arg      `yaml:"flags,omitempty"`
	Subcommands []*Command `yaml:"subcommands,omitempty"`
}

// HasAbout reports whether the command carries about text.
func (c *Command) HasAbout() bool {
	return c.About != ""
}

// Count returns the number of nodes in the tree rooted at c.
func (c *Command) Count() int {
	n := 1
	for _, sub := range c.Subcommands {
		n += sub.Count()
	}
	return n
}

// normalize turns empty alias lists into nil so that absence has a single
// representation, and does the same for every descendant.
func (c *Command) normalize() {
	for i := range c.Options {
		c.Options[i] = c.Options[i].normalized()
	}
	for i := range c.Flags {
		c.Flags[i] = c.Flags[i].normalized()
	}
	for _, sub := range c.Subcommands {
		if sub != nil {
			sub.normalize()
		}
	}
}

func (a Arg) normalized() Arg {
	if len(a.Shorts) == 0 {
		a.Shorts = nil
	}
	if len(a.Longs) == 0 {
		a.Longs = nil
	}
	return a
}
