package completion

import (
	"github.com/atinylittleshell/pwshcomplete/internal/command"
)

// PathSeparator joins command names into a command path.
const PathSeparator = ";"

// ChildPath returns the command path of child given the path of its parent.
func ChildPath(parentPath string, child *command.Command) string {
	return parentPath + PathSeparator + child.Name
}

// Walk calls fn for root and every descendant in pre-order, passing the
// command path of each node. The root's path is rootPath.
func Walk(root *command.Command, rootPath string, fn func(path string, cmd *command.Command)) {
	fn(rootPath, root)
	for _, sub := range root.Subcommands {
		Walk(sub, ChildPath(rootPath, sub), fn)
	}
}
