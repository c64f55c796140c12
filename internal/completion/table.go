package completion

import (
	"sort"
	"strings"

	"github.com/atinylittleshell/pwshcomplete/internal/command"
	"github.com/samber/lo"
)

// Table maps command paths to the entries offered at that path, the same
// lookup a generated completion script performs with its switch statement.
// Like a PowerShell switch, paths match ignoring case.
type Table struct {
	blocks map[string][]Entry
	paths  []string
}

// NewTable creates a new empty Table.
func NewTable() *Table {
	return &Table{
		blocks: make(map[string][]Entry),
	}
}

// BuildTable walks the tree rooted at root and registers the entries of every
// node. The root is keyed by its bin name.
func BuildTable(root *command.Command) *Table {
	t := NewTable()
	Walk(root, root.BinName, func(path string, cmd *command.Command) {
		t.Add(path, Entries(cmd))
	})
	return t
}

func pathKey(path string) string {
	return strings.ToLower(path)
}

// Add adds or replaces the entries of a path. A path that differs from a
// registered one only in case replaces it and keeps the registered spelling.
func (t *Table) Add(path string, entries []Entry) {
	key := pathKey(path)
	if _, ok := t.blocks[key]; !ok {
		t.paths = append(t.paths, path)
	}
	t.blocks[key] = entries
}

// Remove removes a path.
func (t *Table) Remove(path string) {
	key := pathKey(path)
	if _, ok := t.blocks[key]; !ok {
		return
	}
	delete(t.blocks, key)
	t.paths = lo.Filter(t.paths, func(p string, _ int) bool {
		return pathKey(p) != key
	})
}

// Lookup retrieves the entries of a path.
func (t *Table) Lookup(path string) ([]Entry, bool) {
	entries, ok := t.blocks[pathKey(path)]
	return entries, ok
}

// Paths returns all registered paths in registration order.
func (t *Table) Paths() []string {
	return append([]string(nil), t.paths...)
}

// Len returns the number of registered paths.
func (t *Table) Len() int {
	return len(t.paths)
}

// Complete returns the entries at path whose completion text starts with
// wordToComplete, ignoring case, sorted by list item text. Entries with equal
// list item text keep their registration order.
func (t *Table) Complete(path, wordToComplete string) []Entry {
	entries, ok := t.blocks[pathKey(path)]
	if !ok {
		return nil
	}

	prefix := strings.ToLower(wordToComplete)
	matches := lo.Filter(entries, func(e Entry, _ int) bool {
		return strings.HasPrefix(strings.ToLower(e.CompletionText), prefix)
	})

	sort.SliceStable(matches, func(i, j int) bool {
		return strings.ToLower(matches[i].ListItemText) < strings.ToLower(matches[j].ListItemText)
	})

	return matches
}
