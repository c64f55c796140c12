package completion

import (
	"testing"

	"github.com/atinylittleshell/pwshcomplete/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *command.Command {
	return &command.Command{
		Name:    "app",
		BinName: "app",
		Options: []command.Arg{
			{Shorts: []string{"o"}, Longs: []string{"output"}, Help: "Output file"},
		},
		Flags: []command.Arg{
			{Shorts: []string{"v"}, Longs: []string{"verbose"}},
			{Longs: []string{"Quiet"}},
		},
		Subcommands: []*command.Command{
			{
				Name:  "run",
				About: "Run it",
				Subcommands: []*command.Command{
					{Name: "fast"},
				},
			},
			{Name: "build"},
		},
	}
}

func TestEntries(t *testing.T) {
	entries := Entries(sampleTree())

	assert.Equal(t, []Entry{
		{"-o", "-o", ParameterName, "Output file"},
		{"--output", "--output", ParameterName, "Output file"},
		{"-v", "-v", ParameterName, "v"},
		{"--verbose", "--verbose", ParameterName, "v"},
		{"--Quiet", "--Quiet", ParameterName, "Quiet"},
		{"run", "run", ParameterValue, "Run it"},
		{"build", "build", ParameterValue, "build"},
	}, entries)
}

func TestEntriesEmptyCommand(t *testing.T) {
	assert.Empty(t, Entries(&command.Command{Name: "leaf"}))
}

func TestEntriesShortOnlyAndLongOnly(t *testing.T) {
	cmd := &command.Command{
		Name: "app",
		Flags: []command.Arg{
			{Shorts: []string{"a", "b"}},
			{Longs: []string{"long", "longer"}},
		},
	}

	entries := Entries(cmd)
	require.Len(t, entries, 4)
	assert.Equal(t, "-a", entries[0].CompletionText)
	assert.Equal(t, "-b", entries[1].CompletionText)
	assert.Equal(t, "a", entries[1].ToolTip)
	assert.Equal(t, "--long", entries[2].CompletionText)
	assert.Equal(t, "--longer", entries[3].CompletionText)
	assert.Equal(t, "long", entries[3].ToolTip)
}

func TestTooltip(t *testing.T) {
	assert.Equal(t, "help", Tooltip("help", "x"))
	assert.Equal(t, "x", Tooltip("", "x"))
}

func TestWalkIsPreOrder(t *testing.T) {
	var paths []string
	Walk(sampleTree(), "app", func(path string, _ *command.Command) {
		paths = append(paths, path)
	})

	assert.Equal(t, []string{"app", "app;run", "app;run;fast", "app;build"}, paths)
}

func TestBuildTable(t *testing.T) {
	root := sampleTree()
	table := BuildTable(root)

	assert.Equal(t, root.Count(), table.Len())
	assert.Equal(t, []string{"app", "app;run", "app;run;fast", "app;build"}, table.Paths())

	entries, ok := table.Lookup("app;run")
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "fast", entries[0].CompletionText)

	entries, ok = table.Lookup("app;build")
	assert.True(t, ok)
	assert.Empty(t, entries)

	_, ok = table.Lookup("run")
	assert.False(t, ok)
}

func TestTableAddReplaceRemove(t *testing.T) {
	table := NewTable()
	table.Add("a", []Entry{{CompletionText: "x"}})
	table.Add("b", nil)
	table.Add("a", []Entry{{CompletionText: "y"}})

	assert.Equal(t, []string{"a", "b"}, table.Paths())
	entries, _ := table.Lookup("a")
	assert.Equal(t, "y", entries[0].CompletionText)

	table.Remove("a")
	table.Remove("missing")
	assert.Equal(t, []string{"b"}, table.Paths())
	assert.Equal(t, 1, table.Len())
}

func TestTablePathsIgnoreCase(t *testing.T) {
	table := NewTable()
	table.Add("app;Run", []Entry{{CompletionText: "x"}})
	table.Add("APP;RUN", []Entry{{CompletionText: "y"}})

	assert.Equal(t, []string{"app;Run"}, table.Paths(), "the registered spelling is kept")
	entries, ok := table.Lookup("app;run")
	require.True(t, ok)
	assert.Equal(t, "y", entries[0].CompletionText)

	table.Remove("App;rUn")
	assert.Zero(t, table.Len())
	_, ok = table.Lookup("app;Run")
	assert.False(t, ok)
}

func TestTableComplete(t *testing.T) {
	table := BuildTable(sampleTree())

	t.Run("empty word returns everything sorted", func(t *testing.T) {
		got := table.Complete("app", "")
		texts := make([]string, 0, len(got))
		for _, e := range got {
			texts = append(texts, e.ListItemText)
		}
		assert.Equal(t, []string{"--output", "--Quiet", "--verbose", "-o", "-v", "build", "run"}, texts)
	})

	t.Run("prefix filter ignores case", func(t *testing.T) {
		got := table.Complete("app", "--q")
		require.Len(t, got, 1)
		assert.Equal(t, "--Quiet", got[0].CompletionText)

		got = table.Complete("app", "R")
		require.Len(t, got, 1)
		assert.Equal(t, "run", got[0].CompletionText)
	})

	t.Run("unknown path", func(t *testing.T) {
		assert.Nil(t, table.Complete("nope", ""))
	})

	t.Run("path ignores case", func(t *testing.T) {
		got := table.Complete("APP;Run", "")
		require.Len(t, got, 1)
		assert.Equal(t, "fast", got[0].CompletionText)
	})

	t.Run("does not reorder the table", func(t *testing.T) {
		entries, _ := table.Lookup("app")
		assert.Equal(t, "-o", entries[0].CompletionText)
	})
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line     string
		elements []Element
		word     string
	}{
		{"", nil, ""},
		{"app", []Element{{"app", true}}, "app"},
		{"app ", []Element{{"app", true}}, ""},
		{"app ru", []Element{{"app", true}, {"ru", true}}, "ru"},
		{"app run --ve", []Element{{"app", true}, {"run", true}, {"--ve", true}}, "--ve"},
		{"app 'run' x ", []Element{{"app", true}, {"run", false}, {"x", true}}, ""},
		{`app "a b"`, []Element{{"app", true}, {"a b", false}}, "a b"},
		{"other | app run ", []Element{{"app", true}, {"run", true}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			elements, word, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.word, word)
			if tt.elements == nil {
				assert.Empty(t, elements)
				return
			}
			assert.Equal(t, tt.elements, elements)
		})
	}
}

func TestParseLineError(t *testing.T) {
	_, _, err := ParseLine(`app "unterminated`)
	assert.Error(t, err)
}

func TestCommandPath(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"root only", "app ", "app"},
		{"partial subcommand", "app ru", "app"},
		{"complete subcommand", "app run ", "app;run"},
		{"nested", "app run fast ", "app;run;fast"},
		{"stops at option", "app run --verbose fast ", "app;run"},
		{"stops at quoted word", "app 'run' fast ", "app"},
		{"invoked through another name", "./bin/app run ", "app;run"},
		{"cursor word equal to earlier element", "app run run", "app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements, word, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, CommandPath("app", elements, word))
		})
	}
}
