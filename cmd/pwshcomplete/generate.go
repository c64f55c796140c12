package main

import (
	"bytes"
	"fmt"

	"github.com/atinylittleshell/pwshcomplete/internal/command"
	"github.com/atinylittleshell/pwshcomplete/internal/completion/powershell"
	"github.com/atinylittleshell/pwshcomplete/internal/core"
	"github.com/atinylittleshell/pwshcomplete/internal/installer"
	"github.com/atinylittleshell/pwshcomplete/internal/render"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	definition string
	binName    string
	outputDir  string
	install    bool
}

func newGenerateCommand(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the completion script for a command definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.definition, "definition", "d", "", "YAML command definition to read")
	cmd.Flags().StringVar(&opts.binName, "bin-name", "", "Name the program is invoked by (defaults to the definition's bin_name)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Write _<bin-name>.ps1 into this directory instead of stdout")
	cmd.Flags().BoolVar(&opts.install, "install", false, "Write the script into the PowerShell completions directory")
	_ = cmd.MarkFlagRequired("definition")
	cmd.MarkFlagsMutuallyExclusive("output-dir", "install")

	return cmd
}

func runGenerate(a *app, opts *generateOptions) error {
	root, err := loadDefinition(opts.definition, opts.binName)
	if err != nil {
		return err
	}

	generator := powershell.NewGenerator(a.logger)

	dir := opts.outputDir
	if opts.install {
		dir = core.CompletionsDir()
	}

	if dir == "" {
		if a.isTerminal() {
			fmt.Fprintln(a.stderr, render.Hint(fmt.Sprintf(
				"redirect the output to %s or use --install", powershell.FileName(root.BinName))))
		}
		return generator.Generate(a.stdout, root)
	}

	var buf bytes.Buffer
	if err := generator.Generate(&buf, root); err != nil {
		return err
	}

	path, err := installer.Install(a.logger, dir, root.BinName, buf.String())
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stderr, render.Success(fmt.Sprintf("completions written to %s", path)))
	if opts.install {
		fmt.Fprintln(a.stderr, render.Hint(fmt.Sprintf("add `. '%s'` to your PowerShell $PROFILE to enable them", path)))
	}

	return nil
}

// loadDefinition reads a command definition and applies the bin name
// override, if any.
func loadDefinition(path, binName string) (*command.Command, error) {
	root, err := command.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if binName != "" {
		root.BinName = binName
	}
	return root, nil
}
