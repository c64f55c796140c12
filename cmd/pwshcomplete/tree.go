package main

import (
	"github.com/atinylittleshell/pwshcomplete/internal/render"
	"github.com/spf13/cobra"
)

func newTreeCommand(a *app) *cobra.Command {
	var definition string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the command tree of a command definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadDefinition(definition, "")
			if err != nil {
				return err
			}
			return render.Tree(a.stdout, root, a.terminalWidth())
		},
	}

	cmd.Flags().StringVarP(&definition, "definition", "d", "", "YAML command definition to read")
	_ = cmd.MarkFlagRequired("definition")

	return cmd
}
