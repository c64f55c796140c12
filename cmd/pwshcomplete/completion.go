package main

import (
	"github.com/atinylittleshell/pwshcomplete/internal/command"
	"github.com/atinylittleshell/pwshcomplete/internal/completion/powershell"
	"github.com/spf13/cobra"
)

func newCompletionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "completion",
		Short: "Generate the PowerShell completion script for pwshcomplete itself",
		Long: `Generate the PowerShell completion script for pwshcomplete itself.

To load completions in every session, add this line to your $PROFILE:
  pwshcomplete completion | Out-String | Invoke-Expression`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := command.FromCobra(cmd.Root())
			return powershell.NewGenerator(a.logger).Generate(a.stdout, root)
		},
	}
}
