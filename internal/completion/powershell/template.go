package powershell

import "strings"

// scriptTemplate is the PowerShell wrapper around the generated switch cases.
// It registers a native argument completer that joins the bare words typed so
// far into a command path, looks the path up and filters by prefix.
const scriptTemplate = `
using namespace System.Management.Automation
using namespace System.Management.Automation.Language

Register-ArgumentCompleter -Native -CommandName '{bin_name}' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commandElements = $commandAst.CommandElements
    $command = @(
        '{bin_name}'
        for ($i = 1; $i -lt $commandElements.Count; $i++) {
            $element = $commandElements[$i]
            if ($element -isnot [StringConstantExpressionAst] -or
                $element.StringConstantType -ne [StringConstantType]::BareWord -or
                $element.Value.StartsWith('-') -or
                $element.Value -eq $wordToComplete) {
                break
        }
        $element.Value
    }) -join ';'

    $completions = @(switch ($command) {{subcommands_cases}
    })

    $completions.Where{ $_.CompletionText -like "$wordToComplete*" } |
        Sort-Object -Property ListItemText
}
`

func renderScript(binName, cases string) string {
	return strings.NewReplacer(
		"{bin_name}", escapeString(binName),
		"{subcommands_cases}", cases,
	).Replace(scriptTemplate)
}
