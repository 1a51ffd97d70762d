package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
	"github.com/AntonioJCosta/dbgalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewSuggestCommand creates the 'suggest' subcommand.
func NewSuggestCommand(svc *Services) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest shortcuts based on LLDB command history.",
		Long: `Analyzes the LLDB command history to find frequently typed commands and
suggests aliases for them. Names already used by loaded rules or by
~/.lldbinit are never proposed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggestCmd(cmd.OutOrStdout(), svc.Suggestion, parseSuggestionFlags(cmd), asYAML)
		},
	}

	addSuggestionFlags(cmd)
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the suggestions as a YAML rule file.")
	return cmd
}

func runSuggestCmd(out io.Writer, suggestionService ports.SuggestionService, flags suggestionFlags, asYAML bool) error {
	result, err := suggestionService.GetSuggestions(flags.minFrequency, flags.scanLimit, flags.outputLimit)
	if err != nil {
		return fmt.Errorf("could not get suggestions: %w", err)
	}

	if asYAML {
		return writeDefinitionsYAML(out, result.Suggestions)
	}

	if len(result.Suggestions) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No shortcut suggestions found with the current criteria."))
		if result.SourceDetails != "" {
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Context: %s", result.SourceDetails)))
		} else {
			// Attempt to get context details if not already provided in the result.
			contextDetails, errCtx := suggestionService.GetSuggestionContextDetails()
			if errCtx == nil && contextDetails != "" {
				fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Context: %s", contextDetails)))
			}
		}
		return nil
	}

	fmt.Fprintln(out, ui.InfoColor("Suggested Shortcuts:"))
	for _, s := range result.Suggestions {
		fmt.Fprintf(out, "  %s %s %s\n",
			ui.RuleKeywordColor("command alias"),
			ui.RuleNameColor(s.Name),
			ui.RuleCmdColor(s.Expansion))
	}
	if result.SourceDetails != "" {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("\n(Source: %s)", result.SourceDetails)))
	}
	return nil
}
