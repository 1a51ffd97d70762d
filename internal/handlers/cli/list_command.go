package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
	"github.com/AntonioJCosta/dbgalias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(svc *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the loaded shortcuts.",
		Long:  `Displays every loaded alias and regex rule in registration order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd.OutOrStdout(), svc.Dispatch)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(out io.Writer, dispatchService ports.DispatchService) error {
	rules, err := dispatchService.Rules()
	if err != nil {
		return fmt.Errorf("could not list rules: %w", err)
	}

	if len(rules) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No rules loaded."))
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Source: %s", dispatchService.SourceDetails())))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Loaded rules (%d):", len(rules))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Kind", "Expands To", "Help"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, ru := range rules {
		def := rule.DefinitionOf(ru)
		target := def.Expansion
		if ru.Kind() == rule.KindRegex {
			target = def.Template
		}
		help := ru.Help()
		text := help.Text
		if help.Usage != "" {
			text = fmt.Sprintf("%s (%s)", text, help.Usage)
		}
		table.Append([]string{ru.Name(), ru.Kind().String(), target, text})
	}
	table.Render()

	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Source: %s", dispatchService.SourceDetails())))
	return nil
}
