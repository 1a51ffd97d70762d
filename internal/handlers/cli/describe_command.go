package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
	"github.com/AntonioJCosta/dbgalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewDescribeCommand creates the 'describe' subcommand.
func NewDescribeCommand(svc *Services) *cobra.Command {
	return &cobra.Command{
		Use:   "describe NAME",
		Short: "Show the help text and usage of a shortcut.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribeCmd(cmd.OutOrStdout(), svc.Dispatch, args[0])
		},
	}
}

func runDescribeCmd(out io.Writer, dispatchService ports.DispatchService, name string) error {
	help, err := dispatchService.Describe(name)
	if err != nil {
		return err
	}
	printHelp(out, help)
	return nil
}

func printHelp(out io.Writer, help rule.Help) {
	fmt.Fprintf(out, "%s %s\n", ui.RuleKeywordColor(help.Kind.String()), ui.RuleNameColor(help.Name))
	if help.Text != "" {
		fmt.Fprintf(out, "  %s\n", help.Text)
	}
	if help.Usage != "" {
		fmt.Fprintf(out, "  Usage: %s\n", ui.CodeColor(help.Usage))
	}
}
