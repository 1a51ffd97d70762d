package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
	"github.com/AntonioJCosta/dbgalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewExpandCommand creates the 'expand' subcommand.
func NewExpandCommand(svc *Services) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "expand LINE...",
		Short: "Print the LLDB command a typed line expands to.",
		Long: `Resolves a typed line against the loaded rules and prints the resulting
command without running it. The arguments are joined with single spaces;
quote the line to keep its exact spacing, and put -- before a line that
contains options:

  dbgalias expand -- cpo -O self`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpandCmd(cmd.OutOrStdout(), svc.Dispatch, strings.Join(args, " "), verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the rule that matched.")
	return cmd
}

func runExpandCmd(out io.Writer, dispatchService ports.DispatchService, line string, verbose bool) error {
	exp, err := dispatchService.Expand(line)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(out, "%s %s\n", ui.RuleKeywordColor(exp.Kind.String()), ui.RuleNameColor(exp.Name))
	}
	fmt.Fprintln(out, exp.Command)
	return nil
}
