package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/evaluation"
	"github.com/AntonioJCosta/dbgalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(svc *Services) *cobra.Command {
	var session evaluation.Session
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run LINE...",
		Short: "Expand a typed line and evaluate it with lldb.",
		Long: `Expands a typed line and runs the result in a batch lldb session attached
to a process, or loaded from a target executable and optional core file.
With --dry-run the expanded command is printed instead. Put -- before a line
that contains options.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if session.CoreFile != "" && session.Target == "" {
				return fmt.Errorf("--core requires --target")
			}
			line := strings.Join(args, " ")
			if dryRun {
				return runDryRun(cmd.Context(), cmd.OutOrStdout(), svc, line, session)
			}
			return runRunCmd(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), svc, line, session)
		},
	}

	cmd.Flags().IntVarP(&session.PID, "pid", "p", 0, "Process ID to attach to.")
	cmd.Flags().StringVarP(&session.ProcessName, "name", "n", "", "Process name to attach to.")
	cmd.Flags().StringVarP(&session.Target, "target", "t", "", "Executable to create the target from.")
	cmd.Flags().StringVarP(&session.CoreFile, "core", "c", "", "Core file to load with the target.")
	cmd.Flags().IntVar(&session.Frame, "frame", 0, "Frame index to select before evaluating.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the expanded command instead of running it.")
	cmd.MarkFlagsMutuallyExclusive("pid", "name", "target")

	return cmd
}

func runRunCmd(ctx context.Context, out, errOut io.Writer, svc *Services, line string, session evaluation.Session) error {
	res, err := svc.Dispatch.Run(ctx, line, session)
	if res.Output != "" {
		fmt.Fprint(out, res.Output)
	}
	if res.Errors != "" {
		fmt.Fprint(errOut, ui.WarningColor(res.Errors))
	}
	return err
}

func runDryRun(ctx context.Context, out io.Writer, svc *Services, line string, session evaluation.Session) error {
	exp, err := svc.Dispatch.Expand(line)
	if err != nil {
		return err
	}
	_, err = svc.DryRun(out).Evaluate(ctx, exp.Command, session)
	return err
}
