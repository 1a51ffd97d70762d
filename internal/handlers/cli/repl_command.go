package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/evaluation"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/handlers/ui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const replPrompt = "(dbgalias) "

// errQuit ends the read loop.
var errQuit = errors.New("quit")

// NewReplCommand creates the 'repl' subcommand.
func NewReplCommand(svc *Services) *cobra.Command {
	var session evaluation.Session
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read lines interactively and run their expansions.",
		Long: `Starts a prompt that dispatches every typed line against the loaded rules.
Built-in commands:
  :reload        reload the rule source
  :help [NAME]   list the shortcuts, or describe one
  :quit          leave the prompt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if session.CoreFile != "" && session.Target == "" {
				return fmt.Errorf("--core requires --target")
			}
			r := &repl{
				svc:     svc,
				session: session,
				dryRun:  dryRun,
				out:     cmd.OutOrStdout(),
				errOut:  cmd.ErrOrStderr(),
			}
			return r.loop(cmd.Context(), cmd.InOrStdin())
		},
	}

	cmd.Flags().IntVarP(&session.PID, "pid", "p", 0, "Process ID to attach to.")
	cmd.Flags().StringVarP(&session.ProcessName, "name", "n", "", "Process name to attach to.")
	cmd.Flags().StringVarP(&session.Target, "target", "t", "", "Executable to create the target from.")
	cmd.Flags().StringVarP(&session.CoreFile, "core", "c", "", "Core file to load with the target.")
	cmd.Flags().IntVar(&session.Frame, "frame", 0, "Frame index to select before evaluating.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print expanded commands instead of running them.")
	cmd.MarkFlagsMutuallyExclusive("pid", "name", "target")

	return cmd
}

type repl struct {
	svc     *Services
	session evaluation.Session
	dryRun  bool
	out     io.Writer
	errOut  io.Writer
}

func (r *repl) loop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.out, ui.PromptColor(replPrompt))
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		err := r.handle(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(r.errOut, ui.ErrorColor(fmt.Sprintf("error: %v", err)))
		}
	}
}

// handle runs a single line. Errors are reported by the caller and never end
// the loop except errQuit.
func (r *repl) handle(ctx context.Context, line string) error {
	if strings.HasPrefix(line, ":") {
		return r.builtin(line)
	}
	if r.dryRun {
		return runDryRun(ctx, r.out, r.svc, line, r.session)
	}
	return runRunCmd(ctx, r.out, r.errOut, r.svc, line, r.session)
}

func (r *repl) builtin(line string) error {
	name, arg := rule.Invocation{TypedLine: line}.Split()
	switch name {
	case ":quit", ":q", ":exit":
		return errQuit
	case ":reload":
		if err := r.svc.Dispatch.Load(); err != nil {
			log.WithError(err).Warn("reload failed, keeping previous rules")
			return fmt.Errorf("reload failed: %w", err)
		}
		rules, err := r.svc.Dispatch.Rules()
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, ui.SuccessColor(fmt.Sprintf("Reloaded %d rule(s) from %s.", len(rules), r.svc.Dispatch.SourceDetails())))
		return nil
	case ":help":
		arg = strings.TrimSpace(arg)
		if arg == "" {
			return r.listNames()
		}
		help, err := r.svc.Dispatch.Describe(arg)
		if err != nil {
			return err
		}
		printHelp(r.out, help)
		return nil
	default:
		return fmt.Errorf("unknown command %q (try :help, :reload or :quit)", name)
	}
}

func (r *repl) listNames() error {
	rules, err := r.svc.Dispatch.Rules()
	if err != nil {
		return err
	}
	for _, ru := range rules {
		fmt.Fprintf(r.out, "  %-20s %s\n", ui.RuleNameColor(ru.Name()), ru.Help().Text)
	}
	return nil
}
