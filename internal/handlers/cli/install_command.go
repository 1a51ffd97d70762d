package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/dbgalias/internal/adapters/rulesource"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

type installOptions struct {
	suggested bool
	noFZF     bool
	flags     suggestionFlags
}

// NewInstallCommand creates the 'install' subcommand.
func NewInstallCommand(svc *Services) *cobra.Command {
	var opts installOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Write the loaded shortcuts to a file sourced by ~/.lldbinit.",
		Long: `Renders the loaded rules as LLDB directives into the generated shortcut file
and makes sure ~/.lldbinit sources it. With --suggested, shortcuts proposed from
your LLDB history can be selected and installed alongside the loaded rules.
Uses fzf for selection if available, otherwise falls back to numeric input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.flags = parseSuggestionFlags(cmd)
			return runInstallCmd(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), svc, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.suggested, "suggested", false, "Also select shortcuts suggested from command history.")
	cmd.Flags().BoolVar(&opts.noFZF, "no-fzf", false, "Use numeric selection even if fzf is installed.")
	addSuggestionFlags(cmd)

	return cmd
}

func runInstallCmd(in io.Reader, out, errOut io.Writer, svc *Services, opts installOptions) error {
	rules, err := svc.Dispatch.Rules()
	if err != nil {
		return fmt.Errorf("could not list rules: %w", err)
	}

	if opts.suggested {
		selected, err := selectSuggestions(in, out, errOut, svc, opts)
		if err != nil {
			return err
		}
		rules = appendSuggested(errOut, rules, selected)
	}

	if len(rules) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No rules to install."))
		return nil
	}

	var content bytes.Buffer
	content.WriteString("# Generated by dbgalias. Changes are overwritten by 'dbgalias install'.\n")
	if err := rulesource.Render(&content, rules); err != nil {
		return fmt.Errorf("could not render rules: %w", err)
	}

	path, err := svc.InitFile.WriteShortcutFile(content.String())
	if err != nil {
		return fmt.Errorf("could not write shortcut file: %w", err)
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("%d shortcut(s) written to %s.", len(rules), path)))

	added, err := svc.InitFile.EnsureSourced(path)
	if err != nil {
		return fmt.Errorf("could not update %s: %w", svc.InitFile.GetInitFilePath(), err)
	}
	if added {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Added a 'command source' line to %s.", svc.InitFile.GetInitFilePath())))
	} else {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("%s already sources the shortcut file.", svc.InitFile.GetInitFilePath())))
	}

	fmt.Fprintln(out, ui.InfoColor("\nTo use the shortcuts in a running lldb session:"))
	fmt.Fprintln(out, ui.CodeColor("   command source ~/.lldbinit"))
	return nil
}

func selectSuggestions(in io.Reader, out, errOut io.Writer, svc *Services, opts installOptions) ([]rule.Definition, error) {
	fmt.Fprintln(out, ui.InfoColor("Fetching shortcut suggestions..."))
	result, err := svc.Suggestion.GetSuggestions(opts.flags.minFrequency, opts.flags.scanLimit, opts.flags.outputLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get suggestions: %w", err)
	}

	if len(result.Suggestions) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No shortcut suggestions found with the current criteria."))
		if result.SourceDetails != "" {
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Context: %s", result.SourceDetails)))
		}
		return nil, nil
	}
	fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Found %d suggestions. (Source: %s)", len(result.Suggestions), ui.DetailColor(result.SourceDetails))))

	if opts.noFZF {
		return selectNumerically(in, out, result.Suggestions)
	}

	selected, fzfErr := selectViaFZF(result.Suggestions, errOut)
	switch {
	case fzfErr == nil:
		if len(selected) == 0 {
			fmt.Fprintln(out, ui.InfoColor("No shortcuts selected via fzf."))
		}
		return selected, nil
	case errors.Is(fzfErr, ErrFZFCancelled):
		fmt.Fprintln(out, ui.InfoColor("Selection cancelled via fzf. No suggested shortcuts will be added."))
		return nil, nil
	case errors.Is(fzfErr, ErrFZFNotFound):
		fmt.Fprintln(out, ui.WarningColor("fzf not found in PATH. Falling back to numeric selection."))
	default:
		fmt.Fprintln(errOut, ui.ErrorColor(fmt.Sprintf("Error during fzf selection: %v. Falling back to numeric selection.", fzfErr)))
	}
	return selectNumerically(in, out, result.Suggestions)
}

// appendSuggested compiles the selected definitions and appends those whose
// names are not already loaded.
func appendSuggested(errOut io.Writer, rules []rule.Rule, selected []rule.Definition) []rule.Rule {
	names := make(map[string]bool, len(rules))
	for _, ru := range rules {
		names[ru.Name()] = true
	}
	for _, def := range selected {
		if names[def.Name] {
			fmt.Fprintln(errOut, ui.WarningColor(fmt.Sprintf("Skipping %q: a rule with that name is already loaded.", def.Name)))
			continue
		}
		ru, err := def.Compile()
		if err != nil {
			fmt.Fprintln(errOut, ui.ErrorColor(fmt.Sprintf("Skipping %q: %v", def.Name, err)))
			continue
		}
		names[def.Name] = true
		rules = append(rules, ru)
	}
	return rules
}
