package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/dbgalias/internal/adapters/rulesource"
	"github.com/AntonioJCosta/dbgalias/internal/core/domain/rule"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewExportCommand creates the 'export' subcommand.
func NewExportCommand(svc *Services) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the loaded rules as LLDB init-file directives.",
		Long: `Writes one "command alias" or "command regex" line per loaded rule to
standard output, in registration order. The output can be sourced by lldb or
loaded back with --rules. With --yaml the rules are written as a YAML rule file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportCmd(cmd.OutOrStdout(), svc.Dispatch, asYAML)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Write a YAML rule file instead of directives.")
	return cmd
}

func runExportCmd(out io.Writer, dispatchService ports.DispatchService, asYAML bool) error {
	rules, err := dispatchService.Rules()
	if err != nil {
		return fmt.Errorf("could not list rules: %w", err)
	}
	if asYAML {
		return writeDefinitionsYAML(out, definitionsOf(rules))
	}
	return rulesource.Render(out, rules)
}

func definitionsOf(rules []rule.Rule) []rule.Definition {
	defs := make([]rule.Definition, 0, len(rules))
	for _, ru := range rules {
		defs = append(defs, rule.DefinitionOf(ru))
	}
	return defs
}

func writeDefinitionsYAML(out io.Writer, defs []rule.Definition) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(defs); err != nil {
		return fmt.Errorf("failed to encode rules as YAML: %w", err)
	}
	return encoder.Close()
}
