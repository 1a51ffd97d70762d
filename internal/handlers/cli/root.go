package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/dbgalias/internal/config"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Services groups the ports the subcommands depend on.
type Services struct {
	Dispatch   ports.DispatchService
	Suggestion ports.SuggestionService
	InitFile   ports.InitFileAccessor
	// DryRun builds the evaluator used by "run --dry-run".
	DryRun func(w io.Writer) ports.Evaluator
}

/*
ServiceFactory builds the services once the persistent flags have been
applied to the configuration. It is called before every subcommand runs.
*/
type ServiceFactory func(cfg config.Config) (*Services, error)

func NewRootCommand(version string, cfg config.Config, factory ServiceFactory) *cobra.Command {
	if factory == nil {
		panic("factory cannot be nil")
	}
	svc := &Services{}

	rootCmd := &cobra.Command{
		Use:   "dbgalias",
		Short: "dbgalias expands LLDB shortcuts and runs them in a debugger session.",
		Long: `dbgalias loads LLDB command aliases and regex command templates, expands
typed lines into full debugger commands and forwards them to lldb. It can also
install the rule set into ~/.lldbinit and suggest new shortcuts from your
LLDB command history.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
				return err
			}
			built, err := factory(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize services: %w", err)
			}
			if err := checkServices(built); err != nil {
				return err
			}
			*svc = *built

			if err := svc.Dispatch.Load(); err != nil {
				return fmt.Errorf("failed to load rules: %w", err)
			}
			log.WithFields(log.Fields{"command": cmd.Name(), "source": svc.Dispatch.SourceDetails()}).Debug("rules loaded")
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "Rule files to load, separated like PATH (.yaml/.yml, LLDB directives, or \"builtin\"). Empty uses the built-in rules.")
	flags.StringVar(&cfg.LLDBInitFile, "lldbinit", cfg.LLDBInitFile, "LLDB init file used by install and suggest.")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error).")

	rootCmd.AddCommand(NewExpandCommand(svc))
	rootCmd.AddCommand(NewRunCommand(svc))
	rootCmd.AddCommand(NewListCommand(svc))
	rootCmd.AddCommand(NewDescribeCommand(svc))
	rootCmd.AddCommand(NewReplCommand(svc))
	rootCmd.AddCommand(NewExportCommand(svc))
	rootCmd.AddCommand(NewInstallCommand(svc))
	rootCmd.AddCommand(NewSuggestCommand(svc))

	return rootCmd
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(lvl)
	return nil
}

func checkServices(s *Services) error {
	switch {
	case s == nil:
		return errors.New("services not initialized")
	case s.Dispatch == nil:
		return errors.New("dispatch service not initialized")
	case s.Suggestion == nil:
		return errors.New("suggestion service not initialized")
	case s.InitFile == nil:
		return errors.New("init file accessor not initialized")
	case s.DryRun == nil:
		return errors.New("dry-run evaluator not initialized")
	}
	return nil
}
