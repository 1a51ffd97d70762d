package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/AntonioJCosta/dbgalias/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/dbgalias/internal/adapters/debugger"
	"github.com/AntonioJCosta/dbgalias/internal/adapters/rulesource"
	"github.com/AntonioJCosta/dbgalias/internal/adapters/shortcutgeneration"
	"github.com/AntonioJCosta/dbgalias/internal/config"
	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
	"github.com/AntonioJCosta/dbgalias/internal/core/services/dispatch"
	"github.com/AntonioJCosta/dbgalias/internal/core/services/suggestion"
	"github.com/AntonioJCosta/dbgalias/internal/handlers/cli"
	"github.com/AntonioJCosta/dbgalias/internal/repositories/history"
	"github.com/AntonioJCosta/dbgalias/internal/repositories/lldbinit"
)

// Version is set at build time
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCommand(Version, cfg, buildServices)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices wires the adapters for cfg. It runs after the command-line
// flags have been applied.
func buildServices(cfg config.Config) (*cli.Services, error) {
	ruleSource, err := newRuleSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing rule source: %w", err)
	}
	dispatchSvc := dispatch.NewService(ruleSource, debugger.NewLLDBEvaluator(cfg.LLDBPath))

	historyFileFinder := history.NewDefaultHistoryFileFinder(cfg.HistoryFile)
	historyRepo, err := history.NewHistoryProvider(historyFileFinder)
	if err != nil {
		return nil, fmt.Errorf("error initializing history provider: %w", err)
	}

	cmdAnalyzer := commandanalysis.NewBasicAnalyzer()
	shortcutGen := shortcutgeneration.NewShortcutGenerator(cmdAnalyzer)

	initFile, err := lldbinit.NewInitFileAccessor(cfg.LLDBInitFile, cfg.HomeDir)
	if err != nil {
		return nil, fmt.Errorf("error initializing init file accessor: %w", err)
	}

	suggestionSvc := suggestion.NewService(historyRepo, shortcutGen, initFile, dispatchSvc)

	return &cli.Services{
		Dispatch:   dispatchSvc,
		Suggestion: suggestionSvc,
		InitFile:   initFile,
		DryRun:     debugger.NewPrintEvaluator,
	}, nil
}

// newRuleSource picks a provider per rules file. Several files are chained in
// order, so a name defined twice fails the load.
func newRuleSource(cfg config.Config) (ports.RuleSource, error) {
	files := cfg.RuleFiles()
	if len(files) == 0 {
		return rulesource.NewEmbeddedProvider(), nil
	}

	sources := make([]ports.RuleSource, 0, len(files))
	for _, file := range files {
		var src ports.RuleSource
		var err error
		switch config.FormatOf(file) {
		case config.RulesYAML:
			src, err = rulesource.NewYAMLProvider(file)
		case config.RulesDirectives:
			src, err = rulesource.NewDirectiveProvider(file)
		default:
			src = rulesource.NewEmbeddedProvider()
		}
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	return rulesource.NewChainProvider(sources...), nil
}
